package out

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"

	scheduleout "timetable/internal/modules/schedule/port/out"
)

type BrowserOpener struct{}

// NewBrowserOpener silences the launcher's own output so it cannot draw over
// the terminal UI.
func NewBrowserOpener() scheduleout.URLOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{}
}

func (o *BrowserOpener) Open(_ context.Context, url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open session url: %w", err)
	}
	return nil
}
