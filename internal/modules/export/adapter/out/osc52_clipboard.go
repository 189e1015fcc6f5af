package out

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"

	exportout "timetable/internal/modules/export/port/out"
)

// OSC52Clipboard asks the terminal emulator to set the clipboard by writing
// an OSC 52 escape sequence. It works over SSH where no clipboard tool is
// installed.
type OSC52Clipboard struct {
	w    io.Writer
	tmux bool
}

func NewOSC52Clipboard(w io.Writer) exportout.Clipboard {
	return &OSC52Clipboard{w: w, tmux: os.Getenv("TMUX") != ""}
}

func (c *OSC52Clipboard) Copy(_ context.Context, text string) error {
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("osc52 clipboard: %w", err)
	}
	return nil
}
