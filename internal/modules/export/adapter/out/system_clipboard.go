package out

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	exportout "timetable/internal/modules/export/port/out"
	apperrors "timetable/internal/platform/errors"
)

// SystemClipboard writes through the platform clipboard tool (pbcopy,
// xclip, xsel, wl-copy or the Windows API).
type SystemClipboard struct{}

func NewSystemClipboard() exportout.Clipboard {
	return SystemClipboard{}
}

func (SystemClipboard) Copy(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard: %w", apperrors.ErrClipboardUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}
