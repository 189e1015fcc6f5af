package out

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	exportout "timetable/internal/modules/export/port/out"
	apperrors "timetable/internal/platform/errors"
)

// FallbackClipboard tries primary and falls back to secondary when primary
// fails. Callers see one success or one combined error.
type FallbackClipboard struct {
	primary   exportout.Clipboard
	secondary exportout.Clipboard
	logger    *zap.Logger
}

func NewFallbackClipboard(primary, secondary exportout.Clipboard, logger *zap.Logger) exportout.Clipboard {
	return &FallbackClipboard{primary: primary, secondary: secondary, logger: logger}
}

func (c *FallbackClipboard) Copy(ctx context.Context, text string) error {
	err := c.primary.Copy(ctx, text)
	if err == nil {
		return nil
	}
	c.logger.Debug("primary clipboard failed, using fallback", zap.Error(err))
	if fbErr := c.secondary.Copy(ctx, text); fbErr != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrClipboardUnavailable, errors.Join(err, fbErr))
	}
	return nil
}
