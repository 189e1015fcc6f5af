package in

import (
	"context"

	"timetable/internal/modules/export/dto"
)

type Usecase interface {
	// Preview formats checked without touching the clipboard.
	Preview(ctx context.Context, checked []string) (dto.ExportOutput, error)
	Copy(ctx context.Context, checked []string) (dto.ExportOutput, error)
	WriteFile(ctx context.Context, input dto.WriteFileInput) (dto.WriteFileOutput, error)
}
