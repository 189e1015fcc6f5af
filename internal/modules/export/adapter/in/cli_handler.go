package in

import (
	"context"

	exportdto "timetable/internal/modules/export/dto"
	exportin "timetable/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Preview(ctx context.Context, checked []string) (exportdto.ExportOutput, error) {
	return h.usecase.Preview(ctx, checked)
}

func (h CLIHandler) Copy(ctx context.Context, checked []string) (exportdto.ExportOutput, error) {
	return h.usecase.Copy(ctx, checked)
}

func (h CLIHandler) WriteFile(ctx context.Context, path string, checked []string) (exportdto.WriteFileOutput, error) {
	return h.usecase.WriteFile(ctx, exportdto.WriteFileInput{Path: path, CheckedIDs: checked})
}
