package usecase

import (
	"context"
	"fmt"
	"strings"

	"timetable/internal/modules/export/domain"
	"timetable/internal/modules/export/dto"
	exportin "timetable/internal/modules/export/port/in"
	"timetable/internal/modules/export/service"
)

// Interactor exports a caller-supplied snapshot of checked ids. It never reads
// the selection store, so it is safe to run off the UI event loop.
type Interactor struct {
	svc *service.ExportService
}

func NewInteractor(svc *service.ExportService) exportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Preview(_ context.Context, checked []string) (dto.ExportOutput, error) {
	sel, err := i.svc.Format(checked)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return toOutput(sel), nil
}

func (i *Interactor) Copy(ctx context.Context, checked []string) (dto.ExportOutput, error) {
	sel, err := i.svc.Copy(ctx, checked)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return toOutput(sel), nil
}

func (i *Interactor) WriteFile(ctx context.Context, input dto.WriteFileInput) (dto.WriteFileOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return dto.WriteFileOutput{}, fmt.Errorf("export path is required")
	}
	sel, err := i.svc.WriteNote(ctx, input.Path, input.CheckedIDs)
	if err != nil {
		return dto.WriteFileOutput{}, err
	}
	return dto.WriteFileOutput{Path: input.Path, Count: sel.Count()}, nil
}

func toOutput(sel domain.Selection) dto.ExportOutput {
	return dto.ExportOutput{Text: sel.Text, Count: sel.Count(), Dates: sel.Dates()}
}
