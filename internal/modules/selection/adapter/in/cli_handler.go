package in

import (
	"context"

	selectiondto "timetable/internal/modules/selection/dto"
	selectionin "timetable/internal/modules/selection/port/in"
)

type CLIHandler struct {
	usecase selectionin.Usecase
}

func NewCLIHandler(usecase selectionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) selectiondto.StateOutput {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) State(ctx context.Context) selectiondto.StateOutput {
	return h.usecase.State(ctx)
}

func (h CLIHandler) Toggle(ctx context.Context, sessionID string) selectiondto.StateOutput {
	return h.usecase.Toggle(ctx, sessionID)
}

func (h CLIHandler) SelectDate(ctx context.Context, date string) selectiondto.StateOutput {
	return h.usecase.SelectDate(ctx, date)
}

func (h CLIHandler) Clear(ctx context.Context) selectiondto.StateOutput {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Subscribe(fn func(selectiondto.StateOutput)) func() {
	return h.usecase.Subscribe(fn)
}
