package in

import (
	"context"

	scheduledto "timetable/internal/modules/schedule/dto"
	schedulein "timetable/internal/modules/schedule/port/in"
)

type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Days(ctx context.Context) ([]scheduledto.DayOutput, error) {
	return h.usecase.Days(ctx)
}

func (h CLIHandler) Grid(ctx context.Context, date string) (scheduledto.GridOutput, error) {
	return h.usecase.Grid(ctx, date)
}

func (h CLIHandler) ListSessions(ctx context.Context, date string) ([]scheduledto.SessionOutput, error) {
	return h.usecase.ListSessions(ctx, date)
}

func (h CLIHandler) GetSession(ctx context.Context, id string) (scheduledto.SessionOutput, error) {
	return h.usecase.GetSession(ctx, id)
}

func (h CLIHandler) OpenURL(ctx context.Context, id string) (scheduledto.OpenURLOutput, error) {
	return h.usecase.OpenURL(ctx, id)
}
