package in

import (
	"context"

	"timetable/internal/modules/schedule/dto"
)

type Usecase interface {
	Days(ctx context.Context) ([]dto.DayOutput, error)
	Grid(ctx context.Context, date string) (dto.GridOutput, error)
	ListSessions(ctx context.Context, date string) ([]dto.SessionOutput, error)
	GetSession(ctx context.Context, id string) (dto.SessionOutput, error)
	OpenURL(ctx context.Context, id string) (dto.OpenURLOutput, error)
}
