package in

import (
	"context"

	"timetable/internal/modules/selection/dto"
)

type Usecase interface {
	Load(ctx context.Context) dto.StateOutput
	State(ctx context.Context) dto.StateOutput
	Toggle(ctx context.Context, sessionID string) dto.StateOutput
	SelectDate(ctx context.Context, date string) dto.StateOutput
	Clear(ctx context.Context) dto.StateOutput
	// Subscribe registers fn for every change and returns its cancel func.
	Subscribe(fn func(dto.StateOutput)) func()
}
