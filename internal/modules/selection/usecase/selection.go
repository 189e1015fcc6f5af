package usecase

import (
	"context"

	"timetable/internal/modules/selection/domain"
	"timetable/internal/modules/selection/dto"
	selectionin "timetable/internal/modules/selection/port/in"
	"timetable/internal/modules/selection/service"
)

type Interactor struct {
	store *service.SelectionStore
}

func NewInteractor(store *service.SelectionStore) selectionin.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) Load(ctx context.Context) dto.StateOutput {
	return toOutput(i.store.Load(ctx))
}

func (i *Interactor) State(_ context.Context) dto.StateOutput {
	return toOutput(i.store.State())
}

func (i *Interactor) Toggle(ctx context.Context, sessionID string) dto.StateOutput {
	return toOutput(i.store.Toggle(ctx, sessionID))
}

func (i *Interactor) SelectDate(ctx context.Context, date string) dto.StateOutput {
	return toOutput(i.store.SelectDate(ctx, date))
}

func (i *Interactor) Clear(ctx context.Context) dto.StateOutput {
	return toOutput(i.store.Clear(ctx))
}

func (i *Interactor) Subscribe(fn func(dto.StateOutput)) func() {
	return i.store.Subscribe(func(s domain.State) { fn(toOutput(s)) })
}

func toOutput(s domain.State) dto.StateOutput {
	return dto.StateOutput{SelectedDate: s.SelectedDate, CheckedIDs: s.IDs()}
}
