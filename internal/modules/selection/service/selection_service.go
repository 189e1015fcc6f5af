package service

import (
	"context"

	"go.uber.org/zap"

	"timetable/internal/modules/selection/domain"
	selectionout "timetable/internal/modules/selection/port/out"
)

// SelectionStore owns the single in-memory selection and mirrors it to the
// StateStore after every mutation. Persistence failures are logged and
// swallowed; the in-memory state stays authoritative for the process.
//
// The store is not safe for concurrent use. The UI mutates it from its event
// loop only.
type SelectionStore struct {
	store  selectionout.StateStore
	days   selectionout.DayCatalog
	logger *zap.Logger

	state   domain.State
	subs    map[int]func(domain.State)
	nextSub int
}

func NewSelectionStore(store selectionout.StateStore, days selectionout.DayCatalog, logger *zap.Logger) *SelectionStore {
	return &SelectionStore{
		store:  store,
		days:   days,
		logger: logger,
		state:  domain.NewState(days.FirstDate()),
		subs:   map[int]func(domain.State){},
	}
}

// Load restores persisted state over the defaults. A stored date that is not
// a conference day falls back to the first day.
func (s *SelectionStore) Load(ctx context.Context) domain.State {
	defaults := domain.NewState(s.days.FirstDate())
	stored, found, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("restore selection", zap.Error(err))
	}
	if !found {
		s.logger.Debug("no stored selection")
	}
	next := defaults
	if stored.SelectedDate != "" {
		if s.days.HasDay(stored.SelectedDate) {
			next.SelectedDate = stored.SelectedDate
		} else {
			s.logger.Info("stored date is not a conference day",
				zap.String("stored", stored.SelectedDate),
				zap.String("fallback", defaults.SelectedDate))
		}
	}
	if stored.Checked != nil {
		next.Checked = stored.Checked
	}
	s.state = next.Clone()
	s.notify()
	return s.state.Clone()
}

func (s *SelectionStore) State() domain.State {
	return s.state.Clone()
}

// Toggle always succeeds, including for ids unknown to the dataset.
func (s *SelectionStore) Toggle(ctx context.Context, sessionID string) domain.State {
	s.state.Toggle(sessionID)
	return s.commit(ctx)
}

// SelectDate does not check date against the conference days.
func (s *SelectionStore) SelectDate(ctx context.Context, date string) domain.State {
	s.state.SelectedDate = date
	return s.commit(ctx)
}

func (s *SelectionStore) Clear(ctx context.Context) domain.State {
	s.state.Checked = map[string]bool{}
	return s.commit(ctx)
}

func (s *SelectionStore) Save(ctx context.Context) {
	if err := s.store.Save(ctx, s.state.Clone()); err != nil {
		s.logger.Warn("persist selection", zap.Error(err))
	}
}

func (s *SelectionStore) Subscribe(fn func(domain.State)) func() {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *SelectionStore) commit(ctx context.Context) domain.State {
	s.Save(ctx)
	s.notify()
	return s.state.Clone()
}

func (s *SelectionStore) notify() {
	for _, fn := range s.subs {
		fn(s.state.Clone())
	}
}
