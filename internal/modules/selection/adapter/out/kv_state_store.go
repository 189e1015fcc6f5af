package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"timetable/internal/modules/selection/domain"
	selectionout "timetable/internal/modules/selection/port/out"
	"timetable/internal/platform/kv"
)

// Slot names on the key-value surface.
const (
	SelectedDateKey    = "selectedDate"
	CheckedSessionsKey = "checkedSessions"
)

// KVStateStore stores the selected date as a raw string and the checked set
// as a JSON object of session id to bool.
type KVStateStore struct {
	kv kv.Store
}

func NewKVStateStore(store kv.Store) selectionout.StateStore {
	return &KVStateStore{kv: store}
}

func (s *KVStateStore) Load(ctx context.Context) (domain.State, bool, error) {
	state := domain.State{}
	var errs []error

	date, dateFound, err := s.kv.Get(ctx, SelectedDateKey)
	if err != nil {
		errs = append(errs, fmt.Errorf("read %s: %w", SelectedDateKey, err))
	} else if dateFound {
		state.SelectedDate = date
	}

	raw, checkedFound, err := s.kv.Get(ctx, CheckedSessionsKey)
	if err != nil {
		errs = append(errs, fmt.Errorf("read %s: %w", CheckedSessionsKey, err))
	} else if checkedFound {
		decoded := map[string]bool{}
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			errs = append(errs, fmt.Errorf("decode %s: %w", CheckedSessionsKey, err))
		} else {
			state.Checked = map[string]bool{}
			for id, ok := range decoded {
				if ok {
					state.Checked[id] = true
				}
			}
		}
	}

	return state, dateFound || checkedFound, errors.Join(errs...)
}

func (s *KVStateStore) Save(ctx context.Context, state domain.State) error {
	checked := state.Checked
	if checked == nil {
		checked = map[string]bool{}
	}
	payload, err := json.Marshal(checked)
	if err != nil {
		return fmt.Errorf("encode %s: %w", CheckedSessionsKey, err)
	}
	if err := s.kv.Set(ctx, SelectedDateKey, state.SelectedDate); err != nil {
		return fmt.Errorf("write %s: %w", SelectedDateKey, err)
	}
	if err := s.kv.Set(ctx, CheckedSessionsKey, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", CheckedSessionsKey, err)
	}
	return nil
}
