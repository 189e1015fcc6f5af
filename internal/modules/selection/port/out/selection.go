package out

import (
	"context"

	"timetable/internal/modules/selection/domain"
)

// StateStore persists the selection. Load reports found=false when nothing
// was ever saved. On a corrupt value Load returns the fields it could read
// together with the error.
type StateStore interface {
	Load(ctx context.Context) (state domain.State, found bool, err error)
	Save(ctx context.Context, state domain.State) error
}

// DayCatalog is the slice of the dataset the store needs for defaults.
type DayCatalog interface {
	FirstDate() string
	HasDay(date string) bool
}
