package out

import (
	"context"

	"timetable/internal/modules/schedule/domain"
)

type DatasetSource interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

type URLOpener interface {
	Open(ctx context.Context, url string) error
}
