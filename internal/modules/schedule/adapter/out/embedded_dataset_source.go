package out

import (
	"context"
	_ "embed"

	"timetable/internal/modules/schedule/domain"
	scheduleout "timetable/internal/modules/schedule/port/out"
)

//go:embed dataset.yaml
var embeddedDataset []byte

type EmbeddedDatasetSource struct{}

func NewEmbeddedDatasetSource() scheduleout.DatasetSource {
	return EmbeddedDatasetSource{}
}

func (EmbeddedDatasetSource) Load(_ context.Context) (*domain.Dataset, error) {
	return decodeDataset(embeddedDataset)
}
