package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"timetable/internal/modules/schedule/domain"
	scheduleout "timetable/internal/modules/schedule/port/out"
	apperrors "timetable/internal/platform/errors"
)

// FileDatasetSource reads a dataset document from disk. JSON documents are
// valid YAML, so one decoder serves both.
type FileDatasetSource struct {
	path string
}

func NewFileDatasetSource(path string) scheduleout.DatasetSource {
	return &FileDatasetSource{path: path}
}

func (s *FileDatasetSource) Load(_ context.Context) (*domain.Dataset, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return decodeDataset(payload)
}

func decodeDataset(payload []byte) (*domain.Dataset, error) {
	doc := domain.Document{}
	dec := yaml.NewDecoder(bytes.NewReader(payload))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset is empty: %w", apperrors.ErrInvalidInput)
		}
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	dataset, err := domain.NewDataset(doc)
	if err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}
	return dataset, nil
}
