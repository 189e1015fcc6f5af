package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"timetable/internal/modules/schedule/domain"
	scheduleout "timetable/internal/modules/schedule/port/out"
)

// ScheduleService owns the dataset for the lifetime of the process.
type ScheduleService struct {
	dataset *domain.Dataset
	logger  *zap.Logger
}

// Load reads the dataset once from source.
func Load(ctx context.Context, source scheduleout.DatasetSource, logger *zap.Logger) (*ScheduleService, error) {
	dataset, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Debug("dataset loaded",
		zap.Int("venues", len(dataset.Venues())),
		zap.Int("days", len(dataset.Days())),
		zap.Int("sessions", len(dataset.Sessions())),
	)
	return &ScheduleService{dataset: dataset, logger: logger}, nil
}

func NewScheduleService(dataset *domain.Dataset, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{dataset: dataset, logger: logger}
}

func (s *ScheduleService) Dataset() *domain.Dataset {
	return s.dataset
}

func (s *ScheduleService) BuildGrid(date string) domain.Grid {
	g := domain.BuildGrid(date, s.dataset.Sessions(), s.dataset.Venues())
	s.logger.Debug("grid built", zap.String("date", date), zap.Int("rows", len(g.TimeSlots)))
	return g
}
