package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"timetable/internal/modules/export/domain"
	exportout "timetable/internal/modules/export/port/out"
	"timetable/internal/platform/clock"
	"timetable/internal/platform/markdown"
)

// NoteBlock delimits the part of a note the export owns.
var NoteBlock = markdown.Block{
	Start: "<!-- timetable:selection:start -->",
	End:   "<!-- timetable:selection:end -->",
}

type ExportService struct {
	datasets  exportout.DatasetProvider
	clipboard exportout.Clipboard
	notes     exportout.NoteStore
	clock     clock.Clock
	labels    domain.Labels
	logger    *zap.Logger
}

func NewExportService(
	datasets exportout.DatasetProvider,
	clipboard exportout.Clipboard,
	notes exportout.NoteStore,
	clk clock.Clock,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		datasets:  datasets,
		clipboard: clipboard,
		notes:     notes,
		clock:     clk,
		labels:    domain.DefaultLabels,
		logger:    logger,
	}
}

func (s *ExportService) Format(checked []string) (domain.Selection, error) {
	return domain.FormatSelection(checked, s.datasets.Dataset(), s.labels)
}

// Copy formats checked and writes it to the clipboard. An empty selection
// returns before the clipboard is touched.
func (s *ExportService) Copy(ctx context.Context, checked []string) (domain.Selection, error) {
	sel, err := s.Format(checked)
	if err != nil {
		return domain.Selection{}, err
	}
	if err := s.clipboard.Copy(ctx, sel.Text); err != nil {
		s.logger.Error("copy selection", zap.Int("sessions", sel.Count()), zap.Error(err))
		return domain.Selection{}, fmt.Errorf("copy selection: %w", err)
	}
	s.logger.Info("selection copied", zap.Int("sessions", sel.Count()))
	return sel, nil
}

// WriteNote merges the export into the note at path. Frontmatter keys and
// text outside the managed block are kept.
func (s *ExportService) WriteNote(ctx context.Context, path string, checked []string) (domain.Selection, error) {
	sel, err := s.Format(checked)
	if err != nil {
		return domain.Selection{}, err
	}
	existing, _, err := s.notes.Read(ctx, path)
	if err != nil {
		return domain.Selection{}, err
	}
	doc, err := markdown.Parse(existing)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("parse note %s: %w", path, err)
	}
	doc.Merge(map[string]any{
		"exported_at":    s.clock.Now().Format("2006-01-02T15:04:05Z07:00"),
		"selected_count": sel.Count(),
		"dates":          sel.Dates(),
	})
	doc.Body = NoteBlock.Replace(doc.Body, sel.Text)
	rendered, err := doc.Render()
	if err != nil {
		return domain.Selection{}, err
	}
	if err := s.notes.Write(ctx, path, rendered); err != nil {
		return domain.Selection{}, err
	}
	s.logger.Info("selection written", zap.String("path", path), zap.Int("sessions", sel.Count()))
	return sel, nil
}
