package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	exportout "timetable/internal/modules/export/adapter/out"
	"timetable/internal/modules/export/dto"
	exportservice "timetable/internal/modules/export/service"
	"timetable/internal/modules/export/usecase"
	scheduledomain "timetable/internal/modules/schedule/domain"
	scheduleservice "timetable/internal/modules/schedule/service"
	selectionout "timetable/internal/modules/selection/adapter/out"
	selectionservice "timetable/internal/modules/selection/service"
	selectionusecase "timetable/internal/modules/selection/usecase"
	apperrors "timetable/internal/platform/errors"
	"timetable/internal/platform/kv"
)

type recordingClipboard struct{ texts []string }

func (r *recordingClipboard) Copy(_ context.Context, text string) error {
	r.texts = append(r.texts, text)
	return nil
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

func TestCopyReadsCurrentSelection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ds, err := scheduledomain.NewDataset(scheduledomain.Document{
		Venues:         []scheduledomain.Venue{{ID: "A", Name: "A会場"}},
		ConferenceDays: []scheduledomain.ConferenceDay{{Date: "2025-03-06", DisplayName: "3月6日（木）"}},
		Sessions: []scheduledomain.Session{
			{ID: "s1", Title: "One", Date: "2025-03-06", StartTime: "09:00", EndTime: "09:30", Venue: "A", SessionType: "ICSS"},
			{ID: "s2", Title: "Two", Date: "2025-03-06", StartTime: "09:30", EndTime: "10:00", Venue: "A", SessionType: "SPT"},
		},
	})
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}
	schedule := scheduleservice.NewScheduleService(ds, zap.NewNop())
	selection := selectionusecase.NewInteractor(selectionservice.NewSelectionStore(
		selectionout.NewKVStateStore(kv.NewMemoryStore()), ds, zap.NewNop()))
	selection.Load(ctx)

	clip := &recordingClipboard{}
	uc := usecase.NewInteractor(
		exportservice.NewExportService(schedule, clip, exportout.NewFileNoteStore(), fixedClock{}, zap.NewNop()),
	)

	if _, err := uc.Copy(ctx, selection.State(ctx).CheckedIDs); !errors.Is(err, apperrors.ErrEmptySelection) {
		t.Fatalf("expected empty selection, got %v", err)
	}
	selection.Toggle(ctx, "s2")
	selection.Toggle(ctx, "missing")
	out, err := uc.Copy(ctx, selection.State(ctx).CheckedIDs)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if out.Count != 1 || len(clip.texts) != 1 {
		t.Fatalf("expected one session copied once, got count=%d writes=%d", out.Count, len(clip.texts))
	}
	preview, err := uc.Preview(ctx, selection.State(ctx).CheckedIDs)
	if err != nil || preview.Text != out.Text {
		t.Fatalf("preview must match copied text, err=%v", err)
	}
	if _, err := uc.WriteFile(ctx, dto.WriteFileInput{Path: " ", CheckedIDs: []string{"s2"}}); err == nil {
		t.Fatalf("expected blank path to fail")
	}
}

// Copy works on the snapshot it is given, so it can run on another goroutine
// while the store keeps mutating.
func TestCopySnapshotWhileSelectionMutates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ds, err := scheduledomain.NewDataset(scheduledomain.Document{
		Venues:         []scheduledomain.Venue{{ID: "A", Name: "A会場"}},
		ConferenceDays: []scheduledomain.ConferenceDay{{Date: "2025-03-06", DisplayName: "3月6日（木）"}},
		Sessions: []scheduledomain.Session{
			{ID: "s1", Title: "One", Date: "2025-03-06", StartTime: "09:00", EndTime: "09:30", Venue: "A", SessionType: "ICSS"},
		},
	})
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}
	selection := selectionusecase.NewInteractor(selectionservice.NewSelectionStore(
		selectionout.NewKVStateStore(kv.NewMemoryStore()), ds, zap.NewNop()))
	selection.Load(ctx)
	selection.Toggle(ctx, "s1")

	clip := &recordingClipboard{}
	uc := usecase.NewInteractor(exportservice.NewExportService(
		scheduleservice.NewScheduleService(ds, zap.NewNop()), clip, exportout.NewFileNoteStore(), fixedClock{}, zap.NewNop()))

	snapshot := selection.State(ctx).CheckedIDs
	var wg sync.WaitGroup
	wg.Add(1)
	var copyErr error
	go func() {
		defer wg.Done()
		for range 200 {
			if _, err := uc.Copy(ctx, snapshot); err != nil {
				copyErr = err
				return
			}
		}
	}()
	for range 200 {
		selection.Toggle(ctx, "x")
	}
	wg.Wait()

	if copyErr != nil {
		t.Fatalf("copy: %v", copyErr)
	}
	if len(clip.texts) != 200 {
		t.Fatalf("expected 200 writes, got %d", len(clip.texts))
	}
}
