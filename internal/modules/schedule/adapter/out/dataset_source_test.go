package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	scheduleout "timetable/internal/modules/schedule/adapter/out"
	apperrors "timetable/internal/platform/errors"
)

func TestEmbeddedDatasetLoads(t *testing.T) {
	t.Parallel()
	ds, err := scheduleout.NewEmbeddedDatasetSource().Load(context.Background())
	if err != nil {
		t.Fatalf("load embedded dataset: %v", err)
	}
	if len(ds.Days()) == 0 || len(ds.Sessions()) == 0 || len(ds.Venues()) == 0 {
		t.Fatalf("embedded dataset must not be empty")
	}
	for _, s := range ds.Sessions() {
		if _, ok := ds.VenueIndex().Resolve(s.Venue); !ok {
			t.Fatalf("session %s references unknown venue %s", s.ID, s.Venue)
		}
	}
}

func TestFileDatasetSourceReadsJSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sessions.json")
	payload := `{
  "venues": [{"id": "A", "name": "A会場"}],
  "conferenceDays": [{"date": "2025-03-06", "displayName": "3月6日（木）"}],
  "sessions": [{"id": "s1", "title": "T", "presenter": "P", "affiliation": "", "date": "2025-03-06",
    "startTime": "09:00", "endTime": "09:30", "venue": "A会場", "sessionType": "ICSS", "url": "https://example.org"}]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	ds, err := scheduleout.NewFileDatasetSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load json dataset: %v", err)
	}
	s, ok := ds.Session("s1")
	if !ok || s.URL != "https://example.org" || s.StartTime != "09:00" {
		t.Fatalf("unexpected session %+v", s)
	}
}

func TestFileDatasetSourceRejectsBadTimes(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sessions.yaml")
	payload := "venues: []\nconferenceDays: []\nsessions:\n  - id: s1\n    date: \"2025-03-06\"\n    startTime: \"9h\"\n    endTime: \"10:00\"\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	if _, err := scheduleout.NewFileDatasetSource(path).Load(context.Background()); err == nil {
		t.Fatalf("expected malformed time to fail")
	}
	if _, err := scheduleout.NewFileDatasetSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background()); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestFileDatasetSourceRejectsEmptyFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	_, err := scheduleout.NewFileDatasetSource(path).Load(context.Background())
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty dataset, got %v", err)
	}
	if err.Error() != "dataset is empty: invalid input" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
