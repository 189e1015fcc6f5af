package domain_test

import (
	"testing"

	"timetable/internal/modules/schedule/domain"
	"timetable/internal/platform/timeofday"
)

var venues = []domain.Venue{{ID: "A", Name: "A会場"}, {ID: "B", Name: "B会場"}}

func TestBuildGridBackToBackSessions(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{ID: "s1", Date: "2025-03-06", StartTime: "09:00", EndTime: "09:30", Venue: "A"},
		{ID: "s2", Date: "2025-03-06", StartTime: "09:30", EndTime: "10:00", Venue: "A"},
	}
	g := domain.BuildGrid("2025-03-06", sessions, venues)

	want := []string{"09:00", "09:05", "09:10", "09:15", "09:20", "09:25", "09:30", "09:35", "09:40", "09:45", "09:50", "09:55"}
	if len(g.TimeSlots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(g.TimeSlots), g.TimeSlots)
	}
	for i := range want {
		if g.TimeSlots[i] != want[i] {
			t.Fatalf("expected slot %d to be %s, got %s", i, want[i], g.TimeSlots[i])
		}
	}

	first, ok := g.Cell("09:00", "A")
	if !ok || first.Session.ID != "s1" || first.Row != 0 || first.Span != 6 {
		t.Fatalf("expected s1 at row 0 span 6, got %+v ok=%v", first, ok)
	}
	second, ok := g.Cell("09:30", "A")
	if !ok || second.Session.ID != "s2" || second.Row != 6 || second.Span != 6 {
		t.Fatalf("expected s2 at row 6 span 6, got %+v ok=%v", second, ok)
	}
	if _, ok := g.Cell("09:05", "A"); ok {
		t.Fatalf("sessions must only occupy their start row")
	}
}

func TestBuildGridDefaultRangeWhenDayIsEmpty(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{{ID: "s1", Date: "2025-03-07", StartTime: "09:00", EndTime: "09:30", Venue: "A"}}
	g := domain.BuildGrid("2025-03-06", sessions, venues)
	if len(g.TimeSlots) != 97 {
		t.Fatalf("expected 97 default slots, got %d", len(g.TimeSlots))
	}
	if g.TimeSlots[0] != "09:00" || g.TimeSlots[96] != "17:00" {
		t.Fatalf("expected 09:00..17:00, got %s..%s", g.TimeSlots[0], g.TimeSlots[96])
	}
	if !g.Empty() {
		t.Fatalf("expected no placements")
	}
}

func TestBuildGridSlotsAscendingAndUnique(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{ID: "late", Date: "d", StartTime: "13:00", EndTime: "14:20", Venue: "B"},
		{ID: "early", Date: "d", StartTime: "10:15", EndTime: "10:40", Venue: "A"},
	}
	g := domain.BuildGrid("d", sessions, venues)
	if g.TimeSlots[0] != "10:15" || g.TimeSlots[len(g.TimeSlots)-1] != "14:15" {
		t.Fatalf("unexpected bounds %s..%s", g.TimeSlots[0], g.TimeSlots[len(g.TimeSlots)-1])
	}
	prev := -1
	for _, s := range g.TimeSlots {
		m, err := timeofday.TimeToMinutes(s)
		if err != nil {
			t.Fatalf("slot %s: %v", s, err)
		}
		if m <= prev {
			t.Fatalf("slots must be strictly ascending, %s after %d", s, prev)
		}
		prev = m
	}
	again := domain.BuildGrid("d", sessions, venues)
	if len(again.TimeSlots) != len(g.TimeSlots) {
		t.Fatalf("grid must be a pure function of its input")
	}
	late, _ := g.Cell("13:00", "B")
	if late.Span != 16 {
		t.Fatalf("expected ceil fallback span 16 for session ending at the last tick, got %d", late.Span)
	}
}

func TestBuildGridMatchesVenueByIDOrName(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{ID: "by-id", Date: "d", StartTime: "09:00", EndTime: "09:30", Venue: "A"},
		{ID: "by-name", Date: "d", StartTime: "09:00", EndTime: "09:30", Venue: "B会場"},
		{ID: "unknown", Date: "d", StartTime: "09:00", EndTime: "09:30", Venue: "Z会場"},
	}
	g := domain.BuildGrid("d", sessions, venues)
	if p, ok := g.Cell("09:00", "A"); !ok || p.Session.ID != "by-id" {
		t.Fatalf("expected id match in A, got %+v", p)
	}
	if p, ok := g.Cell("09:00", "B"); !ok || p.Session.ID != "by-name" {
		t.Fatalf("expected name match in B, got %+v", p)
	}
	if len(g.Placements("Z会場")) != 0 {
		t.Fatalf("unknown venues must not be placed")
	}
}

func TestBuildGridOverlapFirstMatchWins(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{ID: "first", Date: "d", StartTime: "09:00", EndTime: "09:30", Venue: "A"},
		{ID: "second", Date: "d", StartTime: "09:00", EndTime: "10:00", Venue: "A会場"},
	}
	g := domain.BuildGrid("d", sessions, venues)
	placed := g.Placements("A")
	if len(placed) != 1 || placed[0].Session.ID != "first" {
		t.Fatalf("expected only first session placed, got %+v", placed)
	}
}

func TestSlotBoundaries(t *testing.T) {
	t.Parallel()
	if !domain.IsHourBoundary("10:00") || domain.IsHourBoundary("10:30") {
		t.Fatalf("hour boundary misdetected")
	}
	if !domain.IsHalfHour("10:30") || domain.IsHalfHour("10:35") {
		t.Fatalf("half hour misdetected")
	}
}

func TestBuildGridPlacesOneDigitHours(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{ID: "s1", Date: "d", StartTime: "9:00", EndTime: "9:30", Venue: "A"},
		{ID: "s2", Date: "d", StartTime: "9:30", EndTime: "10:00", Venue: "A"},
	}
	g := domain.BuildGrid("d", sessions, venues)
	first, ok := g.Cell("09:00", "A")
	if !ok || first.Session.ID != "s1" || first.Span != 6 {
		t.Fatalf("expected s1 at 09:00 span 6, got %+v ok=%v", first, ok)
	}
	if second, ok := g.Cell("09:30", "A"); !ok || second.Row != 6 {
		t.Fatalf("expected s2 at row 6, got %+v ok=%v", second, ok)
	}
}

func TestDatasetSessionsRenderInGrid(t *testing.T) {
	t.Parallel()
	ds, err := domain.NewDataset(domain.Document{
		Venues:   venues,
		Sessions: []domain.Session{{ID: "s1", Date: "d", StartTime: "9:00", EndTime: "9:30", Venue: "A"}},
	})
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}
	s, _ := ds.Session("s1")
	if s.StartTime != "09:00" || s.EndTime != "09:30" {
		t.Fatalf("expected zero-padded times, got %s-%s", s.StartTime, s.EndTime)
	}
	g := domain.BuildGrid("d", ds.Sessions(), ds.Venues())
	if len(g.Placements("A")) != 1 {
		t.Fatalf("expected one placement, got %d", len(g.Placements("A")))
	}
}
