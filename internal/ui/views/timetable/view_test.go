package timetable_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"timetable/internal/modules/schedule/dto"
	"timetable/internal/ui/views/timetable"
)

func sampleGrid() dto.GridOutput {
	return dto.GridOutput{
		Date:      "2025-03-06",
		TimeSlots: []string{"09:00", "09:05", "09:10", "09:15", "09:20", "09:25"},
		Venues:    []dto.VenueOutput{{ID: "A", Name: "A会場"}, {ID: "B", Name: "B会場"}},
		Cells: []dto.CellOutput{
			{VenueID: "A", Row: 0, Span: 4, Session: dto.SessionOutput{ID: "s1", Title: "Opening", SessionType: "ICSS", StartTime: "09:00", EndTime: "09:20"}},
			{VenueID: "B", Row: 1, Span: 2, Session: dto.SessionOutput{ID: "s2", Title: "Fuzzing", SessionType: "SPT", StartTime: "09:05", EndTime: "09:15"}},
			{VenueID: "A", Row: 4, Span: 2, Session: dto.SessionOutput{ID: "s3", Title: "Closing", SessionType: "ICSS", StartTime: "09:20", EndTime: "09:30"}},
		},
	}
}

func press(m timetable.Model, keys ...string) timetable.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestCursorWalksCellsInRowOrder(t *testing.T) {
	t.Parallel()
	m := timetable.New()
	m.SetSize(80, 20)
	m.SetGrid(sampleGrid())

	cur, ok := m.Current()
	if !ok || cur.ID != "s1" {
		t.Fatalf("expected s1 under cursor, got %+v", cur)
	}
	m = press(m, "down", "down")
	if cur, _ := m.Current(); cur.ID != "s3" {
		t.Fatalf("expected s3 after two moves, got %s", cur.ID)
	}
	m = press(m, "down")
	if cur, _ := m.Current(); cur.ID != "s3" {
		t.Fatalf("expected cursor to stop at last cell, got %s", cur.ID)
	}
}

func TestCursorJumpsAcrossVenues(t *testing.T) {
	t.Parallel()
	m := timetable.New()
	m.SetSize(80, 20)
	m.SetGrid(sampleGrid())

	m = press(m, "l")
	if cur, _ := m.Current(); cur.ID != "s2" {
		t.Fatalf("expected s2 in venue B, got %s", cur.ID)
	}
	m = press(m, "l")
	if cur, _ := m.Current(); cur.ID != "s2" {
		t.Fatalf("expected cursor to stay in last venue, got %s", cur.ID)
	}
	m = press(m, "h")
	if cur, _ := m.Current(); cur.ID != "s1" {
		t.Fatalf("expected nearest session s1 back in venue A, got %s", cur.ID)
	}
}

func TestViewShowsVenuesSlotsAndCheckMarks(t *testing.T) {
	t.Parallel()
	m := timetable.New()
	m.SetSize(80, 20)
	m.SetGrid(sampleGrid())
	m.SetChecked([]string{"s2"})

	out := m.View()
	for _, want := range []string{"A会場", "B会場", "09:00", "09:25", "Opening", "✓ Fuzzing", "SPT"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "✓ Opening") {
		t.Fatalf("expected unchecked session without mark")
	}
}

func TestEmptyGridHasNoCurrentSession(t *testing.T) {
	t.Parallel()
	m := timetable.New()
	m.SetSize(80, 20)
	m.SetGrid(dto.GridOutput{TimeSlots: []string{"09:00"}})
	m = press(m, "down", "l")
	if _, ok := m.Current(); ok {
		t.Fatalf("expected no session on empty grid")
	}
}
