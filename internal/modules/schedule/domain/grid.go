package domain

import (
	"strings"

	"timetable/internal/platform/timeofday"
)

// Default row range used when a day has no sessions.
const (
	DefaultStartMinutes = 9 * 60
	DefaultEndMinutes   = 17 * 60
)

// Placement is a session anchored at its start row.
type Placement struct {
	Session Session
	Row     int
	Span    int
}

// Grid is the time×venue layout of one day.
type Grid struct {
	Date      string
	TimeSlots []string
	Venues    []Venue
	// cells is keyed by venue id, then by start time.
	cells map[string]map[string]Placement
	rows  map[string]int
}

// BuildGrid lays out the sessions held on day. Sessions only occupy the row
// of their start time. When two sessions start at the same row in one venue
// the first in dataset order is kept and the rest are not placed.
func BuildGrid(day string, sessions []Session, venues []Venue) Grid {
	idx := NewVenueIndex(venues)

	var daySessions []Session
	for _, s := range sessions {
		if s.Date == day {
			daySessions = append(daySessions, s)
		}
	}

	g := Grid{
		Date:      day,
		TimeSlots: timeSlots(daySessions),
		Venues:    append([]Venue(nil), venues...),
		cells:     make(map[string]map[string]Placement, len(venues)),
	}
	g.rows = make(map[string]int, len(g.TimeSlots))
	for i, t := range g.TimeSlots {
		g.rows[t] = i
	}

	for _, s := range daySessions {
		venueID := idx.CanonicalID(s.Venue)
		if venueID == "" {
			continue
		}
		start := canonical(s.StartTime)
		row, ok := g.rows[start]
		if !ok {
			continue
		}
		col := g.cells[venueID]
		if col == nil {
			col = map[string]Placement{}
			g.cells[venueID] = col
		}
		if _, taken := col[start]; taken {
			continue
		}
		col[start] = Placement{Session: s, Row: row, Span: g.span(s)}
	}
	return g
}

// Cell returns the session starting at time in venue, if any.
func (g Grid) Cell(time, venueID string) (Placement, bool) {
	p, ok := g.cells[venueID][time]
	return p, ok
}

// RowIndex returns the position of time in TimeSlots or -1.
func (g Grid) RowIndex(time string) int {
	if i, ok := g.rows[time]; ok {
		return i
	}
	return -1
}

// Placements returns the sessions placed in venueID ordered by row.
func (g Grid) Placements(venueID string) []Placement {
	var out []Placement
	for _, t := range g.TimeSlots {
		if p, ok := g.cells[venueID][t]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (g Grid) Empty() bool {
	return len(g.cells) == 0
}

func (g Grid) span(s Session) int {
	start, okStart := g.rows[canonical(s.StartTime)]
	end, okEnd := g.rows[canonical(s.EndTime)]
	if okStart && okEnd {
		return end - start
	}
	startMin, endMin, err := s.Minutes()
	if err != nil || endMin <= startMin {
		return 1
	}
	return (endMin - startMin + timeofday.SlotMinutes - 1) / timeofday.SlotMinutes
}

// canonical zero-pads t so it matches the TimeSlots keys. Unparsable input is
// returned unchanged and matches no row.
func canonical(t string) string {
	m, err := timeofday.TimeToMinutes(t)
	if err != nil {
		return t
	}
	return timeofday.MustMinutesToTime(m)
}

// timeSlots covers [min start, max end) in slot steps, or the inclusive
// default range when there are no sessions.
func timeSlots(sessions []Session) []string {
	if len(sessions) == 0 {
		return slotRange(DefaultStartMinutes, DefaultEndMinutes+timeofday.SlotMinutes)
	}
	minStart, maxEnd := -1, -1
	for _, s := range sessions {
		start, end, err := s.Minutes()
		if err != nil {
			continue
		}
		if minStart < 0 || start < minStart {
			minStart = start
		}
		if end > maxEnd {
			maxEnd = end
		}
	}
	if minStart < 0 {
		return slotRange(DefaultStartMinutes, DefaultEndMinutes+timeofday.SlotMinutes)
	}
	return slotRange(minStart, maxEnd)
}

func slotRange(from, to int) []string {
	var slots []string
	for m := from; m < to; m += timeofday.SlotMinutes {
		slots = append(slots, timeofday.MustMinutesToTime(m))
	}
	return slots
}

// IsHourBoundary reports whether slot falls on the hour.
func IsHourBoundary(slot string) bool { return strings.HasSuffix(slot, ":00") }

// IsHalfHour reports whether slot falls on the half hour.
func IsHalfHour(slot string) bool { return strings.HasSuffix(slot, ":30") }
