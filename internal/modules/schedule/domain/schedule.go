package domain

import (
	"fmt"

	"timetable/internal/platform/timeofday"
)

type Venue struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type ConferenceDay struct {
	Date        string `yaml:"date" json:"date"`
	DisplayName string `yaml:"displayName" json:"displayName"`
}

type Session struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Presenter   string `yaml:"presenter" json:"presenter"`
	Affiliation string `yaml:"affiliation" json:"affiliation"`
	Date        string `yaml:"date" json:"date"`
	StartTime   string `yaml:"startTime" json:"startTime"`
	EndTime     string `yaml:"endTime" json:"endTime"`
	// Venue holds either a venue id or a venue display name.
	Venue       string `yaml:"venue" json:"venue"`
	SessionType string `yaml:"sessionType" json:"sessionType"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
}

func (s Session) HasURL() bool { return s.URL != "" }

// Minutes returns the start and end offsets. Sessions inside a Dataset are
// validated at construction, so errors only surface for hand-built values.
func (s Session) Minutes() (int, int, error) {
	start, err := timeofday.TimeToMinutes(s.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := timeofday.TimeToMinutes(s.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Document is the on-disk shape of a dataset.
type Document struct {
	Venues         []Venue         `yaml:"venues" json:"venues"`
	ConferenceDays []ConferenceDay `yaml:"conferenceDays" json:"conferenceDays"`
	Sessions       []Session       `yaml:"sessions" json:"sessions"`
}

// Dataset is the immutable schedule loaded once at startup.
type Dataset struct {
	venues   []Venue
	days     []ConferenceDay
	sessions []Session
	byID     map[string]int
	venueIdx VenueIndex
	dayNames map[string]string
}

func NewDataset(doc Document) (*Dataset, error) {
	d := &Dataset{
		venues:   append([]Venue(nil), doc.Venues...),
		days:     append([]ConferenceDay(nil), doc.ConferenceDays...),
		sessions: append([]Session(nil), doc.Sessions...),
		byID:     make(map[string]int, len(doc.Sessions)),
		venueIdx: NewVenueIndex(doc.Venues),
		dayNames: make(map[string]string, len(doc.ConferenceDays)),
	}
	for _, day := range d.days {
		d.dayNames[day.Date] = day.DisplayName
	}
	for i, s := range d.sessions {
		start, end, err := s.Minutes()
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", s.ID, err)
		}
		// Grid rows are keyed by zero-padded times, so "9:00" is stored as "09:00".
		d.sessions[i].StartTime = timeofday.MustMinutesToTime(start)
		d.sessions[i].EndTime = timeofday.MustMinutesToTime(end)
		if _, dup := d.byID[s.ID]; !dup {
			d.byID[s.ID] = i
		}
	}
	return d, nil
}

func (d *Dataset) Venues() []Venue { return append([]Venue(nil), d.venues...) }
func (d *Dataset) Days() []ConferenceDay { return append([]ConferenceDay(nil), d.days...) }
func (d *Dataset) Sessions() []Session { return append([]Session(nil), d.sessions...) }
func (d *Dataset) VenueIndex() VenueIndex { return d.venueIdx }

func (d *Dataset) Session(id string) (Session, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Session{}, false
	}
	return d.sessions[i], true
}

// SessionsOn returns the sessions held on date in dataset order.
func (d *Dataset) SessionsOn(date string) []Session {
	var out []Session
	for _, s := range d.sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

func (d *Dataset) FirstDate() string {
	if len(d.days) == 0 {
		return ""
	}
	return d.days[0].Date
}

func (d *Dataset) HasDay(date string) bool {
	_, ok := d.dayNames[date]
	return ok
}

// DayDisplayName falls back to the raw date for unregistered days.
func (d *Dataset) DayDisplayName(date string) string {
	if name, ok := d.dayNames[date]; ok && name != "" {
		return name
	}
	return date
}

// VenueName resolves a session venue reference to its display name, falling
// back to the reference itself.
func (d *Dataset) VenueName(ref string) string {
	if v, ok := d.venueIdx.Resolve(ref); ok {
		return v.Name
	}
	return ref
}
