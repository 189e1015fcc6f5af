package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	scheduledomain "timetable/internal/modules/schedule/domain"
	apperrors "timetable/internal/platform/errors"
)

// AckDuration is how long a successful copy stays acknowledged in the UI.
const AckDuration = 2 * time.Second

// VenueSuffix is the word that follows a venue's ordering letter, as in "A会場".
const VenueSuffix = "会場"

var venuePrefix = regexp.MustCompile(`^([A-Za-z])` + VenueSuffix)

// Labels are the field captions of the rendered export.
type Labels struct {
	Presenter   string
	Affiliation string
	Venue       string
	URL         string
}

var DefaultLabels = Labels{Presenter: "発表者", Affiliation: "所属", Venue: "会場", URL: "URL"}

// Entry is a checked session with its venue resolved.
type Entry struct {
	Session   scheduledomain.Session
	VenueName string
	start     int
}

// Group is the entries of one conference day, in export order.
type Group struct {
	Date        string
	DisplayName string
	Entries     []Entry
}

// VenueKey returns the upper-cased ordering letter of names like "b会場" and
// the full name for anything else.
func VenueKey(name string) string {
	if m := venuePrefix.FindStringSubmatch(name); m != nil {
		return strings.ToUpper(m[1])
	}
	return name
}

// Collect returns the dataset sessions whose ids are checked, in dataset
// order. Checked ids missing from the dataset are ignored.
func Collect(checked []string, ds *scheduledomain.Dataset) []Entry {
	want := make(map[string]bool, len(checked))
	for _, id := range checked {
		want[id] = true
	}
	var entries []Entry
	for _, s := range ds.Sessions() {
		if !want[s.ID] {
			continue
		}
		start, _, _ := s.Minutes()
		entries = append(entries, Entry{Session: s, VenueName: ds.VenueName(s.Venue), start: start})
	}
	return entries
}

// Sort orders entries by date, start time, venue key, then venue name.
func Sort(entries []Entry) {
	col := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Session.Date != b.Session.Date {
			return a.Session.Date < b.Session.Date
		}
		if a.start != b.start {
			return a.start < b.start
		}
		if c := col.CompareString(VenueKey(a.VenueName), VenueKey(b.VenueName)); c != 0 {
			return c < 0
		}
		return col.CompareString(a.VenueName, b.VenueName) < 0
	})
}

// GroupByDate splits sorted entries into per-day groups ordered by date.
func GroupByDate(entries []Entry, ds *scheduledomain.Dataset) []Group {
	byDate := map[string][]Entry{}
	for _, e := range entries {
		byDate[e.Session.Date] = append(byDate[e.Session.Date], e)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	groups := make([]Group, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, Group{Date: d, DisplayName: ds.DayDisplayName(d), Entries: byDate[d]})
	}
	return groups
}

// Render writes each group as a 【day】 header followed by one block per
// session. Blocks and groups are separated by blank lines.
func Render(groups []Group, labels Labels) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		blocks := make([]string, 0, len(g.Entries))
		for _, e := range g.Entries {
			blocks = append(blocks, renderEntry(e, labels))
		}
		parts = append(parts, "【"+g.DisplayName+"】\n"+strings.Join(blocks, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func renderEntry(e Entry, labels Labels) string {
	s := e.Session
	var sb strings.Builder
	sb.WriteString(s.StartTime + "-" + s.EndTime + " [" + s.SessionType + "] " + s.Title + "\n")
	sb.WriteString(labels.Presenter + ": " + s.Presenter + "\n")
	sb.WriteString(labels.Affiliation + ": " + s.Affiliation + "\n")
	sb.WriteString(labels.Venue + ": " + e.VenueName)
	if s.HasURL() {
		sb.WriteString("\n" + labels.URL + ": " + s.URL)
	}
	sb.WriteString("\n")
	return sb.String()
}

// Selection is a formatted export.
type Selection struct {
	Text   string
	Groups []Group
}

func (s Selection) Count() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Entries)
	}
	return n
}

func (s Selection) Dates() []string {
	out := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		out = append(out, g.Date)
	}
	return out
}

// FormatSelection renders the checked sessions. It fails with
// apperrors.ErrEmptySelection when no checked id names a session.
func FormatSelection(checked []string, ds *scheduledomain.Dataset, labels Labels) (Selection, error) {
	entries := Collect(checked, ds)
	if len(entries) == 0 {
		return Selection{}, apperrors.ErrEmptySelection
	}
	Sort(entries)
	groups := GroupByDate(entries, ds)
	return Selection{Text: Render(groups, labels), Groups: groups}, nil
}
