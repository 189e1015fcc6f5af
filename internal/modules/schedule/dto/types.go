package dto

type DayOutput struct {
	Date        string
	DisplayName string
}

type VenueOutput struct {
	ID   string
	Name string
}

type SessionOutput struct {
	ID          string
	Title       string
	Presenter   string
	Affiliation string
	Date        string
	StartTime   string
	EndTime     string
	VenueID     string
	VenueName   string
	SessionType string
	URL         string
}

type CellOutput struct {
	VenueID string
	Row     int
	Span    int
	Session SessionOutput
}

type GridOutput struct {
	Date        string
	DisplayName string
	TimeSlots   []string
	Venues      []VenueOutput
	// Cells are ordered by row, then by venue column.
	Cells []CellOutput
}

type OpenURLOutput struct {
	SessionID string
	URL       string
}
