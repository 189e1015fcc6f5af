package timetable

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	scheduledomain "timetable/internal/modules/schedule/domain"
	scheduledto "timetable/internal/modules/schedule/dto"
	"timetable/internal/ui/theme"
)

const (
	gutterWidth    = 7
	minColumnWidth = 18
	maxColumnWidth = 36
)

// Model renders one day's grid inside a scrolling viewport and tracks the
// session under the cursor.
type Model struct {
	grid    scheduledto.GridOutput
	checked map[string]bool
	cursor  int

	// occupancy[venue][row] is the index into grid.Cells covering that row, or -1.
	occupancy [][]int
	venueCol  map[string]int

	vp     viewport.Model
	width  int
	height int
}

func New() Model {
	return Model{vp: viewport.New(0, 0), checked: map[string]bool{}}
}

// SetGrid replaces the grid and moves the cursor to the first session.
func (m *Model) SetGrid(grid scheduledto.GridOutput) {
	m.grid = grid
	m.cursor = 0
	m.venueCol = make(map[string]int, len(grid.Venues))
	for i, v := range grid.Venues {
		m.venueCol[v.ID] = i
	}
	m.occupancy = make([][]int, len(grid.Venues))
	for col := range m.occupancy {
		rows := make([]int, len(grid.TimeSlots))
		for r := range rows {
			rows[r] = -1
		}
		m.occupancy[col] = rows
	}
	for i, c := range grid.Cells {
		col, ok := m.venueCol[c.VenueID]
		if !ok {
			continue
		}
		for r := c.Row; r < c.Row+c.Span && r < len(grid.TimeSlots); r++ {
			if m.occupancy[col][r] < 0 {
				m.occupancy[col][r] = i
			}
		}
	}
	m.vp.GotoTop()
	m.refresh()
}

func (m *Model) SetChecked(ids []string) {
	m.checked = make(map[string]bool, len(ids))
	for _, id := range ids {
		m.checked[id] = true
	}
	m.refresh()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = max(height-1, 1)
	m.refresh()
}

// Current returns the session under the cursor.
func (m Model) Current() (scheduledto.SessionOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.grid.Cells) {
		return scheduledto.SessionOutput{}, false
	}
	return m.grid.Cells[m.cursor].Session, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "down", "j":
		m.move(1)
	case "up", "k":
		m.move(-1)
	case "l", "tab":
		m.moveColumn(1)
	case "h", "shift+tab":
		m.moveColumn(-1)
	case "pgdown", "pgup", "ctrl+d", "ctrl+u":
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	return m.header() + "\n" + m.vp.View()
}

func (m *Model) move(delta int) {
	if len(m.grid.Cells) == 0 {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.grid.Cells)-1)
	m.refresh()
	m.follow()
}

// moveColumn jumps to the session in the next venue column whose start row
// is closest to the current one.
func (m *Model) moveColumn(delta int) {
	if len(m.grid.Cells) == 0 {
		return
	}
	cur := m.grid.Cells[m.cursor]
	col := m.venueCol[cur.VenueID]
	for next := col + delta; next >= 0 && next < len(m.grid.Venues); next += delta {
		target := m.grid.Venues[next].ID
		best, bestDist := -1, 0
		for i, c := range m.grid.Cells {
			if c.VenueID != target {
				continue
			}
			d := c.Row - cur.Row
			if d < 0 {
				d = -d
			}
			if best < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			m.cursor = best
			m.refresh()
			m.follow()
			return
		}
	}
}

func (m *Model) follow() {
	row := m.grid.Cells[m.cursor].Row
	switch {
	case row < m.vp.YOffset:
		m.vp.SetYOffset(row)
	case row >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(row - m.vp.Height + 1)
	}
}

func (m *Model) refresh() {
	m.vp.SetContent(m.body())
}

func (m Model) columnWidth() int {
	n := len(m.grid.Venues)
	if n == 0 {
		return minColumnWidth
	}
	return clamp((m.width-gutterWidth)/n, minColumnWidth, maxColumnWidth)
}

func (m Model) header() string {
	w := m.columnWidth()
	var sb strings.Builder
	sb.WriteString(theme.Header.Render(fit("時間", gutterWidth)))
	for _, v := range m.grid.Venues {
		sb.WriteString(theme.Header.Render(fit(" "+v.Name, w)))
	}
	return sb.String()
}

func (m Model) body() string {
	w := m.columnWidth()
	lines := make([]string, 0, len(m.grid.TimeSlots))
	for r, slot := range m.grid.TimeSlots {
		var sb strings.Builder
		gutter := theme.Gutter
		if scheduledomain.IsHourBoundary(slot) || scheduledomain.IsHalfHour(slot) {
			gutter = theme.GutterHr
		}
		sb.WriteString(gutter.Render(fit(slot, gutterWidth)))
		for col := range m.grid.Venues {
			idx := m.occupancy[col][r]
			if idx < 0 {
				sb.WriteString(fit("", w))
				continue
			}
			sb.WriteString(m.cardLine(idx, r, w))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// cardLine renders row r of the card at grid.Cells[idx].
func (m Model) cardLine(idx, r, w int) string {
	cell := m.grid.Cells[idx]
	s := cell.Session
	style := theme.Card
	switch {
	case idx == m.cursor:
		style = theme.CardCursor
	case m.checked[s.ID]:
		style = theme.CardChecked
	}

	var text string
	switch r - cell.Row {
	case 0:
		mark := "  "
		if m.checked[s.ID] {
			mark = "✓ "
		}
		text = mark + s.Title
	case 1:
		badge := theme.BadgeOther
		if strings.Contains(s.SessionType, "SPT") {
			badge = theme.BadgeSPT
		}
		if idx == m.cursor {
			badge = style
		}
		typ := fit("  "+s.SessionType, runewidth.StringWidth(s.SessionType)+3)
		return badge.Inherit(style).Render(typ) + style.Render(fit(s.StartTime+"-"+s.EndTime, w-runewidth.StringWidth(typ)))
	case 2:
		text = "  " + presenterLine(s)
	case 3:
		if s.URL != "" {
			text = "  ↗ o:詳細"
		}
	}
	return style.Render(fit(text, w))
}

func presenterLine(s scheduledto.SessionOutput) string {
	switch {
	case s.Presenter != "" && s.Affiliation != "":
		return s.Presenter + "・" + s.Affiliation
	case s.Presenter != "":
		return s.Presenter
	default:
		return s.Affiliation
	}
}

// fit truncates or pads s to exactly w terminal cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
