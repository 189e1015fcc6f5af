package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	exportdomain "timetable/internal/modules/export/domain"
	exportdto "timetable/internal/modules/export/dto"
	scheduledto "timetable/internal/modules/schedule/dto"
	selectiondto "timetable/internal/modules/selection/dto"
	apperrors "timetable/internal/platform/errors"
	"timetable/internal/ui/components"
	"timetable/internal/ui/theme"
	timetableview "timetable/internal/ui/views/timetable"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type schedulePort interface {
	Days(ctx context.Context) ([]scheduledto.DayOutput, error)
	Grid(ctx context.Context, date string) (scheduledto.GridOutput, error)
	OpenURL(ctx context.Context, id string) (scheduledto.OpenURLOutput, error)
}

type selectionPort interface {
	State(ctx context.Context) selectiondto.StateOutput
	Toggle(ctx context.Context, sessionID string) selectiondto.StateOutput
	SelectDate(ctx context.Context, date string) selectiondto.StateOutput
	Clear(ctx context.Context) selectiondto.StateOutput
	Subscribe(fn func(selectiondto.StateOutput)) func()
}

type exportPort interface {
	Copy(ctx context.Context, checked []string) (exportdto.ExportOutput, error)
	WriteFile(ctx context.Context, path string, checked []string) (exportdto.WriteFileOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

// stateChangedMsg signals that the selection changed. The model re-reads the
// store instead of trusting a queued snapshot.
type stateChangedMsg struct{}

type exportDoneMsg struct {
	out exportdto.ExportOutput
	err error
}

type writeDoneMsg struct {
	out exportdto.WriteFileOutput
	err error
}

type openDoneMsg struct {
	out scheduledto.OpenURLOutput
	err error
}

// ackExpiredMsg clears the copy acknowledgement if no newer copy replaced it.
type ackExpiredMsg struct{ seq int }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Move    key.Binding
	Venue   key.Binding
	Toggle  key.Binding
	Open    key.Binding
	Export  key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		PrevDay: key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→/1-9", "day")),
		NextDay: key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→/1-9", "day")),
		Move:    key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "session")),
		Venue:   key.NewBinding(key.WithKeys("h", "l", "tab", "shift+tab"), key.WithHelp("h/l", "venue")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open url")),
		Export:  key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c/y", "copy selection")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.Move, k.Venue},
		{k.Toggle, k.Open, k.Export},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns day tabs, the copy
// acknowledgement, help, and the command palette. Selection changes arrive
// through the selection subscription.
type Model struct {
	schedule  schedulePort
	selection selectionPort
	export    exportPort

	days    []scheduledto.DayOutput
	state   selectiondto.StateOutput
	grid    timetableview.Model
	updates chan struct{}
	unsub   func()

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	copied   bool
	ackSeq   int
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(schedule schedulePort, selection selectionPort, export exportPort) Model {
	m := Model{
		schedule:  schedule,
		selection: selection,
		export:    export,
		grid:      timetableview.New(),
		updates:   make(chan struct{}, 1),
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
	updates := m.updates
	m.unsub = selection.Subscribe(func(selectiondto.StateOutput) {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	ctx := context.Background()
	days, err := schedule.Days(ctx)
	if err != nil {
		m.status = "load days: " + err.Error()
	}
	m.days = days
	m.state = selection.State(ctx)
	m.loadGrid()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.listenCmd()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.grid.SetSize(m.width, m.height-4)
		return m, nil

	case stateChangedMsg:
		m.applyState(m.selection.State(context.Background()))
		return m, m.listenCmd()

	case exportDoneMsg:
		switch {
		case errors.Is(msg.err, apperrors.ErrEmptySelection):
			m.status = "nothing selected"
		case msg.err != nil:
			m.status = "copy failed: " + msg.err.Error()
		default:
			m.copied = true
			m.ackSeq++
			m.status = fmt.Sprintf("copied %d sessions", msg.out.Count)
			seq := m.ackSeq
			return m, tea.Tick(exportdomain.AckDuration, func(time.Time) tea.Msg {
				return ackExpiredMsg{seq: seq}
			})
		}
		return m, nil

	case ackExpiredMsg:
		if msg.seq == m.ackSeq {
			m.copied = false
		}
		return m, nil

	case writeDoneMsg:
		if msg.err != nil {
			m.status = "write failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("wrote %d sessions to %s", msg.out.Count, msg.out.Path)
		}
		return m, nil

	case openDoneMsg:
		switch {
		case errors.Is(msg.err, apperrors.ErrNoSessionURL):
			m.status = "this session has no url"
		case msg.err != nil:
			m.status = "open failed: " + msg.err.Error()
		default:
			m.status = "opened " + msg.out.URL
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.unsub != nil {
				m.unsub()
			}
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "left":
			m.shiftDay(-1)
			return m, nil
		case "right":
			m.shiftDay(1)
			return m, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := strconv.Atoi(msg.String())
			m.selectDayIndex(n - 1)
			return m, nil
		case " ":
			if cur, ok := m.grid.Current(); ok {
				m.applyState(m.selection.Toggle(context.Background(), cur.ID))
			}
			return m, nil
		case "o":
			cur, ok := m.grid.Current()
			if !ok {
				return m, nil
			}
			if cur.URL == "" {
				m.status = "this session has no url"
				return m, nil
			}
			return m, m.openCmd(cur.ID)
		case "c", "y":
			return m.startExport()
		}
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.grid.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, len(m.days))
	for i, d := range m.days {
		label := fmt.Sprintf("%d %s", i+1, d.DisplayName)
		if d.Date == m.state.SelectedDate {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := theme.Title.Render("timetable") + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("%d selected", m.state.Count())
	if m.copied {
		left = theme.Ok.Render("✓ copied") + "  " + left
	}
	left += "  " + m.status
	right := theme.Muted.Render("?:help  space:toggle  c:copy  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	ctx := context.Background()

	switch parts[0] {
	case "day":
		if len(parts) < 2 {
			m.status = "usage: day <date|n>"
			return m, nil
		}
		if n, err := strconv.Atoi(parts[1]); err == nil {
			m.selectDayIndex(n - 1)
			return m, nil
		}
		m.applyState(m.selection.SelectDate(ctx, parts[1]))
		m.loadGrid()

	case "toggle":
		if len(parts) < 2 {
			m.status = "usage: toggle <session-id>"
			return m, nil
		}
		for _, id := range parts[1:] {
			m.state = m.selection.Toggle(ctx, id)
		}
		m.applyState(m.state)

	case "open":
		if len(parts) < 2 {
			m.status = "usage: open <session-id>"
			return m, nil
		}
		return m, m.openCmd(parts[1])

	case "export":
		return m.startExport()

	case "write":
		if len(parts) < 2 {
			m.status = "usage: write <path.md>"
			return m, nil
		}
		if m.state.Count() == 0 {
			m.status = "nothing selected"
			return m, nil
		}
		return m, m.writeCmd(parts[1], m.state.CheckedIDs)

	case "clear":
		m.applyState(m.selection.Clear(ctx))
		m.status = "selection cleared"

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.state.Count() == 0 {
		m.status = "nothing selected"
		return m, nil
	}
	m.status = "copying…"
	return m, m.exportCmd(m.state.CheckedIDs)
}

func (m *Model) applyState(state selectiondto.StateOutput) {
	m.state = state
	m.grid.SetChecked(state.CheckedIDs)
}

func (m Model) dayIndex() int {
	for i, d := range m.days {
		if d.Date == m.state.SelectedDate {
			return i
		}
	}
	return -1
}

func (m *Model) shiftDay(delta int) {
	if len(m.days) == 0 {
		return
	}
	i := m.dayIndex() + delta
	m.selectDayIndex(max(0, min(i, len(m.days)-1)))
}

func (m *Model) selectDayIndex(i int) {
	if i < 0 || i >= len(m.days) || m.days[i].Date == m.state.SelectedDate {
		return
	}
	m.applyState(m.selection.SelectDate(context.Background(), m.days[i].Date))
	m.loadGrid()
}

func (m *Model) loadGrid() {
	grid, err := m.schedule.Grid(context.Background(), m.state.SelectedDate)
	if err != nil {
		m.status = "load grid: " + err.Error()
		return
	}
	m.grid.SetGrid(grid)
	m.grid.SetChecked(m.state.CheckedIDs)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) listenCmd() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		<-updates
		return stateChangedMsg{}
	}
}

// exportCmd and writeCmd run off the event loop, so they receive a copy of the
// checked ids taken on it and never touch the selection store.
func (m Model) exportCmd(checked []string) tea.Cmd {
	checked = append([]string(nil), checked...)
	return func() tea.Msg {
		out, err := m.export.Copy(context.Background(), checked)
		return exportDoneMsg{out: out, err: err}
	}
}

func (m Model) writeCmd(path string, checked []string) tea.Cmd {
	checked = append([]string(nil), checked...)
	return func() tea.Msg {
		out, err := m.export.WriteFile(context.Background(), path, checked)
		return writeDoneMsg{out: out, err: err}
	}
}

func (m Model) openCmd(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.schedule.OpenURL(context.Background(), id)
		return openDoneMsg{out: out, err: err}
	}
}
