package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Blue     = lipgloss.Color("#89b4fa")
	Red      = lipgloss.Color("#f38ba8")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Ok    = lipgloss.NewStyle().Foreground(Green).Bold(true)

	// Grid header and time gutter.
	Header   = lipgloss.NewStyle().Background(Surface0).Foreground(Text).Bold(true)
	Gutter   = lipgloss.NewStyle().Foreground(Subtext0)
	GutterHr = lipgloss.NewStyle().Foreground(Text).Bold(true)

	// Session cards.
	Card        = lipgloss.NewStyle().Background(Mantle).Foreground(Text)
	CardChecked = lipgloss.NewStyle().Background(Surface1).Foreground(Lavender)
	CardCursor  = lipgloss.NewStyle().Background(Lavender).Foreground(Base).Bold(true)

	// Session type badges. SPT sessions are red and the rest blue.
	BadgeSPT   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	BadgeOther = lipgloss.NewStyle().Foreground(Blue).Bold(true)
)
