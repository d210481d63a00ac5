package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Goal rows
	GoalTitle = lipgloss.NewStyle().
			Bold(true)

	GoalSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	GoalMeta = lipgloss.NewStyle().
			Foreground(Muted)

	// Progress bars
	BarDone = lipgloss.NewStyle().
		Foreground(Secondary)

	BarRemaining = lipgloss.NewStyle().
			Foreground(Muted)

	BarExceeded = lipgloss.NewStyle().
			Foreground(Warning)

	// Threshold status badges
	StatusMet = lipgloss.NewStyle().
			Foreground(Secondary)

	StatusClose = lipgloss.NewStyle().
			Foreground(Warning)

	StatusMissed = lipgloss.NewStyle().
			Foreground(Error)

	// Messages
	Message = lipgloss.NewStyle().
		Foreground(Secondary)

	ErrorMessage = lipgloss.NewStyle().
			Foreground(Error)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)
)
