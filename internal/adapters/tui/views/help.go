package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDashboardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("tempo — help"))
	sb.WriteString("\n\n")

	rows := []struct{ keys, desc string }{
		{"↑/k, ↓/j", "move between goals"},
		{"t", "toggle today done/not-done (boolean goals)"},
		{"r", "record today's amount (count goals)"},
		{"R", "run the full reconciliation sweep"},
		{"y", "copy the selected goal's id"},
		{"?", "show this help"},
		{"q", "quit"},
	}
	for _, r := range rows {
		sb.WriteString("  " + styles.GoalTitle.Render(r.keys) + "  " + r.desc + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Count amounts replace the day's entry; 0 removes it."))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("esc/q/? close"))
	return styles.App.Render(sb.String())
}
