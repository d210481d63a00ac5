package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/adapters/tui/styles"
	"tempo/internal/application"
	"tempo/internal/domain"
)

// DashboardKeyMap defines key bindings for the dashboard
type DashboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Record      key.Binding
	Recalculate key.Binding
	CopyID      key.Binding
	Help        key.Binding
	Quit        key.Binding
	Submit      key.Binding
	Cancel      key.Binding
}

// DefaultDashboardKeys returns the default dashboard key bindings
var DefaultDashboardKeys = DashboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle today"),
	),
	Record: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "record amount"),
	),
	Recalculate: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reconcile all"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy goal id"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

type goalsLoadedMsg struct {
	goals []*domain.Goal
}

type dashboardErrMsg struct {
	err error
}

type progressSavedMsg struct {
	message string
}

// DashboardModel lists all goals with progress bars and pacing projections
type DashboardModel struct {
	ViewState
	rec  *application.Reconciler
	keys DashboardKeyMap

	goals     []*domain.Goal
	cursor    int
	recording bool
	amount    textinput.Model
}

// NewDashboardModel creates a new dashboard view model
func NewDashboardModel(rec *application.Reconciler) *DashboardModel {
	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.CharLimit = 12
	amount.Width = 14

	return &DashboardModel{
		rec:    rec,
		keys:   DefaultDashboardKeys,
		amount: amount,
	}
}

// Init loads the goal collection
func (m *DashboardModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches goals from the store
func (m *DashboardModel) Reload() tea.Cmd {
	return func() tea.Msg {
		goals, err := m.rec.Goals()
		if err != nil {
			return dashboardErrMsg{err: err}
		}
		return goalsLoadedMsg{goals: goals}
	}
}

// Update handles messages for the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalsLoadedMsg:
		m.goals = msg.goals
		if m.cursor >= len(m.goals) {
			m.cursor = max(0, len(m.goals)-1)
		}
		return m, nil

	case dashboardErrMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case progressSavedMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		if m.recording {
			return m.updateRecording(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *DashboardModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.goals)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, m.keys.Toggle):
		if goal := m.selected(); goal != nil && goal.TrackingType == domain.TrackingBoolean {
			today := time.Now().Format("2006-01-02")
			return m, func() tea.Msg {
				if _, err := m.rec.ToggleCompletion(goal.ID, today); err != nil {
					return dashboardErrMsg{err: err}
				}
				return progressSavedMsg{message: fmt.Sprintf("Toggled %s for %q", today, goal.Title)}
			}
		}

	case key.Matches(msg, m.keys.Record):
		if goal := m.selected(); goal != nil && goal.TrackingType == domain.TrackingCount {
			m.recording = true
			m.amount.SetValue("")
			m.amount.Focus()
			m.ClearMessage()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Recalculate):
		return m, func() tea.Msg {
			if _, err := m.rec.RecalculateAll(); err != nil {
				return dashboardErrMsg{err: err}
			}
			return progressSavedMsg{message: "Reconciled all goals"}
		}

	case key.Matches(msg, m.keys.CopyID):
		if goal := m.selected(); goal != nil {
			clipboard.WriteAll(goal.ID)
			m.SetMessage(fmt.Sprintf("Copied id of %q", goal.Title), false)
		}
	}

	return m, nil
}

func (m *DashboardModel) updateRecording(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.recording = false
		m.amount.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		goal := m.selected()
		value, err := strconv.ParseFloat(strings.TrimSpace(m.amount.Value()), 64)
		if goal == nil || err != nil {
			m.SetMessage("enter a numeric amount", true)
			return m, nil
		}
		m.recording = false
		m.amount.Blur()
		today := time.Now().Format("2006-01-02")
		return m, func() tea.Msg {
			goals, err := m.rec.RecordProgress(goal.ID, value, today)
			if err != nil {
				return dashboardErrMsg{err: err}
			}
			return progressSavedMsg{message: fmt.Sprintf("Recorded %g for %q (total %g)", value, goal.Title, goals[0].Tracking.Progress)}
		}
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	return m, cmd
}

func (m *DashboardModel) selected() *domain.Goal {
	if m.cursor < 0 || m.cursor >= len(m.goals) {
		return nil
	}
	return m.goals[m.cursor]
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("tempo — goals"))
	sb.WriteByte('\n')

	if len(m.goals) == 0 {
		sb.WriteString(styles.Subtitle.Render("No goals yet. Create one with tempo-cli create."))
		sb.WriteByte('\n')
	}

	now := time.Now()
	for i, g := range m.goals {
		sb.WriteString(m.renderGoal(g, i == m.cursor, now))
	}

	if m.recording {
		sb.WriteByte('\n')
		sb.WriteString("Amount for today: " + m.amount.View())
		sb.WriteByte('\n')
	}

	if m.Message != "" {
		style := styles.Message
		if m.MessageErr {
			style = styles.ErrorMessage
		}
		sb.WriteByte('\n')
		sb.WriteString(style.Render(m.Message))
		sb.WriteByte('\n')
	}

	sb.WriteString(styles.Help.Render("↑/↓ move · t toggle today · r record · R reconcile · y copy id · ? help · q quit"))

	return styles.App.Render(sb.String())
}

func (m *DashboardModel) renderGoal(g *domain.Goal, selected bool, now time.Time) string {
	title := styles.GoalTitle.Render(g.Title)
	if selected {
		title = styles.GoalSelected.Render(g.Title)
	}

	meta := fmt.Sprintf("%s · %s", g.TimeHorizon, g.TrackingType)
	if g.ParentGoalID != "" {
		meta += " · linked"
	}

	line := fmt.Sprintf("%s  %s\n", title, styles.GoalMeta.Render(meta))

	switch {
	case g.IsGoodEnough():
		q, y := domain.QuarterOf(now)
		status := domain.GoodEnoughStatus(g, domain.QuarterKey(q, y), now)
		line += fmt.Sprintf("  %s %g %s · %s\n", g.Relationship, g.Threshold, g.Unit, renderStatus(status))

	case g.TrackingType == domain.TrackingCount && g.Tracking.Target != nil:
		p := domain.YearToDateProjection(g, now)
		line += fmt.Sprintf("  %s %g/%g %s · projected %g\n",
			renderBar(p.PercentComplete, 24), p.CurrentValue, p.Target, p.Unit, p.ProjectedValue)

	case g.TrackingType == domain.TrackingBoolean:
		p := domain.YearToDateProjection(g, now)
		line += fmt.Sprintf("  %s %d days this year\n", renderBar(p.PercentComplete, 24), int(p.CurrentValue))

	default:
		line += fmt.Sprintf("  total %g\n", g.Tracking.Progress)
	}

	return line
}

func renderStatus(s domain.ThresholdStatus) string {
	switch s {
	case domain.ThresholdMet:
		return styles.StatusMet.Render("met")
	case domain.ThresholdClose:
		return styles.StatusClose.Render("close")
	case domain.ThresholdMissed:
		return styles.StatusMissed.Render("missed")
	default:
		return styles.GoalMeta.Render("no data")
	}
}

// renderBar draws a fixed-width progress bar; values over 100% switch the
// filled section to the exceeded color instead of overflowing
func renderBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	filledStyle := styles.BarDone
	if percent > 100 {
		percent = 100
		filledStyle = styles.BarExceeded
	}
	filled := int(percent / 100 * float64(width))
	return filledStyle.Render(strings.Repeat("█", filled)) +
		styles.BarRemaining.Render(strings.Repeat("░", width-filled))
}
