package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/workoutsessions/internal/models"
	"github.com/adibhanna/workoutsessions/internal/storage"
)

type exportResultMsg struct {
	message string
}

type clearMessageMsg struct{}

type Model struct {
	storage       *storage.Storage
	recent        []models.WorkoutRecord
	todayStats    models.DayStats
	weekStats     models.WeekStats
	viewport      viewport.Model
	ready         bool
	width         int
	height        int
	exportMessage string
	showMessage   bool
}

func New(store *storage.Storage) (Model, error) {
	recent, err := store.GetRecent(0)
	if err != nil {
		return Model{}, err
	}

	now := time.Now()
	todayStats, err := store.GetDayStats(now.Format("2006-01-02"))
	if err != nil {
		return Model{}, err
	}

	year, week := now.ISOWeek()
	weekStats, err := store.GetWeekStats(year, week)
	if err != nil {
		return Model{}, err
	}

	return Model{
		storage:    store,
		recent:     recent,
		todayStats: todayStats,
		weekStats:  weekStats,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(msg.Height-10, 5)
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = bodyHeight
		}
		m.viewport.SetContent(m.renderWorkouts())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit), key.Matches(msg, keys.Home):
			return m, tea.Quit
		case key.Matches(msg, keys.Export):
			return m, m.exportReport()
		}

	case exportResultMsg:
		m.exportMessage = msg.message
		m.showMessage = true
		return m, tea.Tick(time.Second*3, func(t time.Time) tea.Msg {
			return clearMessageMsg{}
		})

	case clearMessageMsg:
		m.showMessage = false
		m.exportMessage = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) exportReport() tea.Cmd {
	return func() tea.Msg {
		report, err := m.storage.ExportReport()
		if err != nil {
			return exportResultMsg{message: fmt.Sprintf("Export failed: %v", err)}
		}

		timestamp := time.Now().Format("2006-01-02-150405")
		filePath := filepath.Join(m.storage.DataDir(), fmt.Sprintf("workouts-report-%s.txt", timestamp))
		if err := os.WriteFile(filePath, []byte(report), 0644); err != nil {
			return exportResultMsg{message: fmt.Sprintf("Failed to save file: %v", err)}
		}

		return exportResultMsg{message: fmt.Sprintf("[OK] Exported to %s", filePath)}
	}
}

func (m Model) View() string {
	if m.width == 0 || !m.ready {
		return "Loading..."
	}

	containerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF7CCB")).
		MarginBottom(1)

	statsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDFF8C"))

	title := titleStyle.Render("📊 Recent Workouts")
	stats := statsStyle.Render(fmt.Sprintf(
		"Today: %d workouts (%s) | Week %d: %d workouts (%s)",
		m.todayStats.WorkoutsCount,
		storage.FormatDuration(m.todayStats.TotalSeconds),
		m.weekStats.Week,
		m.weekStats.WorkoutsCount,
		storage.FormatDuration(m.weekStats.TotalSeconds),
	))

	sections := []string{title, stats, m.viewport.View()}
	if m.showMessage {
		msgStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4CAF50")).
			Bold(true)
		sections = append(sections, msgStyle.Render(m.exportMessage))
	}
	sections = append(sections, m.renderHelp())

	return containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderWorkouts() string {
	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888")).
		PaddingLeft(2)

	if len(m.recent) == 0 {
		return rowStyle.Render("No workouts yet. Pick a plan from the menu to get started! 💪")
	}

	var b strings.Builder
	for _, r := range m.recent {
		var icon string
		switch r.Status {
		case models.StatusCompleted:
			icon = "✅"
		case models.StatusPaused:
			icon = "⏸️ "
		default:
			icon = "⚠️ "
		}

		line := fmt.Sprintf("%s %s  %-20s %-12s %s • %d/%d exercises",
			icon,
			r.StartTime.Format("Mon Jan 2 15:04"),
			r.PlanName,
			r.Difficulty,
			storage.FormatDuration(r.ElapsedSeconds),
			r.ExercisesCompleted,
			r.ExercisesTotal,
		)
		if len(r.Skipped) > 0 {
			line += fmt.Sprintf(" • %d skipped", len(r.Skipped))
		}
		b.WriteString(rowStyle.Render(line) + "\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(1)

	return helpStyle.Render("↑/↓: scroll • e: export report • b: back • q: quit")
}

type keyMap struct {
	Back   key.Binding
	Quit   key.Binding
	Home   key.Binding
	Export key.Binding
}

var keys = keyMap{
	Back: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
}
