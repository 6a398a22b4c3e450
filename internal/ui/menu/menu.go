package menu

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/workoutsessions/internal/models"
	"github.com/adibhanna/workoutsessions/internal/storage"
)

type MenuChoice int

const (
	StartWorkout MenuChoice = iota
	Customize
	RecentWorkouts
	Help
	Exit
)

type item struct {
	label  string
	choice MenuChoice
	planID string
}

type Model struct {
	items      []item
	cursor     int
	selected   item
	plans      []models.WorkoutPlan
	prefs      models.Preferences
	todayStats models.DayStats
	recent     []models.WorkoutRecord
	width      int
	height     int
	shouldQuit bool
}

func New(plans []models.WorkoutPlan, store *storage.Storage) (Model, error) {
	prefs, err := store.GetPreferences()
	if err != nil {
		return Model{}, err
	}

	todayStats, err := store.GetDayStats(time.Now().Format("2006-01-02"))
	if err != nil {
		todayStats = models.DayStats{Date: time.Now().Format("2006-01-02")}
	}

	recent, err := store.GetRecent(3)
	if err != nil {
		recent = nil
	}

	var items []item
	for _, p := range plans {
		items = append(items, item{
			label:  fmt.Sprintf("🏋️  %s  (%s • %s • %s)", p.Name, p.Duration, p.Difficulty, p.Focus),
			choice: StartWorkout,
			planID: p.ID,
		})
	}
	items = append(items,
		item{label: "⚙️  Customize Workout", choice: Customize},
		item{label: "📊 Recent Workouts", choice: RecentWorkouts},
		item{label: "🆘 Help", choice: Help},
		item{label: "👋 Exit", choice: Exit},
	)

	return Model{
		items:      items,
		plans:      plans,
		prefs:      prefs,
		todayStats: todayStats,
		recent:     recent,
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
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.items) - 1
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}

		case key.Matches(msg, keys.Enter):
			m.selected = m.items[m.cursor]
			if m.selected.choice == Exit {
				m.shouldQuit = true
			}
			return m, tea.Quit

		case key.Matches(msg, keys.Quit):
			m.shouldQuit = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	containerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF7CCB")).
		MarginBottom(1).
		Align(lipgloss.Center)

	statsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDFF8C")).
		MarginBottom(1).
		Align(lipgloss.Center)

	menuStyle := lipgloss.NewStyle().
		Padding(1, 2).
		MarginTop(1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF7CCB")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888"))

	dateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888")).
		MarginBottom(1).
		Align(lipgloss.Center)

	title := titleStyle.Render("✨ Workout Sessions ✨")
	dateInfo := dateStyle.Render(time.Now().Format("Monday, January 2, 2006"))

	stats := statsStyle.Render(fmt.Sprintf(
		"Today: %d workouts | %s | %d exercises",
		m.todayStats.WorkoutsCount,
		storage.FormatDuration(m.todayStats.TotalSeconds),
		m.todayStats.ExercisesCount,
	))

	var menu string
	for i, it := range m.items {
		cursor := "  "
		style := normalStyle
		if m.cursor == i {
			cursor = "▶ "
			style = selectedStyle
		}
		menu += style.Render(cursor+it.label) + "\n"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		dateInfo,
		stats,
		m.renderPreferences(),
		menuStyle.Render(menu),
		m.renderRecent(),
		m.renderHelp(),
	)

	return containerStyle.Render(content)
}

func (m Model) renderPreferences() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666"))

	parts := ""
	if m.prefs.RestSeconds > 0 {
		parts += fmt.Sprintf("rest %ds • ", m.prefs.RestSeconds)
	}
	if m.prefs.MainSets > 0 {
		parts += fmt.Sprintf("%d sets • ", m.prefs.MainSets)
	}
	if m.prefs.MainReps > 0 {
		parts += fmt.Sprintf("%d reps • ", m.prefs.MainReps)
	}
	if !m.prefs.IncludeWarmup {
		parts += "no warm-up • "
	}
	if !m.prefs.IncludeCooldown {
		parts += "no cooldown • "
	}
	if parts == "" {
		return ""
	}
	return style.Render("Customized: " + parts[:len(parts)-len(" • ")])
}

func (m Model) renderRecent() string {
	if len(m.recent) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDFF8C")).
		MarginTop(1)

	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888"))

	out := titleStyle.Render("Recent") + "\n"
	for _, r := range m.recent {
		icon := "✅"
		if r.Status != models.StatusCompleted {
			icon = "⏸️ "
		}
		out += rowStyle.Render(fmt.Sprintf("%s %s • %s • %d/%d exercises",
			icon, r.PlanName, storage.FormatDuration(r.ElapsedSeconds), r.ExercisesCompleted, r.ExercisesTotal)) + "\n"
	}
	return out
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(2)

	return helpStyle.Render("↑/↓: navigate • enter: select • q: quit")
}

func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

func (m Model) GetSelected() MenuChoice {
	return m.selected.choice
}

// SelectedPlan is the plan id picked with StartWorkout.
func (m Model) SelectedPlan() string {
	return m.selected.planID
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
