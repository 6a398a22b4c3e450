package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type entry struct {
	keys string
	desc string
}

type section struct {
	title   string
	entries []entry
	text    string
}

var sections = []section{
	{
		title: "🏋️  During a Workout",
		entries: []entry{
			{"c", "Complete the current set"},
			{"s", "Skip the rest countdown"},
			{"↑ / ↓", "Select an exercise"},
			{"enter", "Jump to the selected exercise (asks first)"},
			{"p / space", "Pause or resume the timer"},
			{"r", "Reset the workout (asks first)"},
			{"y / n", "Confirm or cancel a question"},
		},
	},
	{
		title: "🔁 How a Workout Flows",
		text: "Warm-up and cooldown exercises are a single set with no rest.\n" +
			"Main exercises rest between sets and before the next exercise;\n" +
			"the rest countdown moves you on automatically. Jumping away from\n" +
			"an exercise you have not finished marks it as skipped until you\n" +
			"come back to it.",
	},
	{
		title: "🧭 Navigation",
		entries: []entry{
			{"↑ / k, ↓ / j", "Move in menus"},
			{"enter / space", "Select menu item"},
			{"h", "Save and return to the menu"},
			{"b / esc", "Go back"},
			{"q / Ctrl+C", "Quit"},
		},
	},
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF7CCB")).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDFF8C")).MarginTop(1).MarginBottom(1)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666")).MarginTop(2)
)

type Model struct {
	dataDir string
	width   int
	height  int
	quit    bool
}

func New(dataDir string) Model {
	return Model{dataDir: dataDir}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, leave) {
			m.quit = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = 100, 30
	}

	blocks := []string{headingStyle.Render("🆘 Workout Sessions Help")}
	for _, s := range sections {
		blocks = append(blocks, sectionStyle.Render(s.title), renderBody(s))
	}
	blocks = append(blocks,
		sectionStyle.Render("💾 Data"),
		textStyle.Render(fmt.Sprintf(
			"Workout history and preferences are stored as JSON in %s.\n"+
				"Custom plans can be dropped into its plans/ folder as YAML files.", m.dataDir)),
		hintStyle.Render("h: home • b/esc: back • q: quit"),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(2).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func renderBody(s section) string {
	if s.text != "" {
		return textStyle.Render(s.text)
	}
	rows := make([]string, len(s.entries))
	for i, e := range s.entries {
		rows[i] = keyStyle.Render(e.keys) + " - " + textStyle.Render(e.desc)
	}
	return strings.Join(rows, "\n")
}

// ShouldQuit reports whether the screen was closed by a key press.
func (m Model) ShouldQuit() bool {
	return m.quit
}

// Any of back, home or quit closes the screen.
var leave = key.NewBinding(
	key.WithKeys("b", "esc", "h", "q", "ctrl+c"),
	key.WithHelp("b/h/q", "close"),
)
