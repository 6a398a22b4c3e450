package customize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/workoutsessions/internal/models"
	"github.com/adibhanna/workoutsessions/internal/storage"
)

const (
	restField = iota
	setsField
	repsField
	warmupField
	cooldownField
	fieldCount
)

// numberField describes one of the optional numeric overrides. An empty
// input keeps the plan's own value.
type numberField struct {
	label string
	name  string
	limit int
	lo    int
	hi    int
}

var numberFields = [...]numberField{
	restField: {label: "Rest between sets (seconds):", name: "rest", limit: 3, lo: 5, hi: 600},
	setsField: {label: "Sets per main exercise:", name: "sets", limit: 2, lo: 1, hi: 10},
	repsField: {label: "Reps per set:", name: "reps", limit: 3, lo: 1, hi: 100},
}

var (
	pink   = lipgloss.Color("#FF7CCB")
	yellow = lipgloss.Color("#FDFF8C")
	green  = lipgloss.Color("#4CAF50")
	red    = lipgloss.Color("#FF6B6B")
	grey   = lipgloss.Color("#666")

	labelStyle   = lipgloss.NewStyle().Foreground(yellow)
	focusStyle   = lipgloss.NewStyle().Foreground(pink).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(pink).Bold(true).MarginBottom(2)
	noticeStyle  = lipgloss.NewStyle().Bold(true).MarginTop(2)
	footerStyle  = lipgloss.NewStyle().Foreground(grey).MarginTop(2)
	sectionStyle = lipgloss.NewStyle().Align(lipgloss.Left).MarginTop(1).MarginBottom(1)
)

type Model struct {
	storage      *storage.Storage
	prefs        models.Preferences
	inputs       []textinput.Model
	focusIndex   int
	saved        bool
	reset        bool
	confirmReset bool
	errorMsg     string
	width        int
	height       int
}

func digitsOnly(text string) error {
	if strings.IndexFunc(text, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return errors.New("only numbers allowed")
	}
	return nil
}

func newNumberInput(f numberField) textinput.Model {
	in := textinput.New()
	in.Placeholder = "plan default"
	in.CharLimit = f.limit
	in.Width = 20
	in.Validate = digitsOnly
	return in
}

func New(store *storage.Storage) (Model, error) {
	prefs, err := store.GetPreferences()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		storage: store,
		prefs:   prefs,
		inputs:  make([]textinput.Model, len(numberFields)),
	}
	for i, f := range numberFields {
		m.inputs[i] = newNumberInput(f)
	}
	m.inputs[restField].Focus()
	m.fillInputs()

	return m, nil
}

func (m *Model) fillInputs() {
	for i, v := range [...]int{m.prefs.RestSeconds, m.prefs.MainSets, m.prefs.MainReps} {
		value := ""
		if v > 0 {
			value = strconv.Itoa(v)
		}
		m.inputs[i].SetValue(value)
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Next):
			m.focus(m.focusIndex + 1)
			return m, nil

		case key.Matches(msg, keys.Prev):
			m.focus(m.focusIndex - 1)
			return m, nil

		case key.Matches(msg, keys.Toggle) && m.focusIndex >= warmupField:
			m.toggleFocused()
			return m, nil

		case key.Matches(msg, keys.Save):
			return m.save()

		case key.Matches(msg, keys.Reset):
			return m.pressReset()

		case key.Matches(msg, keys.Back):
			if m.confirmReset {
				m.confirmReset = false
				return m, nil
			}
			return m, tea.Quit
		}
	}

	return m, m.forwardToInputs(msg)
}

// focus moves the cursor to field i, wrapping at both ends.
func (m *Model) focus(i int) {
	m.focusIndex = (i + fieldCount) % fieldCount
	for j := range m.inputs {
		if j == m.focusIndex {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) toggleFocused() {
	switch m.focusIndex {
	case warmupField:
		m.prefs.IncludeWarmup = !m.prefs.IncludeWarmup
	case cooldownField:
		m.prefs.IncludeCooldown = !m.prefs.IncludeCooldown
	}
	m.saved = false
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if err := m.savePreferences(); err != nil {
		m.errorMsg = err.Error()
		m.saved = false
		return m, nil
	}
	m.saved = true
	m.errorMsg = ""
	return m, tea.Quit
}

func (m Model) pressReset() (tea.Model, tea.Cmd) {
	if !m.confirmReset {
		m.confirmReset = true
		return m, nil
	}
	if err := m.storage.ResetAllData(); err != nil {
		m.errorMsg = err.Error()
		m.confirmReset = false
		return m, nil
	}
	m.prefs = models.DefaultPreferences()
	m.fillInputs()
	m.reset = true
	return m, tea.Quit
}

func (m *Model) forwardToInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.inputs {
		before := m.inputs[i].Value()
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
		if m.inputs[i].Value() != before {
			m.errorMsg = ""
			m.saved = false
		}
	}
	return tea.Batch(cmds...)
}

// parse reads an override, returning 0 for an empty input.
func (f numberField) parse(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < f.lo || n > f.hi {
		return 0, fmt.Errorf("%s must be between %d-%d", f.name, f.lo, f.hi)
	}
	return n, nil
}

func (m *Model) savePreferences() error {
	var values [len(numberFields)]int
	for i, f := range numberFields {
		n, err := f.parse(m.inputs[i].Value())
		if err != nil {
			return err
		}
		values[i] = n
	}

	m.prefs.RestSeconds = values[restField]
	m.prefs.MainSets = values[setsField]
	m.prefs.MainReps = values[repsField]

	return m.storage.SavePreferences(m.prefs)
}

func (m Model) Preferences() models.Preferences {
	return m.prefs
}

func (m Model) Saved() bool {
	return m.saved
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var form strings.Builder
	for i, f := range numberFields {
		form.WriteString(labelStyle.Render(f.label) + "\n")
		form.WriteString(m.inputs[i].View() + "\n\n")
	}
	form.WriteString(m.checkbox(warmupField, "Include warm-up", m.prefs.IncludeWarmup) + "\n")
	form.WriteString(m.checkbox(cooldownField, "Include cooldown stretching", m.prefs.IncludeCooldown) + "\n")

	parts := []string{
		titleStyle.Render("⚙️  Customize Workout"),
		sectionStyle.Render(form.String()),
		footerStyle.Render(m.helpLine()),
	}

	switch {
	case m.saved:
		parts = append(parts, noticeStyle.Foreground(green).Render("✅ Preferences saved!"))
	case m.reset:
		parts = append(parts, noticeStyle.Foreground(green).Render("🔄 All data reset successfully!"))
	}
	if m.confirmReset {
		parts = append(parts, noticeStyle.Foreground(red).Render("⚠️  WARNING: This will delete ALL workout history and preferences!"))
	}
	if m.errorMsg != "" {
		parts = append(parts, noticeStyle.Foreground(red).Render("❌ "+m.errorMsg))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (m Model) checkbox(field int, label string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	line := box + " " + label
	if m.focusIndex == field {
		return focusStyle.Render("▶ " + line)
	}
	return labelStyle.Render("  " + line)
}

func (m Model) helpLine() string {
	if m.confirmReset {
		return "⚠️  Press 'r' again to confirm RESET (deletes all data) • b: cancel"
	}
	return "tab/↓: next • shift+tab/↑: previous • x: toggle • s: save • r: reset all data • b: back"
}

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Save   key.Binding
	Reset  key.Binding
	Back   key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/↓", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/↑", "previous field")),
	Toggle: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "toggle")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset all data")),
	Back:   key.NewBinding(key.WithKeys("b", "esc", "q", "ctrl+c"), key.WithHelp("b", "back")),
}
