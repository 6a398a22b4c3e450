package capture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/adibhanna/workoutsessions/internal/models"
	"github.com/adibhanna/workoutsessions/internal/pose"
	"github.com/adibhanna/workoutsessions/internal/storage"
	"github.com/adibhanna/workoutsessions/internal/workout"
)

// tickMsg carries the generation it was scheduled under; ticks from an
// older generation were cancelled and are dropped.
type tickMsg struct {
	gen int
}

type frameMsg struct {
	frame pose.Frame
}

type poseEndMsg struct {
	err error
}

type poseState int

const (
	poseOff poseState = iota
	poseLive
	poseUnavailable
)

type Model struct {
	session *workout.Session
	storage *storage.Storage
	record  models.WorkoutRecord
	now     func() time.Time

	cursor  int
	tickGen int
	ticking bool

	finished   bool
	exitToMenu bool
	quitting   bool
	errorMsg   string

	progress progress.Model
	width    int
	height   int

	frames    <-chan pose.Frame
	poseErrs  <-chan error
	poseState poseState
	reps      *pose.RepCounter
	posture   int
}

type Option func(*Model)

// WithLandmarks feeds the rep counter from a landmark stream. When the
// stream fails the counter degrades to a placeholder; the workout keeps
// running either way.
func WithLandmarks(frames <-chan pose.Frame, errs <-chan error) Option {
	return func(m *Model) {
		m.frames = frames
		m.poseErrs = errs
		m.poseState = poseLive
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New starts a session for plan. store may be nil, in which case nothing
// is recorded.
func New(plan models.WorkoutPlan, store *storage.Storage, opts ...Option) Model {
	prog := progress.New(progress.WithScaledGradient("#FF7CCB", "#FDFF8C"))
	prog.Width = 40

	m := Model{
		session:  workout.NewSession(plan),
		storage:  store,
		now:      time.Now,
		cursor:   1,
		progress: prog,
		reps:     pose.NewRepCounter(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.record = storage.NewRecord(plan, m.now())

	st := m.session.State()
	m.ticking = st.Active() && !st.IsComplete()

	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.startTicking(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.frames != nil {
		cmds = append(cmds, m.waitForFrame())
	}
	return tea.Batch(cmds...)
}

// Init cannot hand a modified model back to the runtime, so New already
// marks the first tick as outstanding and Init only schedules it.
func (m Model) startTicking() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return tickCmd(m.tickGen)
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) waitForFrame() tea.Cmd {
	frames, errs := m.frames, m.poseErrs
	return func() tea.Msg {
		frame, ok := <-frames
		if ok {
			return frameMsg{frame: frame}
		}
		var err error
		if errs != nil {
			err = <-errs
		}
		return poseEndMsg{err: err}
	}
}

// ensureTicking schedules a tick under a fresh generation unless one is
// already outstanding.
func (m *Model) ensureTicking() tea.Cmd {
	st := m.session.State()
	if m.ticking || !st.Active() || st.IsComplete() {
		return nil
	}
	m.tickGen++
	m.ticking = true
	return tickCmd(m.tickGen)
}

// stopTicking invalidates any outstanding tick. Safe to call repeatedly.
func (m *Model) stopTicking() {
	m.tickGen++
	m.ticking = false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		if m.finished {
			if key.Matches(msg, keys.Back) || key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Home) {
				m.exitToMenu = !key.Matches(msg, keys.Quit)
				m.quitting = key.Matches(msg, keys.Quit)
				return m, tea.Quit
			}
			return m, nil
		}
		if m.session.Pending().Kind != workout.PendingNone {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)

	case tickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		m.ticking = false
		m.session.Tick()
		return m, m.afterChange()

	case frameMsg:
		m.reps.Observe(msg.frame)
		m.posture = pose.PostureScore(msg.frame)
		return m, m.waitForFrame()

	case poseEndMsg:
		m.poseState = poseUnavailable
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("pose landmark stream stopped")
		}
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := m.session.Plan().Total()

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 1 {
			m.cursor--
		} else {
			m.cursor = total
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < total {
			m.cursor++
		} else {
			m.cursor = 1
		}

	case key.Matches(msg, keys.CompleteSet):
		current := m.session.State().CurrentExercise()
		if workout.CanCompleteSet(current, m.session.State()) {
			m.session.CompleteSet(current)
			m.cursor = clampCursor(m.session.State().CurrentExercise(), total)
			m.reps.Reset()
		}
		return m, m.afterChange()

	case key.Matches(msg, keys.SkipRest):
		if m.session.State().IsRest() {
			m.session.SkipRest()
			m.cursor = clampCursor(m.session.State().CurrentExercise(), total)
		}
		return m, m.afterChange()

	case key.Matches(msg, keys.Jump):
		if !m.session.RequestJump(m.cursor) {
			// Jumped straight to the pending rest target.
			return m, m.afterChange()
		}

	case key.Matches(msg, keys.Pause):
		m.session.TogglePause()
		if m.session.State().Active() {
			return m, m.ensureTicking()
		}
		m.stopTicking()
		m.saveProgress(models.StatusPaused)

	case key.Matches(msg, keys.Reset):
		m.session.RequestReset()

	case key.Matches(msg, keys.Home):
		m.stopTicking()
		m.saveProgress(models.StatusPaused)
		m.exitToMenu = true
		return m, tea.Quit

	case key.Matches(msg, keys.Quit):
		m.stopTicking()
		m.saveProgress(models.StatusPaused)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		pending := m.session.Pending()
		if pending.Kind == workout.PendingReset {
			// Cancel the old run's tick before reinitialising.
			m.stopTicking()
			m.saveProgress(models.StatusAbandoned)
			m.session.Confirm()
			m.record = storage.NewRecord(m.session.Plan(), m.now())
			m.cursor = 1
			m.reps.Reset()
			return m, m.afterChange()
		}
		m.session.Confirm()
		m.cursor = clampCursor(m.session.State().CurrentExercise(), m.session.Plan().Total())
		return m, m.afterChange()

	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Back):
		m.session.Cancel()
	}
	return m, nil
}

// afterChange finishes the workout once the session completes and keeps
// the tick chain alive otherwise.
func (m *Model) afterChange() tea.Cmd {
	if !m.session.State().IsComplete() {
		return m.ensureTicking()
	}

	m.stopTicking()
	m.finished = true
	m.saveProgress(models.StatusCompleted)
	return tea.Printf("*** Workout complete: %s in %s ***",
		m.session.Plan().Name, storage.FormatDuration(m.session.State().Elapsed()))
}

// saveProgress records the workout with the given status. A workout that
// never got going is only recorded once it completes.
func (m *Model) saveProgress(status models.RecordStatus) {
	st := m.session.State()
	if status != models.StatusCompleted && st.Elapsed() == 0 && workout.CompletedCount(m.session.Plan(), st) == 0 {
		return
	}

	m.record.Status = status
	m.record.ElapsedSeconds = st.Elapsed()
	m.record.ExercisesCompleted = workout.CompletedCount(m.session.Plan(), st)
	m.record.Skipped = st.Skipped()
	if status != models.StatusPaused {
		m.record.EndTime = m.now()
	}

	if m.storage == nil {
		return
	}
	if err := m.storage.SaveRecord(m.record); err != nil {
		m.errorMsg = fmt.Sprintf("could not save workout: %v", err)
		logrus.WithError(err).Error("saving workout record")
	}
}

func clampCursor(pos, total int) int {
	if pos < 1 {
		return 1
	}
	if pos > total {
		return total
	}
	return pos
}

func (m Model) ExitedToMenu() bool {
	return m.exitToMenu
}

func (m Model) ShouldQuit() bool {
	return m.quitting
}

func (m Model) Finished() bool {
	return m.finished
}

func (m Model) Snapshot() workout.Snapshot {
	return m.session.Snapshot()
}

func (m Model) Record() models.WorkoutRecord {
	return m.record
}

func (m Model) Reps() int {
	return m.reps.Reps()
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	containerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2)

	if m.finished {
		return containerStyle.Align(lipgloss.Center, lipgloss.Center).Render(m.renderCompletion())
	}

	sections := []string{
		m.renderHeader(),
		m.renderExerciseList(),
	}
	if m.poseState != poseOff {
		sections = append(sections, m.renderPose())
	}
	if p := m.session.Pending(); p.Kind != workout.PendingNone {
		sections = append(sections, m.renderConfirm(p))
	}
	if m.errorMsg != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
		sections = append(sections, errorStyle.Render("❌ "+m.errorMsg))
	}
	sections = append(sections, m.renderHelp())

	return containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	snap := m.session.Snapshot()
	plan := m.session.Plan()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF7CCB"))

	timerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 2).
		MarginRight(2)

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888"))

	restStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDFF8C")).
		Bold(true)

	title := titleStyle.Render(fmt.Sprintf("🏋️  %s", plan.Name))
	timer := timerStyle.Render(formatClock(snap.Elapsed))

	var status string
	switch {
	case !snap.Active:
		status = statusStyle.Render("⏸️  PAUSED - press 'p' to resume")
	case snap.RestPhase == workout.RestBetweenSets:
		status = restStyle.Render(fmt.Sprintf("REST %s before set %d of %d",
			formatClock(snap.RestRemaining), snap.CurrentSet, snap.TotalSets))
	case snap.RestPhase == workout.RestBetweenExercises:
		next, _ := plan.ExerciseAt(snap.RestTarget)
		status = restStyle.Render(fmt.Sprintf("REST %s - next up: %s",
			formatClock(snap.RestRemaining), next.Name))
	default:
		ex, _ := plan.ExerciseAt(snap.CurrentExercise)
		status = statusStyle.Render(fmt.Sprintf("%s • set %d of %d • exercise %d of %d",
			ex.Name, snap.CurrentSet, snap.TotalSets, snap.CurrentExercise, snap.Total))
	}

	lines := []string{
		title,
		lipgloss.JoinHorizontal(lipgloss.Center, timer, status),
	}
	if snap.IsRest && snap.RestSeconds > 0 {
		done := float64(snap.RestSeconds-snap.RestRemaining) / float64(snap.RestSeconds)
		lines = append(lines, m.progress.ViewAs(done))
	}

	return lipgloss.NewStyle().MarginBottom(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderExerciseList() string {
	plan := m.session.Plan()
	st := m.session.State()

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FDFF8C")).
		MarginTop(1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF7CCB")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC"))

	actionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4CAF50"))

	var b strings.Builder
	lastSection := models.SectionNone
	for _, ex := range plan.Exercises() {
		if ex.Section != lastSection {
			b.WriteString(sectionStyle.Render(ex.Section.String()) + "\n")
			lastSection = ex.Section
		}

		cursor := "  "
		style := normalStyle
		if ex.Position == m.cursor {
			cursor = "▶ "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s%s %-22s %s", cursor, badge(workout.StatusOf(ex.Position, st)), ex.Name, detail(ex))
		var actions []string
		if workout.CanCompleteSet(ex.Position, st) {
			actions = append(actions, "[c] complete set")
		}
		if workout.CanSkipRest(ex.Position, st) {
			actions = append(actions, "[s] skip rest")
		}

		b.WriteString(style.Render(line))
		if len(actions) > 0 {
			b.WriteString("  " + actionStyle.Render(strings.Join(actions, " ")))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderPose() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22D3EE")).
		MarginTop(1)

	if m.poseState == poseUnavailable {
		return style.Foreground(lipgloss.Color("#666")).Render("📷 Pose tracking unavailable")
	}
	return style.Render(fmt.Sprintf("📷 Reps: %d • Posture: %d%%", m.reps.Reps(), m.posture))
}

func (m Model) renderConfirm(p workout.Pending) string {
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF6B6B")).
		Padding(0, 2).
		MarginTop(1)

	var question string
	switch p.Kind {
	case workout.PendingJump:
		ex, _ := m.session.Plan().ExerciseAt(p.Target)
		question = fmt.Sprintf("Jump to %s? The current exercise will be marked as skipped.", ex.Name)
	case workout.PendingReset:
		question = "Reset this workout? All progress will be lost."
	}

	return modalStyle.Render(question + "\n\ny: confirm • n: cancel")
}

func (m Model) renderCompletion() string {
	celebrationStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")).
		Align(lipgloss.Center)

	st := m.session.State()
	plan := m.session.Plan()

	celebration := []string{
		"",
		"    ╔═══════════════════╗",
		"    ║ WORKOUT COMPLETE! ║",
		"    ╚═══════════════════╝",
		"",
		fmt.Sprintf("   %s", plan.Name),
		fmt.Sprintf("   Time: %s", storage.FormatDuration(st.Elapsed())),
		fmt.Sprintf("   Exercises: %d/%d", workout.CompletedCount(plan, st), plan.Total()),
	}
	if skipped := st.Skipped(); len(skipped) > 0 {
		celebration = append(celebration, fmt.Sprintf("   Skipped: %d", len(skipped)))
	}
	celebration = append(celebration, "", "       💪  🏆  🚀", "")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(2)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		celebrationStyle.Render(lipgloss.JoinVertical(lipgloss.Center, celebration...)),
		helpStyle.Render("Press 'b' to go back • 'q' to quit"),
	)
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(1)

	return helpStyle.Render("↑/↓: select • c: complete set • s: skip rest • enter: jump • p: pause • r: reset • h: home • q: quit")
}

func badge(status workout.Status) string {
	switch status {
	case workout.StatusCompleted:
		return "✅"
	case workout.StatusCurrent:
		return "▶️ "
	case workout.StatusNext:
		return "⏭️ "
	case workout.StatusSkipped:
		return "⚠️ "
	default:
		return "⬜"
	}
}

func detail(ex models.Exercise) string {
	if ex.Section == models.SectionMain {
		return fmt.Sprintf("%d × %d", ex.Sets, ex.Reps)
	}
	return fmt.Sprintf("%ds", ex.DurationSec)
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Start runs the capture screen as its own program and reports whether
// the user asked to go back to the menu.
func Start(ctx context.Context, m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return m, err
	}
	return finalModel.(Model), nil
}

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	CompleteSet key.Binding
	SkipRest    key.Binding
	Jump        key.Binding
	Pause       key.Binding
	Reset       key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Back        key.Binding
	Home        key.Binding
	Quit        key.Binding
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
	CompleteSet: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete set"),
	),
	SkipRest: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip rest"),
	),
	Jump: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "jump to exercise"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset workout"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b", "back"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
