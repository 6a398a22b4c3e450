package workout

import (
	"github.com/sirupsen/logrus"

	"github.com/adibhanna/workoutsessions/internal/models"
)

// PendingKind is an action waiting for the user to confirm it.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingJump
	PendingReset
)

type Pending struct {
	Kind   PendingKind
	Target int
}

// Snapshot is the read-only view presentation code renders from.
type Snapshot struct {
	PlanID          string
	Total           int
	CurrentExercise int
	CurrentSet      int
	TotalSets       int
	Phase           Phase
	IsRest          bool
	RestPhase       RestPhase
	RestTarget      int
	RestRemaining   int
	RestSeconds     int
	Skipped         []int
	Completed       int
	Elapsed         int
	Active          bool
	Complete        bool
	Pending         Pending
}

// Session owns one plan and the state of a workout running through it,
// including the confirmation step jumps and resets go through. It is not
// safe for concurrent use; Runner adds locking.
type Session struct {
	plan    models.WorkoutPlan
	state   State
	pending Pending
	log     *logrus.Entry
}

func NewSession(plan models.WorkoutPlan) *Session {
	return &Session{
		plan:  plan,
		state: Initial(plan),
		log:   logrus.WithField("plan", plan.ID),
	}
}

func (s *Session) Plan() models.WorkoutPlan { return s.plan }

func (s *Session) State() State { return s.state }

func (s *Session) Pending() Pending { return s.pending }

func (s *Session) Snapshot() Snapshot {
	st := s.state
	return Snapshot{
		PlanID:          s.plan.ID,
		Total:           s.plan.Total(),
		CurrentExercise: st.CurrentExercise(),
		CurrentSet:      st.CurrentSet(),
		TotalSets:       s.plan.SetsFor(st.CurrentExercise()),
		Phase:           st.Phase(),
		IsRest:          st.IsRest(),
		RestPhase:       st.RestPhase(),
		RestTarget:      st.RestTarget(),
		RestRemaining:   st.RestRemaining(),
		RestSeconds:     restFor(s.plan),
		Skipped:         st.Skipped(),
		Completed:       CompletedCount(s.plan, st),
		Elapsed:         st.Elapsed(),
		Active:          st.Active(),
		Complete:        st.IsComplete(),
		Pending:         s.pending,
	}
}

func (s *Session) Tick() {
	before := s.state
	s.state = Tick(s.plan, s.state)
	if before.Phase() != s.state.Phase() {
		s.logTransition("tick", before)
	}
}

func (s *Session) CompleteSet(pos int) {
	before := s.state
	s.state = CompleteSet(s.plan, s.state, pos)
	if before.Phase() != s.state.Phase() || before.CurrentSet() != s.state.CurrentSet() ||
		before.CurrentExercise() != s.state.CurrentExercise() {
		s.logTransition("complete_set", before)
	}
}

func (s *Session) SkipRest() {
	before := s.state
	s.state = SkipRest(s.plan, s.state)
	if before.IsRest() {
		s.logTransition("skip_rest", before)
	}
}

// RequestJump asks to move to pos. It returns true when the jump is held
// until Confirm is called; a jump to the pending rest target is applied
// right away.
func (s *Session) RequestJump(pos int) bool {
	if pos < 1 || pos > s.plan.Total() {
		return false
	}
	if !NeedsConfirm(s.state, pos) {
		s.pending = Pending{}
		s.jump(pos)
		return false
	}
	s.pending = Pending{Kind: PendingJump, Target: pos}
	return true
}

func (s *Session) RequestReset() {
	s.pending = Pending{Kind: PendingReset}
}

// Confirm applies the pending action, if any.
func (s *Session) Confirm() {
	p := s.pending
	s.pending = Pending{}

	switch p.Kind {
	case PendingJump:
		s.jump(p.Target)
	case PendingReset:
		before := s.state
		s.state = Reset(s.plan, s.state)
		s.logTransition("reset", before)
	}
}

func (s *Session) Cancel() {
	s.pending = Pending{}
}

func (s *Session) Pause() {
	s.state = Pause(s.state)
}

func (s *Session) Resume() {
	s.state = Resume(s.state)
}

func (s *Session) TogglePause() {
	if s.state.Active() {
		s.Pause()
		return
	}
	s.Resume()
}

func (s *Session) jump(pos int) {
	before := s.state
	s.state = JumpTo(s.plan, s.state, pos)
	s.logTransition("jump", before)
}

func (s *Session) logTransition(op string, before State) {
	s.log.WithFields(logrus.Fields{
		"op":       op,
		"from":     before.Phase().String(),
		"to":       s.state.Phase().String(),
		"exercise": s.state.CurrentExercise(),
		"set":      s.state.CurrentSet(),
		"skipped":  s.state.Skipped(),
	}).Debug("session transition")
}
