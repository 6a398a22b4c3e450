package pose

import (
	"math"
)

const (
	DefaultDownAngle = 70.0
	DefaultUpAngle   = 150.0
)

// RepCounter counts push-up style reps from the elbow angle: bending below
// DownAngle arms the counter and extending above UpAngle counts one rep.
type RepCounter struct {
	DownAngle float64
	UpAngle   float64

	down bool
	reps int
}

func NewRepCounter() *RepCounter {
	return &RepCounter{DownAngle: DefaultDownAngle, UpAngle: DefaultUpAngle}
}

// Observe feeds one frame and returns the rep count so far. Frames where
// no elbow can be measured are ignored.
func (r *RepCounter) Observe(f Frame) int {
	return r.ObserveAngle(ElbowAngle(f))
}

func (r *RepCounter) ObserveAngle(angle float64) int {
	if math.IsNaN(angle) {
		return r.reps
	}
	if !r.down && angle < r.DownAngle {
		r.down = true
	}
	if r.down && angle > r.UpAngle {
		r.reps++
		r.down = false
	}
	return r.reps
}

func (r *RepCounter) Reps() int { return r.reps }

func (r *RepCounter) Down() bool { return r.down }

func (r *RepCounter) Reset() {
	r.down = false
	r.reps = 0
}
