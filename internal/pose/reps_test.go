package pose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepCounter(t *testing.T) {
	r := NewRepCounter()

	for _, angle := range []float64{170, 120, 90, 65, 100, 140} {
		r.ObserveAngle(angle)
	}
	assert.Equal(t, 0, r.Reps())
	assert.True(t, r.Down())

	assert.Equal(t, 1, r.ObserveAngle(160))
	assert.False(t, r.Down())

	// Extending again without going down does not count.
	assert.Equal(t, 1, r.ObserveAngle(170))

	for _, angle := range []float64{60, math.NaN(), 155} {
		r.ObserveAngle(angle)
	}
	assert.Equal(t, 2, r.Reps())

	r.Reset()
	assert.Equal(t, 0, r.Reps())
	assert.False(t, r.Down())
}

func TestRepCounterThresholdsAreExclusive(t *testing.T) {
	r := NewRepCounter()
	r.ObserveAngle(DefaultDownAngle)
	assert.False(t, r.Down())

	r.ObserveAngle(DefaultDownAngle - 1)
	r.ObserveAngle(DefaultUpAngle)
	assert.Equal(t, 0, r.Reps())
}

func TestRepCounterObserveFrame(t *testing.T) {
	r := NewRepCounter()

	down := frame(map[int]Landmark{
		LeftShoulder: Point(1, 0), LeftElbow: Point(0, 0), LeftWrist: Point(1, 0.5),
	})
	up := frame(map[int]Landmark{
		LeftShoulder: Point(-1, 0), LeftElbow: Point(0, 0), LeftWrist: Point(1, 0),
	})

	r.Observe(down)
	r.Observe(frame(nil))
	assert.Equal(t, 1, r.Observe(up))
}
