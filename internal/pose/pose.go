// Package pose turns body landmarks produced by an external pose
// estimator into joint angles, a posture score and a rep count. It does
// no detection of its own and the workout session never depends on it.
package pose

import (
	"math"
)

// Landmark indices follow the 33-point BlazePose topology.
const (
	LeftShoulder  = 11
	RightShoulder = 12
	LeftElbow     = 13
	RightElbow    = 14
	LeftWrist     = 15
	RightWrist    = 16
	LeftHip       = 23
	RightHip      = 24
)

// Landmark is a normalised image coordinate. Present is false for points
// the estimator did not report.
type Landmark struct {
	X       float64
	Y       float64
	Present bool
}

func Point(x, y float64) Landmark {
	return Landmark{X: x, Y: y, Present: true}
}

// Frame is one set of landmarks indexed by topology position.
type Frame []Landmark

func (f Frame) At(i int) Landmark {
	if i < 0 || i >= len(f) {
		return Landmark{}
	}
	return f[i]
}

// Angle returns the angle at b formed by a-b-c in degrees, or NaN when a
// point is missing or coincides with b.
func Angle(a, b, c Landmark) float64 {
	if !a.Present || !b.Present || !c.Present {
		return math.NaN()
	}

	abx, aby := a.X-b.X, a.Y-b.Y
	cbx, cby := c.X-b.X, c.Y-b.Y

	mab := math.Hypot(abx, aby)
	mcb := math.Hypot(cbx, cby)
	if mab == 0 || mcb == 0 {
		return math.NaN()
	}

	cos := (abx*cbx + aby*cby) / (mab * mcb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// PostureScore rates how upright the torso is, 0-100: the shoulder
// midpoint to hip midpoint axis loses 1.5 points per degree off vertical.
func PostureScore(f Frame) int {
	ls, rs := f.At(LeftShoulder), f.At(RightShoulder)
	lh, rh := f.At(LeftHip), f.At(RightHip)
	if !ls.Present || !rs.Present || !lh.Present || !rh.Present {
		return 0
	}

	sx, sy := (ls.X+rs.X)/2, (ls.Y+rs.Y)/2
	hx, hy := (lh.X+rh.X)/2, (lh.Y+rh.Y)/2

	dev := math.Abs(math.Atan2(hx-sx, hy-sy)) * 180 / math.Pi
	score := math.Round(100 - dev*1.5)
	return int(math.Max(0, math.Min(100, score)))
}

// ElbowAngle is the smaller of the two elbow angles, ignoring a side that
// cannot be measured. NaN when neither can.
func ElbowAngle(f Frame) float64 {
	left := Angle(f.At(LeftShoulder), f.At(LeftElbow), f.At(LeftWrist))
	right := Angle(f.At(RightShoulder), f.At(RightElbow), f.At(RightWrist))

	switch {
	case math.IsNaN(left) && math.IsNaN(right):
		return math.NaN()
	case math.IsNaN(left):
		return right
	case math.IsNaN(right):
		return left
	default:
		return math.Min(left, right)
	}
}
