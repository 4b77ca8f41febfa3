package runner

import "github.com/vovakirdan/espresso-rush/internal/core"

// Lane is one of the three horizontal tracks, stored as -1, 0 or 1.
type Lane int

const (
	LaneLeft   Lane = -1
	LaneCenter Lane = 0
	LaneRight  Lane = 1
)

// LaneCount is the number of lanes on the road.
const LaneCount = 3

// Shift moves the lane by delta steps, clamping at the outer lanes.
func (l Lane) Shift(delta int) Lane {
	return Lane(core.Clamp(int(l)+delta, int(LaneLeft), int(LaneRight)))
}

// Index returns the lane as a 0-based column index (0, 1, 2).
func (l Lane) Index() int {
	return int(l) - int(LaneLeft)
}

// String returns the lane name.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneCenter:
		return "center"
	case LaneRight:
		return "right"
	default:
		return "invalid"
	}
}
