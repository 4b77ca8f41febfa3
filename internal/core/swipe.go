package core

// SwipeDetector turns press/release pairs into lane commands the way a touch
// screen would: a short horizontal drag is a tap (fire), a long one is a
// swipe (move). Anything in between is ignored.
type SwipeDetector struct {
	TapMax   float64 // |dx| below this is a tap
	SwipeMin float64 // |dx| above this is a swipe

	start   float64
	pressed bool
}

// NewSwipeDetector creates a detector with the given thresholds.
func NewSwipeDetector(tapMax, swipeMin float64) *SwipeDetector {
	return &SwipeDetector{TapMax: tapMax, SwipeMin: swipeMin}
}

// Press records the horizontal position where the gesture started.
func (s *SwipeDetector) Press(x float64) {
	s.start = x
	s.pressed = true
}

// Release finishes the gesture and returns the resulting action.
// Returns ActionNone when no gesture is in progress.
func (s *SwipeDetector) Release(x float64) Action {
	if !s.pressed {
		return ActionNone
	}
	s.pressed = false

	diff := x - s.start
	switch {
	case AbsF(diff) < s.TapMax:
		return ActionFire
	case diff > s.SwipeMin:
		return ActionRight
	case diff < -s.SwipeMin:
		return ActionLeft
	}
	return ActionNone
}
