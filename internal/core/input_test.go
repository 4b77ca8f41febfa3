package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionFire)
	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("Has() should report set actions")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionFire)
	if !zero.Has(ActionFire) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestSwipeDetector(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		expected   Action
	}{
		{"tap", 40, 42, ActionFire},
		{"swipe right", 10, 50, ActionRight},
		{"swipe left", 50, 10, ActionLeft},
		{"dead zone", 10, 30, ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewSwipeDetector(10, 30)
			d.Press(tc.start)
			if got := d.Release(tc.end); got != tc.expected {
				t.Errorf("Release() = %v, expected %v", got, tc.expected)
			}
		})
	}

	d := NewSwipeDetector(10, 30)
	if got := d.Release(5); got != ActionNone {
		t.Errorf("Release() without Press = %v, expected None", got)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	c.Advance(8 * time.Second)
	if got := c.Now().Sub(start); got != 8*time.Second {
		t.Errorf("Advance() moved clock by %v, expected 8s", got)
	}
}
