package runner

import "github.com/vovakirdan/espresso-rush/internal/core"

// dangerWindow is how far above the player's row a milk carton is treated
// as an immediate threat by the autopilot.
const dangerWindow = 25

// Autopilot returns a simple deterministic Driver: shoot milk when possible,
// otherwise step away from milk about to land and drift toward the nearest coffee.
func Autopilot(row float64) Driver {
	return func(snap Snapshot) core.InputFrame {
		in := core.NewInputFrame()
		if snap.Phase != PhasePlaying {
			return in
		}

		threat := [LaneCount]bool{}
		coffee := [LaneCount]float64{}
		for _, c := range snap.Collectibles {
			if c.Collected || c.Y > row+5 {
				continue
			}
			idx := c.Lane.Index()
			if c.Kind == KindMilk && c.Y > row-dangerWindow {
				threat[idx] = true
			}
			if c.Kind == KindCoffee && c.Y > coffee[idx] {
				coffee[idx] = c.Y
			}
		}

		here := snap.Lane.Index()
		if threat[here] && snap.CanFire && snap.Mode != ModePowerBurst {
			in.Set(core.ActionFire)
			return in
		}
		if threat[here] && snap.Mode != ModePowerBurst {
			switch {
			case here > 0 && !threat[here-1]:
				in.Set(core.ActionLeft)
			case here < LaneCount-1 && !threat[here+1]:
				in.Set(core.ActionRight)
			}
			return in
		}

		best := here
		for i := range coffee {
			if coffee[i] > coffee[best] && !threat[i] {
				best = i
			}
		}
		switch {
		case best < here && !threat[here-1]:
			in.Set(core.ActionLeft)
		case best > here && !threat[here+1]:
			in.Set(core.ActionRight)
		}
		return in
	}
}
