package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCoffeeCollected EventKind = iota
	EventMilkDestroyed             // a fireball hit a milk carton
	EventShieldBounce              // milk absorbed during power burst
	EventFireballUnlocked
	EventPowerBurstStarted
	EventPowerBurstEnded
	EventRunOver
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventCoffeeCollected:
		return "coffee"
	case EventMilkDestroyed:
		return "milk_destroyed"
	case EventShieldBounce:
		return "shield_bounce"
	case EventFireballUnlocked:
		return "fireball_unlocked"
	case EventPowerBurstStarted:
		return "power_burst_started"
	case EventPowerBurstEnded:
		return "power_burst_ended"
	case EventRunOver:
		return "run_over"
	default:
		return "unknown"
	}
}

// Event is a single tick event. Value carries the coffee count or score
// depending on the kind.
type Event struct {
	Kind  EventKind
	Value int
}
