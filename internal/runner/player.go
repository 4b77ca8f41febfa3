package runner

// PlayerState is the mutable state of the runner character for one run.
type PlayerState struct {
	Lane        Lane
	CoffeeCount int // Only ever increases during a run
	Speed       float64
}

// MoveLeft shifts one lane left, staying put at the edge.
func (p *PlayerState) MoveLeft() {
	p.Lane = p.Lane.Shift(-1)
}

// MoveRight shifts one lane right, staying put at the edge.
func (p *PlayerState) MoveRight() {
	p.Lane = p.Lane.Shift(1)
}
