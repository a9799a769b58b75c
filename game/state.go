package game

import "fmt"

type CardState int8

const (
	AtDealer CardState = iota
	Dragging
	InFoundationCell
	InFreeCell
	InColumnCell
)

func (s CardState) String() string {
	switch s {
	case AtDealer:
		return "dealer"
	case Dragging:
		return "dragging"
	case InFoundationCell:
		return "foundation"
	case InFreeCell:
		return "free"
	case InColumnCell:
		return "column"
	default:
		return "?"
	}
}

// Placed reports whether the state belongs to a card resting in a cell.
func (s CardState) Placed() bool {
	return s == InFoundationCell || s == InFreeCell || s == InColumnCell
}

var cardTransitions = map[CardState][]CardState{
	AtDealer:         {InColumnCell},
	InFoundationCell: {Dragging},
	InFreeCell:       {Dragging},
	InColumnCell:     {Dragging},
	Dragging:         {InFoundationCell, InFreeCell, InColumnCell},
}

func CanTransition(from, to CardState) bool {
	for _, next := range cardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// setState is the only place a card changes state.
func (c *Card) setState(next CardState) {
	if !CanTransition(c.state, next) {
		panic(fmt.Sprintf("card %s: illegal transition %s -> %s", c, c.state, next))
	}
	c.previous = c.state
	c.state = next
}
