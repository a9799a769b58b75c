package game

import (
	"github.com/SvenDH/go-freecell/config"
)

type SessionState int8

const (
	SessionIdle SessionState = iota
	SessionDragging
)

func (s SessionState) String() string {
	if s == SessionDragging {
		return "dragging"
	}
	return "idle"
}

type PointerAction int8

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
)

// PrimaryButton is the only button that picks up and drops cards.
const PrimaryButton = 0

// Pointer is one mouse or touch input in screen coordinates.
type Pointer struct {
	Action PointerAction
	X, Y   float32
	Button int
}

type sessionHandler func(*DragSession, Pointer) []Event

// sessionHandlers is the transition table of the drag session. Inputs with
// no entry for the current state are ignored.
var sessionHandlers = map[SessionState]map[PointerAction]sessionHandler{
	SessionIdle: {
		PointerDown: (*DragSession).pickUp,
	},
	SessionDragging: {
		PointerMove: (*DragSession).preview,
		PointerUp:   (*DragSession).drop,
	},
}

// DragSession tracks the cards lifted by the pointer between a press and
// the matching release.
type DragSession struct {
	dealer *Dealer
	deck   *Deck

	dragLayer int
	stagger   float32

	state SessionState
	// group holds the lifted cards in column order, the grabbed card first.
	group []*Card
}

func NewDragSession(cfg *config.Config, dealer *Dealer, deck *Deck) *DragSession {
	return &DragSession{
		dealer:    dealer,
		deck:      deck,
		dragLayer: cfg.Layout.DragLayer,
		stagger:   float32(cfg.Timing.Stagger),
	}
}

func (s *DragSession) State() SessionState {
	return s.state
}

// Group returns the lifted cards, nil when idle.
func (s *DragSession) Group() []*Card {
	return s.group
}

func (s *DragSession) Handle(p Pointer) []Event {
	handler, ok := sessionHandlers[s.state][p.Action]
	if !ok {
		return nil
	}
	return handler(s, p)
}

// cardAt returns the card drawn on top at x, y: the highest row wins, then
// the highest layer.
func (s *DragSession) cardAt(x, y float32) *Card {
	var found *Card
	for _, c := range s.deck.Cards {
		if !c.state.Placed() || !c.Rect().InBounds(int(x), int(y)) {
			continue
		}
		if found == nil || c.row > found.row || (c.row == found.row && c.layer > found.layer) {
			found = c
		}
	}
	return found
}

func (s *DragSession) pickUp(p Pointer) []Event {
	if p.Button != PrimaryButton {
		return nil
	}
	card := s.cardAt(p.X, p.Y)
	if card == nil {
		return nil
	}
	ok, run := s.dealer.CanDrag(card)
	if !ok {
		return nil
	}
	if run == nil {
		run = []*Card{card}
	}

	events := make([]Event, 0, len(run)+1)
	for i, c := range run {
		events = append(events, c.Drag(s.dragLayer+stackLayer(i), p.X, p.Y))
	}
	events = append(events, Event{Type: EventPickUp, Card: run[0], Cell: run[0].cell})
	s.group = run
	s.state = SessionDragging
	return events
}

func (s *DragSession) follow(p Pointer) {
	for _, c := range s.group {
		c.Follow(p.X, p.Y)
	}
}

// target is the cell the grabbed card overlaps, the nearest one by center
// distance when it overlaps several.
func (s *DragSession) target() Cell {
	rect := s.group[0].Rect()
	var (
		best     Cell
		bestDist float64
	)
	for _, cell := range s.dealer.Cells() {
		if !rect.Overlaps(cell.Rect()) {
			continue
		}
		dist := rect.Distance(cell.Rect())
		if best == nil || dist < bestDist {
			best, bestDist = cell, dist
		}
	}
	return best
}

func (s *DragSession) highlight(target Cell) {
	for _, cell := range s.dealer.Cells() {
		cell.SetHighlight(cell == target)
	}
}

func (s *DragSession) preview(p Pointer) []Event {
	s.follow(p)
	s.highlight(s.target())
	return nil
}

func (s *DragSession) drop(p Pointer) []Event {
	if p.Button != PrimaryButton {
		return nil
	}
	s.follow(p)

	var events []Event
	target := s.target()
	if s.canDrop(target) {
		s.move(target)
		events = append(events, Event{Type: EventMoved, Card: s.group[0], Cell: target})
	} else {
		s.snapBack()
	}

	s.highlight(nil)
	s.group = nil
	s.state = SessionIdle
	return events
}

func (s *DragSession) canDrop(target Cell) bool {
	card := s.group[0]
	switch cell := target.(type) {
	case *FoundationCell:
		return len(s.group) == 1 && s.dealer.CanDropFoundationCell(card, cell)
	case *FreeCell:
		return len(s.group) == 1 && s.dealer.CanDropFreeCell(cell)
	case *ColumnCell:
		return s.dealer.CanDropColumnCell(card, cell, s.group)
	}
	return false
}

// move takes the group out of its cell and stacks it onto target bottom
// card first. Only the grabbed card plays a sound when it lands.
func (s *DragSession) move(target Cell) {
	for _, card := range s.group {
		switch cell := card.cell.(type) {
		case *ColumnCell:
			s.dealer.RemoveCardColumnCell(card, cell)
		case *FreeCell:
			s.dealer.RemoveCardFreeCell(card, cell)
		case *FoundationCell:
			s.dealer.RemoveCardFoundationCell(card, cell)
		}
	}
	for i, card := range s.group {
		switch cell := target.(type) {
		case *ColumnCell:
			s.dealer.AddCardColumnCell(card, cell)
		case *FreeCell:
			s.dealer.AddCardFreeCell(card, cell)
		case *FoundationCell:
			s.dealer.AddCardFoundationCell(card, cell)
		}
		card.Drop(target.Kind().State(), float32(i)*s.stagger, i == 0)
	}
}

func (s *DragSession) snapBack() {
	for i, card := range s.group {
		card.Drop(card.previous, float32(i)*s.stagger, i == 0)
	}
}
