package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Shadow is drawn under its card. It mirrors the card's movement and grows
// its offset while the card is lifted.
type Shadow struct {
	card *Card

	offset       float32
	rest, lifted float32
	lift         *gween.Tween
	liftTarget   float32
}

func newShadow(card *Card, rest, lifted float32) *Shadow {
	return &Shadow{card: card, offset: rest, rest: rest, lifted: lifted, liftTarget: rest}
}

func (s *Shadow) update(dt float32) {
	target := s.rest
	if s.card.state == Dragging {
		target = s.lifted
	}
	if target != s.liftTarget {
		s.lift = gween.New(s.offset, target, float32(s.card.timing.CardMovingTime), ease.OutQuint)
		s.liftTarget = target
	}
	if s.lift == nil {
		return
	}
	offset, done := s.lift.Update(dt)
	s.offset = offset
	if done {
		s.offset = target
		s.lift = nil
	}
}

func (s *Shadow) Offset() float32 {
	return s.offset
}

func (s *Shadow) Layer() int {
	return s.card.layer - 1
}

func (s *Shadow) Rect() Rect {
	r := s.card.Rect()
	r.X += int(s.offset)
	r.Y += int(s.offset)
	return r
}
