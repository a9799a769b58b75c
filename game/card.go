package game

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/SvenDH/go-freecell/config"
)

type Color int8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Face identifies a card by its suit and rank indices.
type Face struct {
	Suit, Rank int
}

// Card is a single playing card. Suit, rank and color never change; the rest
// tracks where the card lives and how it is being animated there.
type Card struct {
	Suit  int
	Rank  int
	Color Color
	Name  string

	// Screen position of the top-left corner.
	X, Y float32

	state    CardState
	previous CardState
	cell     Cell
	row      int

	// layer is where the card is drawn now, restLayer where it is drawn
	// once it settles in its cell.
	layer     int
	restLayer int

	transition   bool
	delay        float32
	tweenX       *gween.Tween
	tweenY       *gween.Tween
	landingSound bool

	dragOffsetX, dragOffsetY float32

	shadow *Shadow
	layout *Layout
	timing config.Timing
}

func newCard(suit, rank int, color Color, name string, layout *Layout, timing config.Timing, shadowOffset, movingShadowOffset float32) *Card {
	c := &Card{
		Suit:         suit,
		Rank:         rank,
		Color:        color,
		Name:         name,
		state:        AtDealer,
		previous:     AtDealer,
		landingSound: true,
		layout:       layout,
		timing:       timing,
	}
	x, y := layout.DealerPos()
	c.X, c.Y = float32(x), float32(y)
	c.shadow = newShadow(c, shadowOffset, movingShadowOffset)
	return c
}

func (c *Card) String() string {
	return c.Name
}

func (c *Card) State() CardState {
	return c.state
}

// Cell returns the cell whose slot holds the card, nil while at the dealer.
func (c *Card) Cell() Cell {
	return c.cell
}

// Row is the card's index in its cell's slot.
func (c *Card) Row() int {
	return c.row
}

func (c *Card) Layer() int {
	return c.layer
}

func (c *Card) InTransition() bool {
	return c.transition
}

func (c *Card) Shadow() *Shadow {
	return c.shadow
}

func (c *Card) Rect() Rect {
	w, h := c.layout.CardSize()
	return Rect{X: int(math.Round(float64(c.X))), Y: int(math.Round(float64(c.Y))), W: w, H: h}
}

type LocationKind int8

const (
	LocationDealer LocationKind = iota
	LocationFoundation
	LocationFree
	LocationColumn
)

type Location struct {
	Kind   LocationKind
	Column int
	Row    int
}

func (c *Card) Location() Location {
	if c.cell == nil {
		return Location{Kind: LocationDealer}
	}
	loc := Location{Column: c.cell.Column(), Row: c.row}
	switch c.cell.Kind() {
	case FoundationKind:
		loc.Kind = LocationFoundation
	case FreeKind:
		loc.Kind = LocationFree
	case ColumnKind:
		loc.Kind = LocationColumn
	}
	return loc
}

// Target is the canonical position for the current state.
func (c *Card) Target() (float32, float32) {
	switch c.state {
	case InFoundationCell, InFreeCell:
		r := c.cell.Rect()
		return float32(r.X), float32(r.Y)
	case InColumnCell:
		x, y := c.layout.ColumnCardPos(c.cell.Column(), c.row)
		return float32(x), float32(y)
	}
	return c.X, c.Y
}

// deal moves the card from the dealer into its column after delay seconds.
func (c *Card) deal(delay float32) {
	c.setState(InColumnCell)
	c.layer = c.restLayer
	c.startTransition(delay)
	c.landingSound = true
}

// Drag lifts the card above everything else and pins it to the pointer.
func (c *Card) Drag(layer int, px, py float32) Event {
	c.setState(Dragging)
	c.transition = true
	c.delay = 0
	c.tweenX, c.tweenY = nil, nil
	c.dragOffsetX = c.X - px
	c.dragOffsetY = c.Y - py
	c.layer = layer
	return Event{Type: EventRelayer, Card: c, Layer: c.layer}
}

func (c *Card) Follow(px, py float32) {
	if c.state != Dragging {
		return
	}
	c.X = px + c.dragOffsetX
	c.Y = py + c.dragOffsetY
}

// Drop puts a dragged card into state and animates it home after delay
// seconds. The card stays on its drag layer until it lands.
func (c *Card) Drop(state CardState, delay float32, sound bool) {
	c.setState(state)
	c.startTransition(delay)
	c.landingSound = sound
}

func (c *Card) startTransition(delay float32) {
	c.transition = true
	c.delay = delay
	c.tweenX, c.tweenY = nil, nil
}

// Update advances the running transition by dt seconds.
func (c *Card) Update(dt float32) []Event {
	c.shadow.update(dt)
	if !c.transition || c.state == Dragging {
		return nil
	}
	if c.delay > 0 {
		c.delay -= dt
		if c.delay > 0 {
			return nil
		}
		dt = -c.delay
		c.delay = 0
	}

	tx, ty := c.Target()
	if c.tweenX == nil || c.tweenY == nil {
		duration := float32(c.timing.CardMovingTime)
		c.tweenX = gween.New(c.X, tx, duration, ease.OutQuint)
		c.tweenY = gween.New(c.Y, ty, duration, ease.OutQuint)
	}
	x, doneX := c.tweenX.Update(dt)
	y, doneY := c.tweenY.Update(dt)
	c.X, c.Y = x, y

	threshold := float32(c.timing.SnapThreshold)
	if !(doneX && doneY) && (abs32(tx-x) > threshold || abs32(ty-y) > threshold) {
		return nil
	}

	c.X, c.Y = tx, ty
	c.transition = false
	c.tweenX, c.tweenY = nil, nil
	c.layer = c.restLayer
	events := []Event{{Type: EventRelayer, Card: c, Layer: c.layer}}
	if c.previous != AtDealer && c.landingSound {
		events = append(events, Event{Type: EventLanded, Card: c, Cell: c.cell})
	}
	return events
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
