package game

import (
	"sort"

	"github.com/SvenDH/go-freecell/config"
)

// Game is one deal of FreeCell: the table, the cards and the pointer
// session acting on them. It is driven from a single goroutine, one frame
// at a time: HandlePointer for input, Update for the clock, then Events and
// Renderables for the presentation.
type Game struct {
	Seed    int64
	Layout  *Layout
	Deck    *Deck
	Dealer  *Dealer
	Session *DragSession

	cfg   *config.Config
	moves int
	won   bool

	queue  []Event
	layers map[*Card]int
}

func New(cfg *config.Config, seed int64) *Game {
	g := &Game{cfg: cfg, Layout: NewLayout(cfg)}
	g.deal(seed)
	return g
}

// Restart deals the current seed again.
func (g *Game) Restart() {
	g.deal(g.Seed)
}

// NewDeal throws the table away and deals seed.
func (g *Game) NewDeal(seed int64) {
	g.deal(seed)
}

func (g *Game) deal(seed int64) {
	g.Seed = seed
	g.Deck = NewDeck(g.cfg, g.Layout)
	g.Deck.Shuffle(seed)
	g.Dealer = NewDealer(g.cfg, g.Layout)
	g.Dealer.PrepareTable()
	g.Dealer.Deal(g.Deck)
	g.Session = NewDragSession(g.cfg, g.Dealer, g.Deck)
	g.moves = 0
	g.won = false
	g.queue = []Event{{Type: EventDealt}}
	g.layers = make(map[*Card]int, len(g.Deck.Cards))
	for _, c := range g.Deck.Cards {
		g.layers[c] = c.Layer()
	}
}

func (g *Game) Config() *config.Config {
	return g.cfg
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) Won() bool {
	return g.won
}

func (g *Game) HandlePointer(p Pointer) {
	for _, e := range g.Session.Handle(p) {
		g.queue = append(g.queue, e)
		if e.Type != EventMoved {
			continue
		}
		g.moves++
		if !g.won && g.Dealer.Won(len(g.cfg.Deck.Ranks)) {
			g.won = true
			g.queue = append(g.queue, Event{Type: EventWon})
		}
	}
}

// Update advances every card animation by dt seconds.
func (g *Game) Update(dt float32) {
	for _, c := range g.Deck.Cards {
		g.queue = append(g.queue, c.Update(dt)...)
	}
}

// Events drains the events queued since the last call. Relayer events are
// applied to the draw order as they are drained.
func (g *Game) Events() []Event {
	events := g.queue
	g.queue = nil
	for _, e := range events {
		if e.Type == EventRelayer {
			g.layers[e.Card] = e.Layer
		}
	}
	return events
}

// Settled reports whether no card is moving and nothing is lifted.
func (g *Game) Settled() bool {
	if g.Session.State() != SessionIdle {
		return false
	}
	for _, c := range g.Deck.Cards {
		if c.InTransition() {
			return false
		}
	}
	return true
}

// Verify checks that every card sits where its cell says it does.
func (g *Game) Verify() error {
	return g.Dealer.Verify(g.Deck)
}

type RenderKind int8

const (
	RenderCell RenderKind = iota
	RenderShadow
	RenderCard
)

const cellLayer = -1

// Renderable is one thing to draw this frame.
type Renderable struct {
	Kind        RenderKind
	Layer       int
	Rect        Rect
	Highlighted bool
	Card        *Card
	Cell        Cell
}

// Renderables lists everything on the table in draw order: cells first,
// then cards and their shadows by layer, a shadow before a card on the same
// layer.
func (g *Game) Renderables() []Renderable {
	cells := g.Dealer.Cells()
	out := make([]Renderable, 0, len(cells)+2*len(g.Deck.Cards))
	for _, cell := range cells {
		out = append(out, Renderable{
			Kind:        RenderCell,
			Layer:       cellLayer,
			Rect:        cell.Rect(),
			Highlighted: cell.Highlighted(),
			Cell:        cell,
		})
	}
	for _, c := range g.Deck.Cards {
		layer := g.layers[c]
		out = append(out,
			Renderable{Kind: RenderShadow, Layer: layer - 1, Rect: c.Shadow().Rect(), Card: c},
			Renderable{Kind: RenderCard, Layer: layer, Rect: c.Rect(), Card: c},
		)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Layer != out[j].Layer {
			return out[i].Layer < out[j].Layer
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
