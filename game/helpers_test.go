package game

import (
	"testing"

	"github.com/SvenDH/go-freecell/config"
)

func newTable(t *testing.T) (*Dealer, *Deck) {
	t.Helper()
	cfg := config.Default()
	layout := NewLayout(cfg)
	d := NewDealer(cfg, layout)
	d.PrepareTable()
	return d, NewDeck(cfg, layout)
}

func lookup(t *testing.T, deck *Deck, name string) *Card {
	t.Helper()
	c := deck.Lookup(name)
	if c == nil {
		t.Fatalf("no card named %q", name)
	}
	return c
}

func lookupAll(t *testing.T, deck *Deck, names ...string) []*Card {
	t.Helper()
	cards := make([]*Card, len(names))
	for i, name := range names {
		cards[i] = lookup(t, deck, name)
	}
	return cards
}

// put places cards on top of cell as if they had landed there.
func put(t *testing.T, d *Dealer, deck *Deck, cell Cell, names ...string) {
	t.Helper()
	for _, name := range names {
		c := lookup(t, deck, name)
		switch cell := cell.(type) {
		case *FoundationCell:
			d.AddCardFoundationCell(c, cell)
		case *FreeCell:
			d.AddCardFreeCell(c, cell)
		case *ColumnCell:
			d.AddCardColumnCell(c, cell)
		}
		c.state = cell.Kind().State()
		c.previous = c.state
		c.transition = false
		c.X, c.Y = c.Target()
		c.layer = c.restLayer
	}
}

// arrange clears the table of g and lays out the given columns and free
// cells. Cards not named stay at the dealer.
func arrange(t *testing.T, g *Game, columns [][]string, free []string) {
	t.Helper()
	g.Dealer.PrepareTable()
	for _, c := range g.Deck.Cards {
		c.cell = nil
		c.state = AtDealer
		c.previous = AtDealer
		c.transition = false
		c.delay = 0
		c.X, c.Y = 0, 0
		c.row = 0
	}
	for col, names := range columns {
		put(t, g.Dealer, g.Deck, g.Dealer.Columns[col], names...)
	}
	for i, name := range free {
		put(t, g.Dealer, g.Deck, g.Dealer.FreeCells[i], name)
	}
	for _, c := range g.Deck.Cards {
		if c.state == AtDealer {
			x, y := g.Layout.DealerPos()
			c.X, c.Y = float32(x), float32(y)
		}
	}
	g.Session = NewDragSession(g.cfg, g.Dealer, g.Deck)
	g.queue = nil
	for _, c := range g.Deck.Cards {
		g.layers[c] = c.Layer()
	}
}

// settle runs frames until nothing moves.
func settle(t *testing.T, g *Game) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < 1000; i++ {
		if g.Settled() {
			return append(events, g.Events()...)
		}
		g.Update(1.0 / 60)
		events = append(events, g.Events()...)
	}
	t.Fatal("table did not settle")
	return nil
}

func center(r Rect) (float32, float32) {
	x, y := r.Center()
	return float32(x), float32(y)
}

// dragTo presses on card, moves it so it sits exactly on rect and releases.
func dragTo(g *Game, card *Card, rect Rect) {
	px, py := center(card.Rect())
	g.HandlePointer(Pointer{Action: PointerDown, X: px, Y: py})
	tx, ty := center(rect)
	g.HandlePointer(Pointer{Action: PointerMove, X: tx, Y: ty})
	g.HandlePointer(Pointer{Action: PointerUp, X: tx, Y: ty})
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// moveCardTo presses on card and drags it until its top-left corner is at
// x, y, without releasing.
func moveCardTo(g *Game, card *Card, x, y float32) (float32, float32) {
	px, py := center(card.Rect())
	g.HandlePointer(Pointer{Action: PointerDown, X: px, Y: py})
	tx, ty := px+x-card.X, py+y-card.Y
	g.HandlePointer(Pointer{Action: PointerMove, X: tx, Y: ty})
	return tx, ty
}

func highlightedCells(g *Game) []Cell {
	var out []Cell
	for _, c := range g.Dealer.Cells() {
		if c.Highlighted() {
			out = append(out, c)
		}
	}
	return out
}
