package game

import (
	"testing"

	"github.com/SvenDH/go-freecell/config"
)

func TestRestartDealsSameSeed(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, 77)
	settle(t, g)
	dragTo(g, g.Dealer.Columns[0].Top(), g.Dealer.FreeCells[0].Rect())
	if g.Moves() != 1 {
		t.Fatalf("moves = %d, want 1", g.Moves())
	}

	g.Restart()
	fresh := New(cfg, 77)
	for i := range g.Deck.Cards {
		if g.Deck.Cards[i].Name != fresh.Deck.Cards[i].Name {
			t.Fatalf("card %d: %s, want %s", i, g.Deck.Cards[i], fresh.Deck.Cards[i])
		}
	}
	if g.Moves() != 0 || g.Won() || g.Dealer.FreeCells[0].Len() != 0 {
		t.Fatal("restart kept state from the previous game")
	}
	if g.Seed != 77 {
		t.Fatalf("seed %d after restart", g.Seed)
	}
}

func TestRenderablesOrder(t *testing.T) {
	g := New(config.Default(), 8)
	settle(t, g)

	rs := g.Renderables()
	if want := 16 + 2*52; len(rs) != want {
		t.Fatalf("got %d renderables, want %d", len(rs), want)
	}
	for i := 0; i < 16; i++ {
		if rs[i].Kind != RenderCell {
			t.Fatalf("renderable %d is %v, cells must come first", i, rs[i].Kind)
		}
	}
	for i := 1; i < len(rs); i++ {
		a, b := rs[i-1], rs[i]
		if a.Layer > b.Layer || (a.Layer == b.Layer && a.Kind > b.Kind) {
			t.Fatalf("renderable %d (%v layer %d) drawn after %v layer %d", i, b.Kind, b.Layer, a.Kind, a.Layer)
		}
	}
}

func TestRenderablesFollowRelayerEvents(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, 8)
	settle(t, g)

	top := g.Dealer.Columns[0].Top()
	px, py := center(top.Rect())
	g.HandlePointer(Pointer{Action: PointerDown, X: px, Y: py})

	layerOf := func() int {
		for _, r := range g.Renderables() {
			if r.Kind == RenderCard && r.Card == top {
				return r.Layer
			}
		}
		return -1
	}
	if got := layerOf(); got != stackLayer(6) {
		t.Fatalf("layer %d before events are drained, want %d", got, stackLayer(6))
	}
	g.Events()
	if got := layerOf(); got != cfg.Layout.DragLayer+stackLayer(0) {
		t.Fatalf("layer %d while dragging, want %d", got, cfg.Layout.DragLayer+stackLayer(0))
	}
	rs := g.Renderables()
	if last := rs[len(rs)-1]; last.Card != top {
		t.Fatalf("dragged card is not drawn last, %s is", last.Card)
	}
}

func TestEveryDealAnnouncesItself(t *testing.T) {
	g := New(config.Default(), 3)
	if n := countEvents(settle(t, g), EventDealt); n != 1 {
		t.Fatalf("new game queued %d dealt events, want 1", n)
	}

	tests := []struct {
		name string
		deal func()
	}{
		{"restart", g.Restart},
		{"new deal", func() { g.NewDeal(4) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.deal()
			events := g.Events()
			if len(events) != 1 || events[0].Type != EventDealt {
				t.Fatalf("got %v, want a single dealt event before any frame", events)
			}
			if n := countEvents(settle(t, g), EventDealt); n != 0 {
				t.Fatalf("dealing queued %d more dealt events", n)
			}
		})
	}
}
