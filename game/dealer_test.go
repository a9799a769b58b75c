package game

import (
	"errors"
	"reflect"
	"testing"

	"github.com/SvenDH/go-freecell/config"
)

func TestDealPartition(t *testing.T) {
	cfg := config.Default()
	for seed := int64(0); seed < 20; seed++ {
		g := New(cfg, seed)

		sizes := make([]int, len(g.Dealer.Columns))
		for i, col := range g.Dealer.Columns {
			sizes[i] = col.Len()
		}
		if want := []int{7, 7, 7, 7, 6, 6, 6, 6}; !reflect.DeepEqual(sizes, want) {
			t.Fatalf("seed %d: column sizes %v, want %v", seed, sizes, want)
		}
		if err := g.Verify(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, c := range g.Deck.Cards {
			if c.State() != InColumnCell {
				t.Fatalf("seed %d: %s is %s after the deal", seed, c, c.State())
			}
		}
	}
}

func TestDealIsColumnMajor(t *testing.T) {
	g := New(config.Default(), 7)
	idx := 0
	for col, cell := range g.Dealer.Columns {
		for row, c := range cell.Cards() {
			if c != g.Deck.Cards[idx] {
				t.Fatalf("column %d row %d holds %s, want deck card %d (%s)", col, row, c, idx, g.Deck.Cards[idx])
			}
			idx++
		}
	}
}

func TestDealDelaysIncrease(t *testing.T) {
	g := New(config.Default(), 3)
	for i := 1; i < len(g.Deck.Cards); i++ {
		prev, cur := g.Deck.Cards[i-1], g.Deck.Cards[i]
		if cur.delay < prev.delay {
			t.Fatalf("%s starts at %v, before %s at %v", cur, cur.delay, prev, prev.delay)
		}
	}
}

func TestSameSeedSameDeal(t *testing.T) {
	cfg := config.Default()
	a, b := New(cfg, 42), New(cfg, 42)
	for i := range a.Deck.Cards {
		if a.Deck.Cards[i].Name != b.Deck.Cards[i].Name {
			t.Fatalf("card %d: %s != %s", i, a.Deck.Cards[i], b.Deck.Cards[i])
		}
	}
	c := New(cfg, 43)
	same := true
	for i := range a.Deck.Cards {
		if a.Deck.Cards[i].Name != c.Deck.Cards[i].Name {
			same = false
		}
	}
	if same {
		t.Fatal("seeds 42 and 43 dealt the same table")
	}
}

func TestIsValidMultipleCardDrag(t *testing.T) {
	d, deck := newTable(t)

	tests := []struct {
		cards []string
		want  bool
	}{
		{[]string{"7C", "6D", "5S"}, true},
		{[]string{"7C", "6C"}, false},
		{[]string{"7C", "5D"}, false},
		{[]string{"7C", "8D"}, false},
		{[]string{"KS"}, true},
		{[]string{"KH", "QS", "JD", "10C", "9H"}, true},
		{[]string{"KH", "QS", "JD", "10D"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		got := d.IsValidMultipleCardDrag(lookupAll(t, deck, tt.cards...))
		if got != tt.want {
			t.Errorf("IsValidMultipleCardDrag(%v) = %v, want %v", tt.cards, got, tt.want)
		}
	}
}

func TestCanDropFoundationCell(t *testing.T) {
	tests := []struct {
		name string
		pile []string
		card string
		want bool
	}{
		{"ace on empty", nil, "AS", true},
		{"two on empty", nil, "2S", false},
		{"king on empty", nil, "KH", false},
		{"same suit next rank", []string{"AH", "2H", "3H", "4H", "5H"}, "6H", true},
		{"other suit", []string{"AH", "2H", "3H", "4H", "5H"}, "6S", false},
		{"same color other suit", []string{"AH", "2H", "3H", "4H", "5H"}, "6D", false},
		{"skipped rank", []string{"AH", "2H", "3H", "4H", "5H"}, "7H", false},
		{"lower rank", []string{"AH", "2H", "3H", "4H", "5H"}, "4H", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, deck := newTable(t)
			put(t, d, deck, d.Foundations[0], tt.pile...)
			if got := d.CanDropFoundationCell(lookup(t, deck, tt.card), d.Foundations[0]); got != tt.want {
				t.Errorf("CanDropFoundationCell(%s) = %v, want %v", tt.card, got, tt.want)
			}
		})
	}
}

func TestCanDropFreeCell(t *testing.T) {
	d, deck := newTable(t)
	if !d.CanDropFreeCell(d.FreeCells[2]) {
		t.Fatal("empty free cell refused a card")
	}
	put(t, d, deck, d.FreeCells[2], "9D")
	if d.CanDropFreeCell(d.FreeCells[2]) {
		t.Fatal("occupied free cell accepted a card")
	}
}

func TestCanDropColumnCell(t *testing.T) {
	tests := []struct {
		name string
		pile []string
		card string
		want bool
	}{
		{"king on empty", nil, "KS", true},
		{"three on empty", nil, "3D", true},
		{"red seven on black eight", []string{"8S"}, "7H", true},
		{"other red seven", []string{"8S"}, "7D", true},
		{"black seven", []string{"8S"}, "7C", false},
		{"same suit seven", []string{"8S"}, "7S", false},
		{"red six", []string{"8S"}, "6H", false},
		{"red nine", []string{"8S"}, "9H", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, deck := newTable(t)
			put(t, d, deck, d.Columns[3], tt.pile...)
			card := lookup(t, deck, tt.card)
			if got := d.CanDropColumnCell(card, d.Columns[3], []*Card{card}); got != tt.want {
				t.Errorf("CanDropColumnCell(%s) = %v, want %v", tt.card, got, tt.want)
			}
		})
	}
}

func TestValidCellsCount(t *testing.T) {
	d, deck := newTable(t)
	if got := d.ValidCellsCount(d.Columns[0]); got != 4+7 {
		t.Fatalf("empty table: %d valid cells, want 11", got)
	}
	put(t, d, deck, d.FreeCells[0], "AS")
	put(t, d, deck, d.Columns[1], "KD")
	put(t, d, deck, d.Columns[0], "KC")
	if got := d.ValidCellsCount(d.Columns[0]); got != 3+6 {
		t.Fatalf("got %d valid cells, want 9", got)
	}
	if got := d.ValidCellsCount(d.Columns[2]); got != 3+5 {
		t.Fatalf("empty destination counted itself: got %d, want 8", got)
	}
}

func TestCanDropColumnCellCapacity(t *testing.T) {
	tests := []struct {
		name string
		free []string
		want bool
	}{
		{"two valid cells", []string{"JC", "JD"}, false},
		{"three valid cells", []string{"JC"}, true},
		{"four valid cells", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, deck := newTable(t)
			put(t, d, deck, d.Columns[0], "8S")
			put(t, d, deck, d.Columns[1], "2C", "7H", "6C", "5D")
			for i, name := range []string{"KC", "KD", "KH", "QC", "QD", "QH"} {
				put(t, d, deck, d.Columns[2+i], name)
			}
			for i, name := range tt.free {
				put(t, d, deck, d.FreeCells[i], name)
			}

			group := lookupAll(t, deck, "7H", "6C", "5D")
			if got := d.CanDropColumnCell(group[0], d.Columns[0], group); got != tt.want {
				t.Errorf("with %d valid cells: got %v, want %v", d.ValidCellsCount(d.Columns[0]), got, tt.want)
			}
			// A lone card needs no spare cells.
			if !d.CanDropColumnCell(group[0], d.Columns[0], group[:1]) {
				t.Error("single card refused")
			}
		})
	}
}

func TestCanDrag(t *testing.T) {
	d, deck := newTable(t)
	put(t, d, deck, d.Columns[0], "KS", "9C", "8H", "7S")
	put(t, d, deck, d.Columns[1], "5D", "4C", "3C")
	put(t, d, deck, d.FreeCells[0], "QD")
	put(t, d, deck, d.Foundations[0], "AH")

	tests := []struct {
		card string
		ok   bool
		run  []string
	}{
		{"7S", true, nil},
		{"8H", true, []string{"8H", "7S"}},
		{"9C", true, []string{"9C", "8H", "7S"}},
		{"KS", false, nil},
		{"3C", true, nil},
		{"4C", false, nil},
		{"QD", true, nil},
		{"AH", false, nil},
		{"2H", false, nil},
	}
	for _, tt := range tests {
		ok, run := d.CanDrag(lookup(t, deck, tt.card))
		if ok != tt.ok {
			t.Errorf("CanDrag(%s) = %v, want %v", tt.card, ok, tt.ok)
		}
		var names []string
		for _, c := range run {
			names = append(names, c.Name)
		}
		if !reflect.DeepEqual(names, tt.run) {
			t.Errorf("CanDrag(%s) run = %v, want %v", tt.card, names, tt.run)
		}
	}
}

func TestAddAndRemoveKeepLocations(t *testing.T) {
	d, deck := newTable(t)
	put(t, d, deck, d.Columns[5], "9S", "8D", "7C")
	seven := lookup(t, deck, "7C")

	if got, want := seven.Location(), (Location{Kind: LocationColumn, Column: 5, Row: 2}); got != want {
		t.Fatalf("location %+v, want %+v", got, want)
	}
	d.RemoveCardColumnCell(seven, d.Columns[5])
	if seven.Cell() != nil || d.Columns[5].Len() != 2 {
		t.Fatalf("remove left cell=%v len=%d", seven.Cell(), d.Columns[5].Len())
	}
	d.AddCardFreeCell(seven, d.FreeCells[3])
	if got, want := seven.Location(), (Location{Kind: LocationFree, Column: 3}); got != want {
		t.Fatalf("location %+v, want %+v", got, want)
	}
	if d.FreeCells[3].Top() != seven {
		t.Fatal("free cell does not hold the card")
	}
}

func TestRemoveCardFoundationCellPanics(t *testing.T) {
	d, deck := newTable(t)
	put(t, d, deck, d.Foundations[1], "AD")

	defer func() {
		if recover() == nil {
			t.Fatal("removing a card from a foundation did not panic")
		}
	}()
	d.RemoveCardFoundationCell(lookup(t, deck, "AD"), d.Foundations[1])
}

func TestVerify(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		d, deck := newTable(t)
		if err := d.Verify(deck); !errors.Is(err, ErrCardMissing) {
			t.Fatalf("got %v, want ErrCardMissing", err)
		}
	})
	t.Run("duplicated", func(t *testing.T) {
		g := New(config.Default(), 1)
		top := g.Dealer.Columns[0].Top()
		g.Dealer.FreeCells[0].push(top)
		if err := g.Verify(); !errors.Is(err, ErrCardDuplicated) {
			t.Fatalf("got %v, want ErrCardDuplicated", err)
		}
	})
	t.Run("mismatch", func(t *testing.T) {
		g := New(config.Default(), 1)
		g.Dealer.Columns[2].Top().row = 0
		if err := g.Verify(); !errors.Is(err, ErrLocationMismatch) {
			t.Fatalf("got %v, want ErrLocationMismatch", err)
		}
	})
}

func TestWon(t *testing.T) {
	d, deck := newTable(t)
	if d.Won(13) {
		t.Fatal("empty table is won")
	}
	for i, suit := range []string{"C", "D", "H", "S"} {
		var names []string
		for _, rank := range []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"} {
			names = append(names, rank+suit)
		}
		put(t, d, deck, d.Foundations[i], names...)
	}
	if !d.Won(13) {
		t.Fatal("full foundations are not won")
	}
	if err := d.Verify(deck); err != nil {
		t.Fatal(err)
	}
}
