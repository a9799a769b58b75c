package game

import (
	"math/rand"

	"github.com/SvenDH/go-freecell/config"
)

// Deck holds the cards of one game in their shuffled order.
type Deck struct {
	Cards []*Card
	names Notation
}

// NewDeck creates the cards suit by suit, ranks ascending, all at the dealer.
func NewDeck(cfg *config.Config, layout *Layout) *Deck {
	notation := NewNotation(cfg)
	cards := make([]*Card, 0, len(cfg.Deck.Suits)*len(cfg.Deck.Ranks))
	for s, suit := range cfg.Deck.Suits {
		color := Black
		if cfg.SuitColor(suit) == "red" {
			color = Red
		}
		for r := range cfg.Deck.Ranks {
			cards = append(cards, newCard(
				s, r, color,
				notation.Format(Face{Suit: s, Rank: r}),
				layout,
				cfg.Timing,
				float32(cfg.Layout.ShadowOffset),
				float32(cfg.Layout.MovingShadowOffset),
			))
		}
	}
	return &Deck{Cards: cards, names: notation}
}

// Shuffle permutes the deck deterministically for seed.
func (d *Deck) Shuffle(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

func (d *Deck) Find(face Face) *Card {
	for _, c := range d.Cards {
		if c.Suit == face.Suit && c.Rank == face.Rank {
			return c
		}
	}
	return nil
}

// Lookup resolves a card by its short name, e.g. "7C" or "10h".
func (d *Deck) Lookup(name string) *Card {
	faces, err := d.names.Parse(name)
	if err != nil || len(faces) != 1 {
		return nil
	}
	return d.Find(faces[0])
}
