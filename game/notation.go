package game

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/SvenDH/go-freecell/config"
)

type hand struct {
	Cards []*cardToken `@@*`
}

type cardToken struct {
	Rank string `@Rank`
	Suit string `@Suit`
}

var suitSymbols = map[string]string{
	"clubs":    "♣",
	"diamonds": "♦",
	"hearts":   "♥",
	"spades":   "♠",
}

// Notation reads and writes short card names such as "7C", "10h" or "Q♠".
// Ranks are written as configured, suits by their initial letter.
type Notation struct {
	parser    *participle.Parser[hand]
	ranks     map[string]int
	suits     map[string]int
	rankNames []string
	suitNames []string
}

func NewNotation(cfg *config.Config) Notation {
	n := Notation{
		ranks: make(map[string]int, len(cfg.Deck.Ranks)),
		suits: make(map[string]int, len(cfg.Deck.Suits)*2),
	}
	rankPatterns := make([]string, 0, len(cfg.Deck.Ranks))
	for i, rank := range cfg.Deck.Ranks {
		n.ranks[strings.ToUpper(rank)] = i
		n.rankNames = append(n.rankNames, rank)
		rankPatterns = append(rankPatterns, regexp.QuoteMeta(rank))
	}
	// Longest first so "10" is not read as "1" followed by "0".
	sort.SliceStable(rankPatterns, func(i, j int) bool {
		return len(rankPatterns[i]) > len(rankPatterns[j])
	})

	suitPatterns := make([]string, 0, len(cfg.Deck.Suits)*2)
	for i, suit := range cfg.Deck.Suits {
		initial := strings.ToUpper(suit[:1])
		n.suits[initial] = i
		n.suitNames = append(n.suitNames, initial)
		suitPatterns = append(suitPatterns, regexp.QuoteMeta(initial))
		if symbol, ok := suitSymbols[strings.ToLower(suit)]; ok {
			n.suits[symbol] = i
			suitPatterns = append(suitPatterns, symbol)
		}
	}

	n.parser = participle.MustBuild[hand](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{"whitespace", `[\s,]+`},
			{"Rank", `(?i:` + strings.Join(rankPatterns, "|") + `)`},
			{"Suit", `(?i:` + strings.Join(suitPatterns, "|") + `)`},
		})),
	)
	return n
}

// Parse reads a list of cards separated by spaces or commas.
func (n Notation) Parse(s string) ([]Face, error) {
	h, err := n.parser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	faces := make([]Face, 0, len(h.Cards))
	for _, tok := range h.Cards {
		rank, ok := n.ranks[strings.ToUpper(tok.Rank)]
		if !ok {
			return nil, fmt.Errorf("unknown rank %q", tok.Rank)
		}
		suit, ok := n.suits[strings.ToUpper(tok.Suit)]
		if !ok {
			return nil, fmt.Errorf("unknown suit %q", tok.Suit)
		}
		faces = append(faces, Face{Suit: suit, Rank: rank})
	}
	return faces, nil
}

func (n Notation) Format(f Face) string {
	return n.rankNames[f.Rank] + n.suitNames[f.Suit]
}
