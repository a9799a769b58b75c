package game

type CellKind int8

const (
	FoundationKind CellKind = iota
	FreeKind
	ColumnKind
)

func (k CellKind) String() string {
	switch k {
	case FoundationKind:
		return "foundation"
	case FreeKind:
		return "free"
	case ColumnKind:
		return "column"
	default:
		return "?"
	}
}

// State is the card state a card takes when it rests in a cell of this kind.
func (k CellKind) State() CardState {
	switch k {
	case FoundationKind:
		return InFoundationCell
	case FreeKind:
		return InFreeCell
	default:
		return InColumnCell
	}
}

// Cell is a drop target on the table. Every variant owns an ordered slot of
// cards; the last card in the slot is the top of the stack.
type Cell interface {
	Kind() CellKind
	Column() int
	Rect() Rect
	Cards() []*Card
	Len() int
	Top() *Card
	Highlighted() bool
	SetHighlight(bool)
}

type slot struct {
	cards []*Card
}

func (s *slot) Cards() []*Card {
	return s.cards
}

func (s *slot) Len() int {
	return len(s.cards)
}

func (s *slot) Top() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

func (s *slot) push(c *Card) int {
	s.cards = append(s.cards, c)
	return len(s.cards) - 1
}

// remove drops card from the slot and reports whether it was there.
func (s *slot) remove(c *Card) bool {
	i := s.indexOf(c)
	if i < 0 {
		return false
	}
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	return true
}

func (s *slot) indexOf(c *Card) int {
	for i, card := range s.cards {
		if card == c {
			return i
		}
	}
	return -1
}

type cellBase struct {
	slot
	kind        CellKind
	column      int
	rect        Rect
	highlighted bool
}

func (c *cellBase) Kind() CellKind          { return c.kind }
func (c *cellBase) Column() int             { return c.column }
func (c *cellBase) Rect() Rect              { return c.rect }
func (c *cellBase) Highlighted() bool       { return c.highlighted }
func (c *cellBase) SetHighlight(value bool) { c.highlighted = value }

type FoundationCell struct {
	cellBase
}

func NewFoundationCell(column int, layout *Layout) *FoundationCell {
	return &FoundationCell{cellBase{kind: FoundationKind, column: column, rect: layout.FoundationCellRect(column)}}
}

type FreeCell struct {
	cellBase
}

func NewFreeCell(column int, layout *Layout) *FreeCell {
	return &FreeCell{cellBase{kind: FreeKind, column: column, rect: layout.FreeCellRect(column)}}
}

type ColumnCell struct {
	cellBase
}

func NewColumnCell(column int, layout *Layout) *ColumnCell {
	return &ColumnCell{cellBase{kind: ColumnKind, column: column, rect: layout.ColumnCellRect(column)}}
}
