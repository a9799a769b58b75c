package game

import (
	"errors"
	"fmt"

	"github.com/SvenDH/go-freecell/config"
)

const (
	FoundationCells = 4
	FreeCells       = 4
	ColumnCells     = 8

	dealRows = 7
)

var (
	ErrCardMissing      = errors.New("card missing from table")
	ErrCardDuplicated   = errors.New("card held by more than one cell")
	ErrLocationMismatch = errors.New("card location does not match its cell")
)

// Dealer owns the cells on the table and decides which moves are legal.
// Its queries never mutate state; the add and remove methods are the only
// way cards enter or leave a cell.
type Dealer struct {
	Foundations []*FoundationCell
	FreeCells   []*FreeCell
	Columns     []*ColumnCell

	layout *Layout
	timing config.Timing
}

func NewDealer(cfg *config.Config, layout *Layout) *Dealer {
	return &Dealer{layout: layout, timing: cfg.Timing}
}

// PrepareTable creates the empty cells for a new game.
func (d *Dealer) PrepareTable() {
	d.Foundations = make([]*FoundationCell, FoundationCells)
	d.FreeCells = make([]*FreeCell, FreeCells)
	d.Columns = make([]*ColumnCell, ColumnCells)
	for i := range d.Foundations {
		d.Foundations[i] = NewFoundationCell(i, d.layout)
	}
	for i := range d.FreeCells {
		d.FreeCells[i] = NewFreeCell(i, d.layout)
	}
	for i := range d.Columns {
		d.Columns[i] = NewColumnCell(i, d.layout)
	}
}

// Cells lists every cell, foundations first, then free cells, then columns.
func (d *Dealer) Cells() []Cell {
	cells := make([]Cell, 0, len(d.Foundations)+len(d.FreeCells)+len(d.Columns))
	for _, c := range d.Foundations {
		cells = append(cells, c)
	}
	for _, c := range d.FreeCells {
		cells = append(cells, c)
	}
	for _, c := range d.Columns {
		cells = append(cells, c)
	}
	return cells
}

// Deal lays the deck out column by column: columns 0-3 get seven cards and
// columns 4-7 get six. Every card starts moving a little later than the one
// dealt before it.
func (d *Dealer) Deal(deck *Deck) {
	idx := 0
	for col := 0; col < ColumnCells; col++ {
		for row := 0; row < dealRows; row++ {
			if col >= FoundationCells && row == dealRows-1 {
				continue
			}
			card := deck.Cards[idx]
			d.AddCardColumnCell(card, d.Columns[col])
			card.deal(float32(d.timing.DealDelay + float64(idx)*d.timing.DealStep))
			idx++
		}
	}
}

// IsValidMultipleCardDrag reports whether cards form a run of descending
// ranks in alternating colors.
func (d *Dealer) IsValidMultipleCardDrag(cards []*Card) bool {
	if len(cards) == 0 {
		return false
	}
	prev := cards[0]
	for _, card := range cards[1:] {
		if card.Rank != prev.Rank-1 || card.Color == prev.Color {
			return false
		}
		prev = card
	}
	return true
}

// CanDrag reports whether card may be picked up. When it is part of a run
// the whole run from card to the top of its column is returned; a nil list
// means the card moves alone.
func (d *Dealer) CanDrag(card *Card) (bool, []*Card) {
	switch card.state {
	case InFreeCell:
		return true, nil
	case InColumnCell:
		cards := card.cell.Cards()
		if card.row == len(cards)-1 {
			return true, nil
		}
		run := cards[card.row:]
		if !d.IsValidMultipleCardDrag(run) {
			return false, nil
		}
		return true, append([]*Card(nil), run...)
	}
	return false, nil
}

func (d *Dealer) CanDropFoundationCell(card *Card, cell *FoundationCell) bool {
	top := cell.Top()
	if top == nil {
		return card.Rank == 0
	}
	return top.Suit == card.Suit && card.Rank == top.Rank+1
}

func (d *Dealer) CanDropFreeCell(cell *FreeCell) bool {
	return cell.Len() == 0
}

// ValidCellsCount counts the empty free cells and the empty columns other
// than cell.
func (d *Dealer) ValidCellsCount(cell *ColumnCell) int {
	count := 0
	for _, free := range d.FreeCells {
		if free.Len() == 0 {
			count++
		}
	}
	for _, column := range d.Columns {
		if column.Len() == 0 && column.column != cell.column {
			count++
		}
	}
	return count
}

// CanDropColumnCell checks card against the top of cell. group is the whole
// run being moved, card first; a run of n cards needs n valid cells.
func (d *Dealer) CanDropColumnCell(card *Card, cell *ColumnCell, group []*Card) bool {
	if len(group) > 1 && len(group) > d.ValidCellsCount(cell) {
		return false
	}
	top := cell.Top()
	if top == nil {
		return true
	}
	return card.Rank == top.Rank-1 && card.Color != top.Color
}

func (d *Dealer) AddCardFoundationCell(card *Card, cell *FoundationCell) {
	d.addCard(card, &cell.cellBase)
}

func (d *Dealer) AddCardFreeCell(card *Card, cell *FreeCell) {
	d.addCard(card, &cell.cellBase)
}

func (d *Dealer) AddCardColumnCell(card *Card, cell *ColumnCell) {
	d.addCard(card, &cell.cellBase)
}

func (d *Dealer) addCard(card *Card, base *cellBase) {
	row := base.push(card)
	card.row = row
	card.restLayer = stackLayer(row)
	switch base.kind {
	case FoundationKind:
		card.cell = d.Foundations[base.column]
	case FreeKind:
		card.cell = d.FreeCells[base.column]
	default:
		card.cell = d.Columns[base.column]
	}
}

// RemoveCardFoundationCell always panics: once a card reaches a foundation it
// stays there.
func (d *Dealer) RemoveCardFoundationCell(card *Card, cell *FoundationCell) {
	panic(fmt.Sprintf("card %s cannot leave foundation %d", card, cell.column))
}

func (d *Dealer) RemoveCardFreeCell(card *Card, cell *FreeCell) {
	d.removeCard(card, &cell.cellBase)
}

func (d *Dealer) RemoveCardColumnCell(card *Card, cell *ColumnCell) {
	d.removeCard(card, &cell.cellBase)
}

func (d *Dealer) removeCard(card *Card, base *cellBase) {
	if !base.remove(card) {
		panic(fmt.Sprintf("card %s is not in %s cell %d", card, base.kind, base.column))
	}
	for i, c := range base.cards {
		c.row = i
		c.restLayer = stackLayer(i)
	}
	card.cell = nil
}

// Won reports whether every foundation holds a full suit.
func (d *Dealer) Won(ranks int) bool {
	for _, f := range d.Foundations {
		if f.Len() != ranks {
			return false
		}
	}
	return true
}

// Verify checks that every card of deck sits in exactly one cell and that
// the card agrees with the cell about where it is.
func (d *Dealer) Verify(deck *Deck) error {
	owners := make(map[*Card]Cell, len(deck.Cards))
	for _, cell := range d.Cells() {
		for _, card := range cell.Cards() {
			if _, ok := owners[card]; ok {
				return fmt.Errorf("%w: %s", ErrCardDuplicated, card)
			}
			owners[card] = cell
		}
	}
	for _, card := range deck.Cards {
		cell, ok := owners[card]
		if !ok {
			return fmt.Errorf("%w: %s", ErrCardMissing, card)
		}
		if card.cell != cell || card.row >= cell.Len() || cell.Cards()[card.row] != card {
			return fmt.Errorf("%w: %s", ErrLocationMismatch, card)
		}
		if card.state != Dragging && card.state != cell.Kind().State() {
			return fmt.Errorf("%w: %s is %s in a %s cell", ErrLocationMismatch, card, card.state, cell.Kind())
		}
	}
	return nil
}

// stackLayer leaves an odd layer for each card so its shadow fits below it.
func stackLayer(row int) int {
	return 2*row + 1
}
