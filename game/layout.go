package game

import (
	"math"

	"github.com/SvenDH/go-freecell/config"
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) InBounds(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Distance between the centers of two rects.
func (r Rect) Distance(o Rect) float64 {
	ax, ay := r.Center()
	bx, by := o.Center()
	return math.Hypot(ax-bx, ay-by)
}

// Layout turns cell indices and card rows into screen positions.
type Layout struct {
	cfg          config.Layout
	screenHeight int
}

func NewLayout(cfg *config.Config) *Layout {
	return &Layout{cfg: cfg.Layout, screenHeight: cfg.Screen.Height}
}

func (l *Layout) CardSize() (int, int) {
	return l.cfg.CardWidth, l.cfg.CardHeight
}

func (l *Layout) FoundationCellRect(column int) Rect {
	return Rect{
		X: column*(l.cfg.CardWidth+l.cfg.CellMarginX) + l.cfg.FoundationCellOffsetX,
		Y: l.cfg.CellOffsetY,
		W: l.cfg.CardWidth,
		H: l.cfg.CardHeight,
	}
}

func (l *Layout) FreeCellRect(column int) Rect {
	return Rect{
		X: column*(l.cfg.CardWidth+l.cfg.CellMarginX) + l.cfg.FreeCellOffsetX,
		Y: l.cfg.CellOffsetY,
		W: l.cfg.CardWidth,
		H: l.cfg.CardHeight,
	}
}

// ColumnCellRect reaches down to the bottom of the screen so a card dropped
// anywhere over the pile collides with it.
func (l *Layout) ColumnCellRect(column int) Rect {
	x, y := l.ColumnCardPos(column, 0)
	h := l.screenHeight - l.cfg.CardOffsetY
	if h < l.cfg.CardHeight {
		h = l.cfg.CardHeight
	}
	return Rect{X: x, Y: y, W: l.cfg.CardWidth, H: h}
}

func (l *Layout) ColumnCardPos(column, row int) (int, int) {
	step := int(math.Round(float64(l.cfg.CardHeight) * l.cfg.RowRatio))
	return column*(l.cfg.CardWidth+l.cfg.CardMarginX) + l.cfg.CardOffsetX,
		row*step + l.cfg.CardOffsetY
}

func (l *Layout) DealerPos() (int, int) {
	return l.cfg.DealerX, l.cfg.DealerY
}
