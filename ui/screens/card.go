package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SvenDH/go-freecell/game"
	"github.com/SvenDH/go-freecell/ui"
)

const (
	cellStroke  = 2
	cardStroke  = 1
	labelScale  = 2
	labelMargin = 6
)

func drawCell(screen *ebiten.Image, r game.Renderable, palette *ui.Palette, cardHeight int) {
	clr := palette.Cell
	if r.Highlighted {
		clr = palette.Highlight
	}
	rect := r.Rect
	// Columns reach to the bottom of the screen but are drawn one card high.
	if r.Cell.Kind() == game.ColumnKind {
		rect.H = cardHeight
	}
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), cellStroke, clr, true)
}

func drawShadow(screen *ebiten.Image, r game.Renderable, palette *ui.Palette) {
	vector.DrawFilledRect(screen, float32(r.Rect.X), float32(r.Rect.Y), float32(r.Rect.W), float32(r.Rect.H), palette.Shadow, true)
}

func drawCard(screen *ebiten.Image, r game.Renderable, palette *ui.Palette) {
	x, y := float32(r.Card.X), float32(r.Card.Y)
	w, h := float32(r.Rect.W), float32(r.Rect.H)
	vector.DrawFilledRect(screen, x, y, w, h, palette.CardFace, true)

	border := palette.CardBorder
	if r.Card.State() == game.Dragging {
		border = palette.DragBorder
	}
	vector.StrokeRect(screen, x, y, w, h, cardStroke, border, true)

	ink := palette.Black
	if r.Card.Color == game.Red {
		ink = palette.Red
	}
	top := &ui.Label{Text: r.Card.Name, X: float64(x) + labelMargin, Y: float64(y) + labelMargin, Scale: labelScale, Color: ink}
	top.Draw(screen)
	lw, lh := top.Size()
	bottom := &ui.Label{
		Text:  r.Card.Name,
		X:     float64(x+w) - lw - labelMargin,
		Y:     float64(y+h) - lh - labelMargin,
		Scale: labelScale,
		Color: ink,
	}
	bottom.Draw(screen)
}
