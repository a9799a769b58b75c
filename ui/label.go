package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var DefaultFace = text.NewGoXFace(basicfont.Face7x13)

func lineSpacing() float64 {
	m := DefaultFace.Metrics()
	return m.HLineGap + m.HAscent + m.HDescent
}

// Label is a line of text drawn at X, Y (top-left), scaled by Scale.
type Label struct {
	Text  string
	X, Y  float64
	Scale float64
	Color color.Color
}

func (l *Label) scale() float64 {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}

// Size is the label's size in screen pixels.
func (l *Label) Size() (float64, float64) {
	w, h := text.Measure(l.Text, DefaultFace, lineSpacing())
	return w * l.scale(), h * l.scale()
}

func (l *Label) Draw(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(l.scale(), l.scale())
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.Color)
	op.LineSpacing = lineSpacing()
	text.Draw(screen, l.Text, DefaultFace, op)
}

// Zone covers the label so it can be clicked.
func (l *Label) Zone() *Zone {
	w, h := l.Size()
	return &Zone{X: int(l.X), Y: int(l.Y), W: int(w), H: int(h)}
}

// Centered moves the label so its center is at x.
func (l *Label) Centered(x float64) *Label {
	w, _ := l.Size()
	l.X = x - w/2
	return l
}
