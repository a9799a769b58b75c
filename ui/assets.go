package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/SvenDH/go-freecell/config"
)

// Palette holds the parsed table colors.
type Palette struct {
	Background color.NRGBA
	Text       color.NRGBA
	Cell       color.NRGBA
	Highlight  color.NRGBA
	CardFace   color.NRGBA
	CardBorder color.NRGBA
	DragBorder color.NRGBA
	Red        color.NRGBA
	Black      color.NRGBA
	Shadow     color.NRGBA
}

func NewPalette(c config.Colors) (*Palette, error) {
	p := &Palette{}
	fields := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"background", c.Background, &p.Background},
		{"text", c.Text, &p.Text},
		{"cell", c.Cell, &p.Cell},
		{"highlight", c.Highlight, &p.Highlight},
		{"card_face", c.CardFace, &p.CardFace},
		{"card_border", c.CardBorder, &p.CardBorder},
		{"drag_border", c.DragBorder, &p.DragBorder},
		{"red", c.Red, &p.Red},
		{"black", c.Black, &p.Black},
		{"shadow", c.Shadow, &p.Shadow},
	}
	for _, f := range fields {
		clr, err := hexToColor(f.hex)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = clr
	}
	return p, nil
}

// hexToColor parses "#rrggbb" or "#rrggbbaa".
func hexToColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
