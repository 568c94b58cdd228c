package chart

import (
	"image/color"
	"strconv"
	"strings"
	"sync"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	W1 = vg.Length(1)
	W2 = vg.Length(2)
)

var (
	// POP https://coolors.co/50514f-f25f5c-ffe066-247ba0-70c1b3
	Colors = []color.Color{
		Color("247BA0"),
		Color("F25F5C"),
		Color("70C1B3"),
		Color("FFE066"),
		Color("50514F"),
	}

	AxisColor = Color("c4c4c4")
)

// Color parses a "rrggbb" or "rrggbbaa" hex string, with or without a
// leading '#'. Malformed input yields black.
func Color(hash string) color.Color {
	hash = strings.TrimPrefix(hash, "#")
	if len(hash) != 6 && len(hash) != 8 {
		return color.Black
	}
	var c color.RGBA
	c.A = 255
	cs := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(hash); i += 2 {
		ui, err := strconv.ParseUint(hash[i:i+2], 16, 8)
		if err != nil {
			return color.Black
		}
		*cs[i/2] = uint8(ui)
	}
	return c
}

// Palette hands out line styles, cycling through its colors.
type Palette struct {
	mu     sync.Mutex
	colors []color.Color
	width  vg.Length
	next   int
}

func NewPalette(width vg.Length, colors ...color.Color) *Palette {
	if len(colors) == 0 {
		colors = Colors
	}
	return &Palette{colors: colors, width: width}
}

func (p *Palette) Next() draw.LineStyle {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := draw.LineStyle{
		Color: p.colors[p.next],
		Width: p.width,
	}
	p.next = (p.next + 1) % len(p.colors)
	return s
}

// AxisStyle is used for the zero lines of exported plots.
func AxisStyle() draw.LineStyle {
	return draw.LineStyle{
		Color: AxisColor,
		Width: W1,
	}
}
