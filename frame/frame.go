// Package frame holds the fixed-size pixel grid charts are rendered into.
package frame

import (
	"fmt"

	"github.com/rkjdid/termchart"
)

const (
	MaxWidth  = 1024
	MaxHeight = 1024
)

var ErrSizeLimit = fmt.Errorf("%w: frame exceeds %dx%d", termchart.ErrConfig, MaxWidth, MaxHeight)

type Pixel uint8

const (
	Empty Pixel = iota
	Filled
)

// Marker turns frame cells into visible marks. Calls are synchronous and
// assumed to succeed.
type Marker interface {
	// Mark moves the cursor to the 0-based (row, col) cell and draws it.
	Mark(row, col uint)
	// Reset moves the cursor to the origin and clears the visible area.
	Reset()
}

// NopMarker discards every call.
type NopMarker struct{}

func (NopMarker) Mark(row, col uint) {}
func (NopMarker) Reset()             {}

// Frame is a width x height grid of pixels. Filled pixels are forwarded to
// its Marker as soon as they are written; there is no redraw.
type Frame struct {
	width, height uint
	cells         [][]Pixel
	marker        Marker
}

func New(width, height uint, m Marker) (*Frame, error) {
	if width > MaxWidth || height > MaxHeight {
		return nil, fmt.Errorf("%w: got %dx%d", ErrSizeLimit, width, height)
	}
	if m == nil {
		m = NopMarker{}
	}
	cells := make([][]Pixel, height)
	for i := range cells {
		cells[i] = make([]Pixel, width)
	}
	return &Frame{
		width:  width,
		height: height,
		cells:  cells,
		marker: m,
	}, nil
}

func (f *Frame) Width() uint  { return f.width }
func (f *Frame) Height() uint { return f.height }

// Write sets the pixel at (row, col). Coordinates outside the grid are
// ignored: chart geometry legitimately rounds past the edges.
func (f *Frame) Write(row, col uint, p Pixel) {
	if row >= f.height || col >= f.width {
		return
	}
	f.cells[row][col] = p
	if p == Filled {
		f.marker.Mark(row, col)
	}
}

// At returns the pixel at (row, col), Empty outside the grid.
func (f *Frame) At(row, col uint) Pixel {
	if row >= f.height || col >= f.width {
		return Empty
	}
	return f.cells[row][col]
}

// Filled returns the number of filled pixels.
func (f *Frame) Filled() (n int) {
	for _, row := range f.cells {
		for _, p := range row {
			if p == Filled {
				n++
			}
		}
	}
	return n
}

// Clear empties every cell and resets the marker's visible area.
func (f *Frame) Clear() {
	for _, row := range f.cells {
		for i := range row {
			row[i] = Empty
		}
	}
	f.marker.Reset()
}

func (f *Frame) String() string {
	return fmt.Sprintf("%dx%d", f.width, f.height)
}
