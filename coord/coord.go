// Package coord maps a mathematical domain onto a pixel frame.
//
// The x axis is discretized into one sample per frame column. The y axis is
// derived from it so that one domain unit spans the same visual length on
// both axes of the rendered grid, centered on a configurable origin.
// Terminal cells are taller than they are wide: the vertical extent is
// divided by the cell aspect ratio (height/width of one cell, 2 by default).
package coord

import (
	"fmt"
	"math"

	"github.com/rkjdid/termchart"
	"github.com/rkjdid/termchart/frame"
	"github.com/rkjdid/termchart/interval"
)

const (
	MinWidth          = 2
	DefaultCellAspect = 2.0
)

var (
	ErrFrameTooNarrow = fmt.Errorf("%w: frame must be at least %d columns wide", termchart.ErrConfig, MinWidth)
	ErrYDomain        = fmt.Errorf("%w: y domain must be finite", termchart.ErrConfig)
)

type Option func(*System)

// WithCellAspect sets the height/width ratio of one character cell. 1
// treats cells as square pixels. Values <= 0 and +Inf are ignored.
func WithCellAspect(r float64) Option {
	return func(s *System) {
		if r > 0 && !math.IsInf(r, 1) {
			s.cell = r
		}
	}
}

// WithOrigin centers the derived y domain on y instead of 0.
func WithOrigin(y float64) Option {
	return func(s *System) {
		s.origin = y
	}
}

// System binds a frame to an x domain and its derived y domain. It does not
// own the frame.
type System struct {
	frame  *frame.Frame
	x      interval.Discretized
	y      interval.Interval
	origin float64
	cell   float64
}

func New(f *frame.Frame, x interval.Interval, opts ...Option) (*System, error) {
	if f.Width() < MinWidth {
		return nil, fmt.Errorf("%w: got %d", ErrFrameTooNarrow, f.Width())
	}
	s := &System{frame: f, cell: DefaultCellAspect}
	for _, opt := range opts {
		opt(s)
	}
	var err error
	s.x, err = interval.NewDiscretized(x, int(f.Width()))
	if err != nil {
		return nil, fmt.Errorf("x domain %s: %w", x, err)
	}
	half := s.x.Distance() / 2
	aspect := float64(f.Height()) / float64(f.Width())
	ext := half * aspect / s.cell
	lo, hi := s.origin-ext, s.origin+ext
	if !finite(lo) || !finite(hi) {
		return nil, fmt.Errorf("origin %g, extent %g: %w", s.origin, ext, ErrYDomain)
	}
	s.y = interval.New(lo, hi)
	return s, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *System) Frame() *frame.Frame     { return s.frame }
func (s *System) X() interval.Discretized { return s.x }
func (s *System) Y() interval.Interval    { return s.y }
func (s *System) Origin() float64         { return s.origin }
func (s *System) CellAspect() float64     { return s.cell }

// Row maps y to a frame row, rounding to the nearest row. Rows grow
// downwards. y == Y().From() maps to Height(), one past the last row,
// which the frame drops. ok is false when y is outside the y domain or NaN.
func (s *System) Row(y float64) (row int, ok bool) {
	if math.IsNaN(y) || !s.y.Contains(y) {
		return 0, false
	}
	h := float64(s.frame.Height())
	var ratio float64
	if d := s.y.Distance(); d != 0 {
		ratio = (y - s.y.From()) / d
	}
	return int(math.Round(h - ratio*h)), true
}

// Column returns the index of the x sample nearest to x.
func (s *System) Column(x float64) (col int, ok bool) {
	if math.IsNaN(x) || !s.x.Contains(x) {
		return 0, false
	}
	return int(math.Round((x - s.x.From()) / s.x.Step())), true
}

// Cursor returns a new single-pass cursor over the x domain.
func (s *System) Cursor() *Cursor {
	return &Cursor{sys: s, step: -1}
}

func (s *System) String() string {
	return fmt.Sprintf("x=%s y=%s frame=%s", s.x, s.y, s.frame)
}
