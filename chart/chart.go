// Package chart drives the rendering of a function onto a terminal frame.
package chart

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rkjdid/termchart"
	"github.com/rkjdid/termchart/coord"
	"github.com/rkjdid/termchart/frame"
	"github.com/rkjdid/termchart/funcs"
	"github.com/rkjdid/termchart/interval"
	"github.com/rkjdid/termchart/term"
	"github.com/rkjdid/termchart/ts"
)

type Stats = coord.Stats

type options struct {
	f      funcs.Func
	marker frame.Marker
	origin float64
	cell   float64
	axes   bool
	log    *slog.Logger
}

type Option func(*options)

// WithFunc sets the rendered function, math.Sin by default.
func WithFunc(f funcs.Func) Option {
	return func(o *options) {
		if f != nil {
			o.f = f
		}
	}
}

// WithMarker sets where pixels are drawn, the terminal on stdout by default.
func WithMarker(m frame.Marker) Option {
	return func(o *options) {
		o.marker = m
	}
}

func WithOrigin(y float64) Option {
	return func(o *options) {
		o.origin = y
	}
}

// WithCellAspect sets the height/width ratio of a terminal cell.
func WithCellAspect(r float64) Option {
	return func(o *options) {
		o.cell = r
	}
}

// WithAxes draws the x = 0 and y = 0 lines before the curve.
func WithAxes(b bool) Option {
	return func(o *options) {
		o.axes = b
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Chart renders one function over an x interval into a fixed-size frame.
type Chart struct {
	frame  *frame.Frame
	sys    *coord.System
	f      funcs.Func
	axes   bool
	log    *slog.Logger
	stats  Stats
	series ts.Series
}

// New builds the frame and coordinate system for a width x height chart of
// x. Nothing is drawn until Run.
func New(x interval.Interval, width, height uint, opts ...Option) (*Chart, error) {
	o := options{
		f:    math.Sin,
		cell: coord.DefaultCellAspect,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.marker == nil {
		o.marker = term.Stdout()
	}
	if o.log == nil {
		o.log = termchart.Logger()
	}

	f, err := frame.New(width, height, o.marker)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	sys, err := coord.New(f, x, coord.WithOrigin(o.origin), coord.WithCellAspect(o.cell))
	if err != nil {
		return nil, fmt.Errorf("coordinate system: %w", err)
	}
	o.log.Debug("chart ready", "frame", f.String(), "x", sys.X().String(), "y", sys.Y().String())
	return &Chart{
		frame: f,
		sys:   sys,
		f:     o.f,
		axes:  o.axes,
		log:   o.log,
	}, nil
}

func (c *Chart) Frame() *frame.Frame   { return c.frame }
func (c *Chart) System() *coord.System { return c.sys }

// Stats returns the counters of the last Run.
func (c *Chart) Stats() Stats { return c.stats }

// Series returns every value evaluated during the last Run, clipped or not.
func (c *Chart) Series() ts.Series { return c.series }

// Run clears the frame, then evaluates the function once per frame column
// and plots each value. It can be called again to redraw.
func (c *Chart) Run() {
	c.frame.Clear()
	if c.axes {
		c.drawAxes()
	}
	xs := c.sys.X()
	c.series = ts.Series{
		Data:  make([]float64, 0, xs.Steps()),
		X0:    xs.From(),
		XStep: xs.Step(),
	}
	cur := c.sys.Cursor()
	for {
		_, x, ok := cur.Advance()
		if !ok {
			break
		}
		y := c.f(x)
		c.series.Append(y)
		cur.Accept(y)
	}
	c.stats = cur.Stats()
	c.log.Debug("chart rendered",
		"samples", c.stats.Samples, "plotted", c.stats.Plotted, "clipped", c.stats.Clipped)
}

func (c *Chart) drawAxes() {
	w, h := c.frame.Width(), c.frame.Height()
	if row, ok := c.sys.Row(0); ok {
		for col := uint(0); col < w; col++ {
			c.frame.Write(uint(row), col, frame.Filled)
		}
	}
	if col, ok := c.sys.Column(0); ok {
		for row := uint(0); row < h; row++ {
			c.frame.Write(row, uint(col), frame.Filled)
		}
	}
}
