// Package interval provides closed numeric ranges and their evenly
// stepped discretization.
package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rkjdid/termchart"
)

var (
	ErrZeroDistance = fmt.Errorf("%w: interval has zero distance", termchart.ErrConfig)
	ErrTooFewSteps  = fmt.Errorf("%w: at least 2 steps required", termchart.ErrConfig)
	ErrNotFinite    = fmt.Errorf("%w: interval bounds and distance must be finite", termchart.ErrConfig)
)

// Interval is the closed range [from, to], to >= from.
type Interval struct {
	from, to float64
}

// New returns [from, to]. It panics if either bound is NaN or to < from:
// callers holding user input go through Parse instead.
func New(from, to float64) Interval {
	if math.IsNaN(from) || math.IsNaN(to) {
		panic(fmt.Sprintf("interval: NaN bound in [%g, %g]", from, to))
	}
	if to < from {
		panic(fmt.Sprintf("interval: to (%g) < from (%g)", to, from))
	}
	return Interval{from: from, to: to}
}

// Parse reads an interval written as "from:to". Both bounds and their
// distance must be finite.
func Parse(s string) (Interval, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("interval %q: expected from:to", s)
	}
	from, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: from: %w", s, err)
	}
	to, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: to: %w", s, err)
	}
	if !isFinite(from) || !isFinite(to) || !isFinite(to-from) {
		return Interval{}, fmt.Errorf("interval %q: %w", s, ErrNotFinite)
	}
	if to < from {
		return Interval{}, fmt.Errorf("%w: interval %q: to < from", termchart.ErrConfig, s)
	}
	return New(from, to), nil
}

func (iv Interval) From() float64     { return iv.from }
func (iv Interval) To() float64       { return iv.to }
func (iv Interval) Distance() float64 { return iv.to - iv.from }

func (iv Interval) Contains(v float64) bool {
	return v >= iv.from && v <= iv.to
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.from, iv.to)
}

// Discretized is an Interval split into a fixed number of evenly spaced
// samples, both ends included.
type Discretized struct {
	Interval
	steps int
}

func NewDiscretized(iv Interval, steps int) (Discretized, error) {
	if d := iv.Distance(); d == 0 {
		return Discretized{}, ErrZeroDistance
	} else if !isFinite(d) {
		return Discretized{}, fmt.Errorf("%w: %s", ErrNotFinite, iv)
	}
	if steps < 2 {
		return Discretized{}, fmt.Errorf("%w: got %d", ErrTooFewSteps, steps)
	}
	return Discretized{Interval: iv, steps: steps}, nil
}

func (d Discretized) Steps() int { return d.steps }

// Step returns the spacing between two consecutive samples.
func (d Discretized) Step() float64 {
	return d.Distance() / float64(d.steps-1)
}

// Sample returns the i-th sample, i in [0, Steps()). Sample(0) is exactly
// From(); the last sample equals To() only up to rounding.
func (d Discretized) Sample(i int) float64 {
	if i < 0 || i >= d.steps {
		panic(fmt.Sprintf("interval: sample %d out of [0, %d)", i, d.steps))
	}
	return d.from + float64(i)*d.Step()
}

func (d Discretized) String() string {
	return fmt.Sprintf("%s/%d", d.Interval, d.steps)
}
