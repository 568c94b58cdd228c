package coord

import (
	"fmt"

	"github.com/rkjdid/termchart/frame"
)

type State int

const (
	NotStarted State = iota
	Active
	Exhausted
)

func (st State) String() string {
	switch st {
	case NotStarted:
		return "not-started"
	case Active:
		return "active"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Stats counts what happened during one pass of a Cursor.
type Stats struct {
	Samples int // values accepted
	Plotted int // values written to a frame cell
	Clipped int // values outside the y domain or below the last row
}

// Cursor walks the x domain once. Each Advance yields the next x sample;
// the caller then hands the matching y to Accept.
type Cursor struct {
	sys      *System
	step     int
	state    State
	accepted bool
	stats    Stats
}

func (c *Cursor) State() State { return c.state }
func (c *Cursor) Stats() Stats { return c.stats }

// Step returns the current step index, -1 before the first Advance.
func (c *Cursor) Step() int { return c.step }

// Advance moves to the next sample. ok is false once every sample has been
// yielded, and stays false.
func (c *Cursor) Advance() (step int, x float64, ok bool) {
	if c.state == Exhausted {
		return 0, 0, false
	}
	if c.step+1 >= c.sys.x.Steps() {
		c.state = Exhausted
		return 0, 0, false
	}
	c.step++
	c.state = Active
	c.accepted = false
	return c.step, c.sys.x.Sample(c.step), true
}

// Accept plots y at the current step and reports whether a cell was
// written. Values outside the y domain are dropped, as is Y().From(),
// whose row is one past the frame. Accept panics unless the cursor is
// active, and only the first call per step is plotted.
func (c *Cursor) Accept(y float64) bool {
	if c.state != Active {
		panic(fmt.Sprintf("coord: Accept on %s cursor", c.state))
	}
	if c.accepted {
		return false
	}
	c.accepted = true
	c.stats.Samples++
	row, ok := c.sys.Row(y)
	if !ok || uint(row) >= c.sys.frame.Height() {
		c.stats.Clipped++
		return false
	}
	c.stats.Plotted++
	c.sys.frame.Write(uint(row), uint(c.step), frame.Filled)
	return true
}
