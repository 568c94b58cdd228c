package chart

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rkjdid/termchart"
	"github.com/rkjdid/termchart/coord"
	"github.com/rkjdid/termchart/frame"
	"github.com/rkjdid/termchart/interval"
)

type mark struct{ row, col uint }

type recorder struct {
	marks  []mark
	resets int
}

func (r *recorder) Mark(row, col uint) { r.marks = append(r.marks, mark{row, col}) }
func (r *recorder) Reset()             { r.marks, r.resets = nil, r.resets+1 }

func TestNew_errors(t *testing.T) {
	x := interval.New(-6, 6)
	for _, tc := range []struct {
		name   string
		x      interval.Interval
		w, h   uint
		target error
	}{
		{"too wide", x, 2000, 40, frame.ErrSizeLimit},
		{"too tall", x, 100, 2000, frame.ErrSizeLimit},
		{"too narrow", x, 1, 40, coord.ErrFrameTooNarrow},
		{"zero distance", interval.New(1, 1), 100, 40, interval.ErrZeroDistance},
		{"infinite x", interval.New(math.Inf(-1), math.Inf(1)), 100, 40, interval.ErrNotFinite},
	} {
		c, err := New(tc.x, tc.w, tc.h, WithMarker(frame.NopMarker{}))
		if c != nil {
			t.Errorf("%s: chart should not be returned on error", tc.name)
		}
		if !errors.Is(err, tc.target) || !errors.Is(err, termchart.ErrConfig) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.target, err)
		}
	}
}

// Run clears the previous render, so a chart can be drawn again.
func TestChart_RunTwice(t *testing.T) {
	r := &recorder{}
	c, err := New(interval.New(-6, 6), 60, 20, WithMarker(r), WithAxes(true))
	if err != nil {
		t.Fatal(err)
	}
	c.Run()
	filled, marks := c.Frame().Filled(), len(r.marks)
	c.Run()
	if r.resets != 2 {
		t.Errorf("expected one reset per run, got %d", r.resets)
	}
	if c.Frame().Filled() != filled || len(r.marks) != marks {
		t.Errorf("second run: filled %d/%d marks %d/%d", c.Frame().Filled(), filled, len(r.marks), marks)
	}
	if c.Series().Len() != 60 {
		t.Errorf("series should hold one run, got %d", c.Series().Len())
	}
}

// sin over [-6, 6] on 100x40 fills exactly one pixel per column.
func TestChart_RunSin(t *testing.T) {
	r := &recorder{}
	c, err := New(interval.New(-6, 6), 100, 40, WithMarker(r))
	if err != nil {
		t.Fatal(err)
	}
	c.Run()

	if len(r.marks) != 100 {
		t.Fatalf("expected 100 marks, got %d", len(r.marks))
	}
	if c.Frame().Filled() != 100 {
		t.Errorf("expected 100 filled pixels, got %d", c.Frame().Filled())
	}
	xs := c.System().X()
	for i, m := range r.marks {
		if m.col != uint(i) {
			t.Errorf("mark %d in column %d", i, m.col)
		}
		want := math.Round(40 - ((math.Sin(xs.Sample(i))+1.2)/2.4)*40)
		if float64(m.row) != want {
			t.Errorf("column %d: row %d, want %v", i, m.row, want)
		}
	}
	st := c.Stats()
	if st.Samples != 100 || st.Plotted != 100 || st.Clipped != 0 {
		t.Errorf("unexpected stats %+v", st)
	}

	s := c.Series()
	if s.Len() != 100 || s.X0 != -6 {
		t.Errorf("unexpected series len=%d x0=%f", s.Len(), s.X0)
	}
	sum, err := s.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Min < -1 || sum.Max > 1 {
		t.Errorf("sin summary out of [-1, 1]: %s", sum)
	}
}

func TestChart_RunClipped(t *testing.T) {
	r := &recorder{}
	c, err := New(interval.New(-6, 6), 100, 40,
		WithMarker(r),
		WithFunc(func(x float64) float64 { return 10 }),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Run()
	if len(r.marks) != 0 {
		t.Errorf("out of range function produced %d marks", len(r.marks))
	}
	if c.Stats().Clipped != 100 {
		t.Errorf("expected 100 clipped values, got %d", c.Stats().Clipped)
	}
	if c.Series().Len() != 100 {
		t.Errorf("clipped values should still be recorded")
	}
}

func TestChart_Origin(t *testing.T) {
	r := &recorder{}
	c, err := New(interval.New(-6, 6), 100, 40,
		WithMarker(r),
		WithOrigin(10),
		WithFunc(func(x float64) float64 { return 10 }),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Run()
	if len(r.marks) != 100 {
		t.Fatalf("expected 100 marks, got %d", len(r.marks))
	}
	for _, m := range r.marks {
		if m.row != 20 {
			t.Errorf("constant at origin should sit on row 20, got %d", m.row)
			break
		}
	}
}

func TestChart_Axes(t *testing.T) {
	c, err := New(interval.New(-6, 6), 13, 10,
		WithMarker(frame.NopMarker{}),
		WithAxes(true),
		WithFunc(func(x float64) float64 { return math.NaN() }),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Run()
	f := c.Frame()
	// row of y = 0 is 5, column of x = 0 is 6
	for col := uint(0); col < 13; col++ {
		if f.At(5, col) != frame.Filled {
			t.Errorf("x axis missing at column %d", col)
		}
	}
	for row := uint(0); row < 10; row++ {
		if f.At(row, 6) != frame.Filled {
			t.Errorf("y axis missing at row %d", row)
		}
	}
	if f.Filled() != 13+10-1 {
		t.Errorf("unexpected filled count %d", f.Filled())
	}
}

func TestChart_AxesOutsideDomain(t *testing.T) {
	c, err := New(interval.New(1, 5), 20, 10,
		WithMarker(frame.NopMarker{}),
		WithAxes(true),
		WithOrigin(100),
		WithFunc(math.Sqrt),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Run()
	if c.Frame().Filled() != 0 {
		t.Errorf("nothing should be drawn, got %d pixels", c.Frame().Filled())
	}
}

func TestExport(t *testing.T) {
	c, err := New(interval.New(-6, 6), 100, 40,
		WithMarker(frame.NopMarker{}),
		WithFunc(math.Tan),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Run()

	file := filepath.Join(t.TempDir(), "tan.png")
	err = Export(c.Series(), file, ExportOptions{
		Title: "tan",
		Label: "tan(x)",
		Y:     c.System().Y(),
		Axes:  true,
		Grid:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Errorf("empty export")
	}
}

func TestExport_tooFewSamples(t *testing.T) {
	c, _ := New(interval.New(0, 1), 2, 2, WithMarker(frame.NopMarker{}))
	s := c.Series()
	if err := Export(s, filepath.Join(t.TempDir(), "x.png"), ExportOptions{}); err == nil {
		t.Errorf("export before Run should fail")
	}
}

func TestColor(t *testing.T) {
	c := Color("#ff3300")
	r, g, b, a := c.RGBA()
	if r>>8 != 0xff || g>>8 != 0x33 || b != 0 || a>>8 != 0xff {
		t.Errorf("unexpected color %v", c)
	}
	if Color("zz") == nil {
		t.Errorf("malformed color should default to black")
	}
}

func TestPalette(t *testing.T) {
	p := NewPalette(W1)
	first := p.Next()
	for i := 1; i < len(Colors); i++ {
		p.Next()
	}
	if again := p.Next(); again.Color != first.Color {
		t.Errorf("palette should cycle")
	}
}
