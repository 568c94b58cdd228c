package ts

import (
	"math"
	"testing"
)

func TestSeries_XY(t *testing.T) {
	s := Series{X0: -1, XStep: 0.5}
	for _, y := range []float64{1, 2, 3} {
		s.Append(y)
	}
	if s.Len() != 3 {
		t.Fatalf("unexpected len %d", s.Len())
	}
	if x, y := s.XY(2); x != 0 || y != 3 {
		t.Errorf("XY(2) = %f, %f", x, y)
	}
	if x, y := s.XY(3); x != 0 || y != 0 {
		t.Errorf("XY out of range should return zeros")
	}
	if s.XN() != 0 {
		t.Errorf("unexpected XN %f", s.XN())
	}
}

func TestCleanFloats(t *testing.T) {
	floatsEq := func(a []float64, b []float64) {
		t.Helper()
		if len(a) != len(b) {
			t.Errorf("expected %v got %v", b, a)
			return
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("at index %d: expected %f got %f", i, b[i], a[i])
			}
		}
	}
	nan, inf := math.NaN(), math.Inf(1)

	data := []float64{nan, 1, inf, 3, math.Inf(-1), nan}
	out, k := CleanFloats(data, Average)
	floatsEq(out, []float64{1, 1, 2, 3, 3, 3})
	if k != 4 {
		t.Errorf("expected 4 replaced values, got %d", k)
	}
	if !math.IsNaN(data[0]) {
		t.Errorf("input should not be modified")
	}

	right := func(_, r float64) float64 { return r }
	out, _ = CleanFloats([]float64{0, nan, nan, 4}, right)
	floatsEq(out, []float64{0, 4, 4, 4})
	left := func(l, _ float64) float64 { return l }
	out, _ = CleanFloats([]float64{0, nan, nan, 4}, left)
	floatsEq(out, []float64{0, 0, 0, 4})

	for _, empty := range [][]float64{{}, {nan}, {nan, inf}} {
		out, _ := CleanFloats(empty, Average)
		floatsEq(out, make([]float64, len(empty)))
	}
}

func TestSeries_CleanCopy(t *testing.T) {
	s := Series{
		Data:  []float64{0, math.NaN(), 2},
		X0:    10,
		XStep: 1,
	}
	result := s.CleanCopy()
	if result.X0 != 10 || result.XStep != 1 {
		t.Errorf("x mapping should be preserved")
	}
	if result.Data[1] != 1 {
		t.Errorf("expected 1, got %f", result.Data[1])
	}
}

func TestSummarize(t *testing.T) {
	sum, err := Summarize([]float64{3, math.NaN(), 1, 2, math.Inf(1)})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Count != 3 || sum.Min != 1 || sum.Max != 3 || sum.Mean != 2 || sum.Median != 2 {
		t.Errorf("unexpected summary %s", sum)
	}
	if _, err = Summarize([]float64{math.NaN()}); err == nil {
		t.Errorf("expected error without finite values")
	}
	if _, err = Summarize(nil); err == nil {
		t.Errorf("expected error on empty data")
	}
}
