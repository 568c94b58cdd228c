// Package ts holds sampled series and the helpers used to clean and
// summarize them.
package ts

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Series represent a set of samples mapped to a X0 + n*XStep value.
// Any pair of points (Data[n], Data[n+1]) has a distance of XStep on the x axis.
type Series struct {
	Data  []float64
	X0    float64
	XStep float64
}

func (s *Series) Append(y float64) {
	s.Data = append(s.Data, y)
}

func (s Series) Len() int {
	return len(s.Data)
}

func (s Series) XY(i int) (float64, float64) {
	if i < 0 || i >= len(s.Data) {
		return 0, 0
	}
	return float64(i)*s.XStep + s.X0, s.Data[i]
}

// XN returns the x value of the last sample.
func (s Series) XN() float64 {
	if len(s.Data) == 0 {
		return s.X0
	}
	return s.X0 + float64(len(s.Data)-1)*s.XStep
}

// CleanCopy returns a copy of s with every non-finite value replaced by
// the average of its neighbours.
func (s Series) CleanCopy() Series {
	out, _ := CleanFloats(s.Data, Average)
	return Series{Data: out, X0: s.X0, XStep: s.XStep}
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CleanFloats returns a copy of data where NaN and ±Inf are replaced using
// fn on the closest finite neighbours, along with the number of values
// replaced. Edges pick their only neighbour; when no value is finite the
// copy is all zeros.
func CleanFloats(data []float64, fn func(left, right float64) float64) (out []float64, k int) {
	out = make([]float64, len(data))
	copy(out, data)

	var last = -1
	for i, v := range out {
		if IsFinite(v) {
			last = i
			continue
		}
		k++
		next := -1
		for j := i + 1; j < len(data); j++ {
			if IsFinite(data[j]) {
				next = j
				break
			}
		}
		switch {
		case last >= 0 && next >= 0:
			out[i] = fn(out[last], data[next])
		case last >= 0:
			out[i] = out[last]
		case next >= 0:
			out[i] = data[next]
		default:
			out[i] = 0
		}
	}
	return out, k
}

func Average(left, right float64) float64 { return (left + right) / 2.0 }

// Summary describes the finite values of a series.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.4f max=%.4f mean=%.4f median=%.4f",
		s.Count, s.Min, s.Max, s.Mean, s.Median)
}

// Summarize computes a Summary over the finite values of data.
func Summarize(data []float64) (sum Summary, err error) {
	var finite stats.Float64Data
	for _, v := range data {
		if IsFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return sum, fmt.Errorf("summarize: no finite value in %d samples", len(data))
	}
	sum.Count = len(finite)
	if sum.Min, err = stats.Min(finite); err != nil {
		return sum, fmt.Errorf("stats.Min: %s", err)
	}
	if sum.Max, err = stats.Max(finite); err != nil {
		return sum, fmt.Errorf("stats.Max: %s", err)
	}
	if sum.Mean, err = stats.Mean(finite); err != nil {
		return sum, fmt.Errorf("stats.Mean: %s", err)
	}
	if sum.Median, err = stats.Median(finite); err != nil {
		return sum, fmt.Errorf("stats.Median: %s", err)
	}
	return sum, nil
}

func (s Series) Summary() (Summary, error) {
	return Summarize(s.Data)
}
