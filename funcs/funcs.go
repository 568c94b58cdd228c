// Package funcs is the registry of named functions a chart can render.
package funcs

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

type Func func(x float64) float64

var ErrUnknown = errors.New("unknown function")

var registry = map[string]Func{
	"sin":    math.Sin,
	"cos":    math.Cos,
	"tan":    math.Tan,
	"sinc":   Sinc,
	"gauss":  Gauss,
	"square": func(x float64) float64 { return x * x },
	"cube":   func(x float64) float64 { return x * x * x },
	"abs":    math.Abs,
	"sqrt":   math.Sqrt,
	"exp":    math.Exp,
	"log":    math.Log,
	"saw":    Saw,
}

// Sinc is sin(x)/x, continuous at 0.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// Gauss is the standard normal density.
func Gauss(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// Saw is a sawtooth wave of period 2 ranging over [-1, 1).
func Saw(x float64) float64 {
	return x - 2*math.Floor((x+1)/2)
}

func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknown, name, Names())
	}
	return f, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
