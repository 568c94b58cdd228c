package chart

import (
	"fmt"

	"github.com/rkjdid/termchart/interval"
	"github.com/rkjdid/termchart/ts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type ExportOptions struct {
	Title  string
	Label  string
	Width  vg.Length // defaults to 8 inches
	Height vg.Length // defaults to Width * 0.6
	// Y restricts the vertical range when its distance is not 0, typically
	// to the y domain of the terminal chart.
	Y     interval.Interval
	Axes  bool
	Grid  bool
	Style *draw.LineStyle
}

// Export writes s as a line plot to file. The image format follows the file
// extension (png, svg, pdf, ...). Non-finite samples are replaced by their
// neighbours' average.
func Export(s ts.Series, file string, opts ExportOptions) error {
	if s.Len() < 2 {
		return fmt.Errorf("export: too few samples: %d", s.Len())
	}
	if opts.Width == 0 {
		opts.Width = 8 * vg.Inch
	}
	if opts.Height == 0 {
		opts.Height = opts.Width * 0.6
	}

	clean := s.CleanCopy()
	y := opts.Y
	if y.Distance() == 0 {
		sum, err := clean.Summary()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		y = interval.New(sum.Min, sum.Max)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if opts.Grid {
		p.Add(plotter.NewGrid())
	}
	if opts.Axes {
		if y.Contains(0) {
			if err := addLine(p, Horizontal{0, [2]float64{s.X0, s.XN()}}, "", AxisStyle()); err != nil {
				return err
			}
		}
		if s.X0 <= 0 && s.XN() >= 0 {
			if err := addLine(p, Vertical{0, [2]float64{y.From(), y.To()}}, "", AxisStyle()); err != nil {
				return err
			}
		}
	}

	style := NewPalette(W2).Next()
	if opts.Style != nil {
		style = *opts.Style
	}
	if err := addLine(p, clean, opts.Label, style); err != nil {
		return err
	}

	// Add widens the ranges to fit the data, restrict them afterwards.
	p.X.Min, p.X.Max = s.X0, s.XN()
	if y.Distance() != 0 {
		p.Y.Min, p.Y.Max = y.From(), y.To()
	}
	if err := p.Save(opts.Width, opts.Height, file); err != nil {
		return fmt.Errorf("export %s: %w", file, err)
	}
	return nil
}

func addLine(p *plot.Plot, xyer plotter.XYer, label string, style draw.LineStyle) error {
	l, err := plotter.NewLine(xyer)
	if err != nil {
		return fmt.Errorf("plotter.NewLine: %w", err)
	}
	l.LineStyle = style
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	return nil
}
