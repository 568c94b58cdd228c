package cmd

import (
	"fmt"
	"os"

	"github.com/rkjdid/termchart"
	"github.com/rkjdid/termchart/chart"
	"github.com/rkjdid/termchart/frame"
	"github.com/rkjdid/termchart/funcs"
	"github.com/rkjdid/termchart/term"
	"github.com/spf13/cobra"
)

// terminal size of stdout, 0 when stdout is not a terminal
var termWidth, termHeight int

var renderCmd = &cobra.Command{
	Use:     "render",
	Short:   "Render a function once",
	Long:    `Clear the screen and draw the configured function, one pixel per column`,
	Args:    cobra.NoArgs,
	PreRunE: detectTerminal,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := newTerminal(cmd)
		c, err := newChart(cfg.Func, t)
		if err != nil {
			return err
		}
		c.Run()
		record(cfg.Func, c.Stats())
		return t.Park(c.Frame().Height())
	},
}

func detectTerminal(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdout) {
		termchart.Logger().Debug("stdout is not a terminal, width and height must be set")
		return nil
	}
	termWidth, termHeight, _ = term.Size(os.Stdout)
	return nil
}

func newTerminal(cmd *cobra.Command) *term.Terminal {
	return term.New(cmd.OutOrStdout(), term.WithGlyph(cfg.Mark), term.WithBuffered(cfg.Buffered))
}

// newChart builds a chart of the named function from cfg.
func newChart(name string, m frame.Marker) (*chart.Chart, error) {
	f, err := funcs.Lookup(name)
	if err != nil {
		return nil, err
	}
	x, err := cfg.Interval()
	if err != nil {
		return nil, err
	}
	w, h := cfg.Size(termWidth, termHeight)
	c, err := chart.New(x, w, h,
		chart.WithFunc(f),
		chart.WithMarker(m),
		chart.WithOrigin(cfg.Origin),
		chart.WithCellAspect(cfg.CellAspect),
		chart.WithAxes(cfg.Axes),
	)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", name, err)
	}
	return c, nil
}
