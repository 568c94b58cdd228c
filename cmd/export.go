package cmd

import (
	"fmt"

	"github.com/rkjdid/termchart"
	"github.com/rkjdid/termchart/chart"
	"github.com/rkjdid/termchart/frame"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Save the sampled function as an image",
	Long:  `Sample the configured function like render does and plot it to file (png, svg, pdf, ...)`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newChart(cfg.Func, frame.NopMarker{})
		if err != nil {
			return err
		}
		c.Run()
		record(cfg.Func, c.Stats())

		err = chart.Export(c.Series(), args[0], chart.ExportOptions{
			Title:  fmt.Sprintf("%s over %s", cfg.Func, c.System().X().Interval),
			Label:  cfg.Func + "(x)",
			Width:  vg.Length(cfg.Export.WidthInches) * vg.Inch,
			Height: vg.Length(cfg.Export.HeightInches) * vg.Inch,
			Y:      c.System().Y(),
			Axes:   cfg.Axes,
			Grid:   cfg.Export.Grid,
		})
		if err != nil {
			return err
		}
		termchart.Logger().Info("exported", "file", args[0])
		return nil
	},
}
