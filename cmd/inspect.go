package cmd

import (
	"fmt"

	"github.com/rkjdid/termchart/frame"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Describe a chart without drawing it",
	Long:  `Sample the configured function and print the chart domains, pixel counts and value summary`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newChart(cfg.Func, frame.NopMarker{})
		if err != nil {
			return err
		}
		c.Run()
		record(cfg.Func, c.Stats())

		out := cmd.OutOrStdout()
		sys := c.System()
		st := c.Stats()
		fmt.Fprintf(out, "func:    %s\n", cfg.Func)
		fmt.Fprintf(out, "frame:   %s\n", c.Frame())
		fmt.Fprintf(out, "x:       %s step=%g\n", sys.X().Interval, sys.X().Step())
		fmt.Fprintf(out, "y:       %s\n", sys.Y())
		fmt.Fprintf(out, "pixels:  plotted=%d clipped=%d\n", st.Plotted, st.Clipped)
		sum, err := c.Series().Summary()
		if err != nil {
			fmt.Fprintf(out, "values:  %s\n", err)
			return nil
		}
		fmt.Fprintf(out, "values:  %s\n", sum)
		return nil
	},
}
