package cmd

import (
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rkjdid/termchart"
	"github.com/rkjdid/termchart/chart"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	demoFuncs string
	demoPause time.Duration
	demoLoop  bool

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Render functions one after another",
		Long:  `Cycle through the demo functions, pausing between renders, until done or interrupted`,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("funcs") {
				cfg.Demo.Funcs = splitList(demoFuncs)
			}
			if flags.Changed("pause") {
				cfg.Demo.Pause = demoPause
			}
			if flags.Changed("loop") {
				cfg.Demo.Loop = demoLoop
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return detectTerminal(cmd, args)
		},
		RunE: runDemo,
	}
)

func init() {
	demoCmd.Flags().StringVar(&demoFuncs, "funcs", "", "comma separated functions to render")
	demoCmd.Flags().DurationVar(&demoPause, "pause", time.Second, "pause between renders")
	demoCmd.Flags().BoolVar(&demoLoop, "loop", false, "start over after the last function")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	t := newTerminal(cmd)
	limiter := rate.NewLimiter(rate.Every(cfg.Demo.Pause), 1)
	charts := make(map[string]*chart.Chart, len(cfg.Demo.Funcs))
	var last uint
	defer func() {
		_ = t.Park(last)
	}()
	for {
		for _, name := range cfg.Demo.Funcs {
			if err := limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			c, ok := charts[name]
			if !ok {
				var err error
				if c, err = newChart(name, t); err != nil {
					return err
				}
				charts[name] = c
			}
			c.Run()
			if err := t.Flush(); err != nil {
				return err
			}
			last = c.Frame().Height()
			record(name, c.Stats())
			termchart.Logger().Debug("demo render", "func", name, "plotted", c.Stats().Plotted)
		}
		if !cfg.Demo.Loop {
			// keep the last chart on screen for one more pause
			if err := limiter.Wait(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		}
	}
}

func splitList(s string) (out []string) {
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
