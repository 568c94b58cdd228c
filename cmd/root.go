package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rkjdid/termchart"
	"github.com/rkjdid/termchart/config"
	"github.com/spf13/cobra"
)

var (
	debug      bool
	cfgPath    string
	promBind   string
	promHandle string
	promServer bool

	cfg config.Config

	// chart flags, applied over the config file when set
	fnName   string
	xRange   string
	width    uint
	height   uint
	origin   float64
	mark     string
	axes     bool
	buffered bool

	rootCmd = &cobra.Command{
		Use:          "termchart",
		Short:        "Plot functions in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			termchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))

			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			applyFlags(cmd)
			if err = cfg.Validate(); err != nil {
				return err
			}
			termchart.Logger().Debug("config loaded", "path", cfgPath, "func", cfg.Func, "x", cfg.X,
				"width", cfg.Width, "height", cfg.Height)

			if promServer {
				http.Handle(promHandle, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
				fmt.Fprintf(os.Stderr, "%s%s\n", promBind, promHandle)
				go func() {
					log.Fatal("http listen:", http.ListenAndServe(promBind, nil))
				}()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if promServer {
				fmt.Fprintln(os.Stderr, "ctrl-c to quit")
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				<-ctx.Done()
			}
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "enable debug logging")
	pf.StringVar(&cfgPath, "config", "", "yaml config file")
	pf.StringVar(&promBind, "prometheus-bind", ":8080", "prometheus bind")
	pf.StringVar(&promHandle, "prometheus-handle", "/prometheus", "prometheus handle")
	pf.BoolVar(&promServer, "prometheus-server", false, "enable prometheus webserver")

	pf.StringVarP(&fnName, "func", "f", "sin", "function to plot, list them with the funcs command")
	pf.StringVarP(&xRange, "x", "x", "-6:6", "x range as from:to")
	pf.UintVar(&width, "width", 100, "chart width in columns, 0 for the terminal width")
	pf.UintVar(&height, "height", 40, "chart height in rows, 0 for the terminal height")
	pf.Float64Var(&origin, "origin", 0, "y value at the vertical center of the chart")
	pf.StringVar(&mark, "mark", "*", "glyph drawn for each pixel")
	pf.BoolVar(&axes, "axes", false, "draw the x = 0 and y = 0 axes")
	pf.BoolVar(&buffered, "buffered", false, "flush the terminal once per render instead of once per pixel")

	rootCmd.AddCommand(renderCmd, demoCmd, inspectCmd, exportCmd, funcsCmd)
}

// applyFlags overrides cfg with the chart flags set on the command line.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("func") {
		cfg.Func = strings.TrimSpace(fnName)
	}
	if flags.Changed("x") {
		cfg.X = xRange
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("origin") {
		cfg.Origin = origin
	}
	if flags.Changed("mark") {
		cfg.Mark = mark
	}
	if flags.Changed("axes") {
		cfg.Axes = axes
	}
	if flags.Changed("buffered") {
		cfg.Buffered = buffered
	}
}
