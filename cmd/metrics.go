package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rkjdid/termchart/chart"
)

var (
	registry = prometheus.NewRegistry()

	pixels = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "termchart",
		Name:      "pixels_total",
		Help:      "values handed to the coordinate system, by outcome",
	}, []string{"state"})

	renders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "termchart",
		Name:      "renders_total",
		Help:      "completed render passes",
	}, []string{"func"})
)

func init() {
	registry.MustRegister(pixels, renders)
}

func record(name string, st chart.Stats) {
	pixels.WithLabelValues("plotted").Add(float64(st.Plotted))
	pixels.WithLabelValues("clipped").Add(float64(st.Clipped))
	renders.WithLabelValues(name).Inc()
}
