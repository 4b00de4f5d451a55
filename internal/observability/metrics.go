package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the heatmap service.
type Metrics struct {
	// Dataset loading.
	DatasetFetches       *prometheus.CounterVec // labels: outcome={success,error}
	DatasetFetchDuration prometheus.Histogram

	// Draw pass.
	DrawPasses prometheus.Counter
	CellsDrawn prometheus.Counter
	ViewLoaded prometheus.Gauge

	// Serving.
	RenderRequests *prometheus.CounterVec // labels: format={page,svg,interactive,cells}

	// Cell export.
	CellsPublished prometheus.Counter
	PublishErrors  prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "dataset_fetches_total",
			Help:      "Dataset fetch attempts by outcome.",
		}, []string{"outcome"}),
		DatasetFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatmap",
			Name:      "dataset_fetch_duration_seconds",
			Help:      "Duration of the dataset download and decode.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		DrawPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "draw_passes_total",
			Help:      "Completed draw passes.",
		}),
		CellsDrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "cells_drawn_total",
			Help:      "Cells appended to the canvas across all draw passes.",
		}),
		ViewLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatmap",
			Name:      "view_loaded",
			Help:      "1 once the dataset is loaded and drawn, 0 before.",
		}),
		RenderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "render_requests_total",
			Help:      "Rendered responses by output format.",
		}, []string{"format"}),
		CellsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "cells_published_total",
			Help:      "Cell records written to the export topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "publish_errors_total",
			Help:      "Failed cell export batches.",
		}),
	}

	prometheus.MustRegister(
		m.DatasetFetches,
		m.DatasetFetchDuration,
		m.DrawPasses,
		m.CellsDrawn,
		m.ViewLoaded,
		m.RenderRequests,
		m.CellsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DatasetFetches:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "heatmap", Name: "dataset_fetches_total"}, []string{"outcome"}),
		DatasetFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "heatmap", Name: "dataset_fetch_duration_seconds"}),
		DrawPasses:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "heatmap", Name: "draw_passes_total"}),
		CellsDrawn:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "heatmap", Name: "cells_drawn_total"}),
		ViewLoaded:           prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "heatmap", Name: "view_loaded"}),
		RenderRequests:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "heatmap", Name: "render_requests_total"}, []string{"format"}),
		CellsPublished:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "heatmap", Name: "cells_published_total"}),
		PublishErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "heatmap", Name: "publish_errors_total"}),
	}
}
