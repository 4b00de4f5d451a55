// Package heatmap implements the heatmap view: one dataset fetch followed by
// a single draw pass onto a canvas.
package heatmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/couchcryptid/temperature-heatmap/internal/scale"
)

// ErrNotLoaded is returned by operations that need a loaded dataset.
var ErrNotLoaded = errors.New("heatmap dataset not loaded")

// Fetcher loads the dataset.
type Fetcher interface {
	Fetch(ctx context.Context) (domain.Dataset, error)
}

// CellSink receives the cells of every completed draw pass.
type CellSink interface {
	Publish(ctx context.Context, cells []render.Cell) error
}

// State is the view lifecycle state.
type State int

const (
	// Unloaded is the initial state: the canvas is empty.
	Unloaded State = iota
	// Loaded is terminal: the dataset is stored and drawn.
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "unloaded"
}

// View owns the canvas and the one loaded dataset.
type View struct {
	fetcher  Fetcher
	sink     CellSink
	layout   layout.Layout
	renderer *render.Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics

	mu       sync.RWMutex
	canvas   *render.Canvas
	state    State
	dataset  domain.Dataset
	scales   scale.Set
	loadedAt time.Time
}

// New creates an unloaded view. Pass a nil sink to disable cell export.
func New(f Fetcher, sink CellSink, l layout.Layout, logger *slog.Logger, metrics *observability.Metrics) *View {
	return &View{
		fetcher:  f,
		sink:     sink,
		layout:   l,
		renderer: render.NewRenderer(l),
		logger:   logger,
		metrics:  metrics,
		canvas:   render.NewCanvas(l),
	}
}

// Mount fetches the dataset once and draws it. A failed fetch leaves the
// canvas empty and the view unloaded; the failure does not propagate.
// Mounting again fetches and draws again on top of the existing scene.
func (v *View) Mount(ctx context.Context) {
	ds, err := v.fetcher.Fetch(ctx)
	if err != nil {
		v.logger.Warn("dataset load failed, canvas left empty", "error", err)
		return
	}

	set, err := scale.Build(ds, v.layout)
	if err != nil {
		v.logger.Warn("dataset cannot be drawn, canvas left empty", "error", err)
		return
	}

	v.mu.Lock()
	v.dataset = ds
	v.scales = set
	v.state = Loaded
	v.loadedAt = domain.Now()
	drawn := v.renderer.Draw(v.canvas, ds, set)
	v.mu.Unlock()

	v.metrics.DrawPasses.Inc()
	v.metrics.CellsDrawn.Add(float64(drawn))
	v.metrics.ViewLoaded.Set(1)
	v.logger.Info("heatmap drawn",
		"cells", drawn,
		"first_year", set.MinYear,
		"last_year", set.MaxYear,
		"base_temperature", ds.BaseTemperature,
	)

	v.publish(ctx, render.Cells(ds, set))
}

func (v *View) publish(ctx context.Context, cells []render.Cell) {
	if v.sink == nil {
		return
	}
	if err := v.sink.Publish(ctx, cells); err != nil {
		v.metrics.PublishErrors.Inc()
		v.logger.Warn("cell export failed", "error", err, "cells", len(cells))
		return
	}
	v.metrics.CellsPublished.Add(float64(len(cells)))
}

// State returns the current lifecycle state.
func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// LoadedAt returns when the dataset was drawn, or the zero time.
func (v *View) LoadedAt() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loadedAt
}

// CheckReadiness returns nil once the dataset is drawn.
func (v *View) CheckReadiness(_ context.Context) error {
	if v.State() != Loaded {
		return ErrNotLoaded
	}
	return nil
}

// Render writes the view's markup: the canvas frame and its overlay.
func (v *View) Render(w io.Writer) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.canvas.Render(w)
}

// RenderSVG writes the canvas as a standalone SVG document.
func (v *View) RenderSVG(w io.Writer) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.canvas.RenderSVG(w)
}

// RenderInteractive writes the ECharts rendition of the loaded dataset.
func (v *View) RenderInteractive(w io.Writer) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.state != Loaded {
		return ErrNotLoaded
	}
	return render.RenderInteractive(w, v.dataset, v.scales, v.layout)
}

// Cells returns the derived cells of the loaded dataset.
func (v *View) Cells() ([]render.Cell, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.state != Loaded {
		return nil, fmt.Errorf("cells: %w", ErrNotLoaded)
	}
	return render.Cells(v.dataset, v.scales), nil
}
