// Command render performs a single fetch and draw pass and writes the result
// to a file or stdout.
//
// Usage:
//
//	go run ./cmd/render -source data/mock/global-temperature.json -format svg -out heatmap.svg
//	go run ./cmd/render -format parquet -out cells.parquet
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/dataset"
	"github.com/couchcryptid/temperature-heatmap/internal/app"
	"github.com/couchcryptid/temperature-heatmap/internal/export"
	"github.com/couchcryptid/temperature-heatmap/internal/heatmap"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	source := flag.String("source", dataset.DefaultURL, "dataset URL or local JSON file")
	format := flag.String("format", "html", "output format: html, svg, echarts, jsonl, csv, parquet")
	out := flag.String("out", "", "output path (default stdout)")
	layoutFile := flag.String("layout", "", "YAML layout override file")
	timeout := flag.Duration("timeout", 30*time.Second, "dataset fetch timeout")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	if !supported(*format) {
		return fmt.Errorf("unknown format %q (supported: html, svg, echarts, jsonl, csv, parquet)", *format)
	}

	logger := observability.NewLogger(*logLevel, "text")
	metrics := observability.NewMetrics()

	l, err := layout.Load(*layoutFile)
	if err != nil {
		return err
	}

	var fetcher heatmap.Fetcher
	if strings.HasPrefix(*source, "http://") || strings.HasPrefix(*source, "https://") {
		fetcher = dataset.NewClient(*source, *timeout, metrics, logger)
	} else {
		fetcher = dataset.NewFileSource(*source)
	}

	view := heatmap.New(fetcher, nil, l, logger, metrics)
	view.Mount(context.Background())
	if view.State() != heatmap.Loaded {
		return fmt.Errorf("no heatmap drawn from %s", *source)
	}

	if *out == "" {
		return writeTo(os.Stdout, *format, view)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeTo(f, *format, view); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	log.Printf("wrote %s (%s)", *out, *format)
	return nil
}

func supported(format string) bool {
	switch strings.ToLower(format) {
	case "html", "svg", "echarts":
		return true
	}
	return export.Supports(format)
}

func writeTo(w io.Writer, format string, view *heatmap.View) error {
	bw := bufio.NewWriter(w)
	if err := write(bw, format, view); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func write(w io.Writer, format string, view *heatmap.View) error {
	switch strings.ToLower(format) {
	case "html":
		return app.NewContainer(render.Title, view).Render(w)
	case "svg":
		return view.RenderSVG(w)
	case "echarts":
		return view.RenderInteractive(w)
	}
	cells, err := view.Cells()
	if err != nil {
		return err
	}
	return export.Write(w, format, cells)
}
