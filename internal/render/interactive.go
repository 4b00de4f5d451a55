package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
	"github.com/couchcryptid/temperature-heatmap/internal/scale"
)

// Interactive builds an ECharts heatmap of the same cells: years across,
// months down, colored over the palette between the temperature extremes.
func Interactive(ds domain.Dataset, set scale.Set, l layout.Layout) *charts.HeatMap {
	hm := charts.NewHeatMap()

	years := make([]string, 0, set.MaxYear-set.MinYear+1)
	for y := set.MinYear; y <= set.MaxYear; y++ {
		years = append(years, strconv.Itoa(y))
	}
	months := make([]string, 12)
	for i := range months {
		months[i] = domain.MonthName(i + 1)
	}

	data := make([]opts.HeatMapData, 0, len(ds.MonthlyVariance))
	for _, c := range Cells(ds, set) {
		month := ((c.Month-1)%12 + 12) % 12
		data = append(data, opts.HeatMapData{
			Value: [3]interface{}{c.Year - set.MinYear, month, math.Round(c.Temperature*1000) / 1000},
		})
	}

	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: Title, Subtitle: Subtitle(ds, set)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: months}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:   "piecewise",
			Min:    float32(set.MinTemperature),
			Max:    float32(set.MaxTemperature),
			Pieces: pieces(set),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  fmt.Sprintf("%dpx", int(l.Width)),
			Height: fmt.Sprintf("%dpx", int(l.Height)),
		}),
	)

	hm.SetXAxis(years).AddSeries("temperature", data)
	return hm
}

// pieces mirrors the legend buckets so the interactive colors match the SVG
// cell fills.
func pieces(set scale.Set) []opts.Piece {
	buckets := set.LegendBuckets()
	out := make([]opts.Piece, len(buckets))
	for i, b := range buckets {
		out[i] = opts.Piece{
			Min:   float32(b.Lo),
			Max:   float32(b.Hi),
			Label: fixed1(b.Lo) + " - " + fixed1(b.Hi),
			Color: set.Color.Color(b.Lo),
		}
	}
	return out
}

// RenderInteractive writes the ECharts page for a dataset.
func RenderInteractive(w io.Writer, ds domain.Dataset, set scale.Set, l layout.Layout) error {
	if err := Interactive(ds, set, l).Render(w); err != nil {
		return fmt.Errorf("render interactive chart: %w", err)
	}
	return nil
}
