// Package scale builds the pure value-to-pixel and value-to-color mappings a
// heatmap draw pass needs.
package scale

import (
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
)

// Set bundles every scale derived from one dataset.
type Set struct {
	X      Linear    // year -> horizontal pixel
	Y      Linear    // month index -> vertical pixel
	Color  Threshold // absolute temperature -> palette color
	Legend Linear    // absolute temperature -> legend pixel

	MinTemperature float64
	MaxTemperature float64
	MinYear        int
	MaxYear        int
}

// Build derives the scale set for a dataset drawn on the given layout.
func Build(ds domain.Dataset, l layout.Layout) (Set, error) {
	if err := ds.Validate(); err != nil {
		return Set{}, err
	}

	minYear, maxYear := ds.YearExtent()
	minTemp, maxTemp := ds.TemperatureExtent()

	color, err := NewThreshold(EvenCuts(minTemp, maxTemp, len(l.Palette)), l.Palette)
	if err != nil {
		return Set{}, err
	}

	return Set{
		X:              NewLinear(float64(minYear), float64(maxYear), 0, l.InnerWidth()+l.XRangePad),
		Y:              NewLinear(0, 11, 0, l.PlotHeight()),
		Color:          color,
		Legend:         NewLinear(minTemp, maxTemp, 0, l.LegendWidth),
		MinTemperature: minTemp,
		MaxTemperature: maxTemp,
		MinYear:        minYear,
		MaxYear:        maxYear,
	}, nil
}

// LegendBuckets returns one extent per color with open bounds replaced by the
// global temperature extremes.
func (s Set) LegendBuckets() []Extent {
	n := len(s.Color.colors)
	out := make([]Extent, n)
	for i := 0; i < n; i++ {
		e := s.Color.InvertExtent(i)
		if e.OpenLo {
			e.Lo, e.OpenLo = s.MinTemperature, false
		}
		if e.OpenHi {
			e.Hi, e.OpenHi = s.MaxTemperature, false
		}
		out[i] = e
	}
	return out
}
