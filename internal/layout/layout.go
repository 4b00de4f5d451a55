// Package layout holds the fixed canvas geometry and the hand-tuned offsets
// that align cells with the axes.
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Margin is the space between the canvas edge and the plot area.
type Margin struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

// Layout describes the drawing surface. The offsets are tuned against the
// 1200x500 canvas and are not derived from the scale domains.
type Layout struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin Margin  `yaml:"margin"`

	// PlotOriginX is the horizontal translation of the plot group.
	PlotOriginX float64 `yaml:"plot_origin_x"`
	// XRangePad extends the year scale past the inner width.
	XRangePad float64 `yaml:"x_range_pad"`
	// YAxisOffset moves the month axis up from the plot group origin.
	YAxisOffset float64 `yaml:"y_axis_offset"`
	// CellYOffset and CellHeightPad align cell rows with month ticks.
	CellYOffset   float64 `yaml:"cell_y_offset"`
	CellHeightPad float64 `yaml:"cell_height_pad"`
	CellXOffset   float64 `yaml:"cell_x_offset"`
	CellWidth     float64 `yaml:"cell_width"`
	XTicks        int     `yaml:"x_ticks"`

	LegendWidth   float64 `yaml:"legend_width"`
	LegendOffsetY float64 `yaml:"legend_offset_y"`
	SwatchWidth   float64 `yaml:"swatch_width"`
	SwatchHeight  float64 `yaml:"swatch_height"`

	Palette []string `yaml:"palette"`
}

// Palette is the 11-step diverging color sequence, coldest first.
var Palette = []string{
	"#313695", "#4575b4", "#74add1", "#abd9e9", "#e0f3f8",
	"#ffffbf", "#fee090", "#fdae61", "#f46d43", "#d73027", "#a50026",
}

// Default returns the 1200x500 layout the chart was tuned for.
func Default() Layout {
	return Layout{
		Width:  1200,
		Height: 500,
		Margin: Margin{Top: 100, Left: 15, Bottom: 20, Right: 150},

		PlotOriginX:   100,
		XRangePad:     20,
		YAxisOffset:   -280,
		CellYOffset:   50,
		CellHeightPad: 24,
		CellXOffset:   2,
		CellWidth:     4,
		XTicks:        20,

		LegendWidth:   400,
		LegendOffsetY: 100,
		SwatchWidth:   37,
		SwatchHeight:  20,

		Palette: append([]string(nil), Palette...),
	}
}

// InnerWidth is the drawable width inside the margins.
func (l Layout) InnerWidth() float64 {
	return l.Width - l.Margin.Left - l.Margin.Right
}

// InnerHeight is the drawable height inside the margins.
func (l Layout) InnerHeight() float64 {
	return l.Height - l.Margin.Top - l.Margin.Bottom
}

// PlotHeight is the extent of the month scale.
func (l Layout) PlotHeight() float64 {
	return l.InnerHeight() - l.Margin.Top
}

// CellHeight is the height of one month row.
func (l Layout) CellHeight() float64 {
	return (l.PlotHeight() + l.CellHeightPad) / 12
}

// Validate rejects layouts that cannot produce a chart.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return errors.New("layout width and height must be positive")
	}
	if l.InnerWidth() <= 0 || l.InnerHeight() <= 0 {
		return errors.New("layout margins leave no drawable area")
	}
	if l.PlotHeight() <= 0 {
		return errors.New("layout margin.top collapses the month scale")
	}
	if l.PlotHeight()+l.CellHeightPad <= 0 {
		return errors.New("layout cell_height_pad leaves no room for month rows")
	}
	if l.CellWidth <= 0 || l.SwatchWidth <= 0 || l.SwatchHeight <= 0 {
		return errors.New("layout cell and swatch sizes must be positive")
	}
	if len(l.Palette) < 2 {
		return fmt.Errorf("layout palette needs at least 2 colors, got %d", len(l.Palette))
	}
	if l.XTicks <= 0 {
		return errors.New("layout x_ticks must be positive")
	}
	return nil
}

// Load reads a YAML file whose fields override the defaults. An empty path
// returns the defaults.
func Load(path string) (Layout, error) {
	l := Default()
	if path == "" {
		return l, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout file: %w", err)
	}
	if err := yaml.Unmarshal(b, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout file %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout file %s: %w", path, err)
	}
	return l, nil
}
