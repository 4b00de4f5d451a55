// Package render draws the heatmap scene graph: axes, legend, cells, hover
// tooltip wiring and titles.
package render

import (
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
	"github.com/couchcryptid/temperature-heatmap/internal/scale"
	"golang.org/x/net/html"
)

// Title is the fixed chart heading.
const Title = "Monthly Global Land-Surface Temperature"

// Renderer appends a heatmap to a canvas.
type Renderer struct {
	layout layout.Layout
}

// NewRenderer creates a renderer for the given layout.
func NewRenderer(l layout.Layout) *Renderer {
	return &Renderer{layout: l}
}

// Draw appends one complete heatmap to the canvas and returns the number of
// cells drawn. It never clears the canvas, so drawing twice duplicates every
// element including the tooltip.
func (r *Renderer) Draw(c *Canvas, ds domain.Dataset, set scale.Set) int {
	l := r.layout

	plot := element("g", "transform", translate(l.PlotOriginX, l.InnerHeight()))
	c.SVG.AppendChild(plot)

	r.drawAxes(plot, set)
	r.drawLegend(plot, set)
	cells := Cells(ds, set)
	r.drawCells(plot, set, cells)
	r.attachTooltip(c)
	r.drawTitles(c.SVG, ds, set)

	return len(cells)
}

func (r *Renderer) drawAxes(plot *html.Node, set scale.Set) {
	l := r.layout

	x := axis(bottom, set.X, set.X.Ticks(l.XTicks), func(v float64) string {
		return strconv.Itoa(int(v))
	})
	setAttr(x, "id", "x-axis")
	setAttr(x, "transform", translate(0, 0))
	x.AppendChild(textElement("Years",
		"x", num(l.InnerWidth()),
		"dy", "2.5em",
		"text-anchor", "end",
		"stroke", "black",
	))
	plot.AppendChild(x)

	y := axis(left, set.Y, set.Y.Ticks(10), func(v float64) string {
		return domain.MonthName(int(v) + 1)
	})
	setAttr(y, "id", "y-axis")
	setAttr(y, "transform", translate(0, l.YAxisOffset))
	y.AppendChild(textElement("Months",
		"y", "2",
		"transform", "rotate(-90)",
		"dy", "-5.5em",
		"text-anchor", "end",
		"stroke", "black",
	))
	plot.AppendChild(y)
}

func (r *Renderer) drawLegend(plot *html.Node, set scale.Set) {
	l := r.layout

	legend := axis(bottom, set.Legend, set.Color.Cuts(), fixed1)
	setAttr(legend, "class", "legend")
	setAttr(legend, "transform", translate(0, l.LegendOffsetY))

	for _, b := range set.LegendBuckets() {
		legend.AppendChild(element("rect",
			"fill", set.Color.Color(b.Lo),
			"x", num(set.Legend.Apply(b.Lo)),
			"y", num(-l.SwatchHeight),
			"width", num(l.SwatchWidth),
			"height", num(l.SwatchHeight),
			"stroke", "black",
		))
	}
	plot.AppendChild(legend)
}

func (r *Renderer) drawCells(plot *html.Node, set scale.Set, cells []Cell) {
	l := r.layout
	height := num(l.CellHeight())
	width := num(l.CellWidth)

	for _, c := range cells {
		plot.AppendChild(element("rect",
			"fill", c.Color,
			"x", num(set.X.Apply(float64(c.Year))+l.CellXOffset),
			"y", num(set.Y.Apply(float64(c.Month))-l.InnerHeight()+l.CellYOffset),
			"width", width,
			"height", height,
			"data-month", c.MonthName,
			"data-year", strconv.Itoa(c.Year),
			"data-temp", num(c.Temperature),
			"class", "cell",
			"onmouseover", hoverHandler(c),
		))
	}
}

// attachTooltip adds the hover handler code and a fresh tooltip element.
func (r *Renderer) attachTooltip(c *Canvas) {
	c.SVG.AppendChild(scriptNode())
	c.Overlay.AppendChild(tooltipNode())
}

func (r *Renderer) drawTitles(svg *html.Node, ds domain.Dataset, set scale.Set) {
	l := r.layout

	svg.AppendChild(textElement(Title,
		"id", "title",
		"x", num(l.Width/2),
		"y", num(l.Margin.Top/2),
		"text-anchor", "middle",
		"font-size", "30",
	))
	svg.AppendChild(textElement(Subtitle(ds, set),
		"id", "description",
		"x", num(l.Width/2),
		"y", num(l.Margin.Top-30),
		"text-anchor", "middle",
		"font-size", "15",
	))
}

// Subtitle reads "<first year> - <last year>: base temperature <base>".
func Subtitle(ds domain.Dataset, set scale.Set) string {
	return strconv.Itoa(set.MinYear) + " - " + strconv.Itoa(set.MaxYear) + ": base temperature " + num(ds.BaseTemperature)
}
