package render

import (
	"github.com/couchcryptid/temperature-heatmap/internal/scale"
	"golang.org/x/net/html"
)

type orientation int

const (
	bottom orientation = iota
	left
)

const (
	tickSize    = 6
	tickPadding = 3
	// crisp-edge offset for one pixel strokes
	offset = 0.5
)

// axis draws a tick axis for s: a domain path plus one tick group per value.
func axis(o orientation, s scale.Linear, values []float64, format func(float64) string) *html.Node {
	anchor := "middle"
	if o == left {
		anchor = "end"
	}
	g := element("g",
		"fill", "none",
		"font-size", "10",
		"font-family", "sans-serif",
		"text-anchor", anchor,
	)

	r0, r1 := s.Range()
	var d string
	if o == bottom {
		d = "M" + num(r0+offset) + "," + num(tickSize) + "V" + num(offset) + "H" + num(r1+offset) + "V" + num(tickSize)
	} else {
		d = "M" + num(-tickSize) + "," + num(r0+offset) + "H" + num(offset) + "V" + num(r1+offset) + "H" + num(-tickSize)
	}
	g.AppendChild(element("path", "class", "domain", "stroke", "currentColor", "d", d))

	for _, v := range values {
		pos := s.Apply(v) + offset
		var tick *html.Node
		if o == bottom {
			tick = element("g", "class", "tick", "opacity", "1", "transform", translate(pos, 0))
			tick.AppendChild(element("line", "stroke", "currentColor", "y2", num(tickSize)))
			tick.AppendChild(textElement(format(v), "fill", "currentColor", "y", num(tickSize+tickPadding), "dy", "0.71em"))
		} else {
			tick = element("g", "class", "tick", "opacity", "1", "transform", translate(0, pos))
			tick.AppendChild(element("line", "stroke", "currentColor", "x2", num(-tickSize)))
			tick.AppendChild(textElement(format(v), "fill", "currentColor", "x", num(-(tickSize + tickPadding)), "dy", "0.32em"))
		}
		g.AppendChild(tick)
	}
	return g
}
