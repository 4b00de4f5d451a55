package render

import (
	"fmt"
	"io"

	"github.com/couchcryptid/temperature-heatmap/internal/layout"
	"golang.org/x/net/html"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Canvas is a fixed-size SVG surface inside a frame div, plus the
// document-level layer that floating elements such as the tooltip attach to.
// Nothing ever clears a canvas.
type Canvas struct {
	Frame   *html.Node
	SVG     *html.Node
	Overlay *html.Node
}

// NewCanvas returns an empty canvas sized by the layout.
func NewCanvas(l layout.Layout) *Canvas {
	svg := element("svg",
		"xmlns", svgNamespace,
		"width", num(l.Width),
		"height", num(l.Height),
		"padding", "20px",
	)
	frame := element("div")
	frame.AppendChild(svg)
	return &Canvas{
		Frame:   frame,
		SVG:     svg,
		Overlay: element("div"),
	}
}

// Empty reports whether nothing has been drawn on the SVG surface.
func (c *Canvas) Empty() bool {
	return c.SVG.FirstChild == nil
}

// Render writes the frame followed by every overlay element.
func (c *Canvas) Render(w io.Writer) error {
	if err := html.Render(w, c.Frame); err != nil {
		return fmt.Errorf("render canvas: %w", err)
	}
	for n := c.Overlay.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render overlay: %w", err)
		}
	}
	return nil
}

// RenderSVG writes the SVG surface as a standalone document.
func (c *Canvas) RenderSVG(w io.Writer) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`+"\n"); err != nil {
		return fmt.Errorf("write xml prolog: %w", err)
	}
	if err := html.Render(w, c.SVG); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	return nil
}
