// Implements a textual backend, writing shapes
// as SVG elements, optionally embedded in a minimal HTML page.
package svgmarkup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/shapedoc/paint"
	"github.com/benoitkugler/shapedoc/shapes"
)

var _ shapes.Target = (*Renderer)(nil) // assert interface conformance

// Default canvas size
const (
	DefaultWidth  = 250
	DefaultHeight = 250
)

// Renderer accumulates one markup fragment per rendered shape.
// A Renderer is meant for one rendering pass.
type Renderer struct {
	width, height float64
	fragments     []string
}

// NewRenderer returns an empty renderer, whose
// output canvas has the given size.
func NewRenderer(width, height float64) *Renderer {
	return &Renderer{width: width, height: height}
}

// NewDefaultRenderer uses a DefaultWidth x DefaultHeight canvas.
func NewDefaultRenderer() *Renderer {
	return NewRenderer(DefaultWidth, DefaultHeight)
}

// formatNumber uses the shortest representation
// which parses back to `f`.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (rd *Renderer) RenderCircle(c shapes.Circle) {
	center, st := c.Center(), c.Style()
	rd.fragments = append(rd.fragments, fmt.Sprintf(
		"<circle cx='%s' cy='%s' r='%s' stroke='%s' fill='%s' stroke-width='%s' />",
		formatNumber(center.X), formatNumber(center.Y), formatNumber(c.Radius()),
		paint.Describe(st.StrokeColor()), paint.Describe(st.FillColor()), formatNumber(st.StrokeWidth()),
	))
}

func (rd *Renderer) RenderRectangle(r shapes.Rectangle) {
	origin, st := r.Origin(), r.Style()
	rd.fragments = append(rd.fragments, fmt.Sprintf(
		"<rect x='%s' y='%s' width='%s' height='%s' stroke='%s' fill='%s' stroke-width='%s' />",
		formatNumber(origin.X), formatNumber(origin.Y), formatNumber(r.Width()), formatNumber(r.Height()),
		paint.Describe(st.StrokeColor()), paint.Describe(st.FillColor()), formatNumber(st.StrokeWidth()),
	))
}

// Fragments returns a copy of the accumulated elements,
// in rendering order.
func (rd *Renderer) Fragments() []string {
	return append([]string(nil), rd.fragments...)
}

// SVGOutput returns the complete <svg> element.
func (rd *Renderer) SVGOutput() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg width='%s' height='%s'>\n", formatNumber(rd.width), formatNumber(rd.height))
	for _, frag := range rd.fragments {
		b.WriteString("  ")
		b.WriteString(frag)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}

// HTMLOutput wraps SVGOutput in a minimal HTML page.
func (rd *Renderer) HTMLOutput() string {
	return "<!DOCTYPE html><html><body>" + rd.SVGOutput() + "</body></html>"
}
