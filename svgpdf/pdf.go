// Implements a PDF backend to render shapes,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"

	"github.com/benoitkugler/shapedoc/paint"
	"github.com/benoitkugler/shapedoc/shapes"
	"github.com/jung-kurt/gofpdf"
)

var _ shapes.Target = (*Renderer)(nil) // assert interface conformance

// Renderer writes shapes on a single page,
// whose size is given in points. As in SVG, the origin
// is the top left corner, with y going down.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer returns a renderer
// writing on a one page document.
func NewRenderer(width, height float64) *Renderer {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &Renderer{pdf: pdf}
}

func channels(c paint.Color) (r, g, b int) {
	r32, g32, b32, _ := c.RGBA()
	return int(r32 >> 8), int(g32 >> 8), int(b32 >> 8)
}

// setupStyle selects the colors and returns the gofpdf
// style string, or an empty string if there is nothing to paint.
func (rd *Renderer) setupStyle(style shapes.Style) string {
	var styleStr string
	if fill := style.FillColor(); fill != nil {
		rd.pdf.SetFillColor(channels(fill))
		styleStr += "F"
	}
	if stroke := style.StrokeColor(); stroke != nil && style.StrokeWidth() > 0 {
		rd.pdf.SetDrawColor(channels(stroke))
		rd.pdf.SetLineWidth(style.StrokeWidth())
		styleStr += "D"
	}
	return styleStr
}

func (rd *Renderer) RenderCircle(c shapes.Circle) {
	styleStr := rd.setupStyle(c.Style())
	if styleStr == "" {
		return
	}
	center := c.Center()
	rd.pdf.Circle(center.X, center.Y, c.Radius(), styleStr)
}

func (rd *Renderer) RenderRectangle(r shapes.Rectangle) {
	styleStr := rd.setupStyle(r.Style())
	if styleStr == "" {
		return
	}
	o := r.Origin()
	rd.pdf.Rect(o.X, o.Y, r.Width(), r.Height(), styleStr)
}

// Output writes the PDF document to `w`. Errors
// raised while rendering are reported here.
func (rd *Renderer) Output(w io.Writer) error {
	return rd.pdf.Output(w)
}
