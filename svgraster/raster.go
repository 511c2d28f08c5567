// Implements a raster backend to render shapes,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/benoitkugler/shapedoc/paint"
	"github.com/benoitkugler/shapedoc/shapes"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ shapes.Target = (*Renderer)(nil) // assert interface conformance

const miterLimit = 4

// Renderer paints shapes on an RGBA image.
// Each shape is filled first, then stroked.
type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer drawing into a new transparent
// image of the given size, using a rasterx.ScannerGV.
func NewRenderer(width, height int) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// Image returns the image painted so far.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

// EncodePNG writes the image in PNG format.
func (rd *Renderer) EncodePNG(w io.Writer) error {
	return png.Encode(w, rd.img)
}

func (rd *Renderer) RenderCircle(c shapes.Circle) {
	center := c.Center()
	rd.paint(c.Style(), func(p rasterx.Adder) {
		rasterx.AddCircle(center.X, center.Y, c.Radius(), p)
	})
}

func (rd *Renderer) RenderRectangle(r shapes.Rectangle) {
	o := r.Origin()
	rd.paint(r.Style(), func(p rasterx.Adder) {
		rasterx.AddRect(o.X, o.Y, o.X+r.Width(), o.Y+r.Height(), 0, p)
	})
}

// paint sends the outline built by `addPath` to the filler,
// then to the dasher. A nil color (or a zero stroke width)
// disables the corresponding operation.
func (rd *Renderer) paint(style shapes.Style, addPath func(p rasterx.Adder)) {
	if fill := style.FillColor(); fill != nil {
		rd.filler.Clear()
		rd.filler.SetWinding(true)
		addPath(rd.filler)
		rd.filler.SetColor(toColor(fill))
		rd.filler.Draw()
	}

	if stroke := style.StrokeColor(); stroke != nil && style.StrokeWidth() > 0 {
		rd.dasher.Clear()
		rd.dasher.SetStroke(
			fixed.Int26_6(style.StrokeWidth()*64), fixed.Int26_6(miterLimit*64),
			rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round, nil, 0,
		)
		addPath(rd.dasher)
		rd.dasher.SetColor(toColor(stroke))
		rd.dasher.Draw()
	}
}

// toColor resolves the palette, so that the scanner
// works with a plain image/color value.
func toColor(c paint.Color) color.Color {
	return color.RGBAModel.Convert(c)
}
