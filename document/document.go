// Holds an ordered list of shapes, and drives
// their rendering into any shapes.Target.
// Documents may also be read back from the markup
// produced by shapedoc/svgmarkup, see ReadStream.
package document

import (
	"github.com/benoitkugler/shapedoc/shapes"
	"github.com/benoitkugler/shapedoc/svgmarkup"
)

// Document is an ordered sequence of shapes.
// Insertion order is rendering order; duplicates are allowed.
// A Document is not safe for concurrent use.
type Document struct {
	shapes []shapes.Drawable
}

// New returns a document containing `ds`, in order.
func New(ds ...shapes.Drawable) *Document {
	doc := &Document{shapes: make([]shapes.Drawable, 0, len(ds))}
	for _, d := range ds {
		doc.Append(d)
	}
	return doc
}

// Append adds a copy of `d` at the end of the document.
func (doc *Document) Append(d shapes.Drawable) {
	doc.shapes = append(doc.shapes, shapes.Detach(d))
}

// Len returns the number of shapes.
func (doc *Document) Len() int { return len(doc.shapes) }

// Shapes returns a copy of the shape sequence.
func (doc *Document) Shapes() []shapes.Drawable {
	return append([]shapes.Drawable(nil), doc.shapes...)
}

// Draw submits every shape to `t`, in insertion order.
func (doc *Document) Draw(t shapes.Target) {
	for _, d := range doc.shapes {
		d.Draw(t)
	}
}

// Render returns the document as an HTML page, using
// a fresh default svgmarkup.Renderer.
func (doc *Document) Render() string {
	rd := svgmarkup.NewDefaultRenderer()
	doc.Draw(rd)
	return rd.HTMLOutput()
}
