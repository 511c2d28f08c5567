// Defines the geometric primitives of a drawing, and
// the contract used to render them.
// Shapes know nothing about output formats: each format is
// implemented by a Target, living in its own package
// (see for example shapedoc/svgmarkup or shapedoc/svgraster).
package shapes

// Target knows how to render every shape kind, but
// doesn't need to know how shapes are stored or ordered.
// There is one method per shape kind: adding a kind means
// extending Target, and every implementation with it.
type Target interface {
	// RenderCircle outputs the given circle.
	RenderCircle(c Circle)

	// RenderRectangle outputs the given rectangle.
	RenderRectangle(r Rectangle)
}

// Drawable is implemented by the shapes of this package.
// Draw submits the shape to the target, selecting the
// method matching its kind.
type Drawable interface {
	Draw(t Target)

	isShape()
}

// Detach returns a Drawable which does not share memory with `d`:
// pointers to shapes are dereferenced, so that later mutations through
// the pointer are not observed.
func Detach(d Drawable) Drawable {
	switch d := d.(type) {
	case *Circle:
		return *d
	case *Rectangle:
		return *d
	default:
		return d
	}
}
