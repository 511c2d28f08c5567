package shapes

import (
	"math"

	"github.com/benoitkugler/shapedoc/paint"
)

// Circle is a value: copying a Circle copies all its state.
// Use NewCircle to build one; the zero value is a point at the
// origin, with no stroke nor fill.
type Circle struct {
	style  Style
	center Point
	radius float64
}

// NewCircle returns an error if `radius` is negative.
func NewCircle(center Point, radius float64, style Style) (Circle, error) {
	if err := checkLength(radius, ErrNegativeRadius); err != nil {
		return Circle{}, err
	}
	return Circle{style: style, center: center, radius: radius}, nil
}

// DefaultCircle returns a red circle filled with yellow.
func DefaultCircle() Circle {
	return Circle{
		style:  mustStyle(5, paint.Red, paint.Yellow),
		center: Point{X: 80, Y: 160},
		radius: 60,
	}
}

func (Circle) isShape() {}

// Draw implements Drawable.
func (c Circle) Draw(t Target) { t.RenderCircle(c) }

func (c Circle) Style() Style    { return c.style }
func (c Circle) Center() Point   { return c.center }
func (c Circle) Radius() float64 { return c.radius }

func (c Circle) Diameter() float64 { return 2 * c.radius }

// WithDiameter returns a copy of `c` with radius `d`/2.
func (c Circle) WithDiameter(d float64) (Circle, error) {
	return NewCircle(c.center, d/2, c.style)
}

func (c Circle) Area() float64      { return math.Pi * c.radius * c.radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

// Shift returns a copy of `c` moved by (dx, dy).
func (c Circle) Shift(dx, dy float64) Circle {
	c.center.X += dx
	c.center.Y += dy
	return c
}

// WithStyle returns a copy of `c` painted with `s`.
func (c Circle) WithStyle(s Style) Circle {
	c.style = s
	return c
}

// Rectangle is an axis aligned rectangle, defined by
// its top left corner and its size.
type Rectangle struct {
	style  Style
	origin Point
	size   Size
}

// NewRectangle returns an error if the width or height is negative.
func NewRectangle(origin Point, size Size, style Style) (Rectangle, error) {
	if err := checkLength(size.Width, ErrNegativeSize); err != nil {
		return Rectangle{}, err
	}
	if err := checkLength(size.Height, ErrNegativeSize); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{style: style, origin: origin, size: size}, nil
}

// DefaultRectangle returns a teal rectangle filled with aqua.
func DefaultRectangle() Rectangle {
	return Rectangle{
		style:  mustStyle(5, paint.Teal, paint.Aqua),
		origin: Point{X: 110, Y: 10},
		size:   Size{Width: 100, Height: 130},
	}
}

func (Rectangle) isShape() {}

// Draw implements Drawable.
func (r Rectangle) Draw(t Target) { t.RenderRectangle(r) }

func (r Rectangle) Style() Style   { return r.style }
func (r Rectangle) Origin() Point  { return r.origin }
func (r Rectangle) Size() Size     { return r.size }
func (r Rectangle) Width() float64 { return r.size.Width }

func (r Rectangle) Height() float64 { return r.size.Height }

func (r Rectangle) Area() float64      { return r.size.Width * r.size.Height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.size.Width + r.size.Height) }

// Shift returns a copy of `r` moved by (dx, dy).
func (r Rectangle) Shift(dx, dy float64) Rectangle {
	r.origin.X += dx
	r.origin.Y += dy
	return r
}

// WithStyle returns a copy of `r` painted with `s`.
func (r Rectangle) WithStyle(s Style) Rectangle {
	r.style = s
	return r
}

// Measurer is implemented by shapes with an area and a perimeter.
type Measurer interface {
	Area() float64
	Perimeter() float64
}

// TotalArea sums the area of the given shapes.
func TotalArea(ms ...Measurer) float64 {
	var total float64
	for _, m := range ms {
		total += m.Area()
	}
	return total
}

// TotalPerimeter sums the perimeter of the given shapes.
func TotalPerimeter(ms ...Measurer) float64 {
	var total float64
	for _, m := range ms {
		total += m.Perimeter()
	}
	return total
}
