package shapes

import (
	"errors"
	"math"
	"testing"

	"github.com/benoitkugler/shapedoc/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs every call, in order
type recorder struct {
	circles    []Circle
	rectangles []Rectangle
	calls      []string
}

func (r *recorder) RenderCircle(c Circle) {
	r.circles = append(r.circles, c)
	r.calls = append(r.calls, "circle")
}

func (r *recorder) RenderRectangle(rect Rectangle) {
	r.rectangles = append(r.rectangles, rect)
	r.calls = append(r.calls, "rect")
}

var _ Target = (*recorder)(nil)

func TestDefaults(t *testing.T) {
	c := DefaultCircle()
	assert.Equal(t, Point{80, 160}, c.Center())
	assert.Equal(t, 60., c.Radius())
	assert.Equal(t, 5., c.Style().StrokeWidth())
	assert.Equal(t, paint.Red, c.Style().StrokeColor())
	assert.Equal(t, paint.Yellow, c.Style().FillColor())

	r := DefaultRectangle()
	assert.Equal(t, Point{110, 10}, r.Origin())
	assert.Equal(t, Size{100, 130}, r.Size())
	assert.Equal(t, 5., r.Style().StrokeWidth())
	assert.Equal(t, paint.Teal, r.Style().StrokeColor())
	assert.Equal(t, paint.Aqua, r.Style().FillColor())
}

func TestInvalidConstruction(t *testing.T) {
	style, err := NewStyle(1, paint.Black, nil)
	require.NoError(t, err)

	_, err = NewCircle(Point{}, -1, style)
	assert.True(t, errors.Is(err, ErrNegativeRadius))

	_, err = NewCircle(Point{}, math.NaN(), style)
	assert.True(t, errors.Is(err, ErrNegativeRadius))

	_, err = NewRectangle(Point{}, Size{-1, 2}, style)
	assert.True(t, errors.Is(err, ErrNegativeSize))

	_, err = NewRectangle(Point{}, Size{1, -2}, style)
	assert.True(t, errors.Is(err, ErrNegativeSize))

	_, err = NewStyle(-0.5, paint.Black, paint.White)
	assert.True(t, errors.Is(err, ErrNegativeStrokeWidth))

	c, err := NewCircle(Point{1, 2}, 0, style)
	require.NoError(t, err)
	assert.Equal(t, 0., c.Radius())

	_, err = DefaultCircle().WithDiameter(-4)
	assert.True(t, errors.Is(err, ErrNegativeRadius))
}

func TestCircleGeometry(t *testing.T) {
	for _, radius := range []float64{0, 0.5, 1, 60, 1234.5678} {
		c, err := NewCircle(Point{}, radius, Style{})
		require.NoError(t, err)
		assert.InDelta(t, math.Pi*radius*radius, c.Area(), 1e-9)
		assert.InDelta(t, 2*math.Pi*radius, c.Perimeter(), 1e-9)
		assert.Equal(t, 2*radius, c.Diameter())
	}

	for _, d := range []float64{0, 0.1, 3, 120, 1e6} {
		c, err := DefaultCircle().WithDiameter(d)
		require.NoError(t, err)
		assert.InDelta(t, d, c.Diameter(), 1e-9)
		assert.InDelta(t, d/2, c.Radius(), 1e-9)
	}
}

func TestRectangleGeometry(t *testing.T) {
	for _, s := range []Size{{0, 0}, {1, 2}, {100, 130}, {0.25, 8}} {
		r, err := NewRectangle(Point{3, 4}, s, Style{})
		require.NoError(t, err)
		assert.Equal(t, s.Width*s.Height, r.Area())
		assert.Equal(t, 2*(s.Width+s.Height), r.Perimeter())
	}
}

func TestTotals(t *testing.T) {
	c, r := DefaultCircle(), DefaultRectangle()
	assert.InDelta(t, c.Perimeter()+r.Perimeter(), TotalPerimeter(c, r), 1e-9)
	assert.InDelta(t, c.Area()+r.Area(), TotalArea(c, r), 1e-9)
	assert.Equal(t, 0., TotalPerimeter())
}

func TestShiftReturnsCopy(t *testing.T) {
	c := DefaultCircle()
	moved := c.Shift(10, -5)
	assert.Equal(t, Point{80, 160}, c.Center())
	assert.Equal(t, Point{90, 155}, moved.Center())

	r := DefaultRectangle()
	movedR := r.Shift(-10, 0)
	assert.Equal(t, Point{110, 10}, r.Origin())
	assert.Equal(t, Point{100, 10}, movedR.Origin())

	restyled := c.WithStyle(Style{})
	assert.Nil(t, restyled.Style().FillColor())
	assert.Equal(t, paint.Yellow, c.Style().FillColor())
}

func TestDrawDispatch(t *testing.T) {
	rec := &recorder{}
	for _, d := range []Drawable{DefaultCircle(), DefaultRectangle(), DefaultCircle()} {
		d.Draw(rec)
	}
	assert.Equal(t, []string{"circle", "rect", "circle"}, rec.calls)
	assert.Equal(t, DefaultCircle(), rec.circles[0])
	assert.Equal(t, DefaultRectangle(), rec.rectangles[0])
}

func TestDrawPassesValue(t *testing.T) {
	rec := &recorder{}
	c := DefaultCircle()
	c.Draw(rec)
	c = c.Shift(100, 100)
	assert.Equal(t, Point{80, 160}, rec.circles[0].Center())
}

func TestDetach(t *testing.T) {
	c := DefaultCircle()
	d := Detach(&c)
	c = c.Shift(1, 1)

	detached, ok := d.(Circle)
	require.True(t, ok)
	assert.Equal(t, Point{80, 160}, detached.Center())

	r := DefaultRectangle()
	dr := Detach(&r)
	_, ok = dr.(Rectangle)
	assert.True(t, ok)

	assert.Equal(t, Drawable(r), Detach(r))
}
