package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/shapedoc/paint"
)

var (
	ErrNegativeRadius      = errors.New("negative radius")
	ErrNegativeSize        = errors.New("negative size")
	ErrNegativeStrokeWidth = errors.New("negative stroke width")
)

// Point is an X,Y coordinate
type Point struct{ X, Y float64 }

// Size is a width and a height, both non negative.
type Size struct{ Width, Height float64 }

// Style holds the painting attributes shared by all shapes.
// A nil color disables the corresponding operation.
type Style struct {
	strokeWidth float64
	stroke      paint.Color
	fill        paint.Color
}

// NewStyle checks that `width` is a valid stroke width.
func NewStyle(width float64, stroke, fill paint.Color) (Style, error) {
	if err := checkLength(width, ErrNegativeStrokeWidth); err != nil {
		return Style{}, err
	}
	return Style{strokeWidth: width, stroke: stroke, fill: fill}, nil
}

func (s Style) StrokeWidth() float64     { return s.strokeWidth }
func (s Style) StrokeColor() paint.Color { return s.stroke }
func (s Style) FillColor() paint.Color   { return s.fill }

// mustStyle is used for the built-in defaults only.
func mustStyle(width float64, stroke, fill paint.Color) Style {
	s, err := NewStyle(width, stroke, fill)
	if err != nil {
		panic(err)
	}
	return s
}

// checkLength rejects negative and NaN values.
func checkLength(v float64, kind error) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: %v", kind, v)
	}
	return nil
}
