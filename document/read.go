package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/benoitkugler/shapedoc/paint"
	"github.com/benoitkugler/shapedoc/shapes"
	"github.com/benoitkugler/shapedoc/svgmarkup"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how the reader reacts
// to elements it does not handle.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unknown elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unknown elements and skips them.
	WarnErrorMode
	// StrictErrorMode fails on unknown elements.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

var errNoSVG = errors.New("no svg element found")

// ErrInvalidCanvas is returned for a negative, NaN or infinite canvas size.
var ErrInvalidCanvas = errors.New("invalid canvas size")

// CheckCanvas returns an error wrapping ErrInvalidCanvas if
// `width` or `height` is not a finite, non negative number.
func CheckCanvas(width, height float64) error {
	for _, v := range [2]float64{width, height} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v x %v", ErrInvalidCanvas, width, height)
		}
	}
	return nil
}

// Drawing is the result of reading a markup file:
// the canvas size and the shapes.
type Drawing struct {
	Width, Height float64
	Document      *Document
}

// readCursor is used while parsing markup
type readCursor struct {
	drawing   *Drawing
	errorMode ErrorMode
	seenSVG   bool
}

type elementFunc func(c *readCursor, attrs []xml.Attr) error

var elementFuncs = map[string]elementFunc{
	"html":   containerF,
	"head":   containerF,
	"body":   containerF,
	"title":  containerF,
	"svg":    svgF,
	"circle": circleF,
	"rect":   rectF,
}

// ReadStream reads a drawing from the given io.Reader.
// Both a bare <svg> element and the HTML page returned by
// Document.Render are accepted. Only circle and rect elements
// are supported; `errMode` determines what happens with other elements.
func ReadStream(stream io.Reader, errMode ErrorMode) (*Drawing, error) {
	cursor := &readCursor{
		drawing: &Drawing{
			Width:    svgmarkup.DefaultWidth,
			Height:   svgmarkup.DefaultHeight,
			Document: New(),
		},
		errorMode: errMode,
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if se, ok := t.(xml.StartElement); ok {
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		}
	}
	if !cursor.seenSVG {
		return nil, errNoSVG
	}
	return cursor.drawing, nil
}

// ReadFile reads a drawing from the named file.
func ReadFile(path string, errMode ErrorMode) (*Drawing, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadStream(fin, errMode)
}

func (c *readCursor) readStartElement(se xml.StartElement) error {
	df, ok := elementFuncs[se.Name.Local]
	if !ok {
		errStr := "cannot process element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("element %s: %w", se.Name.Local, err)
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// readStyle applies the SVG defaults: no stroke,
// black fill and a stroke width of 1.
func readStyle(attrs []xml.Attr) (shapes.Style, error) {
	width := 1.
	var stroke, fill paint.Color = nil, paint.Black
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "stroke":
			stroke, err = paint.ParseColor(attr.Value)
		case "fill":
			fill, err = paint.ParseColor(attr.Value)
		case "stroke-width":
			width, err = parseFloat(attr.Value)
		}
		if err != nil {
			return shapes.Style{}, err
		}
	}
	return shapes.NewStyle(width, stroke, fill)
}

func containerF(*readCursor, []xml.Attr) error { return nil } // children are read as their own start elements

func svgF(c *readCursor, attrs []xml.Attr) error {
	c.seenSVG = true
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width":
			c.drawing.Width, err = parseFloat(attr.Value)
		case "height":
			c.drawing.Height, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	return CheckCanvas(c.drawing.Width, c.drawing.Height)
}

func circleF(c *readCursor, attrs []xml.Attr) error {
	var (
		center shapes.Point
		r      float64
		err    error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			center.X, err = parseFloat(attr.Value)
		case "cy":
			center.Y, err = parseFloat(attr.Value)
		case "r":
			r, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	style, err := readStyle(attrs)
	if err != nil {
		return err
	}
	circle, err := shapes.NewCircle(center, r, style)
	if err != nil {
		return err
	}
	c.drawing.Document.Append(circle)
	return nil
}

func rectF(c *readCursor, attrs []xml.Attr) error {
	var (
		origin shapes.Point
		size   shapes.Size
		err    error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			origin.X, err = parseFloat(attr.Value)
		case "y":
			origin.Y, err = parseFloat(attr.Value)
		case "width":
			size.Width, err = parseFloat(attr.Value)
		case "height":
			size.Height, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	style, err := readStyle(attrs)
	if err != nil {
		return err
	}
	rect, err := shapes.NewRectangle(origin, size, style)
	if err != nil {
		return err
	}
	c.drawing.Document.Append(rect)
	return nil
}
