package svgmarkup

import (
	"strconv"
	"strings"
	"testing"

	"github.com/benoitkugler/shapedoc/paint"
	"github.com/benoitkugler/shapedoc/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	defaultCircleTag = "<circle cx='80' cy='160' r='60' stroke='red' fill='yellow' stroke-width='5' />"
	defaultRectTag   = "<rect x='110' y='10' width='100' height='130' stroke='teal' fill='aqua' stroke-width='5' />"
)

func TestRenderFragments(t *testing.T) {
	rd := NewDefaultRenderer()
	shapes.DefaultCircle().Draw(rd)
	shapes.DefaultRectangle().Draw(rd)

	assert.Equal(t, []string{defaultCircleTag, defaultRectTag}, rd.Fragments())
}

func TestSVGOutput(t *testing.T) {
	rd := NewDefaultRenderer()
	shapes.DefaultCircle().Draw(rd)
	shapes.DefaultRectangle().Draw(rd)

	expected := "<svg width='250' height='250'>\n" +
		"  " + defaultCircleTag + "\n" +
		"  " + defaultRectTag + "\n" +
		"</svg>"
	assert.Equal(t, expected, rd.SVGOutput())
	assert.Equal(t, "<!DOCTYPE html><html><body>"+expected+"</body></html>", rd.HTMLOutput())
}

func TestEmpty(t *testing.T) {
	rd := NewRenderer(10, 20.5)
	assert.Equal(t, "<svg width='10' height='20.5'>\n</svg>", rd.SVGOutput())
	assert.Empty(t, rd.Fragments())
}

func TestNoDeduplication(t *testing.T) {
	rd := NewDefaultRenderer()
	c := shapes.DefaultCircle()
	c.Draw(rd)
	c.Draw(rd)
	assert.Equal(t, []string{defaultCircleTag, defaultCircleTag}, rd.Fragments())
}

func TestFragmentsIsCopy(t *testing.T) {
	rd := NewDefaultRenderer()
	shapes.DefaultCircle().Draw(rd)
	frags := rd.Fragments()
	frags[0] = "modified"
	assert.Equal(t, defaultCircleTag, rd.Fragments()[0])
}

func TestNumbersAndColors(t *testing.T) {
	style, err := shapes.NewStyle(0.5, paint.RGB{R: 170, G: 170, B: 170}, nil)
	require.NoError(t, err)
	c, err := shapes.NewCircle(shapes.Point{X: -1.25, Y: 1e-3}, 2.5, style)
	require.NoError(t, err)

	rd := NewDefaultRenderer()
	c.Draw(rd)
	assert.Equal(t, "<circle cx='-1.25' cy='0.001' r='2.5' stroke='#AAAAAA' fill='none' stroke-width='0.5' />",
		rd.Fragments()[0])

	// every number parses back to the same value
	for _, f := range []float64{0.1, 1. / 3, 123456.789, 1e21} {
		s := formatNumber(f)
		assert.False(t, strings.Contains(s, " "))
		back, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		assert.Equal(t, f, back)
	}
}

func TestUnknownNamedColor(t *testing.T) {
	style, err := shapes.NewStyle(1, paint.Named(200), paint.Red)
	require.NoError(t, err)
	r, err := shapes.NewRectangle(shapes.Point{}, shapes.Size{Width: 2, Height: 3}, style)
	require.NoError(t, err)

	rd := NewDefaultRenderer()
	r.Draw(rd)
	assert.Equal(t, "<rect x='0' y='0' width='2' height='3' stroke='none' fill='red' stroke-width='1' />",
		rd.Fragments()[0])
}
