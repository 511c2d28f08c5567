// Provides the colour values used to stroke and fill shapes.
// A colour is either one of the 16 basic palette entries
// or an explicit RGB triple.
package paint

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is either a Named palette entry or an RGB triple.
// Every Color is also an image/color.Color (fully opaque),
// so painting backends may use it directly.
type Color interface {
	color.Color

	// Describe returns the canonical textual form of the colour.
	Describe() string

	isColor()
}

// Named is one of the 16 basic palette colours.
type Named uint8

const (
	Aqua Named = iota
	Black
	Blue
	Fuchsia
	Gray
	Green
	Lime
	Maroon
	Navy
	Olive
	Purple
	Red
	Silver
	Teal
	White
	Yellow
)

var paletteNames = [...]string{
	Aqua:    "aqua",
	Black:   "black",
	Blue:    "blue",
	Fuchsia: "fuchsia",
	Gray:    "gray",
	Green:   "green",
	Lime:    "lime",
	Maroon:  "maroon",
	Navy:    "navy",
	Olive:   "olive",
	Purple:  "purple",
	Red:     "red",
	Silver:  "silver",
	Teal:    "teal",
	White:   "white",
	Yellow:  "yellow",
}

// Palette returns the named colours, in declaration order.
func Palette() []Named {
	out := make([]Named, len(paletteNames))
	for i := range out {
		out[i] = Named(i)
	}
	return out
}

func (Named) isColor() {}

// Describe returns the lowercase palette name.
// Values outside the palette describe as "none", so that
// they are still valid in an SVG attribute.
func (n Named) Describe() string {
	if int(n) >= len(paletteNames) {
		return "none"
	}
	return paletteNames[n]
}

func (n Named) String() string {
	if int(n) >= len(paletteNames) {
		return "<unknown Named>"
	}
	return paletteNames[n]
}

// RGBA implements color.Color. Values are those of the CSS palette.
func (n Named) RGBA() (r, g, b, a uint32) {
	c, ok := colornames.Map[n.Describe()]
	if !ok {
		return 0, 0, 0, 0
	}
	return c.RGBA()
}

// RGB is an explicit colour, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// FromGray returns the grey with all three channels set to `level`.
func FromGray(level uint8) Color {
	return RGB{R: level, G: level, B: level}
}

func (RGB) isColor() {}

// Describe returns #RRGGBB, in uppercase hexadecimal.
func (c RGB) Describe() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Describe() }

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Describe returns the textual form of `c`, or "none" for a nil colour,
// which is how SVG spells a disabled stroke or fill.
func Describe(c Color) string {
	if c == nil {
		return "none"
	}
	return c.Describe()
}
