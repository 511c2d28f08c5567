package paint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// ErrInvalidColor is returned when a colour attribute can't be understood.
var ErrInvalidColor = errors.New("invalid color")

var namesToPalette = func() map[string]Named {
	m := make(map[string]Named, len(paletteNames))
	for i, name := range paletteNames {
		m[name] = Named(i)
	}
	return m
}()

// ParseColor reads a colour as written in SVG attributes.
// Supported forms are the 16 palette names, #RGB, #RRGGBB
// and rgb(r, g, b). "none" (or an empty string) returns a nil Color
// and a nil error.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "" || v == "none":
		return nil, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunctional(v[len("rgb(") : len(v)-1])
	}
	if n, ok := namesToPalette[v]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(v string) (Color, error) {
	switch len(v) {
	case 3: // #RGB is #RRGGBB with doubled digits
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
	default:
		return nil, fmt.Errorf("%w: #%s", ErrInvalidColor, v)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: #%s", ErrInvalidColor, v)
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// parseFunctional reads the argument list of rgb(...):
// exactly three comma separated integers in [0, 255].
func parseFunctional(args string) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: rgb(%s) expects 3 channels", ErrInvalidColor, args)
	}
	var out [3]uint8
	for i, part := range parts {
		f, err := readChannel(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: rgb(%s): %s", ErrInvalidColor, args, err)
		}
		out[i] = uint8(f)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// readChannel accepts a single number token, and nothing else.
func readChannel(v string) (float64, error) {
	l, _ := gl.Lex("rgb", v)
	item := l.NextItem()
	if item.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected a number, got %q", v)
	}
	if next := l.NextItem(); next.Type != gl.ItemEOS {
		return 0, fmt.Errorf("unexpected %q after channel", next.Value)
	}
	f, err := strconv.ParseFloat(item.Value, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > 255 || f != float64(int(f)) {
		return 0, fmt.Errorf("channel %v out of range", f)
	}
	return f, nil
}
