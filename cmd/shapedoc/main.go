// Command shapedoc renders a shape document as HTML, SVG, PNG or PDF.
//
// Usage:
//
//	shapedoc [-in drawing.html] [-format html|svg|png|pdf] [-o out] [-width W -height H] [-errors ignore|warn|strict]
//
// Without -in, the demo document (one circle then one rectangle) is rendered.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benoitkugler/shapedoc/document"
	"github.com/benoitkugler/shapedoc/shapes"
	"github.com/benoitkugler/shapedoc/svgmarkup"
	"github.com/benoitkugler/shapedoc/svgpdf"
	"github.com/benoitkugler/shapedoc/svgraster"
)

type options struct {
	in, format, out string
	width, height   float64
	errorMode       document.ErrorMode
}

func parseErrorMode(s string) (document.ErrorMode, error) {
	for _, m := range []document.ErrorMode{document.IgnoreErrorMode, document.WarnErrorMode, document.StrictErrorMode} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown error mode %q", s)
}

func demo() *document.Drawing {
	return &document.Drawing{
		Width:    svgmarkup.DefaultWidth,
		Height:   svgmarkup.DefaultHeight,
		Document: document.New(shapes.DefaultCircle(), shapes.DefaultRectangle()),
	}
}

// render writes `drawing` to `w` in the requested format
func render(w io.Writer, drawing *document.Drawing, format string) error {
	if err := document.CheckCanvas(drawing.Width, drawing.Height); err != nil {
		return err
	}
	switch format {
	case "html", "svg":
		rd := svgmarkup.NewRenderer(drawing.Width, drawing.Height)
		drawing.Document.Draw(rd)
		out := rd.HTMLOutput()
		if format == "svg" {
			out = rd.SVGOutput()
		}
		_, err := io.WriteString(w, out)
		return err
	case "png":
		width, height := int(drawing.Width), int(drawing.Height)
		if width < 1 || height < 1 {
			return fmt.Errorf("%w: png needs at least one pixel, got %v x %v",
				document.ErrInvalidCanvas, drawing.Width, drawing.Height)
		}
		rd := svgraster.NewRenderer(width, height)
		drawing.Document.Draw(rd)
		return rd.EncodePNG(w)
	case "pdf":
		rd := svgpdf.NewRenderer(drawing.Width, drawing.Height)
		drawing.Document.Draw(rd)
		return rd.Output(w)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func run(opts options) error {
	drawing := demo()
	if opts.in != "" {
		var err error
		drawing, err = document.ReadFile(opts.in, opts.errorMode)
		if err != nil {
			return fmt.Errorf("reading %s: %w", opts.in, err)
		}
	}
	if opts.width > 0 {
		drawing.Width = opts.width
	}
	if opts.height > 0 {
		drawing.Height = opts.height
	}

	var buf bytes.Buffer
	if err := render(&buf, drawing, opts.format); err != nil {
		return err
	}
	if opts.out == "" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}
	return os.WriteFile(opts.out, buf.Bytes(), 0o644)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("shapedoc: ")

	var (
		opts      options
		errorMode string
	)
	flag.StringVar(&opts.in, "in", "", "markup file to read (default: demo document)")
	flag.StringVar(&opts.format, "format", "html", "output format: html, svg, png or pdf")
	flag.StringVar(&opts.out, "o", "", "output file (default: stdout)")
	flag.Float64Var(&opts.width, "width", 0, "canvas width (default: from input)")
	flag.Float64Var(&opts.height, "height", 0, "canvas height (default: from input)")
	flag.StringVar(&errorMode, "errors", "warn", "unknown elements: ignore, warn or strict")
	flag.Parse()

	var err error
	opts.errorMode, err = parseErrorMode(errorMode)
	if err != nil {
		log.Fatal(err)
	}
	if err = run(opts); err != nil {
		log.Fatal(err)
	}
}
