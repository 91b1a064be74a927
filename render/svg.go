package render

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"
	"github.com/soypat/vfill"
	"github.com/soypat/vfill/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SVGStyle sets the fill and stroke attributes of exported outlines.
type SVGStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// DefaultSVGStyle renders black material on a transparent background.
var DefaultSVGStyle = SVGStyle{
	Fill:   "black",
	Stroke: "none",
}

// WriteSVG extracts the outline of a 2D region and writes it as an SVG
// document. Holes are rendered via the even-odd fill rule. cells controls
// outline fidelity as in Contours.
func WriteSVG(w io.Writer, s vfill.SDF2, cells int, style SVGStyle) error {
	loops, err := Contours(s, cells)
	if err != nil {
		return err
	}
	bb := d2.Box(s.Bounds())
	size := bb.Size()

	canvas := svg.New(w)
	canvas.Startview(size.X, size.Y, bb.Min.X, bb.Min.Y, size.X, size.Y)
	attr := fmt.Sprintf(`fill="%s" fill-rule="evenodd" stroke="%s"`, style.Fill, style.Stroke)
	if style.StrokeWidth > 0 {
		attr += fmt.Sprintf(` stroke-width="%g"`, style.StrokeWidth)
	}
	// one path with all loops so even-odd carves out holes.
	canvas.Path(pathData(loops, bb.Max.Y+bb.Min.Y), attr)
	canvas.End()
	return nil
}

// CreateSVG renders a 2D region to an SVG file.
func CreateSVG(path string, s vfill.SDF2, cells int, style SVGStyle) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSVG(file, s, cells, style)
}

// pathData builds the SVG path string of the loops. The y axis is flipped
// about ysum/2 since SVG grows downward.
func pathData(loops [][]r2.Vec, ysum float64) string {
	var b []byte
	for _, loop := range loops {
		for i, v := range loop {
			cmd := byte('L')
			if i == 0 {
				cmd = 'M'
			}
			b = append(b, fmt.Sprintf("%c%g %g ", cmd, v.X, ysum-v.Y)...)
		}
		b = append(b, 'Z', ' ')
	}
	return string(b)
}
