package render

import (
	"github.com/soypat/vfill"
	"github.com/yofu/dxf"
)

// CreateDXF extracts the outline of a 2D region and writes it to a DXF
// file as line entities on a single layer. cells controls outline fidelity
// as in Contours.
func CreateDXF(path string, s vfill.SDF2, cells int) error {
	loops, err := Contours(s, cells)
	if err != nil {
		return err
	}
	d := dxf.NewDrawing()
	_, err = d.AddLayer("Outline", dxf.DefaultColor, dxf.DefaultLineType, true)
	if err != nil {
		return err
	}
	for _, loop := range loops {
		for i := range loop {
			a := loop[i]
			b := loop[(i+1)%len(loop)]
			_, err = d.Line(a.X, a.Y, 0, b.X, b.Y, 0)
			if err != nil {
				return err
			}
		}
	}
	return d.SaveAs(path)
}
