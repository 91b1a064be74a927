package render

import (
	"bytes"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLWriteReadback(t *testing.T) {
	model := []Triangle3{
		{V: [3]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}},
		{V: [3]r3.Vec{{}, {X: 1, Y: 1}, {Y: 1}}},
		{V: [3]r3.Vec{{Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 1, Z: 2}}},
	}
	var buf bytes.Buffer
	if err := WriteSTL(&buf, model); err != nil {
		t.Fatal(err)
	}
	const headerSize = 84
	if got := buf.Len(); got != headerSize+len(model)*stlTriangleSize {
		t.Errorf("STL size %d, want %d", got, headerSize+len(model)*stlTriangleSize)
	}
	got, err := readBinarySTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read back %d triangles, want %d", len(got), len(model))
	}
	for i := range got {
		for j := range got[i].V {
			want := model[i].V[j]
			if r3.Norm(r3.Sub(got[i].V[j], want)) > 1e-6 {
				t.Errorf("triangle %d vertex %d: got %v, want %v", i, j, got[i].V[j], want)
			}
		}
	}
}

func TestSTLWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, nil); err == nil {
		t.Error("expected error writing empty model")
	}
}
