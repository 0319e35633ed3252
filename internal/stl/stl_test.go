package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

type tri struct {
	normal     [3]float32
	v1, v2, v3 [3]float32
}

// tetra is a right tetrahedron with legs of 10mm: volume 1000/6 mm3,
// bounding box 10x10x10. Faces touching the origin contribute zero signed
// volume, the hypotenuse face contributes the rest.
func tetra() []tri {
	o := [3]float32{0, 0, 0}
	a := [3]float32{10, 0, 0}
	b := [3]float32{0, 10, 0}
	c := [3]float32{0, 0, 10}
	return []tri{
		{normal: [3]float32{0, 0, -1}, v1: o, v2: b, v3: a},
		{normal: [3]float32{0, -1, 0}, v1: o, v2: a, v3: c},
		{normal: [3]float32{-1, 0, 0}, v1: o, v2: c, v3: b},
		{normal: [3]float32{1, 1, 1}, v1: a, v2: b, v3: c},
	}
}

func encodeBinary(t *testing.T, header string, tris []tri) []byte {
	t.Helper()
	var buf bytes.Buffer
	h := make([]byte, 80)
	copy(h, header)
	buf.Write(h)
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(tris))); err != nil {
		t.Fatalf("write count: %v", err)
	}
	for _, tr := range tris {
		for _, v := range [][3]float32{tr.normal, tr.v1, tr.v2, tr.v3} {
			if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
				t.Fatalf("write vector: %v", err)
			}
		}
		buf.Write([]byte{0, 0}) // attribute byte count
	}
	return buf.Bytes()
}

func encodeASCII(tris []tri) []byte {
	var sb strings.Builder
	sb.WriteString("solid test\n")
	for _, tr := range tris {
		sb.WriteString("  facet normal ")
		writeCoords(&sb, tr.normal)
		sb.WriteString("    outer loop\n")
		for _, v := range [][3]float32{tr.v1, tr.v2, tr.v3} {
			sb.WriteString("      vertex ")
			writeCoords(&sb, v)
		}
		sb.WriteString("    endloop\n")
		sb.WriteString("  endfacet\n")
	}
	sb.WriteString("endsolid test\n")
	return []byte(sb.String())
}

func writeCoords(sb *strings.Builder, v [3]float32) {
	sb.WriteString(strings.Join([]string{
		strconv.FormatFloat(float64(v[0]), 'f', -1, 32),
		strconv.FormatFloat(float64(v[1]), 'f', -1, 32),
		strconv.FormatFloat(float64(v[2]), 'f', -1, 32),
	}, " ") + "\n")
}

func TestAnalyzeBinaryTetrahedron(t *testing.T) {
	data := encodeBinary(t, "binary tetra", tetra())

	mesh, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if mesh.TriangleCount != 4 {
		t.Fatalf("TriangleCount = %d, want 4", mesh.TriangleCount)
	}
	if want := 1000.0 / 6.0; math.Abs(mesh.VolumeMM3-want) > 1e-6 {
		t.Fatalf("VolumeMM3 = %f, want %f", mesh.VolumeMM3, want)
	}
	for _, dim := range []float64{mesh.BoundingBoxXMM, mesh.BoundingBoxYMM, mesh.BoundingBoxZMM} {
		if math.Abs(dim-10) > 1e-6 {
			t.Fatalf("bounding box dim = %f, want 10", dim)
		}
	}
	if mesh.SupportsRequired {
		t.Fatalf("tetrahedron on the bed should not need supports")
	}
}

func TestAnalyzeDetectsOverhang(t *testing.T) {
	tris := tetra()
	// A downward-facing facet floating 5mm above the bed.
	tris = append(tris, tri{
		normal: [3]float32{0, 0, -1},
		v1:     [3]float32{20, 0, 5},
		v2:     [3]float32{30, 0, 5},
		v3:     [3]float32{20, 10, 5},
	})

	mesh, err := Analyze(encodeBinary(t, "overhang", tris))
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if !mesh.SupportsRequired {
		t.Fatalf("expected floating overhang to require supports")
	}
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		if _, err := Analyze(make([]byte, 10)); !errors.Is(err, ErrFileTooSmall) {
			t.Fatalf("expected ErrFileTooSmall, got %v", err)
		}
	})

	t.Run("zero triangles", func(t *testing.T) {
		if _, err := Analyze(encodeBinary(t, "empty", nil)); !errors.Is(err, ErrNoTriangles) {
			t.Fatalf("expected ErrNoTriangles, got %v", err)
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		data := encodeBinary(t, "truncated", tetra())
		if _, err := Analyze(data[:len(data)-7]); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("too many triangles", func(t *testing.T) {
		data := encodeBinary(t, "huge", tetra())
		binary.LittleEndian.PutUint32(data[80:84], MaxTriangles+1)
		if _, err := Analyze(data); !errors.Is(err, ErrTooManyTriangles) {
			t.Fatalf("expected ErrTooManyTriangles, got %v", err)
		}
	})
}

func TestAnalyzeASCIITetrahedron(t *testing.T) {
	mesh, err := Analyze(encodeASCII(tetra()))
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if mesh.TriangleCount != 4 {
		t.Fatalf("TriangleCount = %d, want 4", mesh.TriangleCount)
	}
	if want := 1000.0 / 6.0; math.Abs(mesh.VolumeMM3-want) > 1e-3 {
		t.Fatalf("VolumeMM3 = %f, want %f", mesh.VolumeMM3, want)
	}
}

func TestBinaryHeaderStartingWithSolid(t *testing.T) {
	// Some exporters write "solid" into the binary header; the body has
	// no facet keyword so it must still parse as binary.
	data := encodeBinary(t, "solid exported-by-cad", tetra())

	mesh, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if mesh.TriangleCount != 4 {
		t.Fatalf("TriangleCount = %d, want 4", mesh.TriangleCount)
	}
}
