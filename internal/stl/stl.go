// Package stl parses binary and ASCII STL files and derives the geometric
// metrics the upload analysis step persists: mesh volume, axis-aligned
// bounding box and an overhang heuristic for support material.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxFileSize caps accepted uploads at 50MB.
	MaxFileSize = 50 * 1024 * 1024
	// MinFileSize is the smallest well-formed binary STL: 80-byte header
	// plus the 4-byte triangle count.
	MinFileSize = 84
	// MaxTriangles rejects pathological meshes.
	MaxTriangles = 1_000_000

	binaryTriangleSize = 50

	// Facets steeper than 45 degrees facing down need support material
	// unless they rest on the bed.
	overhangNormalZ = -0.5
	bedClearanceMM  = 0.5
)

var (
	ErrFileTooLarge     = errors.New("stl file too large")
	ErrFileTooSmall     = errors.New("stl file too small")
	ErrNoTriangles      = errors.New("stl file contains no triangles")
	ErrTooManyTriangles = errors.New("stl file too complex")
	ErrMalformed        = errors.New("malformed stl file")
)

type vector struct {
	x, y, z float64
}

type triangle struct {
	normal     vector
	v1, v2, v3 vector
}

// Mesh holds the metrics extracted from a parsed STL.
type Mesh struct {
	TriangleCount    int
	VolumeMM3        float64
	BoundingBoxXMM   float64
	BoundingBoxYMM   float64
	BoundingBoxZMM   float64
	SupportsRequired bool
}

// Analyze validates the raw bytes as an STL file and computes mesh metrics.
// It accepts both binary and ASCII encodings; anything else is rejected
// with ErrMalformed (or a more specific sentinel).
func Analyze(data []byte) (Mesh, error) {
	if len(data) > MaxFileSize {
		return Mesh{}, ErrFileTooLarge
	}
	if len(data) < MinFileSize {
		return Mesh{}, ErrFileTooSmall
	}

	var (
		tris []triangle
		err  error
	)
	if isASCII(data) {
		tris, err = parseASCII(data)
	} else {
		tris, err = parseBinary(data)
	}
	if err != nil {
		return Mesh{}, err
	}

	return computeMetrics(tris), nil
}

// isASCII detects the text encoding. A "solid" prefix alone is not enough:
// some binary exporters write it into the 80-byte header, so the body must
// also contain a facet keyword.
func isASCII(data []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return false
	}
	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return bytes.Contains(probe, []byte("facet"))
}

func parseBinary(data []byte) ([]triangle, error) {
	count := binary.LittleEndian.Uint32(data[80:84])
	if count == 0 {
		return nil, ErrNoTriangles
	}
	if count > MaxTriangles {
		return nil, ErrTooManyTriangles
	}

	expected := MinFileSize + int(count)*binaryTriangleSize
	if len(data) != expected {
		return nil, fmt.Errorf("%w: size mismatch (expected %d bytes, got %d)", ErrMalformed, expected, len(data))
	}

	tris := make([]triangle, 0, count)
	off := MinFileSize
	for i := uint32(0); i < count; i++ {
		rec := data[off : off+binaryTriangleSize]
		tris = append(tris, triangle{
			normal: readVector(rec[0:12]),
			v1:     readVector(rec[12:24]),
			v2:     readVector(rec[24:36]),
			v3:     readVector(rec[36:48]),
		})
		off += binaryTriangleSize
	}
	return tris, nil
}

func readVector(b []byte) vector {
	return vector{
		x: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))),
		y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))),
		z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:12]))),
	}
}

func parseASCII(data []byte) ([]triangle, error) {
	var (
		tris    []triangle
		current triangle
		verts   int
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "facet normal"):
			n, err := parseCoords(line, 2)
			if err != nil {
				return nil, err
			}
			current = triangle{normal: n}
			verts = 0
		case strings.HasPrefix(line, "vertex"):
			v, err := parseCoords(line, 1)
			if err != nil {
				return nil, err
			}
			switch verts {
			case 0:
				current.v1 = v
			case 1:
				current.v2 = v
			case 2:
				current.v3 = v
			default:
				return nil, fmt.Errorf("%w: more than three vertices in facet", ErrMalformed)
			}
			verts++
		case strings.HasPrefix(line, "endfacet"):
			if verts != 3 {
				return nil, fmt.Errorf("%w: facet with %d vertices", ErrMalformed, verts)
			}
			tris = append(tris, current)
			if len(tris) > MaxTriangles {
				return nil, ErrTooManyTriangles
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(tris) == 0 {
		return nil, ErrNoTriangles
	}
	return tris, nil
}

func parseCoords(line string, skip int) (vector, error) {
	fields := strings.Fields(line)
	if len(fields) < skip+3 {
		return vector{}, fmt.Errorf("%w: short coordinate line %q", ErrMalformed, line)
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[skip+i], 64)
		if err != nil {
			return vector{}, fmt.Errorf("%w: bad coordinate %q", ErrMalformed, fields[skip+i])
		}
		out[i] = f
	}
	return vector{x: out[0], y: out[1], z: out[2]}, nil
}

func computeMetrics(tris []triangle) Mesh {
	minV := vector{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV := vector{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	var (
		signedVolume float64
		overhangMinZ []float64
	)
	for _, t := range tris {
		signedVolume += signedTetraVolume(t.v1, t.v2, t.v3)
		for _, v := range []vector{t.v1, t.v2, t.v3} {
			minV = vector{math.Min(minV.x, v.x), math.Min(minV.y, v.y), math.Min(minV.z, v.z)}
			maxV = vector{math.Max(maxV.x, v.x), math.Max(maxV.y, v.y), math.Max(maxV.z, v.z)}
		}
		if t.normal.z < overhangNormalZ {
			overhangMinZ = append(overhangMinZ, math.Min(t.v1.z, math.Min(t.v2.z, t.v3.z)))
		}
	}

	supports := false
	for _, z := range overhangMinZ {
		// A downward facet resting on the bed prints fine; one floating
		// above it needs support material underneath.
		if z > minV.z+bedClearanceMM {
			supports = true
			break
		}
	}

	return Mesh{
		TriangleCount:    len(tris),
		VolumeMM3:        math.Abs(signedVolume),
		BoundingBoxXMM:   maxV.x - minV.x,
		BoundingBoxYMM:   maxV.y - minV.y,
		BoundingBoxZMM:   maxV.z - minV.z,
		SupportsRequired: supports,
	}
}

func signedTetraVolume(a, b, c vector) float64 {
	return (a.x*(b.y*c.z-b.z*c.y) - a.y*(b.x*c.z-b.z*c.x) + a.z*(b.x*c.y-b.y*c.x)) / 6.0
}
