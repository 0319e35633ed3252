package slicer

import (
	"math"
	"strings"
	"testing"
)

func TestParseGCode(t *testing.T) {
	t.Run("grams comment with time estimate", func(t *testing.T) {
		gcode := strings.Join([]string{
			"; generated by PrusaSlicer",
			"G1 X10 Y10 E0.5",
			"; estimated printing time (normal mode) = 1h 30m",
			"; filament used [g] = 12.34",
		}, "\n")

		res := ParseGCode([]byte(gcode))
		if res.FilamentUsedGrams != 12.34 {
			t.Fatalf("expected 12.34 grams, got %v", res.FilamentUsedGrams)
		}
		if res.PrintTimeHours != 1.5 {
			t.Fatalf("expected 1.5 hours, got %v", res.PrintTimeHours)
		}
	})

	t.Run("grams comment before time estimate leaves time at zero", func(t *testing.T) {
		gcode := strings.Join([]string{
			"; filament used [g] = 12.34",
			"; estimated printing time (normal mode) = 1h 30m",
		}, "\n")

		res := ParseGCode([]byte(gcode))
		if res.FilamentUsedGrams != 12.34 {
			t.Fatalf("expected 12.34 grams, got %v", res.FilamentUsedGrams)
		}
		if res.PrintTimeHours != 0 {
			t.Fatalf("expected 0 hours, got %v", res.PrintTimeHours)
		}
	})

	t.Run("millimeter fallback", func(t *testing.T) {
		gcode := strings.Join([]string{
			"; filament used [mm] = 1000",
			"; estimated printing time (normal mode) = 45m",
		}, "\n")

		res := ParseGCode([]byte(gcode))
		if res.FilamentUsedGrams != 2.98 {
			t.Fatalf("expected 2.98 grams from mm fallback, got %v", res.FilamentUsedGrams)
		}
		if res.PrintTimeHours != 0.75 {
			t.Fatalf("expected 0.75 hours, got %v", res.PrintTimeHours)
		}
	})

	t.Run("no comments at all", func(t *testing.T) {
		res := ParseGCode([]byte("G28\nG1 X0 Y0\n"))
		if res.FilamentUsedGrams != 0 || res.PrintTimeHours != 0 {
			t.Fatalf("expected zero result, got %+v", res)
		}
	})

	t.Run("raw gcode is carried through", func(t *testing.T) {
		in := []byte("; filament used [g] = 1\n")
		res := ParseGCode(in)
		if string(res.GCode) != string(in) {
			t.Fatalf("expected gcode to round-trip")
		}
	})
}

func TestParseTimeSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1d 2h 30m 45s", 95445},
		{"2h", 7200},
		{"90m", 5400},
		{"45s", 45},
		{"1h30m", 5400},
		{"garbage", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := parseTimeSeconds(c.in); got != c.want {
			t.Fatalf("parseTimeSeconds(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMMToGrams(t *testing.T) {
	if got := mmToGrams(0); got != 0 {
		t.Fatalf("expected 0 grams for 0 mm, got %v", got)
	}
	got := mmToGrams(1000)
	if math.Abs(got-2.98) > 1e-9 {
		t.Fatalf("expected 2.98 grams for 1000 mm, got %v", got)
	}
}
