package slicer

import (
	"bufio"
	"bytes"
	"math"
	"regexp"
	"strconv"

	"swiftprints/internal/domain/entities"
)

// Fixed filament geometry for the mm -> grams fallback: 1.75mm PLA at
// 1.24 g/cm3.
const (
	filamentDiameterMM = 1.75
	plaDensityGCM3     = 1.24
)

var (
	filamentGramsRe = regexp.MustCompile(`^;\s*filament used \[g\]\s*=\s*([0-9]+(?:\.[0-9]+)?)`)
	filamentMMRe    = regexp.MustCompile(`^;\s*filament used \[mm\]\s*=\s*([0-9]+(?:\.[0-9]+)?)`)
	printTimeRe     = regexp.MustCompile(`^;\s*estimated printing time.*=\s*(.+)$`)
	timeFieldRe     = regexp.MustCompile(`([0-9]+)\s*([dhms])`)
)

// ParseGCode extracts filament usage and print time from slicer comment
// lines.
//
// A direct grams comment wins and returns immediately. That reproduces the
// upstream parser exactly, quirk included: if a grams comment ever preceded
// the time comment the result would carry printTimeHours 0. PrusaSlicer
// writes the time estimate before the filament totals, so the quirk does
// not bite in practice.
//
// Without a grams comment the millimeter figure is converted through the
// fixed filament geometry and rounded to two decimals.
func ParseGCode(gcode []byte) entities.SliceResult {
	var (
		filamentMM  float64
		timeSeconds float64
	)

	sc := bufio.NewScanner(bytes.NewReader(gcode))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()

		if m := filamentGramsRe.FindStringSubmatch(line); m != nil {
			grams, _ := strconv.ParseFloat(m[1], 64)
			return entities.SliceResult{
				GCode:             gcode,
				FilamentUsedGrams: grams,
				PrintTimeHours:    timeSeconds / 3600,
			}
		}
		if m := filamentMMRe.FindStringSubmatch(line); m != nil {
			filamentMM, _ = strconv.ParseFloat(m[1], 64)
			continue
		}
		if m := printTimeRe.FindStringSubmatch(line); m != nil {
			timeSeconds = parseTimeSeconds(m[1])
		}
	}

	return entities.SliceResult{
		GCode:             gcode,
		FilamentUsedGrams: mmToGrams(filamentMM),
		PrintTimeHours:    timeSeconds / 3600,
	}
}

// parseTimeSeconds reads a "1d 2h 30m 45s" style duration; every field is
// optional.
func parseTimeSeconds(s string) float64 {
	var total float64
	for _, m := range timeFieldRe.FindAllStringSubmatch(s, -1) {
		n, _ := strconv.ParseFloat(m[1], 64)
		switch m[2] {
		case "d":
			total += n * 86400
		case "h":
			total += n * 3600
		case "m":
			total += n * 60
		case "s":
			total += n
		}
	}
	return total
}

func mmToGrams(filamentMM float64) float64 {
	if filamentMM <= 0 {
		return 0
	}
	radiusCM := filamentDiameterMM / 2 / 10
	lengthCM := filamentMM / 10
	volumeCM3 := math.Pi * radiusCM * radiusCM * lengthCM
	return math.Round(volumeCM3*plaDensityGCM3*100) / 100
}
