package entities

import "errors"

// SupportMode selects how the slicer generates support material.
type SupportMode string

const (
	SupportsNone       SupportMode = "none"
	SupportsAuto       SupportMode = "auto"
	SupportsEverywhere SupportMode = "everywhere"
)

const (
	MinLayerHeight = 0.08
	MaxLayerHeight = 0.4
)

var (
	ErrLayerHeightOutOfRange = errors.New("layer height out of range")
	ErrInfillOutOfRange      = errors.New("infill out of range")
	ErrUnknownSupportMode    = errors.New("unknown support mode")
)

// PrintOptions are the caller-tunable slicing parameters.
type PrintOptions struct {
	LayerHeight   float64     `json:"layer_height"`
	InfillPercent int         `json:"infill_percent"`
	Supports      SupportMode `json:"supports"`
}

// DefaultPrintOptions mirror the slicer profile defaults.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		LayerHeight:   0.2,
		InfillPercent: 20,
		Supports:      SupportsAuto,
	}
}

// Validate rejects out-of-range print options before they reach the slicer.
func (o PrintOptions) Validate() error {
	if o.LayerHeight < MinLayerHeight || o.LayerHeight > MaxLayerHeight {
		return ErrLayerHeightOutOfRange
	}
	if o.InfillPercent < 0 || o.InfillPercent > 100 {
		return ErrInfillOutOfRange
	}
	switch o.Supports {
	case SupportsNone, SupportsAuto, SupportsEverywhere:
		return nil
	default:
		return ErrUnknownSupportMode
	}
}

// SliceResult is what the slicing adapter extracts from a slicer run.
type SliceResult struct {
	GCode             []byte  `json:"-"`
	FilamentUsedGrams float64 `json:"filament_used_grams"`
	PrintTimeHours    float64 `json:"print_time_hours"`
}
