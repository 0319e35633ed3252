package entities

import "testing"

func TestComputeCost(t *testing.T) {
	testCases := []struct {
		name         string
		grams        float64
		hours        float64
		pricePerGram float64
		hourlyRate   float64
		want         CostBreakdown
	}{
		{
			name:         "baseline example",
			grams:        20,
			hours:        1.5,
			pricePerGram: 2.5,
			hourlyRate:   120,
			want:         CostBreakdown{Material: 50, MachineTime: 180, Total: 230},
		},
		{
			name: "zero usage is free",
			want: CostBreakdown{},
		},
		{
			name:         "material only",
			grams:        12.34,
			pricePerGram: 2,
			hourlyRate:   100,
			want:         CostBreakdown{Material: 24.68, MachineTime: 0, Total: 24.68},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeCost(tc.grams, tc.hours, tc.pricePerGram, tc.hourlyRate)
			if got != tc.want {
				t.Fatalf("ComputeCost() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPrintOptionsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		opts    PrintOptions
		wantErr error
	}{
		{"defaults are valid", DefaultPrintOptions(), nil},
		{"minimum layer height", PrintOptions{LayerHeight: 0.08, InfillPercent: 0, Supports: SupportsNone}, nil},
		{"maximum layer height", PrintOptions{LayerHeight: 0.4, InfillPercent: 100, Supports: SupportsEverywhere}, nil},
		{"layer height too small", PrintOptions{LayerHeight: 0.05, InfillPercent: 20, Supports: SupportsAuto}, ErrLayerHeightOutOfRange},
		{"layer height too large", PrintOptions{LayerHeight: 0.6, InfillPercent: 20, Supports: SupportsAuto}, ErrLayerHeightOutOfRange},
		{"negative infill", PrintOptions{LayerHeight: 0.2, InfillPercent: -1, Supports: SupportsAuto}, ErrInfillOutOfRange},
		{"infill above 100", PrintOptions{LayerHeight: 0.2, InfillPercent: 101, Supports: SupportsAuto}, ErrInfillOutOfRange},
		{"unknown support mode", PrintOptions{LayerHeight: 0.2, InfillPercent: 20, Supports: "tree"}, ErrUnknownSupportMode},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.opts.Validate(); err != tc.wantErr {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
