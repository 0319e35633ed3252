package request

import "swiftprints/internal/domain/entities"

// EstimateRequest asks for a slicer-backed price. Print options are
// optional; absent fields fall back to the slicer profile defaults.
type EstimateRequest struct {
	UploadID      string   `json:"upload_id" binding:"required"`
	PrinterID     string   `json:"printer_id" binding:"required"`
	FilamentID    string   `json:"filament_id" binding:"required"`
	LayerHeight   *float64 `json:"layer_height"`
	InfillPercent *int     `json:"infill_percent"`
	Supports      *string  `json:"supports"`
}

func (r EstimateRequest) Options() entities.PrintOptions {
	opts := entities.DefaultPrintOptions()
	if r.LayerHeight != nil {
		opts.LayerHeight = *r.LayerHeight
	}
	if r.InfillPercent != nil {
		opts.InfillPercent = *r.InfillPercent
	}
	if r.Supports != nil {
		opts.Supports = entities.SupportMode(*r.Supports)
	}
	return opts
}
