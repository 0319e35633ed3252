package entities

import "time"

// Upload is the immutable record of an analyzed STL file.
//
// All metrics are frozen at analysis time: the baseline filament and time
// estimates back the quick price path and never change, so a quick estimate
// for a given upload is reproducible regardless of later slicing runs.

type Upload struct {
	ID                string    `json:"id"`
	Filename          string    `json:"filename"`
	StorageKey        string    `json:"storage_key"`
	FileSize          int64     `json:"file_size"`
	VolumeMM3         float64   `json:"volume_mm3"`
	BoundingBoxXMM    float64   `json:"bounding_box_x_mm"`
	BoundingBoxYMM    float64   `json:"bounding_box_y_mm"`
	BoundingBoxZMM    float64   `json:"bounding_box_z_mm"`
	SupportsRequired  bool      `json:"supports_required"`
	FilamentEstimateG float64   `json:"filament_estimate_g"`
	PrintTimeHours    float64   `json:"print_time_hours"`
	CreatedAt         time.Time `json:"created_at"`
}
