package response

import (
	"time"

	"swiftprints/internal/domain/entities"
)

type UploadResponse struct {
	ID                string    `json:"id"`
	Filename          string    `json:"filename"`
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

func FromUpload(u entities.Upload) UploadResponse {
	return UploadResponse{
		ID:                u.ID,
		Filename:          u.Filename,
		FileSize:          u.FileSize,
		VolumeMM3:         u.VolumeMM3,
		BoundingBoxXMM:    u.BoundingBoxXMM,
		BoundingBoxYMM:    u.BoundingBoxYMM,
		BoundingBoxZMM:    u.BoundingBoxZMM,
		SupportsRequired:  u.SupportsRequired,
		FilamentEstimateG: u.FilamentEstimateG,
		PrintTimeHours:    u.PrintTimeHours,
		CreatedAt:         u.CreatedAt,
	}
}
