package request

type CreatePrinterRequest struct {
	Name       string  `json:"name" binding:"required"`
	HourlyRate float64 `json:"hourly_rate" binding:"required"`
}

type UpdatePrinterRequest struct {
	Name       string  `json:"name" binding:"required"`
	HourlyRate float64 `json:"hourly_rate" binding:"required"`
	Active     bool    `json:"active"`
}

type CreateFilamentRequest struct {
	FilamentType string  `json:"filament_type" binding:"required"`
	Name         string  `json:"name"`
	PricePerGram float64 `json:"price_per_gram" binding:"required"`
}

type UpdateFilamentRequest struct {
	Name         string  `json:"name"`
	PricePerGram float64 `json:"price_per_gram" binding:"required"`
	Active       bool    `json:"active"`
}
