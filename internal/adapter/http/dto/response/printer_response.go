package response

import (
	"time"

	"swiftprints/internal/domain/entities"
)

type FilamentResponse struct {
	ID           string    `json:"id"`
	PrinterID    string    `json:"printer_id"`
	FilamentType string    `json:"filament_type"`
	Name         string    `json:"name"`
	PricePerGram float64   `json:"price_per_gram"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromFilament(f entities.FilamentPricing) FilamentResponse {
	return FilamentResponse{
		ID:           f.ID,
		PrinterID:    f.PrinterID,
		FilamentType: f.FilamentType,
		Name:         f.Name,
		PricePerGram: f.PricePerGram,
		Active:       f.Active,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

type PrinterResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	HourlyRate float64            `json:"hourly_rate"`
	Active     bool               `json:"active"`
	Filaments  []FilamentResponse `json:"filaments"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromPrinter(p entities.Printer) PrinterResponse {
	filaments := make([]FilamentResponse, 0, len(p.Filaments))
	for _, f := range p.Filaments {
		filaments = append(filaments, FromFilament(f))
	}
	return PrinterResponse{
		ID:         p.ID,
		Name:       p.Name,
		HourlyRate: p.HourlyRate,
		Active:     p.Active,
		Filaments:  filaments,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromPrinters(printers []entities.Printer) []PrinterResponse {
	out := make([]PrinterResponse, 0, len(printers))
	for _, p := range printers {
		out = append(out, FromPrinter(p))
	}
	return out
}
