package entities

import "time"

// Printer is a catalog machine offered by the print service.
//
// Printers are created and edited by administrators only. Deactivation is
// the single destructive path; rows are never deleted because orders keep
// restrict-references against them.

type Printer struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	HourlyRate float64           `json:"hourly_rate"`
	Active     bool              `json:"active"`
	Filaments  []FilamentPricing `json:"filaments,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// FilamentPricing is one filament offering of a printer.
//
// Invariant: (printer_id, filament_type) is unique — a printer lists each
// filament type at most once.

type FilamentPricing struct {
	ID           string    `json:"id"`
	PrinterID    string    `json:"printer_id"`
	FilamentType string    `json:"filament_type"`
	Name         string    `json:"name"`
	PricePerGram float64   `json:"price_per_gram"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
