package request

import (
	"strings"

	"swiftprints/internal/usecase"
)

type CreateOrderRequest struct {
	UploadID      string `json:"upload_id" binding:"required"`
	PrinterID     string `json:"printer_id" binding:"required"`
	FilamentID    string `json:"filament_id" binding:"required"`
	TeamNumber    string `json:"team_number"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		UploadID:      strings.TrimSpace(r.UploadID),
		PrinterID:     strings.TrimSpace(r.PrinterID),
		FilamentID:    strings.TrimSpace(r.FilamentID),
		TeamNumber:    strings.TrimSpace(r.TeamNumber),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
