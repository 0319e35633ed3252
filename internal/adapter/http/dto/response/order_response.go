package response

import (
	"time"

	"swiftprints/internal/domain/entities"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	UploadID      string    `json:"upload_id"`
	PrinterID     string    `json:"printer_id"`
	FilamentID    string    `json:"filament_id"`
	TeamNumber    string    `json:"team_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalCost     float64   `json:"total_cost"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		UploadID:      o.UploadID,
		PrinterID:     o.PrinterID,
		FilamentID:    o.FilamentID,
		TeamNumber:    o.TeamNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		TotalCost:     o.TotalCost,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderStatsResponse struct {
	TotalOrders     int     `json:"total_orders"`
	PlacedOrders    int     `json:"placed_orders"`
	PrintingOrders  int     `json:"printing_orders"`
	ReadyOrders     int     `json:"ready_orders"`
	CompletedOrders int     `json:"completed_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	CompletionRate  float64 `json:"completion_rate"`
}

func FromOrderStats(s entities.OrderStats) OrderStatsResponse {
	return OrderStatsResponse(s)
}
