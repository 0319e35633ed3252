package entities

import "time"

// OrderStatus represents the lifecycle of a print order.
//
// Domain notes:
//   - PLACED -> PRINTING -> READY -> COMPLETED advance in strict sequence.
//   - CANCELLED is reachable from any non-terminal state.
//   - COMPLETED and CANCELLED are terminal; no transition leaves them.
//
// The schema does not enforce transition legality; every status mutation
// must go through CanTransitionTo.

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPrinting  OrderStatus = "PRINTING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPlaced:    {OrderStatusPrinting: true, OrderStatusCancelled: true},
	OrderStatusPrinting:  {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:     {OrderStatusCompleted: true, OrderStatusCancelled: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return validNext[s][next]
}

// Terminal reports whether no transition may leave s.
func (s OrderStatus) Terminal() bool {
	return len(validNext[s]) == 0
}

// Valid reports whether s is one of the known status values.
func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

// Order binds an upload, a printer and one of its filaments to a customer.
//
// TotalCost is computed from the pricing calculator when the order is
// placed and never changes afterwards, even if catalog rates are edited.
// Orders are never deleted; cancellation is a status value.

type Order struct {
	ID            string      `json:"id"`
	UploadID      string      `json:"upload_id"`
	PrinterID     string      `json:"printer_id"`
	FilamentID    string      `json:"filament_id"`
	TeamNumber    string      `json:"team_number"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	TotalCost     float64     `json:"total_cost"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderFilters narrows admin order listings.
type OrderFilters struct {
	Status     *OrderStatus
	TeamNumber string
}

// OrderStats aggregates order counts and frozen revenue for the dashboard.
type OrderStats struct {
	TotalOrders     int     `json:"total_orders"`
	PlacedOrders    int     `json:"placed_orders"`
	PrintingOrders  int     `json:"printing_orders"`
	ReadyOrders     int     `json:"ready_orders"`
	CompletedOrders int     `json:"completed_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	CompletionRate  float64 `json:"completion_rate"`
}
