package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrInvalidCustomer    = errors.New("invalid customer details")
)

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	UploadID      string
	PrinterID     string
	FilamentID    string
	TeamNumber    string
	CustomerName  string
	CustomerEmail string
}

// IOrderUseCase drives the order lifecycle.
//
// Creation freezes the total cost from the quick estimate of the moment;
// later catalog edits never change what a customer was quoted. Status
// mutations go through the transition table and fan out to email and the
// live status channel, neither of which can fail the mutation.

type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filters entities.OrderFilters) ([]entities.Order, error)
	Cancel(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, next entities.OrderStatus) (entities.Order, error)
	Stats(ctx context.Context) (entities.OrderStats, error)
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	pricing   IPricingUseCase
	notifier  interfaces.INotifier
	publisher interfaces.IStatusPublisher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	pricing IPricingUseCase,
	notifier interfaces.INotifier,
	publisher interfaces.IStatusPublisher,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		pricing:   pricing,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	name := strings.TrimSpace(in.CustomerName)
	email := strings.TrimSpace(in.CustomerEmail)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return entities.Order{}, ErrInvalidCustomer
	}

	// QuickEstimate validates upload/printer/filament and their pairing.
	cost, err := u.pricing.QuickEstimate(ctx, in.UploadID, in.PrinterID, in.FilamentID)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:            uuid.NewString(),
		UploadID:      strings.TrimSpace(in.UploadID),
		PrinterID:     strings.TrimSpace(in.PrinterID),
		FilamentID:    strings.TrimSpace(in.FilamentID),
		TeamNumber:    strings.TrimSpace(in.TeamNumber),
		CustomerName:  name,
		CustomerEmail: email,
		TotalCost:     cost.Total,
		Status:        entities.OrderStatusPlaced,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	if err := u.notifier.SendOrderConfirmation(ctx, created); err != nil {
		log.Printf("[order][create] confirmation email failed order=%s err=%v", created.ID, err)
	}
	if err := u.publisher.PublishOrderStatus(ctx, created); err != nil {
		log.Printf("[order][create] status publish failed order=%s err=%v", created.ID, err)
	}
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.orders.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context, filters entities.OrderFilters) ([]entities.Order, error) {
	if filters.Status != nil && !filters.Status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	return u.orders.List(ctx, filters)
}

func (u *OrderUseCase) Cancel(ctx context.Context, id string) (entities.Order, error) {
	return u.UpdateStatus(ctx, id, entities.OrderStatusCancelled)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, next entities.OrderStatus) (entities.Order, error) {
	if !next.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	previous := o.Status
	if !previous.CanTransitionTo(next) {
		return entities.Order{}, ErrIllegalTransition
	}

	updated, err := u.orders.UpdateStatus(ctx, o.ID, next)
	if err != nil {
		return entities.Order{}, err
	}

	if err := u.notifier.SendStatusUpdate(ctx, updated, previous); err != nil {
		log.Printf("[order][status] update email failed order=%s %s->%s err=%v", updated.ID, previous, next, err)
	}
	if err := u.publisher.PublishOrderStatus(ctx, updated); err != nil {
		log.Printf("[order][status] status publish failed order=%s err=%v", updated.ID, err)
	}
	return updated, nil
}

func (u *OrderUseCase) Stats(ctx context.Context) (entities.OrderStats, error) {
	return u.orders.Stats(ctx)
}
