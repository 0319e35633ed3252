package usecase

import (
	"context"
	"errors"
	"testing"

	"swiftprints/internal/domain/entities"
	mock_interfaces "swiftprints/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubPricing satisfies IPricingUseCase with canned answers; the order
// flow only calls QuickEstimate.
type stubPricing struct {
	cost entities.CostBreakdown
	err  error
}

func (s stubPricing) QuickEstimate(context.Context, string, string, string) (entities.CostBreakdown, error) {
	return s.cost, s.err
}

func (s stubPricing) Estimate(context.Context, string, string, string, entities.PrintOptions) (entities.CostBreakdown, entities.SliceResult, error) {
	return s.cost, entities.SliceResult{}, s.err
}

func (s stubPricing) Compare(context.Context, string, string) ([]entities.PrinterComparison, error) {
	return nil, s.err
}

func (s stubPricing) MarketRates(context.Context, string) (entities.MarketRates, error) {
	return entities.MarketRates{}, s.err
}

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		UploadID:      "u-1",
		PrinterID:     "p-1",
		FilamentID:    "f-1",
		TeamNumber:    "42",
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
	}
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("missing customer email", func(t *testing.T) {
		uc := NewOrderUseCase(nil, stubPricing{}, nil, nil)
		in := validOrderInput()
		in.CustomerEmail = "   "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("pricing failure propagates", func(t *testing.T) {
		uc := NewOrderUseCase(nil, stubPricing{err: ErrUploadNotFound}, nil, nil)
		_, err := uc.Create(context.Background(), validOrderInput())
		if !errors.Is(err, ErrUploadNotFound) {
			t.Fatalf("expected ErrUploadNotFound, got %v", err)
		}
	})

	t.Run("freezes total cost and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIStatusPublisher(ctrl)
		uc := NewOrderUseCase(orders, stubPricing{cost: entities.CostBreakdown{Material: 50, MachineTime: 180, Total: 230}}, notifier, publisher)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.Status != entities.OrderStatusPlaced {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.TotalCost != 230 {
					t.Fatalf("TotalCost = %v, want 230", o.TotalCost)
				}
				return o, nil
			},
		)
		notifier.EXPECT().SendOrderConfirmation(gomock.Any(), gomock.Any()).Return(nil)
		publisher.EXPECT().PublishOrderStatus(gomock.Any(), gomock.Any()).Return(nil)

		o, err := uc.Create(context.Background(), validOrderInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("notification failure does not fail creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIStatusPublisher(ctrl)
		uc := NewOrderUseCase(orders, stubPricing{cost: entities.CostBreakdown{Total: 10}}, notifier, publisher)

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		notifier.EXPECT().SendOrderConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		publisher.EXPECT().PublishOrderStatus(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Create(context.Background(), validOrderInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, stubPricing{}, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatus("SHIPPED"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, stubPricing{}, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", entities.OrderStatusPrinting)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, stubPricing{}, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted}, nil)

		_, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatusPrinting)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("legal transition notifies with previous status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIStatusPublisher(ctrl)
		uc := NewOrderUseCase(orders, stubPricing{}, notifier, publisher)

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusPlaced}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusPrinting).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusPrinting}, nil)
		notifier.EXPECT().SendStatusUpdate(gomock.Any(), gomock.Any(), entities.OrderStatusPlaced).Return(nil)
		publisher.EXPECT().PublishOrderStatus(gomock.Any(), gomock.Any()).Return(nil)

		o, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatusPrinting)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusPrinting {
			t.Fatalf("unexpected status: %s", o.Status)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	publisher := mock_interfaces.NewMockIStatusPublisher(ctrl)
	uc := NewOrderUseCase(orders, stubPricing{}, notifier, publisher)

	orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusPrinting}, nil)
	orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCancelled).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCancelled}, nil)
	notifier.EXPECT().SendStatusUpdate(gomock.Any(), gomock.Any(), entities.OrderStatusPrinting).Return(nil)
	publisher.EXPECT().PublishOrderStatus(gomock.Any(), gomock.Any()).Return(nil)

	o, err := uc.Cancel(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.OrderStatusCancelled {
		t.Fatalf("unexpected status: %s", o.Status)
	}
}

func TestOrderUseCase_List(t *testing.T) {
	t.Run("bad status filter", func(t *testing.T) {
		uc := NewOrderUseCase(nil, stubPricing{}, nil, nil)
		bad := entities.OrderStatus("SHIPPED")
		_, err := uc.List(context.Background(), entities.OrderFilters{Status: &bad})
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("passes filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, stubPricing{}, nil, nil)

		status := entities.OrderStatusPlaced
		filters := entities.OrderFilters{Status: &status, TeamNumber: "42"}
		orders.EXPECT().List(gomock.Any(), filters).Return([]entities.Order{{ID: "o-1"}}, nil)

		got, err := uc.List(context.Background(), filters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "o-1" {
			t.Fatalf("unexpected orders: %+v", got)
		}
	})
}
