package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"swiftprints/internal/adapter/http/handlers/mocks"
	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer email rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/orders", h.Create)

		body := `{"upload_id":"u-1","printer_id":"p-1","filament_id":"f-1","customer_name":"Ada"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing reference maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(entities.Order{}, usecase.ErrUploadNotFound)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/orders", h.Create)

		body := `{"upload_id":"missing","printer_id":"p-1","filament_id":"f-1","customer_name":"Ada","customer_email":"ada@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success trims input and returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.CustomerName != "Ada" {
					t.Fatalf("expected trimmed customer name, got %q", in.CustomerName)
				}
				return entities.Order{
					ID:            "order-1",
					UploadID:      in.UploadID,
					PrinterID:     in.PrinterID,
					FilamentID:    in.FilamentID,
					CustomerName:  in.CustomerName,
					CustomerEmail: in.CustomerEmail,
					TotalCost:     230,
					Status:        entities.OrderStatusPlaced,
				}, nil
			})
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/orders", h.Create)

		body := `{"upload_id":"u-1","printer_id":"p-1","filament_id":"f-1","customer_name":"  Ada  ","customer_email":"ada@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got struct {
			ID        string  `json:"id"`
			TotalCost float64 `json:"total_cost"`
			Status    string  `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if got.ID != "order-1" || got.TotalCost != 230 || got.Status != "PLACED" {
			t.Fatalf("unexpected response: %+v", got)
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusPrinting).
			Return(entities.Order{}, usecase.ErrIllegalTransition)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/admin/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/admin/orders/order-1/status", bytes.NewBufferString(`{"status":"printing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("lowercase status is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusReady).
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusReady}, nil)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/admin/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/admin/orders/order-1/status", bytes.NewBufferString(`{"status":" ready "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			GetByID(gomock.Any(), "nope").
			Return(entities.Order{}, usecase.ErrOrderNotFound)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/orders/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/orders/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			GetByID(gomock.Any(), "order-1").
			Return(entities.Order{}, errors.New("connection reset"))
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/orders/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter is uppercased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, filters entities.OrderFilters) ([]entities.Order, error) {
				if filters.Status == nil || *filters.Status != entities.OrderStatusPlaced {
					t.Fatalf("expected PLACED filter, got %+v", filters.Status)
				}
				if filters.TeamNumber != "42" {
					t.Fatalf("expected team 42, got %q", filters.TeamNumber)
				}
				return []entities.Order{{ID: "order-1", Status: entities.OrderStatusPlaced}}, nil
			})
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/admin/orders", h.List)

		req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=placed&teamNumber=42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got []json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 order, got %d", len(got))
		}
	})

	t.Run("invalid filter maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidOrderStatus)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/admin/orders", h.List)

		req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=SHIPPED", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().
		Stats(gomock.Any()).
		Return(entities.OrderStats{TotalOrders: 4, CompletedOrders: 2, TotalRevenue: 460, CompletionRate: 0.5}, nil)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.GET("/admin/orders/stats", h.Stats)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got struct {
		TotalOrders    int     `json:"total_orders"`
		TotalRevenue   float64 `json:"total_revenue"`
		CompletionRate float64 `json:"completion_rate"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.TotalOrders != 4 || got.TotalRevenue != 460 || got.CompletionRate != 0.5 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}
