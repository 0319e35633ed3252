package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "swiftprints/internal/adapter/http/dto/request"
	response "swiftprints/internal/adapter/http/dto/response"
	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase"
	"swiftprints/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler covers the customer order endpoints plus the admin
// listing, status and stats endpoints.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// List narrows by optional status and teamNumber query filters.
func (h *OrderHandler) List(c *gin.Context) {
	filters := entities.OrderFilters{TeamNumber: strings.TrimSpace(c.Query("teamNumber"))}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := entities.OrderStatus(strings.ToUpper(raw))
		filters.Status = &status
	}

	orders, err := h.usecase.List(c.Request.Context(), filters)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	next := entities.OrderStatus(strings.ToUpper(strings.TrimSpace(payload.Status)))
	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), next)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderStats(stats))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Customer name and email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrUploadNotFound),
		errors.Is(err, usecase.ErrPrinterNotFound),
		errors.Is(err, usecase.ErrFilamentNotFound):
		return pkg.NewDomainError("ORDER_REFERENCE_NOT_FOUND", "Referenced upload, printer or filament not found", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFilamentMismatch),
		errors.Is(err, usecase.ErrPrinterInactive),
		errors.Is(err, usecase.ErrFilamentInactive):
		return pkg.NewDomainError("ORDER_REFERENCE_INVALID", "Referenced printer/filament combination is not available", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("ORDER_FAILED", "Order processing failed", err, http.StatusInternalServerError)
	}
}
