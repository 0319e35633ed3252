package handlers

import (
	"errors"
	"net/http"

	request "swiftprints/internal/adapter/http/dto/request"
	response "swiftprints/internal/adapter/http/dto/response"
	"swiftprints/internal/usecase"
	"swiftprints/internal/usecase/interfaces"
	"swiftprints/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// PrinterHandler serves the public catalog plus the admin CRUD.

type PrinterHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewPrinterHandler(uc usecase.ICatalogUseCase) *PrinterHandler {
	return &PrinterHandler{usecase: uc}
}

// List returns active printers only; admins see everything via
// ListAll.
func (h *PrinterHandler) List(c *gin.Context) {
	printers, err := h.usecase.ListPrinters(c.Request.Context(), true)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPrinters(printers))
}

func (h *PrinterHandler) ListAll(c *gin.Context) {
	printers, err := h.usecase.ListPrinters(c.Request.Context(), false)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPrinters(printers))
}

func (h *PrinterHandler) Get(c *gin.Context) {
	printer, err := h.usecase.GetPrinter(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPrinter(printer))
}

func (h *PrinterHandler) Create(c *gin.Context) {
	var payload request.CreatePrinterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	printer, err := h.usecase.CreatePrinter(c.Request.Context(), payload.Name, payload.HourlyRate)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPrinter(printer))
}

func (h *PrinterHandler) Update(c *gin.Context) {
	var payload request.UpdatePrinterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	printer, err := h.usecase.UpdatePrinter(c.Request.Context(), c.Param("id"), payload.Name, payload.HourlyRate, payload.Active)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPrinter(printer))
}

func (h *PrinterHandler) Deactivate(c *gin.Context) {
	printer, err := h.usecase.DeactivatePrinter(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPrinter(printer))
}

func (h *PrinterHandler) AddFilament(c *gin.Context) {
	var payload request.CreateFilamentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	filament, err := h.usecase.AddFilament(c.Request.Context(), c.Param("id"), payload.FilamentType, payload.Name, payload.PricePerGram)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFilament(filament))
}

func (h *PrinterHandler) UpdateFilament(c *gin.Context) {
	var payload request.UpdateFilamentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	filament, err := h.usecase.UpdateFilament(c.Request.Context(), c.Param("id"), payload.Name, payload.PricePerGram, payload.Active)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFilament(filament))
}

func (h *PrinterHandler) DeactivateFilament(c *gin.Context) {
	filament, err := h.usecase.DeactivateFilament(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFilament(filament))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPrinterName),
		errors.Is(err, usecase.ErrInvalidHourlyRate),
		errors.Is(err, usecase.ErrInvalidFilamentType),
		errors.Is(err, usecase.ErrInvalidPricePerGram):
		return pkg.NewDomainError("INVALID_CATALOG_INPUT", "Invalid catalog payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPrinterNotFound):
		return pkg.NewDomainErrorSimple("PRINTER_NOT_FOUND", "Printer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFilamentNotFound):
		return pkg.NewDomainErrorSimple("FILAMENT_NOT_FOUND", "Filament not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrDuplicateFilamentType):
		return pkg.NewDomainErrorSimple("DUPLICATE_FILAMENT_TYPE", "Printer already lists this filament type", http.StatusConflict)
	default:
		return pkg.NewDomainError("CATALOG_FAILED", "Catalog operation failed", err, http.StatusInternalServerError)
	}
}
