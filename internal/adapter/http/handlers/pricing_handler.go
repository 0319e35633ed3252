package handlers

import (
	"errors"
	"net/http"

	request "swiftprints/internal/adapter/http/dto/request"
	response "swiftprints/internal/adapter/http/dto/response"
	"swiftprints/internal/domain/entities"
	"swiftprints/internal/infrastructure/slicer"
	"swiftprints/internal/usecase"
	"swiftprints/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errMissingPricingParams   = pkg.NewDomainErrorSimple("MISSING_PARAMS", "uploadId, printerId and filamentId are required", http.StatusBadRequest)
)

// PricingHandler exposes the pricing calculator endpoints.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// QuickEstimate prices an upload's frozen baseline figures.
func (h *PricingHandler) QuickEstimate(c *gin.Context) {
	uploadID := c.Query("uploadId")
	printerID := c.Query("printerId")
	filamentID := c.Query("filamentId")
	if uploadID == "" || printerID == "" || filamentID == "" {
		c.JSON(errMissingPricingParams.HTTPStatus, errMissingPricingParams.ToHTTPError())
		return
	}

	cost, err := h.usecase.QuickEstimate(c.Request.Context(), uploadID, printerID, filamentID)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCost(cost))
}

// Estimate runs the slicer for exact figures before pricing.
func (h *PricingHandler) Estimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	cost, res, err := h.usecase.Estimate(c.Request.Context(), payload.UploadID, payload.PrinterID, payload.FilamentID, payload.Options())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(cost, res))
}

func (h *PricingHandler) Compare(c *gin.Context) {
	uploadID := c.Query("uploadId")
	filamentType := c.Query("filamentType")
	if uploadID == "" || filamentType == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_PARAMS", "uploadId and filamentType are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rows, err := h.usecase.Compare(c.Request.Context(), uploadID, filamentType)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromComparisons(rows))
}

func (h *PricingHandler) MarketRates(c *gin.Context) {
	filamentType := c.Query("filamentType")
	if filamentType == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_PARAMS", "filamentType is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rates, err := h.usecase.MarketRates(c.Request.Context(), filamentType)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMarketRates(rates))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUploadNotFound):
		return pkg.NewDomainErrorSimple("UPLOAD_NOT_FOUND", "Upload not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrinterNotFound):
		return pkg.NewDomainErrorSimple("PRINTER_NOT_FOUND", "Printer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFilamentNotFound):
		return pkg.NewDomainErrorSimple("FILAMENT_NOT_FOUND", "Filament not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFilamentMismatch):
		return pkg.NewDomainErrorSimple("FILAMENT_MISMATCH", "Filament does not belong to printer", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPrinterInactive), errors.Is(err, usecase.ErrFilamentInactive):
		return pkg.NewDomainErrorSimple("CATALOG_INACTIVE", "Printer or filament is not active", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidFilamentType):
		return pkg.NewDomainErrorSimple("INVALID_FILAMENT_TYPE", "Invalid filament type", http.StatusBadRequest)
	case errors.Is(err, entities.ErrLayerHeightOutOfRange),
		errors.Is(err, entities.ErrInfillOutOfRange),
		errors.Is(err, entities.ErrUnknownSupportMode):
		return pkg.NewDomainError("INVALID_PRINT_OPTIONS", "Invalid print options", err, http.StatusBadRequest)
	case errors.Is(err, slicer.ErrSlicingTimedOut):
		return pkg.NewDomainErrorSimple("SLICING_TIMED_OUT", "Slicing timed out", http.StatusGatewayTimeout)
	case errors.Is(err, slicer.ErrSlicingFailed):
		return pkg.NewDomainError("SLICING_FAILED", "Slicing failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("PRICING_FAILED", "Pricing failed", err, http.StatusInternalServerError)
	}
}
