package routes

import (
	"swiftprints/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUploads  = "/uploads"
	PathPrinters = "/printers"
	PathPricing  = "/pricing"
	PathOrders   = "/orders"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	uploadHandler *handlers.UploadHandler,
	printerHandler *handlers.PrinterHandler,
	pricingHandler *handlers.PricingHandler,
	orderHandler *handlers.OrderHandler,
	wsHandler *handlers.WSHandler,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authHandler.RequireAuth(), authHandler.Me)
	}

	uploads := rg.Group(PathUploads)
	{
		uploads.POST("/analyze", uploadHandler.Analyze)
		uploads.GET("/:id", uploadHandler.Get)
	}

	printers := rg.Group(PathPrinters)
	{
		printers.GET("", printerHandler.List)
		printers.GET("/:id", printerHandler.Get)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/quick-estimate", pricingHandler.QuickEstimate)
		pricing.POST("/estimate", pricingHandler.Estimate)
		pricing.GET("/compare", pricingHandler.Compare)
		pricing.GET("/market-rates", pricingHandler.MarketRates)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
	}

	rg.GET("/ws", wsHandler.Serve)
}
