package routes

import (
	"swiftprints/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAdminRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	printerHandler *handlers.PrinterHandler,
	orderHandler *handlers.OrderHandler,
) {
	admin := rg.Group("/admin", authHandler.RequireAuth())
	{
		admin.GET("/orders", orderHandler.List)
		admin.GET("/orders/stats", orderHandler.Stats)
		admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		admin.GET("/printers", printerHandler.ListAll)
		admin.POST("/printers", printerHandler.Create)
		admin.PUT("/printers/:id", printerHandler.Update)
		admin.DELETE("/printers/:id", printerHandler.Deactivate)
		admin.POST("/printers/:id/filaments", printerHandler.AddFilament)

		admin.PUT("/filaments/:id", printerHandler.UpdateFilament)
		admin.DELETE("/filaments/:id", printerHandler.DeactivateFilament)
	}
}
