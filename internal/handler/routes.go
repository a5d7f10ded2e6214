package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GTDGit/fas_dashboard/internal/middleware"
)

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *HealthHandler
	Product  *ProductHandler
	Scenario *ScenarioHandler
	Export   *ExportHandler
	Stats    *StatsHandler
	SSE      *SSEHandler
}

// SetupRoutes registers all routes.
func SetupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	v1 := router.Group("/v1")
	v1.GET("/health", handlers.Health.GetHealth)

	// EventSource authenticates through the token query parameter.
	v1.GET("/events", handlers.SSE.Stream)

	api := v1.Group("")
	api.Use(jwtMiddleware.Handle())
	{
		// static segments are registered before :id
		api.GET("/products", handlers.Product.GetProducts)
		api.POST("/products", handlers.Product.CreateProduct)
		api.GET("/products/catalog", handlers.Product.GetCatalog)
		api.GET("/products/quarantine", handlers.Product.GetQuarantine)
		api.GET("/products/export", handlers.Export.ExportProducts)
		api.GET("/products/template", handlers.Export.DownloadTemplate)
		api.POST("/products/export/archive", handlers.Export.ArchiveProducts)
		api.GET("/products/:id", handlers.Product.GetProduct)
		api.DELETE("/products/:id", handlers.Product.DeleteProduct)

		api.GET("/scenarios", handlers.Scenario.GetScenarios)
		api.POST("/scenarios", handlers.Scenario.CreateScenario)
		api.POST("/scenarios/preview", handlers.Scenario.PreviewScenario)
		api.GET("/scenarios/quarantine", handlers.Scenario.GetQuarantine)
		api.GET("/scenarios/:id", handlers.Scenario.GetScenario)
		api.DELETE("/scenarios/:id", handlers.Scenario.DeleteScenario)
		api.GET("/scenarios/:id/report", handlers.Scenario.GetReport)

		api.GET("/stats", handlers.Stats.GetStats)
	}
}
