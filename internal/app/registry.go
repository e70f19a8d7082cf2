package app

import (
	"net/http"

	"go-salarydash/internal/dashboard"
	"go-salarydash/internal/dataset"
	"go-salarydash/internal/web"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, store *dataset.Store, cfg Config) error {
	// --- Services ---
	dashboardService := dashboard.NewService(store, cfg.MapJobTitle)

	// --- Handlers ---
	dashboardHandler := dashboard.NewHandler(dashboardService)
	webHandler, err := web.NewHandler(dashboardService)
	if err != nil {
		return err
	}

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	web.RegisterRoutes(router, webHandler)

	return nil
}
