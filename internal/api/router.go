// Package api assembles the HTTP surface of the risk engine.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraudwatch-risk-engine/internal/api/handler"
	"github.com/fraudwatch-risk-engine/internal/api/middleware"
	"github.com/fraudwatch-risk-engine/internal/api/service"
	"github.com/fraudwatch-risk-engine/internal/config"
)

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(cfg *config.Config, checker service.Checker, reporter service.Reporter, logger *slog.Logger) *gin.Engine {
	if cfg.Application.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.CorrelationID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	checkHandler := handler.NewCheckHandler(checker, logger)
	reportHandler := handler.NewReportHandler(reporter, logger)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/transactions/check", checkHandler.Check)
		v1.GET("/transactions", reportHandler.History)
		v1.GET("/transactions/:id", reportHandler.Transaction)
		v1.GET("/accounts/flagged", reportHandler.FlaggedAccounts)
		v1.GET("/stats", reportHandler.Stats)
	}

	return router
}
