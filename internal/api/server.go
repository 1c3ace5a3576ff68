// internal/api/server.go

// Package api exposes the survey pipeline over HTTP. The map frontend and
// any other client consume exactly the shapes in internal/models.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"askindia/internal/common/logger"
	"askindia/internal/ratelimit"
	"askindia/internal/survey"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(service *survey.Service, limiter ratelimit.Limiter, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())

	handler := NewHandler(service, log)

	router.POST("/api/ask", RateLimit(limiter, log), handler.HandleAsk)
	router.GET("/api/options", handler.HandleOptions)
	router.GET("/health", handler.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
