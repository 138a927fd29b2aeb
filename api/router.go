// Package api wires the HTTP surface: routes, middleware, and handlers.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/use-agent/farescan/api/handler"
	"github.com/use-agent/farescan/api/middleware"
	"github.com/use-agent/farescan/cache"
	"github.com/use-agent/farescan/config"
	"github.com/use-agent/farescan/search"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg *config.Config, svc *search.Service, c *cache.Cache) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")
	v1.GET("/health", handler.Health)

	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	sh := handler.NewSearchHandler(svc, c)
	protected.POST("/search", sh.Search)

	return r
}
