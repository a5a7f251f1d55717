package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artist-analytics/internal/adapters/primary/http/middleware"
)

// NewRouter builds the engine with middleware, JSON API, pages and health check.
func NewRouter(h *Handler, allowedOrigins []string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.CORS(allowedOrigins), gin.Recovery())

	api := router.Group("/api")
	h.RegisterRoutes(api)

	if err := h.RegisterPages(router); err != nil {
		return nil, err
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, nil
}
