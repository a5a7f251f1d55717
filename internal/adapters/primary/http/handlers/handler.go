package handlers

import (
	"artist-analytics/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	analyticsSvc *services.AnalyticsService
}

func New(analyticsSvc *services.AnalyticsService) *Handler {
	return &Handler{
		analyticsSvc: analyticsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// JSON API
	r.POST("/analytics", h.GetAnalytics)
}

// RegisterPages mounts the server-rendered form and report.
func (h *Handler) RegisterPages(r *gin.Engine) error {
	tmpl, err := loadTemplates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.ShowForm)
	r.POST("/analytics", h.SubmitForm)
	return nil
}
