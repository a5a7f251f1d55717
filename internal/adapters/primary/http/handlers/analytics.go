package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"artist-analytics/internal/adapters/primary/http/dto"
	"artist-analytics/internal/adapters/primary/http/middleware"
	"artist-analytics/internal/core/services"
)

// ============================================================================
// JSON API
// ============================================================================

func (h *Handler) GetAnalytics(c *gin.Context) {
	var req dto.AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	report, err := h.analyticsSvc.Analyze(c.Request.Context(), toAnalyticsRequest(req))
	if err != nil {
		logFailure(c, req, err)
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(report))
}

// ============================================================================
// HTML Pages
// ============================================================================

type formPage struct {
	DefaultArtist string
	ArtistName    string
	Error         string
}

func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", formPage{DefaultArtist: h.analyticsSvc.DefaultArtist()})
}

func (h *Handler) SubmitForm(c *gin.Context) {
	page := formPage{DefaultArtist: h.analyticsSvc.DefaultArtist()}

	var req dto.AnalyticsRequest
	if err := c.ShouldBind(&req); err != nil {
		page.Error = "invalid form: " + err.Error()
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}
	page.ArtistName = req.ArtistName

	report, err := h.analyticsSvc.Analyze(c.Request.Context(), toAnalyticsRequest(req))
	if err != nil {
		logFailure(c, req, err)
		status, msg := classifyError(err)
		page.Error = msg
		c.HTML(status, "index.html", page)
		return
	}

	c.HTML(http.StatusOK, "report.html", dto.ToAnalyticsResponse(report))
}

func toAnalyticsRequest(req dto.AnalyticsRequest) services.AnalyticsRequest {
	return services.AnalyticsRequest{
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		ArtistName:   req.ArtistName,
		Market:       req.Market,
	}
}

func logFailure(c *gin.Context, req dto.AnalyticsRequest, err error) {
	log.WithError(err).WithFields(log.Fields{
		"artist_name": req.ArtistName,
		"request_id":  c.GetString(middleware.ContextRequestID),
	}).Error("analytics failed")
}
