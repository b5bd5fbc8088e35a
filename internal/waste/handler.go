package waste

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"savemyfridge/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type recordRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD, defaults to today
	AmountGrams *int   `json:"amount_g"`
}

// --------------------------------------------------
// Record a disposal
// --------------------------------------------------
func (h *Handler) Record(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.AmountGrams == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_g is required"})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	ev, err := h.service.Record(c.Request.Context(), date, *req.AmountGrams)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ev)
}

// --------------------------------------------------
// Chronological log plus running total
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	total, err := h.service.Total(c.Request.Context())
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":  events,
		"total_g": total,
	})
}

// --------------------------------------------------
// First-to-last comparison
// --------------------------------------------------
func (h *Handler) TrendReport(c *gin.Context) {
	report, err := h.service.Trend(c.Request.Context())
	if errors.Is(err, ErrInsufficientData) {
		c.JSON(http.StatusOK, gin.H{"status": "insufficient_data"})
		return
	}
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	status := "flat"
	switch {
	case report.DeltaGrams > 0:
		status = "down"
	case report.DeltaGrams < 0:
		status = "up"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"trend":  report,
	})
}
