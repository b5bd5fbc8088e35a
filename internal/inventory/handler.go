package inventory

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"savemyfridge/internal/core"
)

// How many near-expiry items the alert view shows by default.
const defaultExpiringCount = 3

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	ExpiryDate   string `json:"expiry_date"` // YYYY-MM-DD
	StorageTip   string `json:"storage_tip"`
	DisposalRule string `json:"disposal_rule"`
}

// --------------------------------------------------
// Register a new ingredient
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_date must be YYYY-MM-DD"})
		return
	}

	ing, err := h.service.Add(c.Request.Context(), AddInput{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		ExpiryDate:   expiryDate,
		StorageTip:   req.StorageTip,
		DisposalRule: req.DisposalRule,
	})
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ing)
}

// --------------------------------------------------
// List, sorted by expiry date
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": items})
}

// --------------------------------------------------
// Substring search
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	items, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": items})
}

// --------------------------------------------------
// Plain removal (no ledger side effect)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// Expiry alerts: top-n items closest to expiry
// --------------------------------------------------
func (h *Handler) Expiring(c *gin.Context) {
	n := defaultExpiringCount
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a non-negative integer"})
			return
		}
		n = parsed
	}

	annotated, err := h.service.Expiring(c.Request.Context(), time.Now(), n)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expiring": annotated})
}

// --------------------------------------------------
// Terminal actions
// --------------------------------------------------
func (h *Handler) Consume(c *gin.Context) {
	ing, err := h.service.Consume(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        ing.Name + " 사용 완료! +30P",
		"ingredient":     ing,
		"points_awarded": consumePoints,
	})
}

func (h *Handler) Discard(c *gin.Context) {
	ing, err := h.service.Discard(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        ing.Name + " 버림 처리됨",
		"ingredient":     ing,
		"waste_logged_g": discardMassGrams,
	})
}

// --------------------------------------------------
// Disposal / storage guide lookup
// --------------------------------------------------
func (h *Handler) GuideSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	items, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	type guideEntry struct {
		Name         string `json:"name"`
		StorageTip   string `json:"storage_tip"`
		DisposalRule string `json:"disposal_rule"`
	}
	entries := make([]guideEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, guideEntry{
			Name:         it.Name,
			StorageTip:   it.StorageTip,
			DisposalRule: it.DisposalRule,
		})
	}

	c.JSON(http.StatusOK, gin.H{"guide": entries})
}
