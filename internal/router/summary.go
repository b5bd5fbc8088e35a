package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savemyfridge/internal/core"
	"savemyfridge/internal/inventory"
	"savemyfridge/internal/points"
	"savemyfridge/internal/waste"
)

// SummaryHandler serves the home-page figures: how much is in the fridge,
// how many points are banked, how much has been thrown away.
type SummaryHandler struct {
	inventory *inventory.Service
	waste     *waste.Service
	points    *points.Service
}

func NewSummaryHandler(inv *inventory.Service, wasteSvc *waste.Service, pointsSvc *points.Service) *SummaryHandler {
	return &SummaryHandler{inventory: inv, waste: wasteSvc, points: pointsSvc}
}

func (h *SummaryHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	ingredientCount, err := h.inventory.Count(ctx)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	totalPoints, err := h.points.Total(ctx)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	totalWaste, err := h.waste.Total(ctx)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredient_count": ingredientCount,
		"total_points":     totalPoints,
		"total_waste_g":    totalWaste,
	})
}
