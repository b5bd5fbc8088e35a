package recipe

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"savemyfridge/internal/core"
)

// OwnedSource supplies the set of ingredient names currently in the fridge.
type OwnedSource interface {
	Names(ctx context.Context) ([]string, error)
}

type Handler struct {
	table []Recipe
	owned OwnedSource
}

func NewHandler(table []Recipe, owned OwnedSource) *Handler {
	return &Handler{table: table, owned: owned}
}

// --------------------------------------------------
// Suggestions from the current inventory
// --------------------------------------------------
func (h *Handler) Suggest(c *gin.Context) {
	owned, err := h.owned.Names(c.Request.Context())
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	matched := FilterKind(Match(owned, h.table), c.Query("kind"))

	c.JSON(http.StatusOK, gin.H{
		"owned":   owned,
		"recipes": matched,
	})
}

// --------------------------------------------------
// Match against an explicit owned list
// --------------------------------------------------
func (h *Handler) Match(c *gin.Context) {
	var req struct {
		Owned []string `json:"owned"`
		Kind  string   `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	matched := FilterKind(Match(req.Owned, h.table), req.Kind)

	c.JSON(http.StatusOK, gin.H{"recipes": matched})
}
