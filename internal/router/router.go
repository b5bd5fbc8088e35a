package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"savemyfridge/internal/inventory"
	"savemyfridge/internal/points"
	"savemyfridge/internal/recipe"
	"savemyfridge/internal/waste"
)

type Deps struct {
	Inventory *inventory.Handler
	Waste     *waste.Handler
	Points    *points.Handler
	Recipes   *recipe.Handler
	Summary   *SummaryHandler
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH / HOME ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/summary", deps.Summary.Get)

	// ───────────────────────── INGREDIENTS ─────────────────────────
	ingredients := r.Group("/ingredients")
	{
		ingredients.POST("", deps.Inventory.Create)
		ingredients.GET("", deps.Inventory.List)
		ingredients.GET("/search", deps.Inventory.Search)
		ingredients.GET("/expiring", deps.Inventory.Expiring)
		ingredients.DELETE("/:id", deps.Inventory.Delete)
		ingredients.POST("/:id/consume", deps.Inventory.Consume)
		ingredients.POST("/:id/discard", deps.Inventory.Discard)
	}

	// ───────────────────────── RECIPES ─────────────────────────
	r.GET("/recipes", deps.Recipes.Suggest)
	r.POST("/recipes/match", deps.Recipes.Match)

	// ───────────────────────── WASTE LOG ─────────────────────────
	wasteGroup := r.Group("/waste")
	{
		wasteGroup.GET("", deps.Waste.List)
		wasteGroup.POST("", deps.Waste.Record)
		wasteGroup.GET("/trend", deps.Waste.TrendReport)
	}

	// ───────────────────────── POINTS ─────────────────────────
	pointsGroup := r.Group("/points")
	{
		pointsGroup.GET("", deps.Points.List)
		pointsGroup.GET("/summary", deps.Points.Summary)
		pointsGroup.POST("/checkin", deps.Points.CheckIn)
		pointsGroup.POST("/actions", deps.Points.RecordAction)
	}

	// ───────────────────────── GUIDE ─────────────────────────
	r.GET("/guide/search", deps.Inventory.GuideSearch)

	return r
}
