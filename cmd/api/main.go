package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"savemyfridge/internal/config"
	"savemyfridge/internal/db"
	"savemyfridge/internal/inventory"
	"savemyfridge/internal/points"
	"savemyfridge/internal/recipe"
	"savemyfridge/internal/refdata"
	"savemyfridge/internal/router"
	"savemyfridge/internal/waste"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	logg := config.NewLogger()
	ctx := context.Background()

	// ───────────────────────── STORES ─────────────────────────
	var (
		invRepo    inventory.Repository
		wasteRepo  waste.Repository
		pointsRepo points.Repository
	)

	backend := config.StoreBackend()
	switch backend {
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, config.DatabaseURL())
		if err != nil {
			logg.WithError(err).Fatal("postgres init failed")
		}
		defer pool.Close()

		invRepo = inventory.NewPostgresRepository(pool)
		wasteRepo = waste.NewPostgresRepository(pool)
		pointsRepo = points.NewPostgresRepository(pool)

	case config.BackendMemory:
		invRepo = inventory.NewMemoryRepository()
		wasteRepo = waste.NewMemoryRepository()
		pointsRepo = points.NewMemoryRepository()

	default:
		logg.WithField("backend", backend).Fatal("unknown STORE_BACKEND")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	wasteService := waste.NewService(wasteRepo)
	pointsService := points.NewService(pointsRepo)
	inventoryService := inventory.NewService(invRepo, pointsService, wasteService)

	// ───────────────────────── SEED ─────────────────────────
	if err := refdata.ImportIfEmpty(ctx, logg, inventoryService, config.FoodDataPath(), time.Now()); err != nil {
		logg.WithError(err).Fatal("inventory bootstrap failed")
	}

	if backend == config.BackendMemory && config.SeedDemo() {
		if err := refdata.SeedDemo(ctx, logg, inventoryService, wasteService, time.Now()); err != nil {
			logg.WithError(err).Fatal("demo seed failed")
		}
	}

	// ───────────────────────── HANDLERS / ROUTES ─────────────────────────
	r := router.New(router.Deps{
		Inventory: inventory.NewHandler(inventoryService),
		Waste:     waste.NewHandler(wasteService),
		Points:    points.NewHandler(pointsService),
		Recipes:   recipe.NewHandler(recipe.DefaultTable(), inventoryService),
		Summary:   router.NewSummaryHandler(inventoryService, wasteService, pointsService),
	})

	// ───────────────────────── START ─────────────────────────
	addr := config.Addr()
	logg.WithFields(logrus.Fields{"addr": addr, "backend": backend}).Info("api listening")
	if err := r.Run(addr); err != nil {
		logg.WithError(err).Fatal("server stopped")
	}
}
