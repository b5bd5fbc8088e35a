package config

import "os"

// Backend names accepted in STORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

func Addr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return ":" + port
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// StoreBackend picks the repository implementations wired in main.
// Explicit STORE_BACKEND wins; otherwise a configured DATABASE_URL means
// postgres and anything else falls back to the ephemeral in-memory store.
func StoreBackend() string {
	if b := os.Getenv("STORE_BACKEND"); b != "" {
		return b
	}
	if DatabaseURL() != "" {
		return BackendPostgres
	}
	return BackendMemory
}

func FoodDataPath() string {
	if p := os.Getenv("FOOD_DATA_CSV"); p != "" {
		return p
	}
	return "food_data.csv"
}

func SeedDemo() bool {
	return os.Getenv("SEED_DEMO") == "true"
}
