package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
)

func getFloat64Env(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}

// defaultStorePath places the local store file under the user config dir,
// falling back to the working directory when none is available.
func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "storefront-store.json"
	}
	return filepath.Join(dir, "storefront-gateway", "store.json")
}
