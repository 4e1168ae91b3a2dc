package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by the commands.
type Config struct {
	Port              string
	NetworkPath       string
	DatabaseURL       string
	RedisAddr         string
	ReportCacheTTL    time.Duration
	SpeedKmh          float64
	HoursPerDay       float64
	ParallelSelection bool
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment.
// Malformed numeric or boolean values are reported instead of silently defaulted.
func Load() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		NetworkPath: Get("NETWORK_PATH", "data/seeds/network.yaml"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
	}

	var err error
	if cfg.ReportCacheTTL, err = time.ParseDuration(Get("REPORT_CACHE_TTL", "1h")); err != nil {
		return Config{}, fmt.Errorf("load config: REPORT_CACHE_TTL: %w", err)
	}
	if cfg.SpeedKmh, err = strconv.ParseFloat(Get("DELIVERY_SPEED_KMH", "80"), 64); err != nil {
		return Config{}, fmt.Errorf("load config: DELIVERY_SPEED_KMH: %w", err)
	}
	if cfg.HoursPerDay, err = strconv.ParseFloat(Get("DELIVERY_HOURS_PER_DAY", "8"), 64); err != nil {
		return Config{}, fmt.Errorf("load config: DELIVERY_HOURS_PER_DAY: %w", err)
	}
	if cfg.ParallelSelection, err = strconv.ParseBool(Get("PARALLEL_SELECTION", "false")); err != nil {
		return Config{}, fmt.Errorf("load config: PARALLEL_SELECTION: %w", err)
	}

	return cfg, nil
}
