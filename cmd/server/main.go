package main

import (
	"context"
	"distribution-route-service/internal/adapters/cache"
	"distribution-route-service/internal/adapters/repositories"
	"distribution-route-service/internal/api"
	"distribution-route-service/internal/config"
	"distribution-route-service/internal/platform/db"
	"distribution-route-service/internal/ports"
	"distribution-route-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (file or Postgres network, Redis cache) behind ports
// and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	network, closeNetwork, err := openNetwork(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeNetwork()

	estimator, err := services.NewDeliveryEstimator(cfg.SpeedKmh, cfg.HoursPerDay)
	if err != nil {
		log.Fatal(err)
	}

	planner := &services.Planner{Network: network, Estimator: estimator}

	// The report cache is optional; planning works without Redis.
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping addr=%s: %v", cfg.RedisAddr, err)
		}
		planner.Cache = cache.NewRedisReportCache(client, cfg.ReportCacheTTL)
		log.Printf("Report cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.ReportCacheTTL)
	}

	router := api.NewRouter(planner, network, cfg.ParallelSelection)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openNetwork prefers Postgres when DATABASE_URL is set and falls back to the dataset file.
func openNetwork(ctx context.Context, cfg config.Config) (ports.NetworkRepository, func(), error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open network: %w", err)
		}
		log.Println("Network source=postgres")
		return repositories.NewPostgresNetworkRepository(conn), func() { _ = conn.Close() }, nil
	}

	repo, err := repositories.NewFileNetworkRepository(cfg.NetworkPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open network: %w", err)
	}
	log.Printf("Network source=file path=%s", cfg.NetworkPath)
	return repo, func() {}, nil
}
