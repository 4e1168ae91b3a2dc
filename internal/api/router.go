package api

import (
	"distribution-route-service/internal/api/handlers"
	"distribution-route-service/internal/ports"
	"distribution-route-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of the concrete network and cache adapters.
func NewRouter(planner *services.Planner, network ports.NetworkRepository, parallel bool) http.Handler {
	mux := http.NewServeMux()

	networkHandler := &handlers.NetworkHandler{Repo: network}
	planHandler := &handlers.PlanHandler{
		Planner:         planner,
		DefaultParallel: parallel,
	}

	mux.HandleFunc("/health", networkHandler.Health)
	mux.HandleFunc("/network", networkHandler.Get)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/plans/dot", planHandler.DOT)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
