package handlers

import (
	"distribution-route-service/internal/domain"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writePlanError maps planner errors to HTTP statuses. Client mistakes and
// missing routes echo the error text; anything else stays internal.
func writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoRouteFound), errors.Is(err, domain.ErrUnreachable):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNetworkUnavailable):
		log.Printf("plan delivery failed: %v", err)
		writeError(w, r, http.StatusServiceUnavailable, "network unavailable")
	default:
		log.Printf("plan delivery failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
