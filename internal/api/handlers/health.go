package handlers

import (
	"log"
	"net/http"
)

// Health reports liveness and whether the delivery network can be loaded.
func (h *NetworkHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	n, err := h.Repo.LoadNetwork(r.Context())
	if err != nil {
		log.Printf("health: load network failed: %v", err)
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
		return
	}

	res := map[string]any{"status": "ok", "cities": n.Graph.Len(), "centers": len(n.Centers)}
	writeJSON(w, r, http.StatusOK, res)
}
