package handlers

import (
	"distribution-route-service/internal/api/dto"
	"distribution-route-service/internal/ports"
	"log"
	"net/http"
)

// NetworkHandler exposes the read-only delivery network.
type NetworkHandler struct {
	Repo ports.NetworkRepository
}

func (h *NetworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	n, err := h.Repo.LoadNetwork(r.Context())
	if err != nil {
		log.Printf("load network failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	cities := n.Graph.Cities()
	conns := n.Graph.Connections()
	res := dto.NetworkResponse{
		Cities:      make([]dto.CityResponse, 0, len(cities)),
		Connections: make([]dto.ConnectionResponse, 0, len(conns)),
		Centers:     make([]string, 0, len(n.Centers)),
	}
	for _, c := range cities {
		res.Cities = append(res.Cities, dto.CityResponse{Name: string(c), Label: n.Label(c)})
	}
	for _, c := range conns {
		res.Connections = append(res.Connections, dto.ConnectionResponse{
			From:       string(c.From),
			To:         string(c.To),
			DistanceKm: c.DistanceKm,
		})
	}
	for _, c := range n.Centers {
		res.Centers = append(res.Centers, string(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}
