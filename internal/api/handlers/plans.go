package handlers

import (
	"bytes"
	"distribution-route-service/internal/api/dto"
	"distribution-route-service/internal/domain"
	"distribution-route-service/internal/render"
	"distribution-route-service/internal/services"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type PlanHandler struct {
	Planner         *services.Planner
	DefaultParallel bool
}

// Plan selects the nearest distribution center for a destination and
// returns the route and delivery estimate.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	planReq, ok := h.planRequest(w, r, req)
	if !ok {
		return
	}

	report, err := h.Planner.PlanDelivery(r.Context(), planReq)
	if err != nil {
		writePlanError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlanResponse{
		Center:           string(report.Center),
		CenterLabel:      report.CenterLabel,
		Destination:      string(report.Destination),
		DestinationLabel: report.DestinationLabel,
		DistanceKm:       report.DistanceKm,
		Route:            report.Route.Strings(),
		EstimatedDays:    report.EstimatedDays,
	})
}

// DOT plans a delivery like Plan and renders the whole network in Graphviz
// DOT with the chosen route highlighted. Candidates may be restricted with
// repeated center parameters. Nothing is drawn when planning fails.
func (h *PlanHandler) DOT(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	planReq, ok := h.planRequest(w, r, dto.PlanRequest{
		Destination: q.Get("destination"),
		Centers:     q["center"],
	})
	if !ok {
		return
	}

	// The route is drawn on the network it was planned against.
	report, n, err := h.Planner.PlanDeliveryOnNetwork(r.Context(), planReq)
	if err != nil {
		writePlanError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.WriteDOT(&buf, n.Graph, report.Route, n.Labels); err != nil {
		log.Printf("render dot failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write dot failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// planRequest trims and validates a plan request, writing a 400 on failure.
func (h *PlanHandler) planRequest(w http.ResponseWriter, r *http.Request, req dto.PlanRequest) (services.PlanDeliveryRequest, bool) {
	req.Destination = strings.TrimSpace(req.Destination)
	for i := range req.Centers {
		req.Centers[i] = strings.TrimSpace(req.Centers[i])
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return services.PlanDeliveryRequest{}, false
	}

	centers := make([]domain.City, 0, len(req.Centers))
	for _, c := range req.Centers {
		centers = append(centers, domain.City(c))
	}
	return services.PlanDeliveryRequest{
		Destination: domain.City(req.Destination),
		Centers:     centers,
		Parallel:    req.Parallel || h.DefaultParallel,
	}, true
}
