package services

import (
	"context"
	"distribution-route-service/internal/domain"
	"distribution-route-service/internal/platform/obs"
	"distribution-route-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"strings"
)

type PlanDeliveryRequest struct {
	Destination domain.City
	// Centers restricts the candidates; empty means every center of the network.
	Centers []domain.City
	// Parallel runs the per-center searches concurrently.
	Parallel bool
}

// Planner computes delivery reports against a network repository.
// Cache is optional.
type Planner struct {
	Network   ports.NetworkRepository
	Estimator *DeliveryEstimator
	Cache     ports.ReportCache
}

// PlanDelivery selects the nearest distribution center for a destination,
// reconstructs the route and estimates the delivery time.
//
// Any failure aborts before a report is produced, so callers never see a
// partial route.
func (p *Planner) PlanDelivery(ctx context.Context, req PlanDeliveryRequest) (*domain.DeliveryReport, error) {
	report, _, err := p.PlanDeliveryOnNetwork(ctx, req)
	return report, err
}

// PlanDeliveryOnNetwork is PlanDelivery that also returns the network the
// report was computed against, so a caller can draw the route on the same graph.
//
// A network that fails to load is reported as ErrNetworkUnavailable with the
// cause in the message only.
func (p *Planner) PlanDeliveryOnNetwork(ctx context.Context, req PlanDeliveryRequest) (_ *domain.DeliveryReport, _ *domain.Network, err error) {
	defer obs.Time(ctx, "plan.PlanDelivery")(&err)

	if p.Network == nil || p.Estimator == nil {
		return nil, nil, errors.New("plan delivery: planner is not fully configured")
	}

	destination := domain.City(strings.TrimSpace(string(req.Destination)))
	if destination == "" {
		return nil, nil, fmt.Errorf("plan delivery: %w: destination is required", domain.ErrInvalidInput)
	}

	network, err := p.Network.LoadNetwork(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("plan delivery: %w: %v", domain.ErrNetworkUnavailable, err)
	}

	centers := req.Centers
	if len(centers) == 0 {
		centers = network.Centers
	}

	var key string
	if p.Cache != nil {
		key = ReportKey(network, centers, destination, p.Estimator)
		cached, ok, err := p.Cache.GetReport(ctx, key)
		if err != nil {
			// A broken cache must not block planning.
			log.Printf("op=plan.PlanDelivery cache=get err=%v", err)
		} else if ok {
			return cached, network, nil
		}
	}

	var sel *domain.Selection
	if req.Parallel {
		sel, err = SelectNearestCenterParallel(ctx, network.Graph, centers, destination, 0)
	} else {
		sel, err = SelectNearestCenter(network.Graph, centers, destination)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("plan delivery: %w", err)
	}

	days, err := p.Estimator.EstimateDays(sel.DistanceKm)
	if err != nil {
		return nil, nil, fmt.Errorf("plan delivery: %w", err)
	}

	report := &domain.DeliveryReport{
		Center:           sel.Center,
		CenterLabel:      network.Label(sel.Center),
		Destination:      destination,
		DestinationLabel: network.Label(destination),
		DistanceKm:       sel.DistanceKm,
		Route:            sel.Route,
		EstimatedDays:    days,
	}

	if p.Cache != nil {
		if err := p.Cache.PutReport(ctx, key, report); err != nil {
			log.Printf("op=plan.PlanDelivery cache=put err=%v", err)
		}
	}

	return report, network, nil
}
