package services

import (
	"distribution-route-service/internal/domain"
	"fmt"
	"slices"
)

// ReconstructRoute walks predecessor links back from destination and returns
// the route source -> destination.
//
// A walk that does not end at source means destination was never reached from
// it; that is reported as ErrUnreachable instead of returning a partial route.
func ReconstructRoute(prev domain.PredecessorTable, source, destination domain.City) (domain.Route, error) {
	if source == "" || destination == "" {
		return nil, fmt.Errorf("reconstruct route: %w: source and destination must be non-empty", domain.ErrInvalidInput)
	}

	route := domain.Route{destination}
	cur := destination
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		route = append(route, p)
		cur = p

		// A well-formed table is acyclic; bail out rather than loop forever.
		if len(route) > len(prev)+1 {
			return nil, fmt.Errorf("reconstruct route: %w: predecessor cycle at %q", domain.ErrInvalidInput, cur)
		}
	}

	slices.Reverse(route)

	if route[0] != source {
		return nil, fmt.Errorf("reconstruct route %q -> %q: %w", source, destination, domain.ErrUnreachable)
	}

	return route, nil
}

// RouteTo builds the route from the run's source to destination.
func RouteTo(sp *domain.ShortestPaths, destination domain.City) (domain.Route, error) {
	if sp == nil {
		return nil, fmt.Errorf("route to %q: %w: shortest paths is nil", destination, domain.ErrInvalidInput)
	}
	if _, ok := sp.Distances[destination]; !ok {
		return nil, fmt.Errorf("route to %q: %w: destination is not in the graph", destination, domain.ErrInvalidInput)
	}
	return ReconstructRoute(sp.Predecessors, sp.Source, destination)
}
