package services

import (
	"context"
	"distribution-route-service/internal/domain"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// SelectNearestCenter picks the candidate center with the cheapest path to destination.
//
// Each candidate gets its own independent shortest-path run. Ties keep the
// earliest candidate in input order. If no candidate reaches destination the
// result is ErrNoRouteFound; an infinite-distance center is never selected.
func SelectNearestCenter(g *domain.Graph, centers []domain.City, destination domain.City) (*domain.Selection, error) {
	if err := validateSelection(g, centers, destination); err != nil {
		return nil, err
	}

	runs := make([]*domain.ShortestPaths, len(centers))
	for i, c := range centers {
		sp, err := ShortestPaths(g, c)
		if err != nil {
			return nil, fmt.Errorf("select nearest center: from %q: %w", c, err)
		}
		runs[i] = sp
	}

	return pickNearest(runs, destination)
}

// SelectNearestCenterParallel behaves like SelectNearestCenter but runs the
// per-center searches concurrently, at most limit at a time (limit <= 0 means
// one goroutine per center). Each run owns its tables, and the merge walks
// results in input order, so the outcome never depends on completion order.
func SelectNearestCenterParallel(
	ctx context.Context,
	g *domain.Graph,
	centers []domain.City,
	destination domain.City,
	limit int,
) (*domain.Selection, error) {
	if err := validateSelection(g, centers, destination); err != nil {
		return nil, err
	}

	runs := make([]*domain.ShortestPaths, len(centers))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, c := range centers {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sp, err := ShortestPaths(g, c)
			if err != nil {
				return fmt.Errorf("select nearest center: from %q: %w", c, err)
			}
			runs[i] = sp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return pickNearest(runs, destination)
}

func validateSelection(g *domain.Graph, centers []domain.City, destination domain.City) error {
	if g == nil {
		return fmt.Errorf("select nearest center: %w: graph is nil", domain.ErrInvalidInput)
	}
	if len(centers) == 0 {
		return fmt.Errorf("select nearest center: %w: no candidate centers", domain.ErrInvalidInput)
	}
	if !g.HasCity(destination) {
		return fmt.Errorf("select nearest center: %w: destination %q is not in the graph", domain.ErrInvalidInput, destination)
	}
	for _, c := range centers {
		if !g.HasCity(c) {
			return fmt.Errorf("select nearest center: %w: center %q is not in the graph", domain.ErrInvalidInput, c)
		}
	}
	return nil
}

func pickNearest(runs []*domain.ShortestPaths, destination domain.City) (*domain.Selection, error) {
	var best *domain.ShortestPaths
	minDistance := math.Inf(1)

	// Strict comparison keeps the first center on ties.
	for _, sp := range runs {
		if d := sp.Distance(destination); d < minDistance {
			minDistance = d
			best = sp
		}
	}

	if best == nil {
		return nil, fmt.Errorf(
			"select nearest center: %w: %q is unreachable from all %d centers",
			domain.ErrNoRouteFound, destination, len(runs),
		)
	}

	route, err := RouteTo(best, destination)
	if err != nil {
		return nil, fmt.Errorf("select nearest center: %w", err)
	}

	return &domain.Selection{
		Center:      best.Source,
		Destination: destination,
		DistanceKm:  minDistance,
		Paths:       best,
		Route:       route,
	}, nil
}
