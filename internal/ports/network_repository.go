package ports

import (
	"context"
	"distribution-route-service/internal/domain"
)

// Port: a boundary for loading the static delivery network.
type NetworkRepository interface {
	// Load the graph, the distribution centers and the display labels.
	LoadNetwork(ctx context.Context) (*domain.Network, error)
}
