package domain

import "fmt"

// Network is the static dataset the planner runs against: the road graph,
// the cities acting as distribution centers, and display labels for reports.
type Network struct {
	Graph   *Graph
	Centers []City
	Labels  map[City]string
}

// Label returns the display label of c (for example "Recife - PE"),
// falling back to the bare city name.
func (n *Network) Label(c City) string {
	if l, ok := n.Labels[c]; ok && l != "" {
		return l
	}
	return string(c)
}

// Validate checks that the network has a graph and at least one center,
// and that every center is part of the graph.
func (n *Network) Validate() error {
	if n.Graph == nil {
		return fmt.Errorf("validate network: %w: graph is nil", ErrInvalidInput)
	}
	if len(n.Centers) == 0 {
		return fmt.Errorf("validate network: %w: no distribution centers", ErrInvalidInput)
	}
	seen := make(map[City]struct{}, len(n.Centers))
	for _, c := range n.Centers {
		if !n.Graph.HasCity(c) {
			return fmt.Errorf("validate network: %w: center %q is not in the graph", ErrInvalidInput, c)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("validate network: %w: center %q listed twice", ErrInvalidInput, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
