package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// City is a node in the logistics network, identified by its name.
type City string

// Connection is an undirected road between two cities, weighted in kilometers.
type Connection struct {
	From       City
	To         City
	DistanceKm float64
}

// Graph is an undirected weighted graph of cities.
//
// Connections are always stored in both directions with the same weight, so a
// Graph built through Connect can never be asymmetric. Once handed to the
// routing services a Graph is treated as read-only.
type Graph struct {
	adj map[City]map[City]float64
}

func NewGraph() *Graph {
	return &Graph{adj: make(map[City]map[City]float64)}
}

// AddCity registers a city without connections. Adding an existing city is a no-op.
func (g *Graph) AddCity(c City) error {
	if strings.TrimSpace(string(c)) == "" {
		return fmt.Errorf("add city: %w: city name must be non-empty", ErrInvalidInput)
	}
	if _, ok := g.adj[c]; !ok {
		g.adj[c] = make(map[City]float64)
	}
	return nil
}

// Connect adds (or replaces) the undirected connection a <-> b.
func (g *Graph) Connect(a, b City, km float64) error {
	if a == b {
		return fmt.Errorf("connect %q: %w: self connections are not allowed", a, ErrInvalidInput)
	}
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return fmt.Errorf("connect %q <-> %q: %w: distance must be a finite non-negative number, got %v", a, b, ErrInvalidInput, km)
	}
	if err := g.AddCity(a); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := g.AddCity(b); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	g.adj[a][b] = km
	g.adj[b][a] = km
	return nil
}

// GraphFromAdjacency validates a raw adjacency mapping and builds a Graph from it.
// Every weight must be non-negative and mirrored by an equal weight in the
// opposite direction.
func GraphFromAdjacency(adj map[City]map[City]float64) (*Graph, error) {
	g := NewGraph()
	for city, neighbors := range adj {
		if err := g.AddCity(city); err != nil {
			return nil, fmt.Errorf("graph from adjacency: %w", err)
		}
		for n, km := range neighbors {
			back, ok := adj[n][city]
			if !ok {
				return nil, fmt.Errorf("graph from adjacency: %w: %q -> %q has no reverse connection", ErrInvalidInput, city, n)
			}
			if back != km {
				return nil, fmt.Errorf(
					"graph from adjacency: %w: asymmetric weight %q -> %q = %v, reverse = %v",
					ErrInvalidInput, city, n, km, back,
				)
			}
			if err := g.Connect(city, n, km); err != nil {
				return nil, fmt.Errorf("graph from adjacency: %w", err)
			}
		}
	}
	return g, nil
}

func (g *Graph) HasCity(c City) bool {
	_, ok := g.adj[c]
	return ok
}

// Len returns the number of cities.
func (g *Graph) Len() int { return len(g.adj) }

// Cities returns all cities sorted by name.
func (g *Graph) Cities() []City {
	out := make([]City, 0, len(g.adj))
	for c := range g.adj {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Neighbors returns the connections leaving c, sorted by neighbor name.
func (g *Graph) Neighbors(c City) []Connection {
	nbrs := g.adj[c]
	out := make([]Connection, 0, len(nbrs))
	for n, km := range nbrs {
		out = append(out, Connection{From: c, To: n, DistanceKm: km})
	}
	slices.SortFunc(out, func(a, b Connection) int { return strings.Compare(string(a.To), string(b.To)) })
	return out
}

// Weight returns the distance of the direct connection a <-> b.
func (g *Graph) Weight(a, b City) (float64, bool) {
	km, ok := g.adj[a][b]
	return km, ok
}

// Connections lists every undirected connection once, with From < To,
// in a deterministic order.
func (g *Graph) Connections() []Connection {
	out := make([]Connection, 0)
	for _, c := range g.Cities() {
		for _, conn := range g.Neighbors(c) {
			if conn.From < conn.To {
				out = append(out, conn)
			}
		}
	}
	return out
}
