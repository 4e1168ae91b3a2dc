package repositories

import (
	"bytes"
	"context"
	"distribution-route-service/internal/domain"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NetworkSeed is the on-disk shape of a delivery network (YAML or JSON).
//
// Roads are given either as a list of undirected connections or as an
// adjacency map; the adjacency form must be symmetric.
type NetworkSeed struct {
	Centers     []string                      `yaml:"centers" json:"centers"`
	Cities      []CitySeed                    `yaml:"cities" json:"cities"`
	Connections []ConnectionSeed              `yaml:"connections" json:"connections"`
	Adjacency   map[string]map[string]float64 `yaml:"adjacency" json:"adjacency"`
}

type CitySeed struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
}

type ConnectionSeed struct {
	From string  `yaml:"from" json:"from"`
	To   string  `yaml:"to" json:"to"`
	Km   float64 `yaml:"km" json:"km"`
}

// ParseNetwork decodes a network document. JSON is accepted as a subset of YAML.
func ParseNetwork(data []byte) (*domain.Network, error) {
	var seed NetworkSeed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse network: %w: %v", domain.ErrInvalidInput, err)
	}
	return seed.Build()
}

// Build converts the seed into a validated Network.
func (s NetworkSeed) Build() (*domain.Network, error) {
	if len(s.Connections) > 0 && len(s.Adjacency) > 0 {
		return nil, fmt.Errorf("build network: %w: use either connections or adjacency, not both", domain.ErrInvalidInput)
	}

	var g *domain.Graph
	if len(s.Adjacency) > 0 {
		adj := make(map[domain.City]map[domain.City]float64, len(s.Adjacency))
		for city, nbrs := range s.Adjacency {
			m := make(map[domain.City]float64, len(nbrs))
			for n, km := range nbrs {
				m[domain.City(strings.TrimSpace(n))] = km
			}
			adj[domain.City(strings.TrimSpace(city))] = m
		}
		var err error
		if g, err = domain.GraphFromAdjacency(adj); err != nil {
			return nil, fmt.Errorf("build network: %w", err)
		}
	} else {
		g = domain.NewGraph()
		for i, c := range s.Connections {
			from := domain.City(strings.TrimSpace(c.From))
			to := domain.City(strings.TrimSpace(c.To))
			if _, ok := g.Weight(from, to); ok {
				return nil, fmt.Errorf("build network: %w: connection #%d %q <-> %q listed twice", domain.ErrInvalidInput, i+1, from, to)
			}
			if err := g.Connect(from, to, c.Km); err != nil {
				return nil, fmt.Errorf("build network: connection #%d: %w", i+1, err)
			}
		}
	}

	labels := make(map[domain.City]string, len(s.Cities))
	for i, c := range s.Cities {
		name := domain.City(strings.TrimSpace(c.Name))
		if err := g.AddCity(name); err != nil {
			return nil, fmt.Errorf("build network: city #%d: %w", i+1, err)
		}
		if l := strings.TrimSpace(c.Label); l != "" {
			labels[name] = l
		}
	}

	centers := make([]domain.City, 0, len(s.Centers))
	for _, c := range s.Centers {
		centers = append(centers, domain.City(strings.TrimSpace(c)))
	}

	n := &domain.Network{Graph: g, Centers: centers, Labels: labels}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("build network: %w", err)
	}
	return n, nil
}

// Seed converts a Network back into its on-disk shape, using the connection list form.
func Seed(n *domain.Network) NetworkSeed {
	seed := NetworkSeed{}
	for _, c := range n.Centers {
		seed.Centers = append(seed.Centers, string(c))
	}
	for _, c := range n.Graph.Cities() {
		seed.Cities = append(seed.Cities, CitySeed{Name: string(c), Label: n.Labels[c]})
	}
	for _, conn := range n.Graph.Connections() {
		seed.Connections = append(seed.Connections, ConnectionSeed{
			From: string(conn.From),
			To:   string(conn.To),
			Km:   conn.DistanceKm,
		})
	}
	return seed
}

// LoadNetworkFile reads and parses a network file.
func LoadNetworkFile(path string) (*domain.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load network: read %q: %w", path, err)
	}
	n, err := ParseNetwork(data)
	if err != nil {
		return nil, fmt.Errorf("load network %q: %w", path, err)
	}
	return n, nil
}

// File-backed implementation of the NetworkRepository port.
// The file is read once; the network is immutable afterwards.
type FileNetworkRepository struct {
	network *domain.Network
}

func NewFileNetworkRepository(path string) (*FileNetworkRepository, error) {
	n, err := LoadNetworkFile(path)
	if err != nil {
		return nil, err
	}
	return &FileNetworkRepository{network: n}, nil
}

func (f *FileNetworkRepository) LoadNetwork(ctx context.Context) (*domain.Network, error) {
	if f.network == nil {
		return nil, errors.New("file network repository: network is nil")
	}
	return f.network, nil
}
