package repositories

import (
	"context"
	"database/sql"
	"distribution-route-service/internal/domain"
	"distribution-route-service/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the NetworkRepository port.
type PostgresNetworkRepository struct{ DB *sql.DB }

func NewPostgresNetworkRepository(db *sql.DB) *PostgresNetworkRepository {
	return &PostgresNetworkRepository{DB: db}
}

// Load the full network stored in the database.
func (p *PostgresNetworkRepository) LoadNetwork(ctx context.Context) (_ *domain.Network, err error) {
	defer obs.Time(ctx, "postgres.LoadNetwork")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres network repository: DB is nil")
	}

	g := domain.NewGraph()
	labels := make(map[domain.City]string)

	if err := p.loadCities(ctx, g, labels); err != nil {
		return nil, err
	}
	if err := p.loadConnections(ctx, g); err != nil {
		return nil, err
	}
	centers, err := p.loadCenters(ctx)
	if err != nil {
		return nil, err
	}

	n := &domain.Network{Graph: g, Centers: centers, Labels: labels}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return n, nil
}

func (p *PostgresNetworkRepository) loadCities(ctx context.Context, g *domain.Graph, labels map[domain.City]string) error {
	rows, err := p.DB.QueryContext(ctx, `SELECT name, label FROM cities ORDER BY name;`)
	if err != nil {
		return fmt.Errorf("load network: query cities table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, label string
		if err := rows.Scan(&name, &label); err != nil {
			return fmt.Errorf("load network: scan city row: %w", err)
		}
		if err := g.AddCity(domain.City(name)); err != nil {
			return fmt.Errorf("load network: %w", err)
		}
		if label != "" {
			labels[domain.City(name)] = label
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load network: city row iteration: %w", err)
	}
	return nil
}

func (p *PostgresNetworkRepository) loadConnections(ctx context.Context, g *domain.Graph) error {
	rows, err := p.DB.QueryContext(ctx, `
	SELECT city_a, city_b, distance_km
	FROM connections
	ORDER BY city_a, city_b;
	`)
	if err != nil {
		return fmt.Errorf("load network: query connections table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a, b string
		var km float64
		if err := rows.Scan(&a, &b, &km); err != nil {
			return fmt.Errorf("load network: scan connection row: %w", err)
		}
		if err := g.Connect(domain.City(a), domain.City(b), km); err != nil {
			return fmt.Errorf("load network: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load network: connection row iteration: %w", err)
	}
	return nil
}

func (p *PostgresNetworkRepository) loadCenters(ctx context.Context) ([]domain.City, error) {
	rows, err := p.DB.QueryContext(ctx, `SELECT city FROM distribution_centers ORDER BY position;`)
	if err != nil {
		return nil, fmt.Errorf("load network: query distribution_centers table: %w", err)
	}
	defer rows.Close()

	centers := make([]domain.City, 0, 8)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("load network: scan center row: %w", err)
		}
		centers = append(centers, domain.City(city))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load network: center row iteration: %w", err)
	}
	return centers, nil
}
