package repositories

import (
	"context"
	"database/sql"
	"distribution-route-service/internal/domain"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCitiesQuery := `
	CREATE TABLE IF NOT EXISTS cities (
		name TEXT PRIMARY KEY,
		label TEXT NOT NULL DEFAULT ''
	);
	`

	createConnectionsQuery := `
	CREATE TABLE IF NOT EXISTS connections (
		city_a TEXT NOT NULL REFERENCES cities(name) ON DELETE CASCADE,
		city_b TEXT NOT NULL REFERENCES cities(name) ON DELETE CASCADE,
		distance_km DOUBLE PRECISION NOT NULL CHECK (distance_km >= 0),
		PRIMARY KEY (city_a, city_b),
		CHECK (city_a COLLATE "C" < city_b COLLATE "C")
	);
	`

	createCentersQuery := `
	CREATE TABLE IF NOT EXISTS distribution_centers (
		position INTEGER PRIMARY KEY,
		city TEXT NOT NULL UNIQUE REFERENCES cities(name) ON DELETE CASCADE
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_connections_city_b
	ON connections(city_b);
	`

	statements := []string{
		createCitiesQuery,
		createConnectionsQuery,
		createCentersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored network with the one read from a YAML/JSON file.
func SeedFromFile(ctx context.Context, db *sql.DB, path string) error {
	n, err := LoadNetworkFile(path)
	if err != nil {
		return fmt.Errorf("seed network: %w", err)
	}
	return SeedNetwork(ctx, db, n)
}

// Replace the stored network with n in a single transaction.
func SeedNetwork(ctx context.Context, db *sql.DB, n *domain.Network) error {
	if db == nil {
		return errors.New("seed network: DB is nil")
	}
	if err := n.Validate(); err != nil {
		return fmt.Errorf("seed network: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE distribution_centers, connections, cities;`); err != nil {
		return fmt.Errorf("seed network: truncate: %w", err)
	}

	cityStmt, err := tx.PrepareContext(ctx, `INSERT INTO cities (name, label) VALUES ($1, $2);`)
	if err != nil {
		return fmt.Errorf("seed network: prepare city insert: %w", err)
	}
	defer cityStmt.Close()

	for _, c := range n.Graph.Cities() {
		if _, err := cityStmt.ExecContext(ctx, string(c), n.Labels[c]); err != nil {
			return fmt.Errorf("seed network: insert city %q: %w", c, err)
		}
	}

	connStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO connections (city_a, city_b, distance_km)
	VALUES ($1, $2, $3);
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare connection insert: %w", err)
	}
	defer connStmt.Close()

	for _, conn := range n.Graph.Connections() {
		if _, err := connStmt.ExecContext(ctx, string(conn.From), string(conn.To), conn.DistanceKm); err != nil {
			return fmt.Errorf("seed network: insert connection %q <-> %q: %w", conn.From, conn.To, err)
		}
	}

	for i, c := range n.Centers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO distribution_centers (position, city) VALUES ($1, $2);`,
			i+1, string(c),
		); err != nil {
			return fmt.Errorf("seed network: insert center %q: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed network: commit tx: %w", err)
	}

	return nil
}
