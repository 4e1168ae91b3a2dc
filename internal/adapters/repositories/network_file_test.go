package repositories

import (
	"context"
	"distribution-route-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseNetworkConnections(t *testing.T) {
	n, err := ParseNetwork([]byte(`
centers: [A]
cities:
  - {name: A, label: A - XX}
  - {name: Z}
connections:
  - {from: A, to: B, km: 10}
  - {from: B, to: C, km: 10}
`))
	require.NoError(t, err)

	require.Equal(t, []domain.City{"A", "B", "C", "Z"}, n.Graph.Cities())
	require.Equal(t, []domain.City{"A"}, n.Centers)
	require.Equal(t, "A - XX", n.Label("A"))
	require.Equal(t, "Z", n.Label("Z"))

	km, ok := n.Graph.Weight("C", "B")
	require.True(t, ok)
	require.Equal(t, 10.0, km)
}

func TestParseNetworkAdjacencyJSON(t *testing.T) {
	n, err := ParseNetwork([]byte(`{"centers": ["A"], "adjacency": {"A": {"B": 3}, "B": {"A": 3}}}`))
	require.NoError(t, err)
	require.Equal(t, 2, n.Graph.Len())
}

func TestParseNetworkRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"asymmetric adjacency": `adjacency: {A: {B: 3}, B: {A: 4}}`,
		"negative weight":      `connections: [{from: A, to: B, km: -1}]`,
		"duplicate connection": `connections: [{from: A, to: B, km: 1}, {from: B, to: A, km: 2}]`,
		"unknown center":       "centers: [Q]\nconnections: [{from: A, to: B, km: 1}]",
		"unknown field":        `roads: []`,
		"no centers":           `connections: [{from: A, to: B, km: 1}]`,
		"both road forms":      "connections: [{from: A, to: B, km: 1}]\nadjacency: {A: {B: 1}, B: {A: 1}}",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseNetwork([]byte(body))
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSeedRoundTripsNetwork(t *testing.T) {
	n, err := ParseNetwork([]byte(`
centers: [B, A]
cities: [{name: A, label: Alpha}]
connections:
  - {from: A, to: B, km: 1.5}
  - {from: C, to: B, km: 2}
`))
	require.NoError(t, err)

	back, err := Seed(n).Build()
	require.NoError(t, err)
	require.Equal(t, n.Centers, back.Centers)
	require.Equal(t, n.Graph.Connections(), back.Graph.Connections())
	require.Equal(t, "Alpha", back.Label("A"))
}

func TestFileNetworkRepositoryLoadsDefaultDataset(t *testing.T) {
	repo, err := NewFileNetworkRepository(filepath.Join("..", "..", "..", "data", "seeds", "network.yaml"))
	require.NoError(t, err)

	n, err := repo.LoadNetwork(context.Background())
	require.NoError(t, err)

	require.Equal(t, 26, n.Graph.Len())
	require.Equal(t, []domain.City{"Belém", "Recife", "São Paulo", "Curitiba"}, n.Centers)
	require.Equal(t, "Goiânia - GO", n.Label("Goiânia"))
}

func TestNewFileNetworkRepositoryMissingFile(t *testing.T) {
	_, err := NewFileNetworkRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadNetworkFile(t *testing.T) {
	path := writeFile(t, "net.json", `{"centers":["X"],"connections":[{"from":"X","to":"Y","km":7}]}`)

	n, err := LoadNetworkFile(path)
	require.NoError(t, err)
	require.True(t, n.Graph.HasCity("Y"))
}
