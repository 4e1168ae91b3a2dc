package services

import (
	"container/heap"
	"distribution-route-service/internal/domain"
	"fmt"
	"math"
)

// frontierItem is a tentative (cost, city) pair awaiting expansion.
type frontierItem struct {
	cost float64
	city domain.City
}

// frontier is a binary min-heap of tentative distances.
//
// It has no decrease-key: an improved distance is pushed as a new entry and the
// stale one is discarded when popped. Equal costs are ordered by city name so
// runs are reproducible.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].city < f[j].city
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// ShortestPaths runs Dijkstra's algorithm from source over g.
//
// Every city of g gets a DistanceTable entry (+Inf when unreached). Cities
// that cannot be reached are not an error here: they simply have no
// predecessor. The graph is only read.
func ShortestPaths(g *domain.Graph, source domain.City) (*domain.ShortestPaths, error) {
	if g == nil {
		return nil, fmt.Errorf("shortest paths: %w: graph is nil", domain.ErrInvalidInput)
	}
	if !g.HasCity(source) {
		return nil, fmt.Errorf("shortest paths: %w: source %q is not in the graph", domain.ErrInvalidInput, source)
	}

	dist := make(domain.DistanceTable, g.Len())
	for _, c := range g.Cities() {
		dist[c] = math.Inf(1)
	}
	dist[source] = 0

	prev := make(domain.PredecessorTable)
	visited := make(map[domain.City]struct{}, g.Len())

	pq := &frontier{{cost: 0, city: source}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(frontierItem)

		// Stale duplicate left behind by a later improvement.
		if _, done := visited[cur.city]; done {
			continue
		}
		visited[cur.city] = struct{}{}

		for _, conn := range g.Neighbors(cur.city) {
			candidate := cur.cost + conn.DistanceKm
			if candidate < dist[conn.To] {
				dist[conn.To] = candidate
				prev[conn.To] = cur.city
				heap.Push(pq, frontierItem{cost: candidate, city: conn.To})
			}
		}
	}

	return &domain.ShortestPaths{
		Source:       source,
		Distances:    dist,
		Predecessors: prev,
	}, nil
}
