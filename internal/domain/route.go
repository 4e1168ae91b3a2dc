package domain

import (
	"math"
	"strings"
)

// DistanceTable maps every city of a graph to its distance from a source.
// Unreached cities hold +Inf.
type DistanceTable map[City]float64

// PredecessorTable maps a reached city to the city preceding it on the
// cheapest known path from the source. The source and unreached cities have
// no entry.
type PredecessorTable map[City]City

// ShortestPaths is the output of a single-source shortest-path run.
// It is freshly allocated per run and owned by the caller.
type ShortestPaths struct {
	Source       City
	Distances    DistanceTable
	Predecessors PredecessorTable
}

// Distance returns the distance to c, +Inf when c was not reached or is unknown.
func (sp *ShortestPaths) Distance(c City) float64 {
	d, ok := sp.Distances[c]
	if !ok {
		return math.Inf(1)
	}
	return d
}

func (sp *ShortestPaths) Reachable(c City) bool {
	return !math.IsInf(sp.Distance(c), 1)
}

// Route is an ordered sequence of cities from origin to destination inclusive.
type Route []City

// Origin returns the first city, or "" for an empty route.
func (r Route) Origin() City {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Destination returns the last city, or "" for an empty route.
func (r Route) Destination() City {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1]
}

// Legs returns consecutive (from, to) pairs along the route.
func (r Route) Legs() [][2]City {
	if len(r) < 2 {
		return nil
	}
	legs := make([][2]City, 0, len(r)-1)
	for i := 0; i+1 < len(r); i++ {
		legs = append(legs, [2]City{r[i], r[i+1]})
	}
	return legs
}

// Strings returns the route as plain city names.
func (r Route) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = string(c)
	}
	return out
}

func (r Route) String() string { return strings.Join(r.Strings(), " -> ") }

// Selection is the distribution center chosen for a destination, together
// with the shortest-path run that justified the choice.
type Selection struct {
	Center      City
	Destination City
	DistanceKm  float64
	Paths       *ShortestPaths
	Route       Route
}

// DeliveryReport carries the values reported to callers for a planned delivery.
type DeliveryReport struct {
	Center           City
	CenterLabel      string
	Destination      City
	DestinationLabel string
	DistanceKm       float64
	Route            Route
	EstimatedDays    int
}
