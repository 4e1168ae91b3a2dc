package services

import (
	"distribution-route-service/internal/domain"
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// GraphFingerprint hashes the graph's connections in a stable order.
// Two graphs with the same cities and weights share a fingerprint.
func GraphFingerprint(g *domain.Graph) uint64 {
	d := xxhash.New()
	for _, c := range g.Cities() {
		_, _ = d.WriteString(string(c))
		_, _ = d.WriteString("\x00")
	}
	for _, conn := range g.Connections() {
		_, _ = d.WriteString(string(conn.From))
		_, _ = d.WriteString("\x1f")
		_, _ = d.WriteString(string(conn.To))
		_, _ = d.WriteString("\x1f")
		_, _ = d.WriteString(strconv.FormatFloat(conn.DistanceKm, 'g', -1, 64))
		_, _ = d.WriteString("\x00")
	}
	return d.Sum64()
}

// LabelFingerprint hashes the non-empty display labels in city order.
func LabelFingerprint(labels map[domain.City]string) uint64 {
	cities := make([]domain.City, 0, len(labels))
	for c, l := range labels {
		if l != "" {
			cities = append(cities, c)
		}
	}
	slices.Sort(cities)

	d := xxhash.New()
	for _, c := range cities {
		_, _ = d.WriteString(string(c))
		_, _ = d.WriteString("\x1f")
		_, _ = d.WriteString(labels[c])
		_, _ = d.WriteString("\x00")
	}
	return d.Sum64()
}

// ReportKey identifies a report by everything that can change its content,
// labels included. Candidate order is part of the key because it decides ties.
func ReportKey(n *domain.Network, centers []domain.City, destination domain.City, e *DeliveryEstimator) string {
	d := xxhash.New()
	for _, c := range centers {
		_, _ = d.WriteString(string(c))
		_, _ = d.WriteString("\x00")
	}
	_, _ = d.WriteString("\x1e")
	_, _ = d.WriteString(string(destination))

	return fmt.Sprintf(
		"report:%016x:%016x:%016x:%g:%g",
		GraphFingerprint(n.Graph), LabelFingerprint(n.Labels), d.Sum64(), e.SpeedKmh, e.HoursPerDay,
	)
}
