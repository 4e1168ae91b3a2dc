// Package render turns computed deliveries into output for people: the
// textual report and a Graphviz drawing of the network with the route
// highlighted. It only consumes a graph, a route and labels.
package render

import (
	"distribution-route-service/internal/domain"
	"fmt"
	"io"
	"strconv"
)

// WriteReport prints the five reported values of a delivery, one per line.
func WriteReport(w io.Writer, r *domain.DeliveryReport) error {
	if r == nil {
		return fmt.Errorf("write report: report is nil")
	}

	lines := []string{
		fmt.Sprintf("Selected distribution center: %s - %s", r.Center, r.CenterLabel),
		fmt.Sprintf("Destination: %s - %s", r.Destination, r.DestinationLabel),
		fmt.Sprintf("Minimum distance: %s km", FormatKm(r.DistanceKm)),
		fmt.Sprintf("Best route: %s", r.Route.String()),
		fmt.Sprintf("Estimated delivery time: %d business days", r.EstimatedDays),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// FormatKm prints a distance with no trailing zeros (300, 12.5).
func FormatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}
