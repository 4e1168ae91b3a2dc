package render

import (
	"bufio"
	"distribution-route-service/internal/domain"
	"fmt"
	"io"
	"strconv"
)

const (
	routeColor = "red"
	nodeColor  = "lightblue"
)

// WriteDOT draws the whole graph in Graphviz DOT. Every connection carries its
// distance as a label; connections on route are drawn bold red. Nodes are
// labelled with labels when present.
func WriteDOT(w io.Writer, g *domain.Graph, route domain.Route, labels map[domain.City]string) error {
	if g == nil {
		return fmt.Errorf("write dot: graph is nil")
	}

	onRoute := make(map[[2]domain.City]struct{}, len(route))
	for _, leg := range route.Legs() {
		onRoute[leg] = struct{}{}
		onRoute[[2]domain.City{leg[1], leg[0]}] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph delivery_network {")
	fmt.Fprintln(bw, `  label="Optimized delivery route";`)
	fmt.Fprintf(bw, "  node [shape=ellipse, style=filled, fillcolor=%s, fontsize=10];\n", nodeColor)
	fmt.Fprintln(bw, "  edge [fontsize=8];")

	for _, c := range g.Cities() {
		label := string(c)
		if l, ok := labels[c]; ok && l != "" {
			label = l
		}
		fmt.Fprintf(bw, "  %s [label=%s];\n", strconv.Quote(string(c)), strconv.Quote(label))
	}

	for _, conn := range g.Connections() {
		attrs := "label=" + strconv.Quote(FormatKm(conn.DistanceKm))
		if _, ok := onRoute[[2]domain.City{conn.From, conn.To}]; ok {
			attrs += ", color=" + routeColor + ", penwidth=2"
		}
		fmt.Fprintf(bw, "  %s -- %s [%s];\n", strconv.Quote(string(conn.From)), strconv.Quote(string(conn.To)), attrs)
	}

	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}
