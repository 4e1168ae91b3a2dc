// Command route prints the delivery report for one destination: the nearest
// distribution center, the distance, the route and the delivery estimate.
// It can also write a Graphviz drawing of the network with the route highlighted.
package main

import (
	"context"
	"distribution-route-service/internal/adapters/repositories"
	"distribution-route-service/internal/config"
	"distribution-route-service/internal/domain"
	"distribution-route-service/internal/render"
	"distribution-route-service/internal/services"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	networkPath string
	destination string
	centers     []string
	dotPath     string
	parallel    bool
	speedKmh    float64
	hoursPerDay float64
}

func main() {
	config.LoadDotEnv()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "route",
		Short:        "Find the nearest distribution center and route for a destination",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.networkPath, "network", config.Get("NETWORK_PATH", "data/seeds/network.yaml"), "network dataset (YAML or JSON)")
	f.StringVarP(&opts.destination, "destination", "d", "Goiânia", "destination city")
	f.StringSliceVarP(&opts.centers, "center", "c", nil, "candidate distribution centers (default: the network's centers)")
	f.StringVar(&opts.dotPath, "dot", "", "write a Graphviz drawing of the network and route to this file")
	f.BoolVar(&opts.parallel, "parallel", false, "search from all centers concurrently")
	f.Float64Var(&opts.speedKmh, "speed", services.DefaultSpeedKmh, "average speed in km/h")
	f.Float64Var(&opts.hoursPerDay, "hours-per-day", services.DefaultHoursPerDay, "driving hours per working day")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	repo, err := repositories.NewFileNetworkRepository(opts.networkPath)
	if err != nil {
		return err
	}
	estimator, err := services.NewDeliveryEstimator(opts.speedKmh, opts.hoursPerDay)
	if err != nil {
		return err
	}

	centers := make([]domain.City, 0, len(opts.centers))
	for _, c := range opts.centers {
		centers = append(centers, domain.City(c))
	}

	planner := &services.Planner{Network: repo, Estimator: estimator}
	report, n, err := planner.PlanDeliveryOnNetwork(ctx, services.PlanDeliveryRequest{
		Destination: domain.City(opts.destination),
		Centers:     centers,
		Parallel:    opts.parallel,
	})
	if err != nil {
		return err
	}

	if err := render.WriteReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if opts.dotPath == "" {
		return nil
	}

	out, err := os.Create(opts.dotPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", opts.dotPath, err)
	}
	if err := render.WriteDOT(out, n.Graph, report.Route, n.Labels); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
