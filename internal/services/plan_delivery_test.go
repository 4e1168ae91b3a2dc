package services

import (
	"context"
	"distribution-route-service/internal/domain"
	"errors"
	"testing"
)

type staticNetwork struct {
	network *domain.Network
	calls   int
}

func (s *staticNetwork) LoadNetwork(ctx context.Context) (*domain.Network, error) {
	s.calls++
	return s.network, nil
}

type failingNetwork struct{ err error }

func (f failingNetwork) LoadNetwork(ctx context.Context) (*domain.Network, error) {
	return nil, f.err
}

type mapCache struct {
	reports map[string]*domain.DeliveryReport
	puts    int
}

func (m *mapCache) GetReport(ctx context.Context, key string) (*domain.DeliveryReport, bool, error) {
	r, ok := m.reports[key]
	return r, ok, nil
}

func (m *mapCache) PutReport(ctx context.Context, key string, report *domain.DeliveryReport) error {
	m.reports[key] = report
	m.puts++
	return nil
}

func testNetwork(t *testing.T) *domain.Network {
	t.Helper()
	g := mustGraph(t, []domain.Connection{
		{From: "Recife", To: "Maceio", DistanceKm: 257},
		{From: "Maceio", To: "Aracaju", DistanceKm: 295},
		{From: "Aracaju", To: "Salvador", DistanceKm: 324},
		{From: "Belem", To: "Macapa", DistanceKm: 330},
	}, "Lonely")
	return &domain.Network{
		Graph:   g,
		Centers: []domain.City{"Belem", "Recife"},
		Labels: map[domain.City]string{
			"Recife":   "Recife - PE",
			"Salvador": "Salvador - BA",
		},
	}
}

func TestPlanDelivery(t *testing.T) {
	repo := &staticNetwork{network: testNetwork(t)}
	planner := &Planner{
		Network:   repo,
		Estimator: &DeliveryEstimator{SpeedKmh: 80, HoursPerDay: 8},
	}

	report, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Salvador"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Center != "Recife" || report.CenterLabel != "Recife - PE" {
		t.Fatalf("center = %q (%q), want Recife (Recife - PE)", report.Center, report.CenterLabel)
	}
	if report.DestinationLabel != "Salvador - BA" {
		t.Fatalf("destination label = %q", report.DestinationLabel)
	}
	if report.DistanceKm != 876 {
		t.Fatalf("distance = %v, want 876", report.DistanceKm)
	}
	if report.Route.String() != "Recife -> Maceio -> Aracaju -> Salvador" {
		t.Fatalf("route = %q", report.Route.String())
	}
	// 876 km / 80 km/h = 10.95 h, over two 8 h days.
	if report.EstimatedDays != 2 {
		t.Fatalf("days = %d, want 2", report.EstimatedDays)
	}
}

func TestPlanDeliveryParallelAndCenterOverride(t *testing.T) {
	planner := &Planner{
		Network:   &staticNetwork{network: testNetwork(t)},
		Estimator: &DeliveryEstimator{SpeedKmh: 80, HoursPerDay: 8},
	}

	report, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{
		Destination: "Salvador",
		Centers:     []domain.City{"Maceio", "Recife"},
		Parallel:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Center != "Maceio" || report.DistanceKm != 619 {
		t.Fatalf("report = %+v, want Maceio at 619 km", report)
	}
	if report.CenterLabel != "Maceio" {
		t.Fatalf("unlabelled center label = %q, want fallback Maceio", report.CenterLabel)
	}
}

func TestPlanDeliveryErrors(t *testing.T) {
	planner := &Planner{
		Network:   &staticNetwork{network: testNetwork(t)},
		Estimator: &DeliveryEstimator{SpeedKmh: 80, HoursPerDay: 8},
	}

	cases := []struct {
		name        string
		destination domain.City
		want        error
	}{
		{"blank destination", "  ", domain.ErrInvalidInput},
		{"unknown destination", "Atlantis", domain.ErrInvalidInput},
		{"disconnected destination", "Lonely", domain.ErrNoRouteFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: tc.destination})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if report != nil {
				t.Fatalf("report = %+v, want nil", report)
			}
		})
	}

	planner.Network = failingNetwork{err: errors.New("boom")}
	if _, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Salvador"}); !errors.Is(err, domain.ErrNetworkUnavailable) {
		t.Fatalf("err = %v, want ErrNetworkUnavailable", err)
	}

	// A broken dataset is a server fault even though validation flags it as invalid input.
	invalid := (&domain.Network{Graph: domain.NewGraph()}).Validate()
	planner.Network = failingNetwork{err: invalid}
	_, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Salvador"})
	if !errors.Is(err, domain.ErrNetworkUnavailable) || errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrNetworkUnavailable only", err)
	}
}

func TestPlanDeliveryOnNetworkReturnsPlannedNetwork(t *testing.T) {
	n := testNetwork(t)
	planner := &Planner{
		Network:   &staticNetwork{network: n},
		Estimator: &DeliveryEstimator{SpeedKmh: 80, HoursPerDay: 8},
		Cache:     &mapCache{reports: map[string]*domain.DeliveryReport{}},
	}

	for i := 0; i < 2; i++ {
		report, got, err := planner.PlanDeliveryOnNetwork(context.Background(), PlanDeliveryRequest{Destination: "Salvador"})
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if got != n {
			t.Fatalf("call %d: network is not the one the report was planned on", i)
		}
		if report.Center != "Recife" {
			t.Fatalf("call %d: center = %q", i, report.Center)
		}
	}
}

func TestPlanDeliveryUsesCache(t *testing.T) {
	cache := &mapCache{reports: map[string]*domain.DeliveryReport{}}
	planner := &Planner{
		Network:   &staticNetwork{network: testNetwork(t)},
		Estimator: &DeliveryEstimator{SpeedKmh: 80, HoursPerDay: 8},
		Cache:     cache,
	}

	first, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Salvador"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Salvador"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.puts != 1 {
		t.Fatalf("puts = %d, want 1", cache.puts)
	}
	if first != second {
		t.Fatalf("second call should return the cached report")
	}

	if _, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Aracaju"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.puts != 2 {
		t.Fatalf("puts = %d, want 2 after a different destination", cache.puts)
	}
}

func TestPlanDeliveryCacheFollowsRelabel(t *testing.T) {
	cache := &mapCache{reports: map[string]*domain.DeliveryReport{}}
	repo := &staticNetwork{network: testNetwork(t)}
	planner := &Planner{
		Network:   repo,
		Estimator: &DeliveryEstimator{SpeedKmh: 80, HoursPerDay: 8},
		Cache:     cache,
	}

	before, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Salvador"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	relabelled := testNetwork(t)
	relabelled.Labels["Recife"] = "Recife - Pernambuco"
	repo.network = relabelled

	after, err := planner.PlanDelivery(context.Background(), PlanDeliveryRequest{Destination: "Salvador"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if before.CenterLabel != "Recife - PE" || after.CenterLabel != "Recife - Pernambuco" {
		t.Fatalf("labels before=%q after=%q, want the new label after a relabel", before.CenterLabel, after.CenterLabel)
	}
	if cache.puts != 2 {
		t.Fatalf("puts = %d, want 2", cache.puts)
	}
}

func TestReportKeyDependsOnInputs(t *testing.T) {
	n := testNetwork(t)
	e := &DeliveryEstimator{SpeedKmh: 80, HoursPerDay: 8}

	base := ReportKey(n, n.Centers, "Salvador", e)
	if base != ReportKey(n, n.Centers, "Salvador", e) {
		t.Fatalf("key is not stable")
	}
	if base == ReportKey(n, []domain.City{"Recife", "Belem"}, "Salvador", e) {
		t.Fatalf("center order must change the key")
	}
	if base == ReportKey(n, n.Centers, "Aracaju", e) {
		t.Fatalf("destination must change the key")
	}
	if base == ReportKey(n, n.Centers, "Salvador", &DeliveryEstimator{SpeedKmh: 60, HoursPerDay: 8}) {
		t.Fatalf("estimator must change the key")
	}

	n.Labels["Belem"] = ""
	if base != ReportKey(n, n.Centers, "Salvador", e) {
		t.Fatalf("an empty label must not change the key")
	}
	n.Labels["Recife"] = "Recife - Pernambuco"
	relabelled := ReportKey(n, n.Centers, "Salvador", e)
	if base == relabelled {
		t.Fatalf("label change must change the key")
	}

	_ = n.Graph.Connect("Recife", "Salvador", 800)
	if relabelled == ReportKey(n, n.Centers, "Salvador", e) {
		t.Fatalf("graph change must change the key")
	}
}
