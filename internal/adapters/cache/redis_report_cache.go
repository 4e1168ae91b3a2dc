package cache

import (
	"context"
	"distribution-route-service/internal/domain"
	"distribution-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedReport is the stored JSON form of a DeliveryReport.
type cachedReport struct {
	Center           string   `json:"center"`
	CenterLabel      string   `json:"center_label"`
	Destination      string   `json:"destination"`
	DestinationLabel string   `json:"destination_label"`
	DistanceKm       float64  `json:"distance_km"`
	Route            []string `json:"route"`
	EstimatedDays    int      `json:"estimated_days"`
}

// RedisReportCache is a Redis-backed cache of delivery reports.
// Keys are expected to already encode every input of the report.
type RedisReportCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{Client: client, TTL: ttl}
}

// Fetch a cached report. A missing key is a miss, not an error.
func (c *RedisReportCache) GetReport(
	ctx context.Context,
	key string,
) (_ *domain.DeliveryReport, _ bool, err error) {
	defer obs.Time(ctx, "report.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("report cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get report cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get report cache: %w", err)
	}

	var cr cachedReport
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, false, fmt.Errorf("get report cache: decode %q: %w", key, err)
	}

	route := make(domain.Route, len(cr.Route))
	for i, city := range cr.Route {
		route[i] = domain.City(city)
	}

	return &domain.DeliveryReport{
		Center:           domain.City(cr.Center),
		CenterLabel:      cr.CenterLabel,
		Destination:      domain.City(cr.Destination),
		DestinationLabel: cr.DestinationLabel,
		DistanceKm:       cr.DistanceKm,
		Route:            route,
		EstimatedDays:    cr.EstimatedDays,
	}, true, nil
}

// Store a report under key with the configured TTL (0 keeps it forever).
func (c *RedisReportCache) PutReport(
	ctx context.Context,
	key string,
	report *domain.DeliveryReport,
) (err error) {
	defer obs.Time(ctx, "report.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("report cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert report cache: key must not be empty")
	}
	if report == nil {
		return errors.New("insert report cache: report is nil")
	}

	raw, err := json.Marshal(cachedReport{
		Center:           string(report.Center),
		CenterLabel:      report.CenterLabel,
		Destination:      string(report.Destination),
		DestinationLabel: report.DestinationLabel,
		DistanceKm:       report.DistanceKm,
		Route:            report.Route.Strings(),
		EstimatedDays:    report.EstimatedDays,
	})
	if err != nil {
		return fmt.Errorf("insert report cache: encode: %w", err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert report cache key=%q: %w", key, err)
	}
	return nil
}
