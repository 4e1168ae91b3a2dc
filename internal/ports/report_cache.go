package ports

import (
	"context"
	"distribution-route-service/internal/domain"
)

// Optional cache of computed delivery reports.
type ReportCache interface {
	// Return the cached report for key, or ok=false on a miss.
	GetReport(ctx context.Context, key string) (_ *domain.DeliveryReport, ok bool, err error)
	// Store a report under key.
	PutReport(ctx context.Context, key string, report *domain.DeliveryReport) error
}
