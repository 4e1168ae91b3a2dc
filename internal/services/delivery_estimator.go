package services

import (
	"distribution-route-service/internal/domain"
	"fmt"
	"math"
)

const (
	DefaultSpeedKmh    = 80.0
	DefaultHoursPerDay = 8.0
)

// DeliveryEstimator converts a road distance into whole working days.
type DeliveryEstimator struct {
	SpeedKmh    float64
	HoursPerDay float64
}

func NewDeliveryEstimator(speedKmh, hoursPerDay float64) (*DeliveryEstimator, error) {
	if !(speedKmh > 0) || math.IsInf(speedKmh, 0) {
		return nil, fmt.Errorf("new delivery estimator: %w: speed must be positive, got %v", domain.ErrInvalidInput, speedKmh)
	}
	if !(hoursPerDay > 0) || hoursPerDay > 24 {
		return nil, fmt.Errorf("new delivery estimator: %w: hours per day must be in (0, 24], got %v", domain.ErrInvalidInput, hoursPerDay)
	}
	return &DeliveryEstimator{SpeedKmh: speedKmh, HoursPerDay: hoursPerDay}, nil
}

// EstimateDays returns ceil(distance / speed / hoursPerDay).
// Any started day counts as a full day; zero distance takes zero days.
func (e *DeliveryEstimator) EstimateDays(distanceKm float64) (int, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return 0, fmt.Errorf("estimate delivery days: %w: distance must be finite and non-negative, got %v", domain.ErrInvalidInput, distanceKm)
	}

	days := math.Ceil(distanceKm / e.SpeedKmh / e.HoursPerDay)
	if days >= math.MaxInt {
		return 0, fmt.Errorf("estimate delivery days: %w: distance %v km is out of range", domain.ErrInvalidInput, distanceKm)
	}
	return int(days), nil
}
