package dto

type PlanRequest struct {
	Destination string   `json:"destination" validate:"required,max=128"`
	Centers     []string `json:"centers" validate:"omitempty,max=64,unique,dive,required,max=128"`
	Parallel    bool     `json:"parallel"`
}

type PlanResponse struct {
	Center           string   `json:"center"`
	CenterLabel      string   `json:"center_label"`
	Destination      string   `json:"destination"`
	DestinationLabel string   `json:"destination_label"`
	DistanceKm       float64  `json:"distance_km"`
	Route            []string `json:"route"`
	EstimatedDays    int      `json:"estimated_days"`
}
