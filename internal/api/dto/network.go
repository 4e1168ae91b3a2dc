package dto

type CityResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type ConnectionResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

type NetworkResponse struct {
	Cities      []CityResponse       `json:"cities"`
	Connections []ConnectionResponse `json:"connections"`
	Centers     []string             `json:"centers"`
}
