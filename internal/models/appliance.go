package models

import "time"

// Appliance is one user-entered load row: power draw, daily usage and count.
type Appliance struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Wattage     float64   `json:"wattage"`       // W, must be > 0 for calculation
	HoursPerDay float64   `json:"hours_per_day"` // [0, 24]
	Quantity    int       `json:"quantity"`      // must be > 0
	CreatedAt   time.Time `json:"created_at"`
}

// Suggestion is an appliance proposed by the advisor, not yet in the list.
type Suggestion struct {
	Name        string  `json:"name"`
	Wattage     float64 `json:"wattage"`
	HoursPerDay float64 `json:"hours_per_day"`
}
