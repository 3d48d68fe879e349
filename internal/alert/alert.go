package alert

import "time"

// Alert is a stored request to be told when a route drops below a price
// ceiling. Delivery of notifications is handled elsewhere; this service only
// records and lists them.
type Alert struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	MaxPrice      float64   `json:"max_price"`
	Currency      string    `json:"currency"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateRequest struct {
	Origin        string  `json:"origin" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	DepartureDate string  `json:"departure_date" binding:"required"`
	MaxPrice      float64 `json:"max_price" binding:"required,gt=0"`
	Currency      string  `json:"currency,omitempty"`
	Email         string  `json:"email" binding:"required,email"`
}
