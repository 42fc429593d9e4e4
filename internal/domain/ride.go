package domain

import "time"

type RideStatus string

const (
	RideStatusActive    RideStatus = "Active"
	RideStatusCompleted RideStatus = "Completed"
	RideStatusCancelled RideStatus = "Cancelled"
)

type Ride struct {
	ID             string        `json:"id"`
	DriverID       string        `json:"driver_id"`
	DriverName     string        `json:"driver_name"`
	FromLocation   string        `json:"from_location"`
	ToLocation     string        `json:"to_location"`
	DepartureAt    time.Time     `json:"departure_at"`
	TotalSeats     int32         `json:"total_seats"`
	AvailableSeats int32         `json:"available_seats"`
	PriceCents     int64         `json:"price_cents"`
	Status         RideStatus    `json:"status"`
	Passengers     []RideBooking `json:"passengers,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

type RideBooking struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	BookedAt time.Time `json:"booked_at"`
}
