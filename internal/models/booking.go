package models

import "time"

// BookingStatusPending is the only status a booking is ever given: bookings
// are created pending and nothing transitions them further.
const BookingStatusPending = "pending"

type Booking struct {
	ID          int64     `json:"id"`
	ServiceID   int64     `json:"service_id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
