// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

import "time"

// BookingCreatedEvent is published when a booking is successfully stored.
// It carries enough for downstream consumers to log or notify without
// querying the primary database.
type BookingCreatedEvent struct {
	BookingID      uint64  `json:"booking_id"`
	UserID         uint64  `json:"user_id"`
	RoomID         uint64  `json:"room_id"`
	CheckinDate    string  `json:"checkin_date"`
	CheckoutDate   string  `json:"checkout_date"`
	NumberOfGuests int     `json:"number_of_guests"`
	TotalPrice     float64 `json:"total_price"`
	CreatedAt      string  `json:"created_at"`
}

// NewBookingCreatedEvent stamps an event with the current UTC time.
func NewBookingCreatedEvent(bookingID, userID, roomID uint64, checkin, checkout string, guests int, total float64) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:      bookingID,
		UserID:         userID,
		RoomID:         roomID,
		CheckinDate:    checkin,
		CheckoutDate:   checkout,
		NumberOfGuests: guests,
		TotalPrice:     total,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}
