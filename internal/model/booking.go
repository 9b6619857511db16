package model

// Booking mirrors the `bookings` table. RoomType, PricePerNight and
// Username are joined in by the list queries for display; they are not
// columns of the bookings table itself.
//
// TotalPrice is stored as submitted at creation time and never recomputed.
type Booking struct {
	ID             uint64  `json:"id"`
	UserID         uint64  `json:"user_id"`
	RoomID         uint64  `json:"room_id"`
	CheckinDate    string  `json:"checkin_date"`
	CheckoutDate   string  `json:"checkout_date"`
	NumberOfGuests int     `json:"number_of_guests"`
	TotalPrice     float64 `json:"total_price"`
	RoomType       string  `json:"room_type,omitempty"`
	PricePerNight  float64 `json:"price_per_night,omitempty"`
	Username       string  `json:"username,omitempty"`
}
