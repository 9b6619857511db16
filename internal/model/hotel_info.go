package model

// HotelInfo is the singleton row of the `hotel_info` table, shown on the
// public landing page.
type HotelInfo struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
}
