package model

// Room mirrors the `rooms` table together with its ordered gallery from
// `room_images`. ImageURL is the designated primary image and is always
// equal to ImageURLs[0] when the gallery is non-empty; the transactional
// write path in the repository maintains that invariant.
type Room struct {
	ID            uint64   `json:"id"`
	RoomType      string   `json:"room_type"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     string   `json:"amenities"`
	ImageURL      *string  `json:"image_url"`
	ImageURLs     []string `json:"image_urls"`
}
