package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-management/internal/model"
)

// HotelInfoRepo reads the singleton hotel_info row.
type HotelInfoRepo struct {
	db *sql.DB
}

// NewHotelInfoRepo returns a HotelInfoRepo bound to the given pool.
func NewHotelInfoRepo(db *sql.DB) *HotelInfoRepo { return &HotelInfoRepo{db: db} }

// Get returns the hotel info row, or ErrNotFound when the table is empty.
func (r *HotelInfoRepo) Get(ctx context.Context) (*model.HotelInfo, error) {
	var h model.HotelInfo
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, address, phone, email, description FROM hotel_info LIMIT 1").
		Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.Email, &h.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}
