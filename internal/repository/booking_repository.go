package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-management/internal/model"
)

// BookingRepo provides CRUD operations for bookings. The stored total_price
// is whatever the client submitted at creation time; it is never recomputed
// here. No availability check is performed either, so overlapping bookings
// for the same room are possible.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given pool.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingFields carries the columns written on create and update.
type BookingFields struct {
	UserID         uint64
	RoomID         uint64
	CheckinDate    string
	CheckoutDate   string
	NumberOfGuests int
	TotalPrice     float64
}

// Create inserts a booking and returns its ID.
func (r *BookingRepo) Create(ctx context.Context, f BookingFields) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (user_id, room_id, checkin_date, checkout_date, number_of_guests, total_price)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.UserID, f.RoomID, f.CheckinDate, f.CheckoutDate, f.NumberOfGuests, f.TotalPrice)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const bookingSelect = `SELECT b.id, b.user_id, b.room_id, b.checkin_date, b.checkout_date,
       b.number_of_guests, b.total_price, r.room_type, r.price_per_night, u.username
FROM bookings b
JOIN rooms r ON b.room_id = r.id
JOIN users u ON b.user_id = u.id`

func scanBookings(rows *sql.Rows) ([]model.Booking, error) {
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var checkin, checkout time.Time
		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &checkin, &checkout,
			&b.NumberOfGuests, &b.TotalPrice, &b.RoomType, &b.PricePerNight, &b.Username); err != nil {
			return nil, err
		}
		b.CheckinDate = checkin.Format("2006-01-02")
		b.CheckoutDate = checkout.Format("2006-01-02")
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every booking with room and user details joined in.
// Admin-only at the handler layer.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, bookingSelect+" ORDER BY b.id")
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

// ListByUser returns only the bookings created by the given user.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, bookingSelect+" WHERE b.user_id = ? ORDER BY b.id", userID)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

// Update rewrites every column of a booking. ErrNotFound is returned when
// the ID does not exist.
func (r *BookingRepo) Update(ctx context.Context, id uint64, f BookingFields) error {
	var exists uint64
	if err := r.db.QueryRowContext(ctx, "SELECT id FROM bookings WHERE id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET user_id = ?, room_id = ?, checkin_date = ?, checkout_date = ?,
		 number_of_guests = ?, total_price = ? WHERE id = ?`,
		f.UserID, f.RoomID, f.CheckinDate, f.CheckoutDate, f.NumberOfGuests, f.TotalPrice, id)
	return err
}

// Delete removes a booking on behalf of a requester. Admins may delete any
// booking; guests only their own, otherwise ErrForbidden. ErrNotFound is
// returned when the ID does not exist.
func (r *BookingRepo) Delete(ctx context.Context, id, requesterID uint64, isAdmin bool) error {
	var ownerID uint64
	if err := r.db.QueryRowContext(ctx, "SELECT user_id FROM bookings WHERE id = ?", id).Scan(&ownerID); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if !isAdmin && ownerID != requesterID {
		return ErrForbidden
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
	return err
}
