package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-management/internal/model"
)

// RoomRepo provides CRUD operations for rooms and their image galleries.
// Gallery writes are all-or-nothing: scalar columns and room_images rows
// change inside one transaction so a room is never observed with mismatched
// data. Concurrent updates to the same room are last-commit-wins.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given pool.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// RoomFields carries the scalar columns of a room for create and update.
type RoomFields struct {
	RoomType      string
	Capacity      int
	PricePerNight float64
	Amenities     string
}

// primaryImage picks the value stored in rooms.image_url: the first gallery
// entry, or NULL when the gallery is empty.
func primaryImage(urls []string) interface{} {
	if len(urls) > 0 {
		return urls[0]
	}
	return nil
}

// insertImagesTx bulk-inserts the ordered gallery for a room, recording each
// entry's display_order so reads are deterministic.
func insertImagesTx(ctx context.Context, tx *sql.Tx, roomID uint64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	query := "INSERT INTO room_images (room_id, image_url, display_order) VALUES "
	args := make([]interface{}, 0, len(urls)*3)
	for i, url := range urls {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, roomID, url, i)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// CreateWithImages inserts a room and its gallery in one transaction and
// returns the new room ID.
func (r *RoomRepo) CreateWithImages(ctx context.Context, f RoomFields, urls []string) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rooms (room_type, capacity, price_per_night, amenities, image_url)
		 VALUES (?, ?, ?, ?, ?)`,
		f.RoomType, f.Capacity, f.PricePerNight, f.Amenities, primaryImage(urls))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := insertImagesTx(ctx, tx, uint64(id), urls); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateWithImages replaces a room's scalar fields and its entire gallery in
// one transaction: update the row, delete the old room_images, insert the
// new ordered list. ErrNotFound is returned when the room does not exist;
// any later failure rolls the whole operation back.
func (r *RoomRepo) UpdateWithImages(ctx context.Context, id uint64, f RoomFields, urls []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// UPDATE reports zero affected rows when values are unchanged, so
	// existence is checked explicitly.
	var exists uint64
	if err := tx.QueryRowContext(ctx, "SELECT id FROM rooms WHERE id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rooms SET room_type = ?, capacity = ?, price_per_night = ?, amenities = ?, image_url = ?
		 WHERE id = ?`,
		f.RoomType, f.Capacity, f.PricePerNight, f.Amenities, primaryImage(urls), id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM room_images WHERE room_id = ?", id); err != nil {
		return err
	}
	if err := insertImagesTx(ctx, tx, id, urls); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a room. Its room_images rows go with it via the foreign
// key cascade. ErrNotFound is returned when the ID does not exist.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns a single room with its gallery ordered by display_order.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	var rm model.Room
	var imageURL sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT id, room_type, capacity, price_per_night, amenities, image_url FROM rooms WHERE id = ?",
		id).Scan(&rm.ID, &rm.RoomType, &rm.Capacity, &rm.PricePerNight, &rm.Amenities, &imageURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if imageURL.Valid {
		u := imageURL.String
		rm.ImageURL = &u
	}
	rm.ImageURLs = []string{}
	rows, err := r.db.QueryContext(ctx,
		"SELECT image_url FROM room_images WHERE room_id = ? ORDER BY display_order", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		rm.ImageURLs = append(rm.ImageURLs, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rm, nil
}

// List returns all rooms with their galleries. Images for every room come
// back in a single query and are grouped in memory to avoid one query per
// room.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, room_type, capacity, price_per_night, amenities, image_url FROM rooms ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]model.Room, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var rm model.Room
		var imageURL sql.NullString
		if err := rows.Scan(&rm.ID, &rm.RoomType, &rm.Capacity, &rm.PricePerNight, &rm.Amenities, &imageURL); err != nil {
			return nil, err
		}
		if imageURL.Valid {
			u := imageURL.String
			rm.ImageURL = &u
		}
		rm.ImageURLs = []string{}
		index[rm.ID] = len(rooms)
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	irows, err := r.db.QueryContext(ctx,
		"SELECT room_id, image_url FROM room_images ORDER BY room_id, display_order")
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var roomID uint64
		var u string
		if err := irows.Scan(&roomID, &u); err != nil {
			return nil, err
		}
		if idx, ok := index[roomID]; ok {
			rooms[idx].ImageURLs = append(rooms[idx].ImageURLs, u)
		}
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}
