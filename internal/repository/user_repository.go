package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/utils"
)

// UserRepo provides access to the users table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo bound to the given pool.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// NewUser carries the registration fields for Create. Role is deliberately
// absent: every registered account is stored as 'guest'.
type NewUser struct {
	Username    string
	Password    string
	Email       string
	FullName    string
	Phone       string
	Address     string
	DateOfBirth string
}

// Create hashes the password and inserts a new guest user, returning its ID.
// A collision on username or email yields ErrUserExists. The pre-insert
// existence check mirrors what the unique keys enforce but gives callers a
// clean error instead of a driver message; duplicate-key failures from
// concurrent registrations are mapped to the same sentinel.
func (r *UserRepo) Create(ctx context.Context, u NewUser, cost int) (uint64, error) {
	var existing uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM users WHERE username = ? OR email = ? LIMIT 1",
		u.Username, u.Email).Scan(&existing)
	if err == nil {
		return 0, ErrUserExists
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	hash, err := utils.HashPassword(u.Password, cost)
	if err != nil {
		return 0, err
	}

	var dob interface{}
	if u.DateOfBirth != "" {
		dob = u.DateOfBirth
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, email, full_name, phone, address, date_of_birth, role)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, hash, u.Email, u.FullName, u.Phone, u.Address, dob, model.RoleGuest)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by exact username. ErrNotFound is returned
// when no such user exists; callers must not surface that distinction to
// login clients.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	var phone, address sql.NullString
	var dob sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password, email, full_name, phone, address, date_of_birth, role
		 FROM users WHERE username = ? LIMIT 1`,
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName,
		&phone, &address, &dob, &u.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}
	u.Phone = phone.String
	u.Address = address.String
	if dob.Valid {
		u.DateOfBirth = dob.Time.Format("2006-01-02")
	}
	return u, nil
}
