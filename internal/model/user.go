package model

import "time"

// Roles assignable to a user. Registration always stores RoleGuest; the only
// escalation path is a direct database update, never the API.
const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// User mirrors the `users` table. PasswordHash is a bcrypt digest and must
// never be serialized into a response.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username (unique)
	PasswordHash string    // users.password
	Email        string    // users.email (unique)
	FullName     string    // users.full_name
	Phone        string    // users.phone
	Address      string    // users.address
	DateOfBirth  string    // users.date_of_birth (YYYY-MM-DD, may be empty)
	Role         string    // users.role ('guest' or 'admin')
	CreatedAt    time.Time // users.created_at
}
