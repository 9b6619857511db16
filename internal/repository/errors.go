// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let handlers distinguish failure
// scenarios without inspecting driver errors: ErrNotFound maps to HTTP 404,
// ErrUserExists to 409 and ErrForbidden to 403.
package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// ErrUserExists is returned when a registration collides with an existing
// username or email.
var ErrUserExists = errors.New("username or email already exists")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by someone else.
var ErrForbidden = errors.New("forbidden")
