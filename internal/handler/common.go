package handler // handler defines the HTTP handlers for the hotel API

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/middleware"
	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, u repository.NewUser, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// RoomStore covers room CRUD including the transactional gallery writes.
type RoomStore interface {
	List(ctx context.Context) ([]model.Room, error)
	GetByID(ctx context.Context, id uint64) (*model.Room, error)
	CreateWithImages(ctx context.Context, f repository.RoomFields, urls []string) (uint64, error)
	UpdateWithImages(ctx context.Context, id uint64, f repository.RoomFields, urls []string) error
	Delete(ctx context.Context, id uint64) error
}

// BookingStore covers booking CRUD with per-role visibility.
type BookingStore interface {
	Create(ctx context.Context, f repository.BookingFields) (uint64, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
	Update(ctx context.Context, id uint64, f repository.BookingFields) error
	Delete(ctx context.Context, id, requesterID uint64, isAdmin bool) error
}

// HotelInfoStore reads the singleton hotel info row.
type HotelInfoStore interface {
	Get(ctx context.Context) (*model.HotelInfo, error)
}

// reqContext bounds database work to five seconds, matching the pool's
// ping timeout. A hung query fails the request instead of pinning a
// connection forever.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// currentUser extracts the identity stored by the auth middleware.
func currentUser(c echo.Context) (uint64, string, error) {
	id, okID := c.Get(middleware.CtxUserID).(uint64)
	role, okRole := c.Get(middleware.CtxRole).(string)
	if !okID || !okRole {
		return 0, "", errors.New("no identity in context")
	}
	return id, role, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
