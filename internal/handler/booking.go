package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/queue"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// BookingHandler serves booking CRUD. Publish, when set, emits a
// booking.created event after a successful insert; publishing is
// fire-and-forget and never fails the request.
type BookingHandler struct {
	Bookings BookingStore
	Publish  func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(bookings BookingStore, publish func(ctx context.Context, ev queue.BookingCreatedEvent) error) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Publish: publish}
}

// bookingReq is the write shape for bookings. The server stores total_price
// as submitted; nothing recomputes it from the room's nightly rate.
type bookingReq struct {
	UserID         uint64  `json:"user_id"` // honored only on admin updates
	RoomID         uint64  `json:"room_id"`
	CheckinDate    string  `json:"checkin_date"`
	CheckoutDate   string  `json:"checkout_date"`
	NumberOfGuests int     `json:"number_of_guests"`
	TotalPrice     float64 `json:"total_price"`
}

func (r *bookingReq) complete() bool {
	return r.RoomID != 0 && r.CheckinDate != "" && r.CheckoutDate != "" &&
		r.NumberOfGuests != 0 && r.TotalPrice != 0
}

// ListBookings handles GET /api/bookings: admins see every booking, guests
// only their own.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, role, err := currentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	var bookings []model.Booking
	if role == model.RoleAdmin {
		bookings, err = h.Bookings.ListAll(ctx)
	} else {
		bookings, err = h.Bookings.ListByUser(ctx, userID)
	}
	if err != nil {
		c.Logger().Errorf("list bookings: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error fetching bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /api/bookings. The booking always belongs to
// the authenticated caller regardless of any user_id in the body.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, _, err := currentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if !req.complete() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "all booking fields are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	fields := repository.BookingFields{
		UserID:         userID,
		RoomID:         req.RoomID,
		CheckinDate:    req.CheckinDate,
		CheckoutDate:   req.CheckoutDate,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     req.TotalPrice,
	}
	id, err := h.Bookings.Create(ctx, fields)
	if err != nil {
		c.Logger().Errorf("create booking: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error creating booking"})
	}

	if h.Publish != nil {
		ev := queue.NewBookingCreatedEvent(id, fields.UserID, fields.RoomID,
			fields.CheckinDate, fields.CheckoutDate, fields.NumberOfGuests, fields.TotalPrice)
		go func() {
			_ = h.Publish(context.Background(), ev) // errors are logged by the publisher
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "booking created successfully",
		"bookingId": id,
	})
}

// UpdateBooking handles PUT /api/bookings/:id (admin only). Every field is
// required, matching the create shape plus user_id.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if !req.complete() || req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "all booking fields are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Bookings.Update(ctx, id, repository.BookingFields{
		UserID:         req.UserID,
		RoomID:         req.RoomID,
		CheckinDate:    req.CheckinDate,
		CheckoutDate:   req.CheckoutDate,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     req.TotalPrice,
	}); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		c.Logger().Errorf("update booking %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error updating booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking updated successfully"})
}

// DeleteBooking handles DELETE /api/bookings/:id. Guests may cancel their
// own bookings; admins may cancel any.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	userID, role, err := currentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Bookings.Delete(ctx, id, userID, role == model.RoleAdmin); err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "cannot delete another user's booking"})
		}
		c.Logger().Errorf("delete booking %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error deleting booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted successfully"})
}
