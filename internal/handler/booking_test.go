package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-management/internal/middleware"
	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/repository"
)

type fakeBookingStore struct {
	bookings map[uint64]repository.BookingFields
	nextID   uint64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[uint64]repository.BookingFields{}, nextID: 1}
}

func toBooking(id uint64, f repository.BookingFields) model.Booking {
	return model.Booking{
		ID: id, UserID: f.UserID, RoomID: f.RoomID,
		CheckinDate: f.CheckinDate, CheckoutDate: f.CheckoutDate,
		NumberOfGuests: f.NumberOfGuests, TotalPrice: f.TotalPrice,
	}
}

func (s *fakeBookingStore) Create(_ context.Context, f repository.BookingFields) (uint64, error) {
	id := s.nextID
	s.nextID++
	s.bookings[id] = f
	return id, nil
}

func (s *fakeBookingStore) ListAll(context.Context) ([]model.Booking, error) {
	out := make([]model.Booking, 0, len(s.bookings))
	for id, f := range s.bookings {
		out = append(out, toBooking(id, f))
	}
	return out, nil
}

func (s *fakeBookingStore) ListByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	out := []model.Booking{}
	for id, f := range s.bookings {
		if f.UserID == userID {
			out = append(out, toBooking(id, f))
		}
	}
	return out, nil
}

func (s *fakeBookingStore) Update(_ context.Context, id uint64, f repository.BookingFields) error {
	if _, ok := s.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	s.bookings[id] = f
	return nil
}

func (s *fakeBookingStore) Delete(_ context.Context, id, requesterID uint64, isAdmin bool) error {
	f, ok := s.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	if !isAdmin && f.UserID != requesterID {
		return repository.ErrForbidden
	}
	delete(s.bookings, id)
	return nil
}

// asUser invokes a handler with the identity the auth middleware would have
// stored in the request context.
func asUser(t *testing.T, h echo.HandlerFunc, method, body string, userID uint64, role string, pathIDVal string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxUsername, "u"+strconv.FormatUint(userID, 10))
	c.Set(middleware.CtxRole, role)
	if pathIDVal != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathIDVal)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateBookingOwnerFromToken(t *testing.T) {
	store := newFakeBookingStore()
	h := NewBookingHandler(store, nil)

	// body claims user 42; the booking must belong to the caller anyway
	rec := asUser(t, h.CreateBooking, http.MethodPost,
		`{"user_id":42,"room_id":1,"checkin_date":"2026-09-01","checkout_date":"2026-09-04","number_of_guests":2,"total_price":600}`,
		7, model.RoleGuest, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		BookingID uint64 `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint64(7), store.bookings[resp.BookingID].UserID)
	// the submitted total is stored as-is
	require.Equal(t, 600.0, store.bookings[resp.BookingID].TotalPrice)
}

func TestCreateBookingMissingField(t *testing.T) {
	h := NewBookingHandler(newFakeBookingStore(), nil)

	rec := asUser(t, h.CreateBooking, http.MethodPost,
		`{"room_id":1,"checkin_date":"2026-09-01","number_of_guests":2,"total_price":600}`,
		7, model.RoleGuest, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "required")
}

func TestListBookingsGuestSeesOnlyOwn(t *testing.T) {
	store := newFakeBookingStore()
	h := NewBookingHandler(store, nil)

	_, _ = store.Create(context.Background(), repository.BookingFields{UserID: 1, RoomID: 1, CheckinDate: "2026-09-01", CheckoutDate: "2026-09-02", NumberOfGuests: 1, TotalPrice: 100})
	_, _ = store.Create(context.Background(), repository.BookingFields{UserID: 2, RoomID: 2, CheckinDate: "2026-09-01", CheckoutDate: "2026-09-02", NumberOfGuests: 1, TotalPrice: 120})

	rec := asUser(t, h.ListBookings, http.MethodGet, "", 2, model.RoleGuest, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, uint64(2), got[0].UserID)
}

func TestListBookingsAdminSeesAll(t *testing.T) {
	store := newFakeBookingStore()
	h := NewBookingHandler(store, nil)

	_, _ = store.Create(context.Background(), repository.BookingFields{UserID: 1, RoomID: 1, CheckinDate: "2026-09-01", CheckoutDate: "2026-09-02", NumberOfGuests: 1, TotalPrice: 100})
	_, _ = store.Create(context.Background(), repository.BookingFields{UserID: 2, RoomID: 2, CheckinDate: "2026-09-01", CheckoutDate: "2026-09-02", NumberOfGuests: 1, TotalPrice: 120})

	rec := asUser(t, h.ListBookings, http.MethodGet, "", 9, model.RoleAdmin, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
}

func TestDeleteBookingOwnership(t *testing.T) {
	store := newFakeBookingStore()
	h := NewBookingHandler(store, nil)

	id, _ := store.Create(context.Background(), repository.BookingFields{UserID: 1, RoomID: 1, CheckinDate: "2026-09-01", CheckoutDate: "2026-09-02", NumberOfGuests: 1, TotalPrice: 100})
	pid := strconv.FormatUint(id, 10)

	rec := asUser(t, h.DeleteBooking, http.MethodDelete, "", 2, model.RoleGuest, pid)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "cannot delete another user's booking")

	// admins may cancel anyone's booking
	rec = asUser(t, h.DeleteBooking, http.MethodDelete, "", 9, model.RoleAdmin, pid)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = asUser(t, h.DeleteBooking, http.MethodDelete, "", 9, model.RoleAdmin, pid)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingNotFound(t *testing.T) {
	h := NewBookingHandler(newFakeBookingStore(), nil)

	rec := asUser(t, h.UpdateBooking, http.MethodPut,
		`{"user_id":1,"room_id":1,"checkin_date":"2026-09-01","checkout_date":"2026-09-02","number_of_guests":1,"total_price":100}`,
		9, model.RoleAdmin, "55")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
