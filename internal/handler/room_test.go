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

	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// fakeRoomStore mirrors the repository contract: the stored primary image
// is always the first gallery entry and writes replace the gallery
// wholesale.
type fakeRoomStore struct {
	rooms  map[uint64]model.Room
	nextID uint64
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[uint64]model.Room{}, nextID: 1}
}

func buildRoom(id uint64, f repository.RoomFields, urls []string) model.Room {
	rm := model.Room{
		ID: id, RoomType: f.RoomType, Capacity: f.Capacity,
		PricePerNight: f.PricePerNight, Amenities: f.Amenities,
		ImageURLs: append([]string{}, urls...),
	}
	if len(urls) > 0 {
		u := urls[0]
		rm.ImageURL = &u
	}
	return rm
}

func (s *fakeRoomStore) List(context.Context) ([]model.Room, error) {
	out := make([]model.Room, 0, len(s.rooms))
	for _, rm := range s.rooms {
		out = append(out, rm)
	}
	return out, nil
}

func (s *fakeRoomStore) GetByID(_ context.Context, id uint64) (*model.Room, error) {
	rm, ok := s.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rm, nil
}

func (s *fakeRoomStore) CreateWithImages(_ context.Context, f repository.RoomFields, urls []string) (uint64, error) {
	id := s.nextID
	s.nextID++
	s.rooms[id] = buildRoom(id, f, urls)
	return id, nil
}

func (s *fakeRoomStore) UpdateWithImages(_ context.Context, id uint64, f repository.RoomFields, urls []string) error {
	if _, ok := s.rooms[id]; !ok {
		return repository.ErrNotFound
	}
	s.rooms[id] = buildRoom(id, f, urls)
	return nil
}

func (s *fakeRoomStore) Delete(_ context.Context, id uint64) error {
	if _, ok := s.rooms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rooms, id)
	return nil
}

func getRoomByID(t *testing.T, h *RoomHandler, id uint64) (*httptest.ResponseRecorder, model.Room) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatUint(id, 10))
	require.NoError(t, h.GetRoom(c))
	var rm model.Room
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rm))
	}
	return rec, rm
}

func TestCreateRoomWithGallery(t *testing.T) {
	h := NewRoomHandler(newFakeRoomStore())

	rec := postJSON(t, h.CreateRoom,
		`{"room_type":"Deluxe","capacity":2,"price_per_night":100,"image_urls":["a.jpg","b.jpg"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		RoomID uint64 `json:"roomId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.RoomID)

	// read back: gallery order preserved, primary image is the first entry
	getRec, rm := getRoomByID(t, h, created.RoomID)
	require.Equal(t, http.StatusOK, getRec.Code)
	require.Equal(t, []string{"a.jpg", "b.jpg"}, rm.ImageURLs)
	require.NotNil(t, rm.ImageURL)
	require.Equal(t, "a.jpg", *rm.ImageURL)
	require.Equal(t, "Deluxe", rm.RoomType)
}

func TestCreateRoomMissingFields(t *testing.T) {
	h := NewRoomHandler(newFakeRoomStore())

	rec := postJSON(t, h.CreateRoom, `{"room_type":"Deluxe","capacity":2}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "required")
}

func TestUpdateRoomReplacesGallery(t *testing.T) {
	store := newFakeRoomStore()
	h := NewRoomHandler(store)

	rec := postJSON(t, h.CreateRoom,
		`{"room_type":"Deluxe","capacity":2,"price_per_night":100,"image_urls":["a.jpg","b.jpg"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/",
		strings.NewReader(`{"room_type":"Suite","capacity":3,"price_per_night":150,"image_urls":["c.jpg"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	urec := httptest.NewRecorder()
	c := e.NewContext(req, urec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateRoom(c))
	require.Equal(t, http.StatusOK, urec.Code)

	_, rm := getRoomByID(t, h, 1)
	require.Equal(t, []string{"c.jpg"}, rm.ImageURLs)
	require.Equal(t, "c.jpg", *rm.ImageURL)
	require.Equal(t, "Suite", rm.RoomType)
}

func TestUpdateRoomNotFound(t *testing.T) {
	h := NewRoomHandler(newFakeRoomStore())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/",
		strings.NewReader(`{"room_type":"Suite","capacity":3,"price_per_night":150}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.UpdateRoom(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRoomNotFound(t *testing.T) {
	h := NewRoomHandler(newFakeRoomStore())
	rec, _ := getRoomByID(t, h, 404)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRoomNotFound(t *testing.T) {
	h := NewRoomHandler(newFakeRoomStore())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("12")
	require.NoError(t, h.DeleteRoom(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
