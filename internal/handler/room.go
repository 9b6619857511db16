package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/repository"
)

// RoomHandler serves the public room catalogue and the admin-only writes.
type RoomHandler struct {
	Rooms RoomStore
}

func NewRoomHandler(rooms RoomStore) *RoomHandler {
	return &RoomHandler{Rooms: rooms}
}

type roomReq struct {
	RoomType      string   `json:"room_type"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     string   `json:"amenities"`
	ImageURLs     []string `json:"image_urls"`
}

// validate checks the required scalar fields before any repository call.
func (r *roomReq) validate() bool {
	return strings.TrimSpace(r.RoomType) != "" && r.Capacity > 0 && r.PricePerNight > 0
}

func (r *roomReq) fields() repository.RoomFields {
	return repository.RoomFields{
		RoomType:      strings.TrimSpace(r.RoomType),
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Amenities:     r.Amenities,
	}
}

// ListRooms handles GET /api/rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		c.Logger().Errorf("list rooms: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error fetching rooms"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		c.Logger().Errorf("get room %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error fetching room"})
	}
	return c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms (admin only).
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if !req.validate() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "room type, capacity, and price are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Rooms.CreateWithImages(ctx, req.fields(), req.ImageURLs)
	if err != nil {
		c.Logger().Errorf("create room: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error adding room"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "room added successfully",
		"roomId":  id,
	})
}

// UpdateRoom handles PUT /api/rooms/:id (admin only). The gallery is
// replaced wholesale inside the repository transaction.
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if !req.validate() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "room type, capacity, and price are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Rooms.UpdateWithImages(ctx, id, req.fields(), req.ImageURLs); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		c.Logger().Errorf("update room %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error updating room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room updated successfully"})
}

// DeleteRoom handles DELETE /api/rooms/:id (admin only).
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Rooms.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		c.Logger().Errorf("delete room %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error deleting room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted successfully"})
}
