package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/repository"
)

// HotelInfoHandler serves the public hotel information page.
type HotelInfoHandler struct {
	Info HotelInfoStore
}

func NewHotelInfoHandler(info HotelInfoStore) *HotelInfoHandler {
	return &HotelInfoHandler{Info: info}
}

// GetHotelInfo handles GET /api/hotel-info. An unseeded table yields an
// empty object rather than a 404 so the landing page still renders.
func (h *HotelInfoHandler) GetHotelInfo(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	info, err := h.Info.Get(ctx)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusOK, echo.Map{})
		}
		c.Logger().Errorf("hotel info: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error fetching hotel info"})
	}
	return c.JSON(http.StatusOK, info)
}
