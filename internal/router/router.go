// Package router wires the HTTP surface: public catalogue routes, the
// authenticated booking routes and the admin-only room writes.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-management/internal/config"
	"github.com/iliyamo/hotel-management/internal/handler"
	"github.com/iliyamo/hotel-management/internal/middleware"
)

// Handlers groups everything Register needs.
type Handlers struct {
	Auth      *handler.AuthHandler
	Rooms     *handler.RoomHandler
	Bookings  *handler.BookingHandler
	HotelInfo *handler.HotelInfoHandler
}

// Register sets up all routes. The rate limiter covers the whole /api
// group; the response cache covers only the public read-mostly endpoints.
// Admin routes stack RequireAdmin strictly after JWTAuth so the role guard
// always sees a verified identity.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	api.GET("/rooms", h.Rooms.ListRooms, cache)
	api.GET("/rooms/:id", h.Rooms.GetRoom, cache)
	api.GET("/hotel-info", h.HotelInfo.GetHotelInfo, cache)

	api.POST("/users/register", h.Auth.Register)
	api.POST("/users/login", h.Auth.Login)

	auth := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	auth.GET("/bookings", h.Bookings.ListBookings)
	auth.POST("/bookings", h.Bookings.CreateBooking)
	auth.DELETE("/bookings/:id", h.Bookings.DeleteBooking)

	admin := api.Group("", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireAdmin())
	admin.POST("/rooms", h.Rooms.CreateRoom)
	admin.PUT("/rooms/:id", h.Rooms.UpdateRoom)
	admin.DELETE("/rooms/:id", h.Rooms.DeleteRoom)
	admin.PUT("/bookings/:id", h.Bookings.UpdateBooking)
}
