// Package rest serves a local, in-memory stand-in for the booking backend so
// the client can be exercised without the real service. It fakes an external
// contract; it is not an API this project owns.
package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store  *Store
	logger *zap.Logger
}

func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.corsMiddleware())

	router.GET("/providers", h.getProviders)
	router.GET("/providers/:id/month-availability", h.getMonthAvailability)
	router.GET("/providers/:id/day-availability", h.getDayAvailability)

	router.GET("/appointments/me", h.getMyAppointments)
	router.POST("/appointments", h.createAppointment)
}
