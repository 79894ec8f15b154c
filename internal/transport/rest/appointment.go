package rest

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agenda/internal/domain"
)

func (h *Handler) getMyAppointments(c *gin.Context) {
	providerID := c.Query("providerId")
	if !h.store.providerExists(providerID) {
		notFoundResponse(c, "prestador não encontrado")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		badRequestResponse(c, "parâmetro year inválido")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		badRequestResponse(c, "parâmetro month inválido")
		return
	}
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil || day < 1 || day > 31 {
		badRequestResponse(c, "parâmetro day inválido")
		return
	}

	appointments := h.store.AppointmentsFor(providerID, year, month, day)
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	okResponse(c, appointments)
}

func (h *Handler) createAppointment(c *gin.Context) {
	var dto domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		h.logger.Warn("dados de agendamento inválidos", zap.Error(err))
		badRequestResponse(c, "dados de agendamento inválidos")
		return
	}

	appointment, err := h.store.CreateAppointment(dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrProviderNotFound):
			notFoundResponse(c, "prestador não encontrado")
		case errors.Is(err, ErrSlotTaken):
			conflictResponse(c, "horário já está ocupado")
		default:
			badRequestResponse(c, "dados de agendamento inválidos")
		}
		return
	}

	createdResponse(c, appointment)
}
