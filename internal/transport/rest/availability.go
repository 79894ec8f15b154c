package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getMonthAvailability(c *gin.Context) {
	providerID := c.Param("id")
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

	okResponse(c, h.store.MonthAvailability(providerID, year, month))
}

func (h *Handler) getDayAvailability(c *gin.Context) {
	providerID := c.Param("id")
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

	okResponse(c, h.store.DayAvailability(providerID, year, month, day))
}
