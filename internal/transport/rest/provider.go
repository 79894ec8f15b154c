package rest

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) getProviders(c *gin.Context) {
	okResponse(c, h.store.Providers())
}
