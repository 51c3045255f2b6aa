package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alternativafozthiago/financas/internal/contracts"
)

// SignOut encerra a sessão da identidade. As coleções em memória são
// descartadas e qualquer busca em andamento da sessão anterior é ignorada
// quando responder.
func (h *Handler) SignOut(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Sessions.SignOut(userID)
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Sessão encerrada com sucesso"})
}
