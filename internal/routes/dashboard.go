package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

// GetDashboard monta o resumo do painel do mês pedido. Sem parâmetros, o
// resumo é do mês corrente.
func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	monthStr := c.Query("month")
	yearStr := c.Query("year")

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if monthStr != "" {
		m, err := pkg.ParseInt(monthStr)
		if err != nil || m < 1 || m > 12 {
			h.respondError(c, appErrors.NewValidationError("month", "deve ser um número entre 1 e 12"))
			return
		}
		month = m
	}

	if yearStr != "" {
		y, err := pkg.ParseInt(yearStr)
		if err != nil || y < 2000 || y > 2100 {
			h.respondError(c, appErrors.NewValidationError("year", "deve ser um número entre 2000 e 2100"))
			return
		}
		year = y
	}

	ctx := c.Request.Context()
	summary, err := h.DashboardService.GetDashboard(ctx, userID, month, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
