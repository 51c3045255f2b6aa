package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alternativafozthiago/financas/internal/contracts"
	"github.com/alternativafozthiago/financas/internal/domain/contact"
	"github.com/alternativafozthiago/financas/internal/domain/dashboard"
	"github.com/alternativafozthiago/financas/internal/domain/report"
	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/logger"
	"github.com/alternativafozthiago/financas/internal/session"
)

type Handler struct {
	ContactService     *contact.Service
	TransactionService *transaction.Service
	DashboardService   *dashboard.Service
	ReportService      *report.Service
	Sessions           *session.Manager
}

// GetUserIDFromContext devolve a identidade resolvida pelo middleware de
// autenticação. O identificador é opaco: nunca é interpretado além de
// igualdade.
func (h *Handler) GetUserIDFromContext(c *gin.Context) (string, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", appErrors.ErrUnauthorized
	}

	owner, ok := userID.(string)
	if !ok || owner == "" {
		return "", appErrors.ErrUnauthorized
	}

	return owner, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	c.JSON(appErr.StatusCode, contracts.ErrorResponse{
		Error:   appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}
