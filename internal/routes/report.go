package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alternativafozthiago/financas/internal/contracts"
)

// GetPayableReport devolve o relatório de contas a pagar: despesas em
// aberto, vencimento mais próximo primeiro, com total e rótulos formatados.
func (h *Handler) GetPayableReport(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	payable, err := h.ReportService.Payable(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReportResponse{Report: payable})
}

// GetReceivableReport devolve o relatório de contas a receber: receitas em
// aberto, vencimento mais próximo primeiro, com total e rótulos formatados.
func (h *Handler) GetReceivableReport(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	receivable, err := h.ReportService.Receivable(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReportResponse{Report: receivable})
}
