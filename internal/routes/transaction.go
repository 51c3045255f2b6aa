package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alternativafozthiago/financas/internal/contracts"
	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	draft, err := body.ToDraft()
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.TransactionService.Create(ctx, userID, draft)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transação criada com sucesso",
		Transaction: created,
	})
}

// GetTransactions lista as transações da identidade, vencimento mais
// distante primeiro. O parâmetro filter aceita all, income, expense, paid e
// pending; vazio equivale a all.
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter := transaction.ListFilter(c.DefaultQuery("filter", string(transaction.FilterAll)))
	if !filter.IsValid() {
		h.respondError(c, appErrors.NewValidationError("filter", "filtro deve ser all, income, expense, paid ou pending"))
		return
	}

	ctx := c.Request.Context()
	transactions, err := h.TransactionService.List(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filtered := transaction.Filter(transactions, filter)
	c.JSON(http.StatusOK, contracts.TransactionListResponse{
		Transactions: filtered,
		Total:        len(filtered),
	})
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	transactionEntity, err := h.TransactionService.Get(ctx, userID, transactionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: transactionEntity})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	draft, err := body.ToDraft()
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	updated, err := h.TransactionService.Update(ctx, userID, transactionID, draft)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionUpdateResponse{
		Message:     "Transação atualizada com sucesso",
		Transaction: updated,
	})
}

// TogglePaidTransaction marca ou desmarca a transação como paga. Marcar
// registra a data de pagamento de hoje; desmarcar limpa a data.
func (h *Handler) TogglePaidTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionTogglePaidRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	updated, err := h.TransactionService.TogglePaid(ctx, userID, transactionID, body.IsPaid)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionUpdateResponse{
		Message:     "Transação atualizada com sucesso",
		Transaction: updated,
	})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.Delete(ctx, userID, transactionID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação removida com sucesso"})
}
