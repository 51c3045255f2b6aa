package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alternativafozthiago/financas/internal/contracts"
	"github.com/alternativafozthiago/financas/internal/domain/contact"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

func (h *Handler) CreateContact(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.ContactCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	created, err := h.ContactService.Create(ctx, userID, body.ToDraft())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ContactCreateResponse{
		Message: "Contato criado com sucesso",
		Contact: created,
	})
}

// GetContacts lista os contatos da identidade, mais recentes primeiro. O
// parâmetro type restringe a empresa ou cliente; vazio devolve todos.
func (h *Handler) GetContacts(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	contactType := contact.Types(c.Query("type"))
	if contactType != "" && !contactType.IsValid() {
		h.respondError(c, appErrors.NewValidationError("type", "tipo deve ser empresa ou cliente"))
		return
	}

	ctx := c.Request.Context()
	contacts, err := h.ContactService.List(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filtered := contact.FilterByType(contacts, contactType)
	c.JSON(http.StatusOK, contracts.ContactListResponse{
		Contacts: filtered,
		Total:    len(filtered),
	})
}

func (h *Handler) GetContact(c *gin.Context) {
	contactID, err := pkg.ParseULID(c.Param("id"))
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
	contactEntity, err := h.ContactService.Get(ctx, userID, contactID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ContactSingleResponse{Contact: contactEntity})
}

func (h *Handler) UpdateContact(c *gin.Context) {
	contactID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.ContactUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	updated, err := h.ContactService.Update(ctx, userID, contactID, body.ToDraft())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ContactUpdateResponse{
		Message: "Contato atualizado com sucesso",
		Contact: updated,
	})
}

func (h *Handler) DeleteContact(c *gin.Context) {
	contactID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.ContactService.Delete(ctx, userID, contactID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Contato removido com sucesso"})
}
