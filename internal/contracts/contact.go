package contracts

import (
	"github.com/alternativafozthiago/financas/internal/domain/contact"
)

type RecurringChargeRequest struct {
	IsActive  bool    `json:"isActive"`
	Amount    float64 `json:"amount" binding:"omitempty,gte=0"`
	LaunchDay int     `json:"launchDay" binding:"omitempty,min=1,max=31"`
	DueDay    int     `json:"dueDay" binding:"omitempty,min=1,max=31"`
}

type ContactCreateRequest struct {
	Name            string                  `json:"name" binding:"required,max=255"`
	Type            string                  `json:"type" binding:"required,oneof=empresa cliente"`
	Email           *string                 `json:"email" binding:"omitempty,email,max=255"`
	RecurringCharge *RecurringChargeRequest `json:"recurring_charge" binding:"omitempty"`
}

type ContactUpdateRequest struct {
	Name            string                  `json:"name" binding:"required,max=255"`
	Type            string                  `json:"type" binding:"required,oneof=empresa cliente"`
	Email           *string                 `json:"email" binding:"omitempty,email,max=255"`
	RecurringCharge *RecurringChargeRequest `json:"recurring_charge" binding:"omitempty"`
}

func (r *ContactCreateRequest) ToDraft() contact.Draft {
	return contactDraft(r.Name, r.Type, r.Email, r.RecurringCharge)
}

func (r *ContactUpdateRequest) ToDraft() contact.Draft {
	return contactDraft(r.Name, r.Type, r.Email, r.RecurringCharge)
}

func contactDraft(name, contactType string, email *string, charge *RecurringChargeRequest) contact.Draft {
	draft := contact.Draft{
		Name:  name,
		Type:  contact.Types(contactType),
		Email: email,
	}
	if charge != nil {
		draft.RecurringCharge = &contact.RecurringCharge{
			IsActive:  charge.IsActive,
			Amount:    charge.Amount,
			LaunchDay: charge.LaunchDay,
			DueDay:    charge.DueDay,
		}
	}
	return draft
}

type ContactCreateResponse struct {
	Message string           `json:"message"`
	Contact *contact.Contact `json:"contact"`
}

type ContactUpdateResponse struct {
	Message string           `json:"message"`
	Contact *contact.Contact `json:"contact"`
}

type ContactListResponse struct {
	Contacts []*contact.Contact `json:"contacts"`
	Total    int                `json:"total"`
}

type ContactSingleResponse struct {
	Contact *contact.Contact `json:"contact"`
}
