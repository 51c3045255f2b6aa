package contact

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Contact struct {
	Id              ulid.ULID        `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId          string           `gorm:"type:varchar(64);index:idx_contacts_user_id;not null" json:"user_id"`
	CreatedAt       time.Time        `gorm:"autoCreateTime;not null" json:"created_at"`
	Name            string           `gorm:"type:varchar(255);not null" json:"name"`
	Type            Types            `gorm:"type:varchar(10);not null" json:"type"`
	Email           *string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	RecurringCharge *RecurringCharge `gorm:"type:jsonb;serializer:json" json:"recurring_charge,omitempty"`
}

func (Contact) TableName() string {
	return "contacts"
}

type Types string

const (
	TypeEmpresa Types = "empresa"
	TypeCliente Types = "cliente"
)

func (t Types) IsValid() bool {
	switch t {
	case TypeEmpresa, TypeCliente:
		return true
	}
	return false
}

// RecurringCharge descreve a cobrança periódica esperada de um contato.
// É apenas metadado: nunca gera transações automaticamente. As chaves JSON
// seguem o formato gravado na coluna recurring_charge.
type RecurringCharge struct {
	IsActive  bool    `json:"isActive"`
	Amount    float64 `json:"amount"`
	LaunchDay int     `json:"launchDay"`
	DueDay    int     `json:"dueDay"`
}

// Draft é o estado editável de um contato antes de persistir.
type Draft struct {
	Name            string
	Type            Types
	Email           *string
	RecurringCharge *RecurringCharge
}

// NormalizedRecurringCharge aplica a invariante de persistência: o valor
// gravado é nulo quando a cobrança está ausente ou inativa, nunca um
// registro com isActive=false.
func (d Draft) NormalizedRecurringCharge() *RecurringCharge {
	if d.RecurringCharge == nil || !d.RecurringCharge.IsActive {
		return nil
	}
	charge := *d.RecurringCharge
	return &charge
}
