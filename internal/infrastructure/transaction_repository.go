package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	"github.com/alternativafozthiago/financas/internal/logger"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

type TransactionRepository struct {
	DB *gorm.DB
}

type transactionDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId      string    `gorm:"type:varchar(64);index:idx_transactions_user_id;not null;column:user_id"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`
	Description string    `gorm:"type:varchar(255);not null;column:description"`
	Amount      float64   `gorm:"type:decimal(15,2);not null;column:amount"`
	Date        pkg.Date  `gorm:"type:date;not null;column:date"`
	DueDate     pkg.Date  `gorm:"type:date;not null;index:idx_transactions_due_date;column:due_date"`
	Type        string    `gorm:"type:varchar(10);not null;column:type"`
	IsPaid      bool      `gorm:"not null;default:false;column:is_paid"`
	PaidDate    *pkg.Date `gorm:"type:date;column:paid_date"`
	IsRecurring bool      `gorm:"not null;default:false;column:is_recurring"`
	ContactId   *string   `gorm:"type:varchar(26);index:idx_transactions_contact_id;column:contact_id"`

	// Colunas do contato trazidas pelo LEFT JOIN na leitura. Nulas quando a
	// referência está pendente ou ausente.
	ContactName *string `gorm:"->;column:contact_name"`
	ContactType *string `gorm:"->;column:contact_type"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

const transactionJoinSelect = "transactions.*, contacts.name AS contact_name, contacts.type AS contact_type"

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}

	var contactID *ulid.ULID
	if tdb.ContactId != nil && *tdb.ContactId != "" {
		parsed, err := pkg.ParseULID(*tdb.ContactId)
		if err == nil {
			contactID = &parsed
		}
	}

	var paidDate *pkg.Date
	if tdb.PaidDate != nil {
		copied := *tdb.PaidDate
		paidDate = &copied
	}

	t := &transaction.Transaction{
		Id:          id,
		UserId:      tdb.UserId,
		CreatedAt:   tdb.CreatedAt,
		Description: tdb.Description,
		Amount:      tdb.Amount,
		Date:        tdb.Date,
		DueDate:     tdb.DueDate,
		Type:        transaction.Types(tdb.Type),
		IsPaid:      tdb.IsPaid,
		PaidDate:    paidDate,
		IsRecurring: tdb.IsRecurring,
		ContactId:   contactID,
	}

	// A referência pode apontar para um contato já removido; a linha ainda é
	// devolvida, apenas sem o contato.
	if contactID != nil && tdb.ContactName != nil {
		t.Contact = &contact.Contact{
			Id:     *contactID,
			UserId: tdb.UserId,
			Name:   *tdb.ContactName,
		}
		if tdb.ContactType != nil {
			t.Contact.Type = contact.Types(*tdb.ContactType)
		}
	}

	return t, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var contactID *string
	if t.ContactId != nil {
		s := t.ContactId.String()
		contactID = &s
	}

	return &transactionDB{
		Id:          t.Id.String(),
		UserId:      t.UserId,
		CreatedAt:   t.CreatedAt,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		DueDate:     t.DueDate,
		Type:        string(t.Type),
		IsPaid:      t.IsPaid,
		PaidDate:    t.PaidDate,
		IsRecurring: t.IsRecurring,
		ContactId:   contactID,
	}
}

func (r *TransactionRepository) ListByOwner(ctx context.Context, owner string) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Select(transactionJoinSelect).
		Joins("LEFT JOIN contacts ON contacts.id = transactions.contact_id AND contacts.user_id = transactions.user_id").
		Where("transactions.user_id = ?", owner).
		Order("transactions.due_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			logger.Warn().Err(err).Str("transaction_id", rows[i].Id).Msg("Transação ignorada por id inválido")
			continue
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	result := r.DB.WithContext(ctx).Model(&transactionDB{}).
		Where("id = ? AND user_id = ?", tdb.Id, tdb.UserId).
		Select("description", "amount", "date", "due_date", "type", "is_paid", "paid_date", "is_recurring", "contact_id").
		Updates(tdb)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID, owner string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID.String(), owner).
		Delete(&transactionDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByIDAndOwner(ctx context.Context, transactionID ulid.ULID, owner string) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Select(transactionJoinSelect).
		Joins("LEFT JOIN contacts ON contacts.id = transactions.contact_id AND contacts.user_id = transactions.user_id").
		Where("transactions.id = ? AND transactions.user_id = ?", transactionID.String(), owner).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}
