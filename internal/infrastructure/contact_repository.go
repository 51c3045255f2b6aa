package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

type ContactRepository struct {
	DB *gorm.DB
}

type contactDB struct {
	Id              string                   `gorm:"type:varchar(26);primaryKey"`
	UserId          string                   `gorm:"type:varchar(64);index:idx_contacts_user_id;not null"`
	CreatedAt       time.Time                `gorm:"not null"`
	Name            string                   `gorm:"type:varchar(255);not null"`
	Type            string                   `gorm:"type:varchar(10);not null"`
	Email           *string                  `gorm:"type:varchar(255)"`
	RecurringCharge *contact.RecurringCharge `gorm:"type:jsonb;serializer:json"`
}

func (contactDB) TableName() string {
	return "contacts"
}

func toDomainContact(cdb *contactDB) (*contact.Contact, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}

	var charge *contact.RecurringCharge
	if cdb.RecurringCharge != nil {
		copied := *cdb.RecurringCharge
		charge = &copied
	}

	return &contact.Contact{
		Id:              id,
		UserId:          cdb.UserId,
		CreatedAt:       cdb.CreatedAt,
		Name:            cdb.Name,
		Type:            contact.Types(cdb.Type),
		Email:           cdb.Email,
		RecurringCharge: charge,
	}, nil
}

func toDBContact(c *contact.Contact) *contactDB {
	return &contactDB{
		Id:              c.Id.String(),
		UserId:          c.UserId,
		CreatedAt:       c.CreatedAt,
		Name:            c.Name,
		Type:            string(c.Type),
		Email:           c.Email,
		RecurringCharge: c.RecurringCharge,
	}
}

func (r *ContactRepository) ListByOwner(ctx context.Context, owner string) ([]*contact.Contact, error) {
	var rows []contactDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	contacts := make([]*contact.Contact, 0, len(rows))
	for i := range rows {
		c, err := toDomainContact(&rows[i])
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	cdb := toDBContact(c)
	return r.DB.WithContext(ctx).Table("contacts").Create(cdb).Error
}

func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	cdb := toDBContact(c)
	// Select cobre os campos editáveis mesmo quando zerados, inclusive a
	// coluna recurring_charge voltando a nulo.
	result := r.DB.WithContext(ctx).Model(&contactDB{}).
		Where("id = ? AND user_id = ?", cdb.Id, cdb.UserId).
		Select("name", "type", "email", "recurring_charge").
		Updates(cdb)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, contactID ulid.ULID, owner string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID.String(), owner).
		Delete(&contactDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactRepository) GetByIDAndOwner(ctx context.Context, contactID ulid.ULID, owner string) (*contact.Contact, error) {
	var cdb contactDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID.String(), owner).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainContact(&cdb)
}
