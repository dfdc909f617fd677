package repository

import (
	"context"

	"github.com/privatechef/chef-events/internal/models"
	"gorm.io/gorm"
)

// LinkRepository manages the generic cross-module association table.
type LinkRepository interface {
	Link(ctx context.Context, tx *gorm.DB, fromType, fromID, toType, toID string) error
	Unlink(ctx context.Context, tx *gorm.DB, fromType, fromID, toType, toID string) error
	FindTargets(ctx context.Context, fromType, fromID, toType string) ([]string, error)
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) tx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *linkRepository) Link(ctx context.Context, tx *gorm.DB, fromType, fromID, toType, toID string) error {
	return r.tx(tx).WithContext(ctx).Create(&models.EntityLink{
		FromType: fromType,
		FromID:   fromID,
		ToType:   toType,
		ToID:     toID,
	}).Error
}

func (r *linkRepository) Unlink(ctx context.Context, tx *gorm.DB, fromType, fromID, toType, toID string) error {
	return r.tx(tx).WithContext(ctx).
		Where("from_type = ? AND from_id = ? AND to_type = ? AND to_id = ?",
			fromType, fromID, toType, toID).
		Delete(&models.EntityLink{}).Error
}

func (r *linkRepository) FindTargets(ctx context.Context, fromType, fromID, toType string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.EntityLink{}).
		Where("from_type = ? AND from_id = ? AND to_type = ?", fromType, fromID, toType).
		Pluck("to_id", &ids).Error
	return ids, err
}
