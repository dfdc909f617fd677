package repository

import (
	"context"

	"github.com/privatechef/chef-events/internal/models"
	"gorm.io/gorm"
)

type ChefEventRepository interface {
	Create(ctx context.Context, event *models.ChefEvent) error
	FindByID(ctx context.Context, id string) (*models.ChefEvent, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.ChefEvent, error)
	FindAll(ctx context.Context, status *models.EventStatus) ([]models.ChefEvent, error)
	Update(ctx context.Context, tx *gorm.DB, event *models.ChefEvent) error
	CountAtSlot(ctx context.Context, date, timeOfDay, excludeID string) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type chefEventRepository struct {
	db *gorm.DB
}

func NewChefEventRepository(db *gorm.DB) ChefEventRepository {
	return &chefEventRepository{db: db}
}

func (r *chefEventRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *chefEventRepository) Create(ctx context.Context, event *models.ChefEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *chefEventRepository) FindByID(ctx context.Context, id string) (*models.ChefEvent, error) {
	var event models.ChefEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the given
// transaction, serializing concurrent accept/reject attempts.
func (r *chefEventRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.ChefEvent, error) {
	var event models.ChefEvent
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *chefEventRepository) FindAll(ctx context.Context, status *models.EventStatus) ([]models.ChefEvent, error) {
	var events []models.ChefEvent
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("requested_date ASC, requested_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *chefEventRepository) Update(ctx context.Context, tx *gorm.DB, event *models.ChefEvent) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(event).Error
}

// CountAtSlot counts pending/confirmed events at the exact (date, time) slot.
// Exact-match only; duration overlap is not considered.
func (r *chefEventRepository) CountAtSlot(ctx context.Context, date, timeOfDay, excludeID string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.ChefEvent{}).
		Where("requested_date = ? AND requested_time = ? AND status IN ?",
			date, timeOfDay, models.ActiveStatuses)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}
