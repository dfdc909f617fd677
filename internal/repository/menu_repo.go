package repository

import (
	"context"

	"github.com/privatechef/chef-events/internal/models"
	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *models.Menu) error
	FindByID(ctx context.Context, id uint) (*models.Menu, error)
	FindAll(ctx context.Context) ([]models.Menu, error)
	Delete(ctx context.Context, id uint) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, menu *models.Menu) error {
	// Nested courses/dishes/ingredients are created in one pass.
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) FindByID(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.WithContext(ctx).
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Courses.Dishes").
		Preload("Courses.Dishes.Ingredients").
		First(&menu, id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) FindAll(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	// Children go with it via ON DELETE CASCADE.
	return r.db.WithContext(ctx).Delete(&models.Menu{}, id).Error
}
