package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/privatechef/chef-events/internal/dto"
	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/repository"
	"github.com/privatechef/chef-events/monitoring"
	"github.com/privatechef/chef-events/pkg/cache"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MenuService interface {
	CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (*models.Menu, error)
	GetMenu(ctx context.Context, id uint) (*models.Menu, error)
	ListMenus(ctx context.Context) ([]models.Menu, error)
	DeleteMenu(ctx context.Context, id uint) error

	// Store-facing reads go through the cache.
	GetMenuCached(ctx context.Context, id uint) (*models.Menu, error)
	ListMenusCached(ctx context.Context) ([]models.Menu, error)
}

type menuService struct {
	repo  repository.MenuRepository
	cache *cache.MenuCache
	log   *zap.SugaredLogger
}

func NewMenuService(repo repository.MenuRepository, menuCache *cache.MenuCache, log *zap.SugaredLogger) MenuService {
	return &menuService{repo: repo, cache: menuCache, log: log}
}

func (s *menuService) CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (*models.Menu, error) {
	if req.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "is required"}}
	}

	menu := &models.Menu{
		Name:        req.Name,
		Description: req.Description,
	}
	for _, c := range req.Courses {
		course := models.Course{Name: c.Name, SortOrder: c.SortOrder}
		for _, d := range c.Dishes {
			dish := models.Dish{Name: d.Name, Description: d.Description}
			for _, ing := range d.Ingredients {
				dish.Ingredients = append(dish.Ingredients, models.Ingredient{Name: ing})
			}
			course.Dishes = append(course.Dishes, dish)
		}
		menu.Courses = append(menu.Courses, course)
	}

	if err := s.repo.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}

	s.invalidate(ctx, menu.ID)
	return menu, nil
}

func (s *menuService) GetMenu(ctx context.Context, id uint) (*models.Menu, error) {
	menu, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return menu, nil
}

func (s *menuService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	return s.repo.FindAll(ctx)
}

func (s *menuService) DeleteMenu(ctx context.Context, id uint) error {
	if _, err := s.GetMenu(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *menuService) GetMenuCached(ctx context.Context, id uint) (*models.Menu, error) {
	if s.cache != nil {
		if menu, ok := s.cache.GetMenu(ctx, id); ok {
			monitoring.RecordMenuCache("hit")
			return menu, nil
		}
		monitoring.RecordMenuCache("miss")
	}

	menu, err := s.GetMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, menu); err != nil {
			s.log.Warnw("failed to cache menu", "menu_id", id, "error", err)
		}
	}
	return menu, nil
}

func (s *menuService) ListMenusCached(ctx context.Context) ([]models.Menu, error) {
	if s.cache != nil {
		if menus, ok := s.cache.GetMenuList(ctx); ok {
			monitoring.RecordMenuCache("hit")
			return menus, nil
		}
		monitoring.RecordMenuCache("miss")
	}

	menus, err := s.ListMenus(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMenuList(ctx, menus); err != nil {
			s.log.Warnw("failed to cache menu list", "error", err)
		}
	}
	return menus, nil
}

func (s *menuService) invalidate(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warnw("failed to invalidate menu cache", "menu_id", id, "error", err)
	}
}
