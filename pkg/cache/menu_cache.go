package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/privatechef/chef-events/internal/models"
	"github.com/redis/go-redis/v9"
)

const menuListKey = "menus:all"

func menuKey(id uint) string {
	return fmt.Sprintf("menus:%d", id)
}

// MenuCache is the read-through cache for the public menu catalog.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func (c *MenuCache) GetMenu(ctx context.Context, id uint) (*models.Menu, bool) {
	raw, err := c.client.Get(ctx, menuKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var menu models.Menu
	if err := json.Unmarshal(raw, &menu); err != nil {
		return nil, false
	}
	return &menu, true
}

func (c *MenuCache) SetMenu(ctx context.Context, menu *models.Menu) error {
	raw, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("marshal menu: %w", err)
	}
	return c.client.Set(ctx, menuKey(menu.ID), raw, c.ttl).Err()
}

func (c *MenuCache) GetMenuList(ctx context.Context) ([]models.Menu, bool) {
	raw, err := c.client.Get(ctx, menuListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var menus []models.Menu
	if err := json.Unmarshal(raw, &menus); err != nil {
		return nil, false
	}
	return menus, true
}

func (c *MenuCache) SetMenuList(ctx context.Context, menus []models.Menu) error {
	raw, err := json.Marshal(menus)
	if err != nil {
		return fmt.Errorf("marshal menu list: %w", err)
	}
	return c.client.Set(ctx, menuListKey, raw, c.ttl).Err()
}

// Invalidate drops the single-menu entry and the list; writes are rare
// enough that dropping the whole list is fine.
func (c *MenuCache) Invalidate(ctx context.Context, id uint) error {
	return c.client.Del(ctx, menuKey(id), menuListKey).Err()
}
