package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/privatechef/chef-events/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMenuCache_HitAndMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewMenuCache(client, 30*time.Minute)
	ctx := context.Background()

	menu := &models.Menu{ID: 3, Name: "Tasting Menu"}
	raw, _ := json.Marshal(menu)

	mock.ExpectGet("menus:3").SetVal(string(raw))
	got, ok := c.GetMenu(ctx, 3)
	assert.True(t, ok)
	assert.Equal(t, "Tasting Menu", got.Name)

	mock.ExpectGet("menus:4").RedisNil()
	_, ok = c.GetMenu(ctx, 4)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuCache_SetWithTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewMenuCache(client, 30*time.Minute)

	menu := &models.Menu{ID: 3, Name: "Tasting Menu"}
	raw, _ := json.Marshal(menu)

	mock.ExpectSet("menus:3", raw, 30*time.Minute).SetVal("OK")
	assert.NoError(t, c.SetMenu(context.Background(), menu))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuCache_List(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewMenuCache(client, 30*time.Minute)
	ctx := context.Background()

	menus := []models.Menu{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	raw, _ := json.Marshal(menus)

	mock.ExpectSet("menus:all", raw, 30*time.Minute).SetVal("OK")
	assert.NoError(t, c.SetMenuList(ctx, menus))

	mock.ExpectGet("menus:all").SetVal(string(raw))
	got, ok := c.GetMenuList(ctx)
	assert.True(t, ok)
	assert.Len(t, got, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewMenuCache(client, 30*time.Minute)

	mock.ExpectDel("menus:3", "menus:all").SetVal(2)
	assert.NoError(t, c.Invalidate(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
