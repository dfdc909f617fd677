package database

import (
	"fmt"

	"github.com/privatechef/chef-events/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.ChefEvent{},
		&models.Menu{},
		&models.Course{},
		&models.Dish{},
		&models.Ingredient{},
		&models.Product{},
		&models.ProductVariant{},
		&models.StockLocation{},
		&models.InventoryItem{},
		&models.InventoryLevel{},
		&models.SalesChannelLocation{},
		&models.FulfillmentLocation{},
		&models.EntityLink{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// Partial index speeds up the advisory conflict check, which only ever
	// looks at live events.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_chef_event_active_slot
		ON chef_events (requested_date, requested_time)
		WHERE status IN ('pending', 'confirmed')
	`)

	return db, nil
}
