package repository

import (
	"context"

	"github.com/privatechef/chef-events/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository owns the derived sales artifacts: products with their
// variants, inventory, stock locations and the channel/fulfillment joins.
type CatalogRepository interface {
	CreateProduct(ctx context.Context, tx *gorm.DB, product *models.Product) error
	DeleteProduct(ctx context.Context, tx *gorm.DB, id string) error
	FindProductByID(ctx context.Context, id string) (*models.Product, error)

	CreateInventoryItem(ctx context.Context, tx *gorm.DB, item *models.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, tx *gorm.DB, id string) error
	FindInventoryItemBySKU(ctx context.Context, tx *gorm.DB, sku string) (*models.InventoryItem, error)

	CreateStockLocation(ctx context.Context, tx *gorm.DB, loc *models.StockLocation) error
	DeleteStockLocation(ctx context.Context, tx *gorm.DB, id string) error

	CreateInventoryLevel(ctx context.Context, tx *gorm.DB, level *models.InventoryLevel) error
	DeleteInventoryLevel(ctx context.Context, tx *gorm.DB, id string) error
	FindInventoryLevel(ctx context.Context, itemID, locationID string) (*models.InventoryLevel, error)

	LinkSalesChannel(ctx context.Context, tx *gorm.DB, channelID, locationID string) error
	UnlinkSalesChannel(ctx context.Context, tx *gorm.DB, channelID, locationID string) error
	LinkFulfillmentProvider(ctx context.Context, tx *gorm.DB, providerID, locationID string) error
	UnlinkFulfillmentProvider(ctx context.Context, tx *gorm.DB, providerID, locationID string) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) tx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *catalogRepository) CreateProduct(ctx context.Context, tx *gorm.DB, product *models.Product) error {
	return r.tx(tx).WithContext(ctx).Create(product).Error
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, tx *gorm.DB, id string) error {
	return r.tx(tx).WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (r *catalogRepository) FindProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Variants").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) CreateInventoryItem(ctx context.Context, tx *gorm.DB, item *models.InventoryItem) error {
	return r.tx(tx).WithContext(ctx).Create(item).Error
}

func (r *catalogRepository) DeleteInventoryItem(ctx context.Context, tx *gorm.DB, id string) error {
	return r.tx(tx).WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id).Error
}

func (r *catalogRepository) FindInventoryItemBySKU(ctx context.Context, tx *gorm.DB, sku string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.tx(tx).WithContext(ctx).First(&item, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) CreateStockLocation(ctx context.Context, tx *gorm.DB, loc *models.StockLocation) error {
	return r.tx(tx).WithContext(ctx).Create(loc).Error
}

func (r *catalogRepository) DeleteStockLocation(ctx context.Context, tx *gorm.DB, id string) error {
	return r.tx(tx).WithContext(ctx).Delete(&models.StockLocation{}, "id = ?", id).Error
}

func (r *catalogRepository) CreateInventoryLevel(ctx context.Context, tx *gorm.DB, level *models.InventoryLevel) error {
	return r.tx(tx).WithContext(ctx).Create(level).Error
}

func (r *catalogRepository) DeleteInventoryLevel(ctx context.Context, tx *gorm.DB, id string) error {
	return r.tx(tx).WithContext(ctx).Delete(&models.InventoryLevel{}, "id = ?", id).Error
}

func (r *catalogRepository) FindInventoryLevel(ctx context.Context, itemID, locationID string) (*models.InventoryLevel, error) {
	var level models.InventoryLevel
	err := r.db.WithContext(ctx).
		First(&level, "inventory_item_id = ? AND location_id = ?", itemID, locationID).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *catalogRepository) LinkSalesChannel(ctx context.Context, tx *gorm.DB, channelID, locationID string) error {
	return r.tx(tx).WithContext(ctx).Create(&models.SalesChannelLocation{
		SalesChannelID: channelID,
		LocationID:     locationID,
	}).Error
}

func (r *catalogRepository) UnlinkSalesChannel(ctx context.Context, tx *gorm.DB, channelID, locationID string) error {
	return r.tx(tx).WithContext(ctx).
		Where("sales_channel_id = ? AND location_id = ?", channelID, locationID).
		Delete(&models.SalesChannelLocation{}).Error
}

func (r *catalogRepository) LinkFulfillmentProvider(ctx context.Context, tx *gorm.DB, providerID, locationID string) error {
	return r.tx(tx).WithContext(ctx).Create(&models.FulfillmentLocation{
		ProviderID: providerID,
		LocationID: locationID,
	}).Error
}

func (r *catalogRepository) UnlinkFulfillmentProvider(ctx context.Context, tx *gorm.DB, providerID, locationID string) error {
	return r.tx(tx).WithContext(ctx).
		Where("provider_id = ? AND location_id = ?", providerID, locationID).
		Delete(&models.FulfillmentLocation{}).Error
}
