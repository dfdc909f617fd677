package service

import (
	"context"
	"sync"

	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/notification"
	"gorm.io/gorm"
)

// --- Mock ChefEventRepository ---

type mockEventRepo struct {
	createFn        func(ctx context.Context, event *models.ChefEvent) error
	findByIDFn      func(ctx context.Context, id string) (*models.ChefEvent, error)
	findForUpdateFn func(ctx context.Context, tx *gorm.DB, id string) (*models.ChefEvent, error)
	findAllFn       func(ctx context.Context, status *models.EventStatus) ([]models.ChefEvent, error)
	countAtSlotFn   func(ctx context.Context, date, timeOfDay, excludeID string) (int64, error)

	updated []*models.ChefEvent
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.ChefEvent) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	event.ID = "evt-1"
	return nil
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.ChefEvent, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockEventRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.ChefEvent, error) {
	return m.findForUpdateFn(ctx, tx, id)
}

func (m *mockEventRepo) FindAll(ctx context.Context, status *models.EventStatus) ([]models.ChefEvent, error) {
	return m.findAllFn(ctx, status)
}

func (m *mockEventRepo) Update(ctx context.Context, tx *gorm.DB, event *models.ChefEvent) error {
	m.updated = append(m.updated, event)
	return nil
}

func (m *mockEventRepo) CountAtSlot(ctx context.Context, date, timeOfDay, excludeID string) (int64, error) {
	if m.countAtSlotFn != nil {
		return m.countAtSlotFn(ctx, date, timeOfDay, excludeID)
	}
	return 0, nil
}

func (m *mockEventRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Mock CatalogRepository (records creations and deletions) ---

type mockCatalogRepo struct {
	findProductFn  func(ctx context.Context, id string) (*models.Product, error)
	createLevelErr error

	products  []*models.Product
	items     []*models.InventoryItem
	locations []*models.StockLocation
	levels    []*models.InventoryLevel

	deletedProducts  []string
	deletedItems     []string
	deletedLocations []string
	deletedLevels    []string

	channelLinks    []string
	channelUnlinks  []string
	providerLinks   []string
	providerUnlinks []string
}

func (m *mockCatalogRepo) CreateProduct(ctx context.Context, tx *gorm.DB, p *models.Product) error {
	p.ID = "prod-1"
	for i := range p.Variants {
		p.Variants[i].ProductID = p.ID
	}
	m.products = append(m.products, p)
	return nil
}

func (m *mockCatalogRepo) DeleteProduct(ctx context.Context, tx *gorm.DB, id string) error {
	m.deletedProducts = append(m.deletedProducts, id)
	return nil
}

func (m *mockCatalogRepo) FindProductByID(ctx context.Context, id string) (*models.Product, error) {
	if m.findProductFn != nil {
		return m.findProductFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) CreateInventoryItem(ctx context.Context, tx *gorm.DB, item *models.InventoryItem) error {
	item.ID = "item-1"
	m.items = append(m.items, item)
	return nil
}

func (m *mockCatalogRepo) DeleteInventoryItem(ctx context.Context, tx *gorm.DB, id string) error {
	m.deletedItems = append(m.deletedItems, id)
	return nil
}

func (m *mockCatalogRepo) FindInventoryItemBySKU(ctx context.Context, tx *gorm.DB, sku string) (*models.InventoryItem, error) {
	for _, item := range m.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) CreateStockLocation(ctx context.Context, tx *gorm.DB, loc *models.StockLocation) error {
	loc.ID = "loc-1"
	m.locations = append(m.locations, loc)
	return nil
}

func (m *mockCatalogRepo) DeleteStockLocation(ctx context.Context, tx *gorm.DB, id string) error {
	m.deletedLocations = append(m.deletedLocations, id)
	return nil
}

func (m *mockCatalogRepo) CreateInventoryLevel(ctx context.Context, tx *gorm.DB, level *models.InventoryLevel) error {
	if m.createLevelErr != nil {
		return m.createLevelErr
	}
	level.ID = "level-1"
	m.levels = append(m.levels, level)
	return nil
}

func (m *mockCatalogRepo) DeleteInventoryLevel(ctx context.Context, tx *gorm.DB, id string) error {
	m.deletedLevels = append(m.deletedLevels, id)
	return nil
}

func (m *mockCatalogRepo) FindInventoryLevel(ctx context.Context, itemID, locationID string) (*models.InventoryLevel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) LinkSalesChannel(ctx context.Context, tx *gorm.DB, channelID, locationID string) error {
	m.channelLinks = append(m.channelLinks, channelID+":"+locationID)
	return nil
}

func (m *mockCatalogRepo) UnlinkSalesChannel(ctx context.Context, tx *gorm.DB, channelID, locationID string) error {
	m.channelUnlinks = append(m.channelUnlinks, channelID+":"+locationID)
	return nil
}

func (m *mockCatalogRepo) LinkFulfillmentProvider(ctx context.Context, tx *gorm.DB, providerID, locationID string) error {
	m.providerLinks = append(m.providerLinks, providerID+":"+locationID)
	return nil
}

func (m *mockCatalogRepo) UnlinkFulfillmentProvider(ctx context.Context, tx *gorm.DB, providerID, locationID string) error {
	m.providerUnlinks = append(m.providerUnlinks, providerID+":"+locationID)
	return nil
}

// --- Mock LinkRepository ---

type mockLinkRepo struct {
	links   []string
	unlinks []string
}

func (m *mockLinkRepo) Link(ctx context.Context, tx *gorm.DB, fromType, fromID, toType, toID string) error {
	m.links = append(m.links, fromType+":"+fromID+"->"+toType+":"+toID)
	return nil
}

func (m *mockLinkRepo) Unlink(ctx context.Context, tx *gorm.DB, fromType, fromID, toType, toID string) error {
	m.unlinks = append(m.unlinks, fromType+":"+fromID+"->"+toType+":"+toID)
	return nil
}

func (m *mockLinkRepo) FindTargets(ctx context.Context, fromType, fromID, toType string) ([]string, error) {
	return nil, nil
}

// --- Recording publisher for the notification dispatcher ---

type publishedMessage struct {
	RoutingKey string
	Message    notification.Message
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []publishedMessage
	err      error
}

func (p *recordingPublisher) Publish(routingKey string, payload any) error {
	if p.err != nil {
		return p.err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if msg, ok := payload.(notification.Message); ok {
		p.messages = append(p.messages, publishedMessage{RoutingKey: routingKey, Message: msg})
	}
	return nil
}

func (p *recordingPublisher) byTemplate(tpl notification.Template) []notification.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []notification.Message
	for _, m := range p.messages {
		if m.Message.Template == tpl {
			out = append(out, m.Message)
		}
	}
	return out
}
