package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog artifacts created during acceptance. A ChefEvent is the root of
// booking truth; these rows are derived once and linked back via EntityLink.

type Product struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	MenuID      *uint  `json:"menu_id,omitempty"`

	// Back-references to the originating event request.
	TemplateProductID string `json:"template_product_id,omitempty"`
	EventType         string `json:"event_type,omitempty"`
	EventDate         string `json:"event_date,omitempty"`
	EventTime         string `json:"event_time,omitempty"`
	PartySize         int    `json:"party_size,omitempty"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProductVariant struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	ProductID  string `gorm:"not null;index;type:uuid" json:"product_id"`
	Title      string `gorm:"not null" json:"title"`
	SKU        string `gorm:"uniqueIndex" json:"sku"`
	PriceCents int64  `gorm:"not null" json:"price_cents"`
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

type StockLocation struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Name string `gorm:"not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *StockLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type InventoryItem struct {
	ID  string `gorm:"primaryKey;type:uuid" json:"id"`
	SKU string `gorm:"uniqueIndex;not null" json:"sku"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type InventoryLevel struct {
	ID              string `gorm:"primaryKey;type:uuid" json:"id"`
	InventoryItemID string `gorm:"not null;index;type:uuid" json:"inventory_item_id"`
	LocationID      string `gorm:"not null;index;type:uuid" json:"location_id"`
	StockedQuantity int    `gorm:"not null" json:"stocked_quantity"`
}

func (l *InventoryLevel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// SalesChannelLocation joins a sales channel to a stock location.
type SalesChannelLocation struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	SalesChannelID string `gorm:"not null;index" json:"sales_channel_id"`
	LocationID     string `gorm:"not null;index;type:uuid" json:"location_id"`
}

// FulfillmentLocation joins a fulfillment provider to a stock location.
type FulfillmentLocation struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProviderID string `gorm:"not null" json:"provider_id"`
	LocationID string `gorm:"not null;index;type:uuid" json:"location_id"`
}

// EntityLink is the generic association table between entities from
// different modules ("remote link"): event<->product, menu<->product.
type EntityLink struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FromType string `gorm:"not null;index:idx_link_from" json:"from_type"`
	FromID   string `gorm:"not null;index:idx_link_from" json:"from_id"`
	ToType   string `gorm:"not null;index:idx_link_to" json:"to_type"`
	ToID     string `gorm:"not null;index:idx_link_to" json:"to_id"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	LinkTypeChefEvent = "chef_event"
	LinkTypeProduct   = "product"
	LinkTypeMenu      = "menu"
)
