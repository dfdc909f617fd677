package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusConfirmed EventStatus = "confirmed"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

// ActiveStatuses are the statuses that count for conflict checks.
var ActiveStatuses = []EventStatus{StatusPending, StatusConfirmed}

type EventType string

const (
	EventTypeCookingClass EventType = "cooking_class"
	EventTypePlatedDinner EventType = "plated_dinner"
	EventTypeBuffetStyle  EventType = "buffet_style"
	EventTypeCustom       EventType = "custom"
)

type LocationType string

const (
	LocationCustomer LocationType = "customer_location"
	LocationChef     LocationType = "chef_location"
)

type ChefEvent struct {
	ID     string      `gorm:"primaryKey;type:uuid" json:"id"`
	Status EventStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Calendar date as YYYY-MM-DD and local wall-clock time as HH:MM.
	// Stored as strings because the booking has no timezone.
	RequestedDate string `gorm:"type:varchar(10);not null;index:idx_event_slot" json:"requested_date"`
	RequestedTime string `gorm:"type:varchar(5);not null;index:idx_event_slot" json:"requested_time"`

	PartySize       int          `gorm:"not null" json:"party_size"`
	EventType       EventType    `gorm:"type:varchar(20);not null" json:"event_type"`
	LocationType    LocationType `gorm:"type:varchar(20);not null" json:"location_type"`
	LocationAddress string       `gorm:"not null" json:"location_address"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `json:"phone,omitempty"`

	Notes               string `json:"notes,omitempty"`
	SpecialRequirements string `json:"special_requirements,omitempty"`

	TotalPriceCents          int64 `gorm:"not null" json:"total_price_cents"`
	DepositPaid              bool  `gorm:"not null;default:false" json:"deposit_paid"`
	EstimatedDurationMinutes int   `gorm:"not null;default:180" json:"estimated_duration_minutes"`

	AssignedChefID    *string `json:"assigned_chef_id,omitempty"`
	TemplateProductID *string `gorm:"type:uuid" json:"template_product_id,omitempty"`
	ProductID         *string `gorm:"type:uuid" json:"product_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *ChefEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
