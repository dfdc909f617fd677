package dto

import (
	"time"

	"github.com/privatechef/chef-events/internal/models"
)

type ChefEventResponse struct {
	ID                       string              `json:"id"`
	Status                   models.EventStatus  `json:"status"`
	RequestedDate            string              `json:"requested_date"`
	RequestedTime            string              `json:"requested_time"`
	PartySize                int                 `json:"party_size"`
	EventType                models.EventType    `json:"event_type"`
	LocationType             models.LocationType `json:"location_type"`
	LocationAddress          string              `json:"location_address"`
	FirstName                string              `json:"first_name"`
	LastName                 string              `json:"last_name"`
	Email                    string              `json:"email"`
	Phone                    string              `json:"phone,omitempty"`
	Notes                    string              `json:"notes,omitempty"`
	SpecialRequirements      string              `json:"special_requirements,omitempty"`
	TotalPriceCents          int64               `json:"total_price_cents"`
	DepositPaid              bool                `json:"deposit_paid"`
	EstimatedDurationMinutes int                 `json:"estimated_duration_minutes"`
	TemplateProductID        *string             `json:"template_product_id,omitempty"`
	ProductID                *string             `json:"product_id,omitempty"`
	CreatedAt                time.Time           `json:"created_at"`
}

type ChefEventEnvelope struct {
	ChefEvent ChefEventResponse `json:"chef_event"`
	Message   string            `json:"message"`
}

type AcceptEventEnvelope struct {
	Message string            `json:"message"`
	Event   ChefEventResponse `json:"event"`
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ToChefEventResponse(e *models.ChefEvent) ChefEventResponse {
	return ChefEventResponse{
		ID:                       e.ID,
		Status:                   e.Status,
		RequestedDate:            e.RequestedDate,
		RequestedTime:            e.RequestedTime,
		PartySize:                e.PartySize,
		EventType:                e.EventType,
		LocationType:             e.LocationType,
		LocationAddress:          e.LocationAddress,
		FirstName:                e.FirstName,
		LastName:                 e.LastName,
		Email:                    e.Email,
		Phone:                    e.Phone,
		Notes:                    e.Notes,
		SpecialRequirements:      e.SpecialRequirements,
		TotalPriceCents:          e.TotalPriceCents,
		DepositPaid:              e.DepositPaid,
		EstimatedDurationMinutes: e.EstimatedDurationMinutes,
		TemplateProductID:        e.TemplateProductID,
		ProductID:                e.ProductID,
		CreatedAt:                e.CreatedAt,
	}
}
