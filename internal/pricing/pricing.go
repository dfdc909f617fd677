package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrUnpricedEventType = errors.New("event type has no price")
	ErrNoTemplateProduct = errors.New("no template product to price from")
)

// Pricer computes the total price for an event request, in cents.
type Pricer interface {
	TotalCents(ctx context.Context, eventType models.EventType, partySize int, templateProductID *string) (int64, error)
}

// perGuestTable is the per-guest price per event type, in major currency
// units. Converted to cents with exact decimal arithmetic.
var perGuestTable = map[models.EventType]decimal.Decimal{
	models.EventTypeBuffetStyle:  decimal.RequireFromString("99.99"),
	models.EventTypeCookingClass: decimal.RequireFromString("119.99"),
	models.EventTypePlatedDinner: decimal.RequireFromString("149.99"),
}

// TablePricer prices from the static per-type table.
type TablePricer struct{}

func (TablePricer) TotalCents(_ context.Context, eventType models.EventType, partySize int, _ *string) (int64, error) {
	perGuest, ok := perGuestTable[eventType]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnpricedEventType, eventType)
	}
	total := perGuest.Mul(decimal.NewFromInt(int64(partySize))).Mul(decimal.NewFromInt(100))
	return total.IntPart(), nil
}

// PerGuestCents returns the tabled per-guest price in cents.
func PerGuestCents(eventType models.EventType) (int64, bool) {
	perGuest, ok := perGuestTable[eventType]
	if !ok {
		return 0, false
	}
	return perGuest.Mul(decimal.NewFromInt(100)).IntPart(), true
}

// TemplatePricer prices from the linked template product's first variant.
type TemplatePricer struct {
	Catalog repository.CatalogRepository
}

func (p TemplatePricer) TotalCents(ctx context.Context, eventType models.EventType, partySize int, templateProductID *string) (int64, error) {
	if _, ok := perGuestTable[eventType]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnpricedEventType, eventType)
	}
	if templateProductID == nil || *templateProductID == "" {
		return 0, ErrNoTemplateProduct
	}
	product, err := p.Catalog.FindProductByID(ctx, *templateProductID)
	if err != nil {
		return 0, fmt.Errorf("load template product: %w", err)
	}
	if len(product.Variants) == 0 {
		return 0, fmt.Errorf("template product %s has no variants", product.ID)
	}
	return product.Variants[0].PriceCents * int64(partySize), nil
}

// New returns the pricer for the configured source ("table" or "template").
func New(source string, catalog repository.CatalogRepository) Pricer {
	if source == "template" {
		return TemplatePricer{Catalog: catalog}
	}
	return TablePricer{}
}
