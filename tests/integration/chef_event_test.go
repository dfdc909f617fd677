//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/privatechef/chef-events/internal/dto"
	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/pricing"
	"github.com/privatechef/chef-events/internal/repository"
	"github.com/privatechef/chef-events/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newServices(t *testing.T) (service.IntakeService, service.AcceptanceService, repository.ChefEventRepository, repository.CatalogRepository) {
	t.Helper()
	events := repository.NewChefEventRepository(testDB)
	catalog := repository.NewCatalogRepository(testDB)
	links := repository.NewLinkRepository(testDB)
	log := zap.NewNop().Sugar()

	intake := service.NewIntakeService(events, pricing.TablePricer{}, nil, service.Links{}, log)
	acceptance := service.NewAcceptanceService(events, catalog, links, nil, service.Links{}, log)
	return intake, acceptance, events, catalog
}

func intakeRequest(date, timeOfDay string) dto.CreateChefEventRequest {
	return dto.CreateChefEventRequest{
		RequestedDate:   date,
		RequestedTime:   timeOfDay,
		PartySize:       4,
		EventType:       "cooking_class",
		LocationType:    "customer_location",
		LocationAddress: "42 Long Enough Street, Springfield",
		FirstName:       "Ana",
		LastName:        "Silva",
		Email:           "ana@example.com",
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestIntake_EndToEnd(t *testing.T) {
	cleanTables()
	intake, _, events, _ := newServices(t)
	ctx := context.Background()

	created, err := intake.CreateEventRequest(ctx, intakeRequest(futureDate(14), "18:00"))
	assert.NoError(t, err)
	assert.Equal(t, int64(47996), created.TotalPriceCents) // 119.99 x 4 in cents

	stored, err := events.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.False(t, stored.DepositPaid)
}

func TestConflictCheck_ExactMatchOnly(t *testing.T) {
	cleanTables()
	intake, _, _, _ := newServices(t)
	ctx := context.Background()

	date := futureDate(14)
	_, err := intake.CreateEventRequest(ctx, intakeRequest(date, "18:00"))
	assert.NoError(t, err)

	// Same slot conflicts.
	conflict, err := intake.HasConflict(ctx, date, "18:00", "")
	assert.NoError(t, err)
	assert.True(t, conflict)

	// One minute apart does not.
	conflict, err = intake.HasConflict(ctx, date, "18:01", "")
	assert.NoError(t, err)
	assert.False(t, conflict)
}

func TestConflictCheck_IgnoresCancelled(t *testing.T) {
	cleanTables()
	intake, acceptance, _, _ := newServices(t)
	ctx := context.Background()

	date := futureDate(14)
	created, err := intake.CreateEventRequest(ctx, intakeRequest(date, "18:00"))
	assert.NoError(t, err)

	_, err = acceptance.RejectEvent(ctx, created.ID)
	assert.NoError(t, err)

	conflict, err := intake.HasConflict(ctx, date, "18:00", "")
	assert.NoError(t, err)
	assert.False(t, conflict)
}

func TestAccept_EndToEnd(t *testing.T) {
	cleanTables()
	intake, acceptance, events, catalog := newServices(t)
	ctx := context.Background()

	created, err := intake.CreateEventRequest(ctx, intakeRequest(futureDate(14), "18:00"))
	assert.NoError(t, err)

	confirmed, err := acceptance.AcceptEvent(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
	if !assert.NotNil(t, confirmed.ProductID) {
		return
	}

	// Product exists with one per-guest ticket variant.
	product, err := catalog.FindProductByID(ctx, *confirmed.ProductID)
	assert.NoError(t, err)
	if assert.Len(t, product.Variants, 1) {
		assert.Equal(t, int64(11999), product.Variants[0].PriceCents)
		assert.Equal(t, "EVENT-"+created.ID, product.Variants[0].SKU)
	}

	// Inventory level at the new location equals the party size.
	item, err := catalog.FindInventoryItemBySKU(ctx, nil, "EVENT-"+created.ID)
	assert.NoError(t, err)

	var level models.InventoryLevel
	assert.NoError(t, testDB.First(&level, "inventory_item_id = ?", item.ID).Error)
	assert.Equal(t, 4, level.StockedQuantity)

	// Status persisted.
	stored, err := events.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
}

// A second accept returns a conflict and leaves exactly one product behind.
func TestAccept_SecondAcceptDoesNotDuplicate(t *testing.T) {
	cleanTables()
	intake, acceptance, _, _ := newServices(t)
	ctx := context.Background()

	created, err := intake.CreateEventRequest(ctx, intakeRequest(futureDate(14), "18:00"))
	assert.NoError(t, err)

	_, err = acceptance.AcceptEvent(ctx, created.ID)
	assert.NoError(t, err)

	_, err = acceptance.AcceptEvent(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrEventNotPending)

	var count int64
	assert.NoError(t, testDB.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReject_EndToEnd(t *testing.T) {
	cleanTables()
	intake, acceptance, events, _ := newServices(t)
	ctx := context.Background()

	created, err := intake.CreateEventRequest(ctx, intakeRequest(futureDate(14), "18:00"))
	assert.NoError(t, err)

	rejected, err := acceptance.RejectEvent(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, rejected.Status)

	stored, err := events.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)

	// Rejection creates no catalog artifacts.
	var count int64
	assert.NoError(t, testDB.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
