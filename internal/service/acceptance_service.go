package service

import (
	"context"
	"fmt"

	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/notification"
	"github.com/privatechef/chef-events/internal/repository"
	"github.com/privatechef/chef-events/monitoring"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultSalesChannelID        = "default"
	DefaultFulfillmentProviderID = "manual_manual"
)

type AcceptanceService interface {
	AcceptEvent(ctx context.Context, id string) (*models.ChefEvent, error)
	RejectEvent(ctx context.Context, id string) (*models.ChefEvent, error)
}

type acceptanceService struct {
	events     repository.ChefEventRepository
	catalog    repository.CatalogRepository
	entityLink repository.LinkRepository
	dispatcher *notification.Dispatcher
	links      Links
	log        *zap.SugaredLogger
}

func NewAcceptanceService(events repository.ChefEventRepository, catalog repository.CatalogRepository, entityLink repository.LinkRepository, dispatcher *notification.Dispatcher, links Links, log *zap.SugaredLogger) AcceptanceService {
	return &acceptanceService{
		events:     events,
		catalog:    catalog,
		entityLink: entityLink,
		dispatcher: dispatcher,
		links:      links,
		log:        log,
	}
}

// AcceptEvent runs the acceptance choreography: create a sellable ticket
// product, allocate inventory sized to the party, link everything back to
// the event, and flip the event to confirmed. Steps run in order inside a
// transaction holding a row lock on the event, so a second accept for the
// same event waits and then fails on the status check instead of creating
// a duplicate product. A failed step unwinds the earlier steps in reverse
// order before the error surfaces.
func (s *acceptanceService) AcceptEvent(ctx context.Context, id string) (*models.ChefEvent, error) {
	var result *models.ChefEvent

	err := s.events.Transaction(ctx, func(tx *gorm.DB) error {
		event, err := s.events.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrEventNotFound
		}
		if event.Status != models.StatusPending {
			return ErrEventNotPending
		}

		run := &acceptanceRun{svc: s, event: event}
		if err := run.execute(ctx, tx); err != nil {
			return err
		}

		result = event
		return nil
	})
	if err != nil {
		monitoring.RecordTransition("accept", "failed")
		return nil, err
	}

	s.notifyAccepted(result)
	monitoring.RecordTransition("accept", "confirmed")
	return result, nil
}

// RejectEvent flips a pending event to cancelled and tells the customer.
func (s *acceptanceService) RejectEvent(ctx context.Context, id string) (*models.ChefEvent, error) {
	var result *models.ChefEvent

	err := s.events.Transaction(ctx, func(tx *gorm.DB) error {
		event, err := s.events.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrEventNotFound
		}
		if event.Status != models.StatusPending {
			return ErrEventNotPending
		}

		event.Status = models.StatusCancelled
		if err := s.events.Update(ctx, tx, event); err != nil {
			return fmt.Errorf("reject event %s: %w", id, err)
		}

		result = event
		return nil
	})
	if err != nil {
		monitoring.RecordTransition("reject", "failed")
		return nil, err
	}

	s.notifyRejected(result)
	monitoring.RecordTransition("reject", "cancelled")
	return result, nil
}

// acceptanceRun carries the artifacts across steps and collects the
// compensations to run if a later step fails.
type acceptanceRun struct {
	svc   *acceptanceService
	event *models.ChefEvent

	template *models.Product
	product  *models.Product
	location *models.StockLocation
	level    *models.InventoryLevel

	compensations []func(ctx context.Context, tx *gorm.DB) error
}

type acceptanceStep struct {
	name string
	run  func(ctx context.Context, tx *gorm.DB) error
}

func (r *acceptanceRun) execute(ctx context.Context, tx *gorm.DB) error {
	steps := []acceptanceStep{
		{"load_template_product", r.loadTemplateProduct},
		{"create_product", r.createProduct},
		{"create_stock_location", r.createStockLocation},
		{"link_sales_channel", r.linkSalesChannel},
		{"create_inventory_level", r.createInventoryLevel},
		{"link_fulfillment_provider", r.linkFulfillmentProvider},
		{"link_menu_and_event", r.linkMenuAndEvent},
		{"confirm_event", r.confirmEvent},
	}

	for _, step := range steps {
		if err := step.run(ctx, tx); err != nil {
			r.svc.log.Errorw("acceptance step failed, compensating",
				"event_id", r.event.ID, "step", step.name, "error", err)
			r.compensate(ctx, tx)
			return fmt.Errorf("accept event %s: %s: %w", r.event.ID, step.name, err)
		}
	}
	return nil
}

func (r *acceptanceRun) compensate(ctx context.Context, tx *gorm.DB) {
	for i := len(r.compensations) - 1; i >= 0; i-- {
		if err := r.compensations[i](ctx, tx); err != nil {
			r.svc.log.Errorw("compensation failed", "event_id", r.event.ID, "error", err)
		}
	}
}

func (r *acceptanceRun) onFailure(fn func(ctx context.Context, tx *gorm.DB) error) {
	r.compensations = append(r.compensations, fn)
}

func (r *acceptanceRun) loadTemplateProduct(ctx context.Context, _ *gorm.DB) error {
	if r.event.TemplateProductID == nil || *r.event.TemplateProductID == "" {
		return nil
	}
	template, err := r.svc.catalog.FindProductByID(ctx, *r.event.TemplateProductID)
	if err != nil {
		return ErrTemplateProductNotFound
	}
	r.template = template
	return nil
}

func (r *acceptanceRun) createProduct(ctx context.Context, tx *gorm.DB) error {
	event := r.event

	title := fmt.Sprintf("%s - %s", eventTypeLabel(event.EventType), dateLabel(event.RequestedDate))
	description := fmt.Sprintf("Private chef %s for %d guests.", eventTypeLabel(event.EventType), event.PartySize)
	templateID := ""
	var menuID *uint
	if r.template != nil {
		title = fmt.Sprintf("%s - %s", r.template.Title, title)
		if r.template.Description != "" {
			description = r.template.Description
		}
		templateID = r.template.ID
		menuID = r.template.MenuID
	}

	sku := fmt.Sprintf("EVENT-%s", event.ID)
	product := &models.Product{
		Title:             title,
		Description:       description,
		MenuID:            menuID,
		TemplateProductID: templateID,
		EventType:         string(event.EventType),
		EventDate:         event.RequestedDate,
		EventTime:         event.RequestedTime,
		PartySize:         event.PartySize,
		Variants: []models.ProductVariant{{
			Title:      "Ticket",
			SKU:        sku,
			PriceCents: event.TotalPriceCents / int64(event.PartySize),
		}},
	}

	if err := r.svc.catalog.CreateProduct(ctx, tx, product); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	r.product = product
	r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
		return r.svc.catalog.DeleteProduct(ctx, tx, product.ID)
	})

	item := &models.InventoryItem{SKU: sku}
	if err := r.svc.catalog.CreateInventoryItem(ctx, tx, item); err != nil {
		return fmt.Errorf("create inventory item: %w", err)
	}
	r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
		return r.svc.catalog.DeleteInventoryItem(ctx, tx, item.ID)
	})
	return nil
}

func (r *acceptanceRun) createStockLocation(ctx context.Context, tx *gorm.DB) error {
	location := &models.StockLocation{Name: r.product.Title}
	if err := r.svc.catalog.CreateStockLocation(ctx, tx, location); err != nil {
		return fmt.Errorf("create stock location: %w", err)
	}
	r.location = location
	r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
		return r.svc.catalog.DeleteStockLocation(ctx, tx, location.ID)
	})
	return nil
}

func (r *acceptanceRun) linkSalesChannel(ctx context.Context, tx *gorm.DB) error {
	if err := r.svc.catalog.LinkSalesChannel(ctx, tx, DefaultSalesChannelID, r.location.ID); err != nil {
		return fmt.Errorf("link sales channel: %w", err)
	}
	r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
		return r.svc.catalog.UnlinkSalesChannel(ctx, tx, DefaultSalesChannelID, r.location.ID)
	})
	return nil
}

func (r *acceptanceRun) createInventoryLevel(ctx context.Context, tx *gorm.DB) error {
	sku := fmt.Sprintf("EVENT-%s", r.event.ID)
	item, err := r.svc.catalog.FindInventoryItemBySKU(ctx, tx, sku)
	if err != nil {
		return fmt.Errorf("find inventory item %s: %w", sku, err)
	}

	// Stocked quantity equals party size: one ticket slot per guest.
	level := &models.InventoryLevel{
		InventoryItemID: item.ID,
		LocationID:      r.location.ID,
		StockedQuantity: r.event.PartySize,
	}
	if err := r.svc.catalog.CreateInventoryLevel(ctx, tx, level); err != nil {
		return fmt.Errorf("create inventory level: %w", err)
	}
	r.level = level
	r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
		return r.svc.catalog.DeleteInventoryLevel(ctx, tx, level.ID)
	})
	return nil
}

func (r *acceptanceRun) linkFulfillmentProvider(ctx context.Context, tx *gorm.DB) error {
	if err := r.svc.catalog.LinkFulfillmentProvider(ctx, tx, DefaultFulfillmentProviderID, r.location.ID); err != nil {
		return fmt.Errorf("link fulfillment provider: %w", err)
	}
	r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
		return r.svc.catalog.UnlinkFulfillmentProvider(ctx, tx, DefaultFulfillmentProviderID, r.location.ID)
	})
	return nil
}

func (r *acceptanceRun) linkMenuAndEvent(ctx context.Context, tx *gorm.DB) error {
	if r.template != nil && r.template.MenuID != nil {
		menuID := fmt.Sprintf("%d", *r.template.MenuID)
		if err := r.svc.entityLink.Link(ctx, tx, models.LinkTypeMenu, menuID, models.LinkTypeProduct, r.product.ID); err != nil {
			return fmt.Errorf("link menu to product: %w", err)
		}
		r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
			return r.svc.entityLink.Unlink(ctx, tx, models.LinkTypeMenu, menuID, models.LinkTypeProduct, r.product.ID)
		})
	}

	if err := r.svc.entityLink.Link(ctx, tx, models.LinkTypeChefEvent, r.event.ID, models.LinkTypeProduct, r.product.ID); err != nil {
		return fmt.Errorf("link event to product: %w", err)
	}
	r.onFailure(func(ctx context.Context, tx *gorm.DB) error {
		return r.svc.entityLink.Unlink(ctx, tx, models.LinkTypeChefEvent, r.event.ID, models.LinkTypeProduct, r.product.ID)
	})
	return nil
}

func (r *acceptanceRun) confirmEvent(ctx context.Context, tx *gorm.DB) error {
	r.event.Status = models.StatusConfirmed
	r.event.ProductID = &r.product.ID
	if err := r.svc.events.Update(ctx, tx, r.event); err != nil {
		return fmt.Errorf("confirm event: %w", err)
	}
	return nil
}

func (s *acceptanceService) notifyAccepted(event *models.ChefEvent) {
	if s.dispatcher == nil {
		return
	}
	productID := ""
	if event.ProductID != nil {
		productID = *event.ProductID
	}
	s.dispatcher.Dispatch(notification.Message{
		Template: notification.TemplateEventAccepted,
		To:       event.Email,
		Data: map[string]any{
			"FirstName":      event.FirstName,
			"EventTypeLabel": eventTypeLabel(event.EventType),
			"DateLabel":      dateLabel(event.RequestedDate),
			"Time":           event.RequestedTime,
			"PaymentURL":     fmt.Sprintf("%s/products/%s", s.links.StorefrontURL, productID),
		},
	})
}

func (s *acceptanceService) notifyRejected(event *models.ChefEvent) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(notification.Message{
		Template: notification.TemplateEventRejected,
		To:       event.Email,
		Data: map[string]any{
			"FirstName":      event.FirstName,
			"EventTypeLabel": eventTypeLabel(event.EventType),
			"DateLabel":      dateLabel(event.RequestedDate),
			"Time":           event.RequestedTime,
			"StorefrontURL":  s.links.StorefrontURL,
		},
	})
}
