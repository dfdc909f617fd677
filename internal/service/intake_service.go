package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/privatechef/chef-events/internal/dto"
	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/notification"
	"github.com/privatechef/chef-events/internal/pricing"
	"github.com/privatechef/chef-events/internal/repository"
	"github.com/privatechef/chef-events/monitoring"
	"go.uber.org/zap"
)

const (
	minPartySize = 2
	maxPartySize = 50

	minLeadDays   = 7
	maxLeadMonths = 6

	businessOpen  = "10:00"
	businessClose = "20:30"

	defaultDurationMinutes = 180
)

var (
	timeRe  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Links holds the base URLs embedded in notification emails and the inbox
// that receives chef-facing notifications.
type Links struct {
	AdminBackendURL string
	StorefrontURL   string
	ChefEmail       string
}

type IntakeService interface {
	CreateEventRequest(ctx context.Context, req dto.CreateChefEventRequest) (*models.ChefEvent, error)
	HasConflict(ctx context.Context, date, timeOfDay, excludeID string) (bool, error)
}

type intakeService struct {
	events     repository.ChefEventRepository
	pricer     pricing.Pricer
	dispatcher *notification.Dispatcher
	links      Links
	log        *zap.SugaredLogger
}

func NewIntakeService(events repository.ChefEventRepository, pricer pricing.Pricer, dispatcher *notification.Dispatcher, links Links, log *zap.SugaredLogger) IntakeService {
	return &intakeService{
		events:     events,
		pricer:     pricer,
		dispatcher: dispatcher,
		links:      links,
		log:        log,
	}
}

func (s *intakeService) CreateEventRequest(ctx context.Context, req dto.CreateChefEventRequest) (*models.ChefEvent, error) {
	if err := validateRequest(req); err != nil {
		monitoring.RecordIntake("validation_failed")
		return nil, err
	}

	eventType := models.EventType(req.EventType)

	var templateID *string
	if req.TemplateProductID != "" {
		id := req.TemplateProductID
		templateID = &id
	}

	totalCents, err := s.pricer.TotalCents(ctx, eventType, req.PartySize, templateID)
	if err != nil {
		monitoring.RecordIntake("pricing_failed")
		return nil, fmt.Errorf("price event request: %w", err)
	}

	event := &models.ChefEvent{
		Status:                   models.StatusPending,
		RequestedDate:            normalizeDate(req.RequestedDate),
		RequestedTime:            req.RequestedTime,
		PartySize:                req.PartySize,
		EventType:                eventType,
		LocationType:             models.LocationType(req.LocationType),
		LocationAddress:          req.LocationAddress,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Email:                    req.Email,
		Phone:                    req.Phone,
		Notes:                    req.Notes,
		SpecialRequirements:      req.SpecialRequirements,
		TotalPriceCents:          totalCents,
		DepositPaid:              false,
		EstimatedDurationMinutes: defaultDurationMinutes,
		TemplateProductID:        templateID,
	}

	if err := s.events.Create(ctx, event); err != nil {
		monitoring.RecordIntake("persist_failed")
		return nil, fmt.Errorf("create chef event: %w", err)
	}

	// Advisory only: an overlapping request never blocks intake, the chef
	// just gets a warning in their email.
	hasConflict, err := s.HasConflict(ctx, event.RequestedDate, event.RequestedTime, event.ID)
	if err != nil {
		s.log.Errorw("conflict check failed", "event_id", event.ID, "error", err)
		hasConflict = false
	}
	if hasConflict {
		monitoring.RecordConflictFlagged()
	}

	s.notifyRequest(event, hasConflict)

	monitoring.RecordIntake("created")
	return event, nil
}

func (s *intakeService) HasConflict(ctx context.Context, date, timeOfDay, excludeID string) (bool, error) {
	count, err := s.events.CountAtSlot(ctx, date, timeOfDay, excludeID)
	if err != nil {
		return false, fmt.Errorf("conflict check: %w", err)
	}
	return count > 0, nil
}

func (s *intakeService) notifyRequest(event *models.ChefEvent, hasConflict bool) {
	if s.dispatcher == nil {
		return
	}

	data := map[string]any{
		"FirstName":      event.FirstName,
		"LastName":       event.LastName,
		"Email":          event.Email,
		"EventTypeLabel": eventTypeLabel(event.EventType),
		"DateLabel":      dateLabel(event.RequestedDate),
		"Time":           event.RequestedTime,
		"PartySize":      event.PartySize,
		"LocationLabel":  locationLabel(event.LocationType),
		"TotalLabel":     priceLabel(event.TotalPriceCents),
	}

	s.dispatcher.Dispatch(notification.Message{
		Template: notification.TemplateRequestCustomer,
		To:       event.Email,
		Data:     data,
	})

	chefData := map[string]any{}
	for k, v := range data {
		chefData[k] = v
	}
	chefData["HasConflict"] = hasConflict
	chefData["AcceptURL"] = fmt.Sprintf("%s/admin/chef-events/%s/accept", s.links.AdminBackendURL, event.ID)
	chefData["RejectURL"] = fmt.Sprintf("%s/admin/chef-events/%s/reject", s.links.AdminBackendURL, event.ID)

	s.dispatcher.Dispatch(notification.Message{
		Template: notification.TemplateRequestChef,
		To:       s.links.ChefEmail,
		Data:     chefData,
	})
}

func validateRequest(req dto.CreateChefEventRequest) error {
	verr := &ValidationError{}

	date, err := parseDate(req.RequestedDate)
	if err != nil {
		verr.add("requested_date", "must be an ISO date (YYYY-MM-DD)")
	} else {
		today := time.Now().Truncate(24 * time.Hour)
		if date.Before(today.AddDate(0, 0, minLeadDays)) {
			verr.add("requested_date", fmt.Sprintf("must be at least %d days in the future", minLeadDays))
		} else if date.After(today.AddDate(0, maxLeadMonths, 0)) {
			verr.add("requested_date", fmt.Sprintf("must be within %d months", maxLeadMonths))
		}
	}

	if !timeRe.MatchString(req.RequestedTime) {
		verr.add("requested_time", "must be HH:MM in 24-hour format")
	} else if req.RequestedTime < businessOpen || req.RequestedTime > businessClose {
		verr.add("requested_time", fmt.Sprintf("must be within business hours (%s-%s)", businessOpen, businessClose))
	}

	if req.PartySize < minPartySize || req.PartySize > maxPartySize {
		verr.add("party_size", fmt.Sprintf("must be between %d and %d", minPartySize, maxPartySize))
	}

	switch models.EventType(req.EventType) {
	case models.EventTypeCookingClass, models.EventTypePlatedDinner, models.EventTypeBuffetStyle:
	default:
		verr.add("event_type", "must be one of cooking_class, plated_dinner, buffet_style")
	}

	switch models.LocationType(req.LocationType) {
	case models.LocationCustomer, models.LocationChef:
	default:
		verr.add("location_type", "must be one of customer_location, chef_location")
	}

	if len(req.LocationAddress) < 10 {
		verr.add("location_address", "must be at least 10 characters")
	}

	if req.FirstName == "" {
		verr.add("first_name", "is required")
	}
	if req.LastName == "" {
		verr.add("last_name", "is required")
	}
	if !emailRe.MatchString(req.Email) {
		verr.add("email", "must be a valid email address")
	}

	if verr.ok() {
		return nil
	}
	return verr
}

// parseDate accepts a plain ISO date or a full RFC3339 timestamp and keeps
// the date part.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func normalizeDate(raw string) string {
	d, err := parseDate(raw)
	if err != nil {
		return raw
	}
	return d.Format(dateLayout)
}
