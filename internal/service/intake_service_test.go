package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/privatechef/chef-events/internal/dto"
	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/notification"
	"github.com/privatechef/chef-events/internal/pricing"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func validRequest() dto.CreateChefEventRequest {
	return dto.CreateChefEventRequest{
		RequestedDate:   time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
		RequestedTime:   "18:30",
		PartySize:       4,
		EventType:       "cooking_class",
		LocationType:    "customer_location",
		LocationAddress: "42 Long Enough Street, Springfield",
		FirstName:       "Ana",
		LastName:        "Silva",
		Email:           "ana@example.com",
	}
}

func newIntake(repo *mockEventRepo, pub *recordingPublisher) IntakeService {
	var dispatcher *notification.Dispatcher
	if pub != nil {
		dispatcher = notification.NewDispatcher(pub, zap.NewNop().Sugar())
	}
	links := Links{
		AdminBackendURL: "http://admin.local",
		StorefrontURL:   "http://store.local",
		ChefEmail:       "chef@example.com",
	}
	return NewIntakeService(repo, pricing.TablePricer{}, dispatcher, links, zap.NewNop().Sugar())
}

func TestCreateEventRequest_Success(t *testing.T) {
	repo := &mockEventRepo{}
	pub := &recordingPublisher{}
	svc := newIntake(repo, pub)

	event, err := svc.CreateEventRequest(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, event.Status)
	assert.Equal(t, int64(47996), event.TotalPriceCents) // 119.99 x 4
	assert.False(t, event.DepositPaid)
	assert.Equal(t, 180, event.EstimatedDurationMinutes)

	// Customer confirmation and chef notification are both queued.
	assert.Len(t, pub.byTemplate(notification.TemplateRequestCustomer), 1)
	chefMsgs := pub.byTemplate(notification.TemplateRequestChef)
	assert.Len(t, chefMsgs, 1)
	assert.Equal(t, "chef@example.com", chefMsgs[0].To)
	assert.Equal(t, false, chefMsgs[0].Data["HasConflict"])
}

func TestCreateEventRequest_BuffetPricing(t *testing.T) {
	svc := newIntake(&mockEventRepo{}, nil)

	req := validRequest()
	req.EventType = "buffet_style"
	req.PartySize = 10

	event, err := svc.CreateEventRequest(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(99990), event.TotalPriceCents) // 99.99 x 10
}

func TestCreateEventRequest_FlagsConflict(t *testing.T) {
	repo := &mockEventRepo{
		countAtSlotFn: func(ctx context.Context, date, timeOfDay, excludeID string) (int64, error) {
			return 1, nil
		},
	}
	pub := &recordingPublisher{}
	svc := newIntake(repo, pub)

	_, err := svc.CreateEventRequest(context.Background(), validRequest())

	assert.NoError(t, err)
	chefMsgs := pub.byTemplate(notification.TemplateRequestChef)
	assert.Len(t, chefMsgs, 1)
	assert.Equal(t, true, chefMsgs[0].Data["HasConflict"])
}

func TestCreateEventRequest_ConflictCheckFailureIsNonFatal(t *testing.T) {
	repo := &mockEventRepo{
		countAtSlotFn: func(ctx context.Context, date, timeOfDay, excludeID string) (int64, error) {
			return 0, errors.New("db down")
		},
	}
	svc := newIntake(repo, &recordingPublisher{})

	event, err := svc.CreateEventRequest(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, event.Status)
}

func TestCreateEventRequest_ValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateChefEventRequest)
		field  string
	}{
		{"party too small", func(r *dto.CreateChefEventRequest) { r.PartySize = 1 }, "party_size"},
		{"party too large", func(r *dto.CreateChefEventRequest) { r.PartySize = 51 }, "party_size"},
		{"custom type unpriced", func(r *dto.CreateChefEventRequest) { r.EventType = "custom" }, "event_type"},
		{"unknown type", func(r *dto.CreateChefEventRequest) { r.EventType = "birthday" }, "event_type"},
		{"bad time format", func(r *dto.CreateChefEventRequest) { r.RequestedTime = "6pm" }, "requested_time"},
		{"before opening", func(r *dto.CreateChefEventRequest) { r.RequestedTime = "09:59" }, "requested_time"},
		{"after last seating", func(r *dto.CreateChefEventRequest) { r.RequestedTime = "20:31" }, "requested_time"},
		{"bad date", func(r *dto.CreateChefEventRequest) { r.RequestedDate = "next friday" }, "requested_date"},
		{"too soon", func(r *dto.CreateChefEventRequest) {
			r.RequestedDate = time.Now().AddDate(0, 0, 3).Format("2006-01-02")
		}, "requested_date"},
		{"too far out", func(r *dto.CreateChefEventRequest) {
			r.RequestedDate = time.Now().AddDate(0, 7, 0).Format("2006-01-02")
		}, "requested_date"},
		{"short address", func(r *dto.CreateChefEventRequest) { r.LocationAddress = "12 Main" }, "location_address"},
		{"bad location type", func(r *dto.CreateChefEventRequest) { r.LocationType = "park" }, "location_type"},
		{"missing first name", func(r *dto.CreateChefEventRequest) { r.FirstName = "" }, "first_name"},
		{"bad email", func(r *dto.CreateChefEventRequest) { r.Email = "not-an-email" }, "email"},
	}

	svc := newIntake(&mockEventRepo{}, nil)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.CreateEventRequest(context.Background(), req)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestCreateEventRequest_LastSeatingIsValid(t *testing.T) {
	svc := newIntake(&mockEventRepo{}, nil)

	req := validRequest()
	req.RequestedTime = "20:30"

	_, err := svc.CreateEventRequest(context.Background(), req)

	assert.NoError(t, err)
}

func TestCreateEventRequest_PersistFailure(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.ChefEvent) error {
			return errors.New("connection refused")
		},
	}
	svc := newIntake(repo, nil)

	_, err := svc.CreateEventRequest(context.Background(), validRequest())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHasConflict(t *testing.T) {
	repo := &mockEventRepo{
		countAtSlotFn: func(ctx context.Context, date, timeOfDay, excludeID string) (int64, error) {
			if date == "2026-10-10" && timeOfDay == "18:00" {
				return 1, nil
			}
			return 0, nil
		},
	}
	svc := newIntake(repo, nil)

	got, err := svc.HasConflict(context.Background(), "2026-10-10", "18:00", "")
	assert.NoError(t, err)
	assert.True(t, got)

	// One minute apart is a different slot: exact match only.
	got, err = svc.HasConflict(context.Background(), "2026-10-10", "18:01", "")
	assert.NoError(t, err)
	assert.False(t, got)
}
