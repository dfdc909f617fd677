package service

import (
	"fmt"
	"time"

	"github.com/privatechef/chef-events/internal/models"
)

const dateLayout = "2006-01-02"

var eventTypeLabels = map[models.EventType]string{
	models.EventTypeCookingClass: "Cooking Class",
	models.EventTypePlatedDinner: "Plated Dinner",
	models.EventTypeBuffetStyle:  "Buffet Style",
	models.EventTypeCustom:       "Custom Event",
}

var locationLabels = map[models.LocationType]string{
	models.LocationCustomer: "Your location",
	models.LocationChef:     "Chef's venue",
}

func eventTypeLabel(t models.EventType) string {
	if label, ok := eventTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func locationLabel(t models.LocationType) string {
	if label, ok := locationLabels[t]; ok {
		return label
	}
	return string(t)
}

// dateLabel renders YYYY-MM-DD as e.g. "Saturday, June 14, 2025".
// Unparseable input is returned as-is; these labels are presentation only.
func dateLabel(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

func priceLabel(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
