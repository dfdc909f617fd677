package notification

import (
	"context"

	"github.com/privatechef/chef-events/monitoring"
	"go.uber.org/zap"
)

// Template names the closed set of emails this system sends.
type Template string

const (
	TemplateRequestCustomer Template = "event_request_customer"
	TemplateRequestChef     Template = "event_request_chef"
	TemplateEventAccepted   Template = "event_accepted"
	TemplateEventRejected   Template = "event_rejected"
)

// Message is the payload published to the mailer queue.
type Message struct {
	Template Template       `json:"template"`
	To       string         `json:"to"`
	Data     map[string]any `json:"data"`
}

// Publisher is satisfied by pkg/rabbitmq.Publisher.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// Mailer delivers a rendered email through some provider.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Dispatcher queues notification messages. Failures are logged and counted,
// never returned to the caller: a lost email must not fail a booking.
type Dispatcher struct {
	pub Publisher
	log *zap.SugaredLogger
}

func NewDispatcher(pub Publisher, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{pub: pub, log: log}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil || d.pub == nil {
		return
	}
	if err := d.pub.Publish("notification."+string(msg.Template), msg); err != nil {
		d.log.Errorw("failed to queue notification", "template", msg.Template, "to", msg.To, "error", err)
		monitoring.RecordNotification(string(msg.Template), "publish_failed")
		return
	}
	monitoring.RecordNotification(string(msg.Template), "published")
}
