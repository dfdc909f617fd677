package consumer

import (
	"context"
	"encoding/json"

	"github.com/privatechef/chef-events/internal/notification"
	"github.com/privatechef/chef-events/monitoring"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailConsumer drains the notification queue, renders each message and
// hands it to the mail provider.
type MailConsumer struct {
	mailer notification.Mailer
	log    *zap.SugaredLogger
}

func NewMailConsumer(mailer notification.Mailer, log *zap.SugaredLogger) *MailConsumer {
	return &MailConsumer{mailer: mailer, log: log}
}

func (mc *MailConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			mc.handleMessage(msg)
		}
		mc.log.Info("notification channel closed, stopping mail consumer")
	}()
}

// handleMessage is deliberately lenient: a malformed or unsendable message
// is logged and acked. There is no retry, and a dead email never blocks
// the queue.
func (mc *MailConsumer) handleMessage(msg amqp.Delivery) {
	defer msg.Ack(false)

	var m notification.Message
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		mc.log.Errorw("failed to unmarshal notification", "error", err)
		monitoring.RecordNotification("unknown", "unmarshal_failed")
		return
	}

	subject, body, err := notification.Render(m.Template, m.Data)
	if err != nil {
		mc.log.Errorw("failed to render notification", "template", m.Template, "error", err)
		monitoring.RecordNotification(string(m.Template), "render_failed")
		return
	}

	if err := mc.mailer.Send(context.Background(), m.To, subject, body); err != nil {
		mc.log.Errorw("failed to send notification", "template", m.Template, "to", m.To, "error", err)
		monitoring.RecordNotification(string(m.Template), "send_failed")
		return
	}

	mc.log.Infow("notification sent", "template", m.Template, "to", m.To)
	monitoring.RecordNotification(string(m.Template), "sent")
}
