package notification

import (
	"bytes"
	"fmt"
	"text/template"
)

type emailTemplate struct {
	subject string
	body    *template.Template
}

var registry = map[Template]emailTemplate{
	TemplateRequestCustomer: {
		subject: "We received your event request",
		body: template.Must(template.New("request_customer").Parse(
			`Hi {{.FirstName}},

Thanks for your request! Here is what we have:

  Event:    {{.EventTypeLabel}}
  Date:     {{.DateLabel}} at {{.Time}}
  Guests:   {{.PartySize}}
  Location: {{.LocationLabel}}
  Total:    {{.TotalLabel}}

Your chef will review the request and confirm availability shortly.
`)),
	},
	TemplateRequestChef: {
		subject: "New event request",
		body: template.Must(template.New("request_chef").Parse(
			`New request from {{.FirstName}} {{.LastName}} ({{.Email}}).

  Event:    {{.EventTypeLabel}}
  Date:     {{.DateLabel}} at {{.Time}}
  Guests:   {{.PartySize}}
  Location: {{.LocationLabel}}
  Total:    {{.TotalLabel}}
{{- if .HasConflict}}

WARNING: another pending or confirmed event already occupies this slot.
{{- end}}

Accept: {{.AcceptURL}}
Reject: {{.RejectURL}}
`)),
	},
	TemplateEventAccepted: {
		subject: "Your event is confirmed",
		body: template.Must(template.New("event_accepted").Parse(
			`Hi {{.FirstName}},

Great news: your {{.EventTypeLabel}} on {{.DateLabel}} at {{.Time}} is confirmed.

Secure your booking by paying the deposit here:

  {{.PaymentURL}}

See you soon!
`)),
	},
	TemplateEventRejected: {
		subject: "About your event request",
		body: template.Must(template.New("event_rejected").Parse(
			`Hi {{.FirstName}},

Unfortunately we can't host your {{.EventTypeLabel}} on {{.DateLabel}} at {{.Time}}.

Feel free to submit a new request for another date:

  {{.StorefrontURL}}
`)),
	},
}

// Render produces the subject and body for a template. Unknown templates
// are an error; the caller decides whether that is fatal.
func Render(name Template, data map[string]any) (subject, body string, err error) {
	tpl, ok := registry[name]
	if !ok {
		return "", "", fmt.Errorf("unknown notification template: %s", name)
	}
	var buf bytes.Buffer
	if err := tpl.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", name, err)
	}
	return tpl.subject, buf.String(), nil
}
