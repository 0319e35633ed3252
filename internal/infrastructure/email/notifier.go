package email

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"
)

// Sender delivers one rendered message. Implementations: MockSender
// (logs) and ResendSender.
type Sender interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

var statusSubjects = map[entities.OrderStatus]string{
	entities.OrderStatusPrinting:  "Your print is on the machine",
	entities.OrderStatusReady:     "Your print is ready for pickup",
	entities.OrderStatusCompleted: "Your order is complete",
	entities.OrderStatusCancelled: "Your order was cancelled",
}

const confirmationText = `Hi {{.CustomerName}},

We received your order {{.OrderID}}. Total: {{printf "%.2f" .TotalCost}}.

We'll email you as it moves through the queue.
`

const confirmationHTML = `<p>Hi {{.CustomerName}},</p>
<p>We received your order <strong>{{.OrderID}}</strong>. Total: <strong>{{printf "%.2f" .TotalCost}}</strong>.</p>
<p>We'll email you as it moves through the queue.</p>
`

const statusText = `Hi {{.CustomerName}},

Your order {{.OrderID}} moved from {{.PreviousStatus}} to {{.Status}}.
`

const statusHTML = `<p>Hi {{.CustomerName}},</p>
<p>Your order <strong>{{.OrderID}}</strong> moved from {{.PreviousStatus}} to <strong>{{.Status}}</strong>.</p>
`

type templateData struct {
	OrderID        string
	CustomerName   string
	TotalCost      float64
	Status         string
	PreviousStatus string
}

// Notifier renders per-status templates and hands the result to a
// Sender. The HTML variant escapes every interpolated field.

type Notifier struct {
	sender Sender

	confirmationText *texttemplate.Template
	confirmationHTML *htmltemplate.Template
	statusText       *texttemplate.Template
	statusHTML       *htmltemplate.Template
}

var _ interfaces.INotifier = (*Notifier)(nil)

func NewNotifier(sender Sender) *Notifier {
	return &Notifier{
		sender:           sender,
		confirmationText: texttemplate.Must(texttemplate.New("confirmation").Parse(confirmationText)),
		confirmationHTML: htmltemplate.Must(htmltemplate.New("confirmation").Parse(confirmationHTML)),
		statusText:       texttemplate.Must(texttemplate.New("status").Parse(statusText)),
		statusHTML:       htmltemplate.Must(htmltemplate.New("status").Parse(statusHTML)),
	}
}

func (n *Notifier) SendOrderConfirmation(ctx context.Context, o entities.Order) error {
	data := templateData{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		TotalCost:    o.TotalCost,
		Status:       string(o.Status),
	}

	textBody, htmlBody, err := n.render(n.confirmationText, n.confirmationHTML, data)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, o.CustomerEmail, "Order received", textBody, htmlBody)
}

func (n *Notifier) SendStatusUpdate(ctx context.Context, o entities.Order, previous entities.OrderStatus) error {
	data := templateData{
		OrderID:        o.ID,
		CustomerName:   o.CustomerName,
		TotalCost:      o.TotalCost,
		Status:         string(o.Status),
		PreviousStatus: string(previous),
	}

	textBody, htmlBody, err := n.render(n.statusText, n.statusHTML, data)
	if err != nil {
		return err
	}

	subject, ok := statusSubjects[o.Status]
	if !ok {
		subject = fmt.Sprintf("Your order is now %s", o.Status)
	}
	return n.sender.Send(ctx, o.CustomerEmail, subject, textBody, htmlBody)
}

func (n *Notifier) render(text *texttemplate.Template, html *htmltemplate.Template, data templateData) (string, string, error) {
	var textBuf, htmlBuf bytes.Buffer
	if err := text.Execute(&textBuf, data); err != nil {
		return "", "", err
	}
	if err := html.Execute(&htmlBuf, data); err != nil {
		return "", "", err
	}
	return textBuf.String(), htmlBuf.String(), nil
}
