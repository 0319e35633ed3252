package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"swiftprints/internal/domain/entities"
)

type capturingSender struct {
	to       string
	subject  string
	textBody string
	htmlBody string
	err      error
}

func (s *capturingSender) Send(_ context.Context, to, subject, textBody, htmlBody string) error {
	s.to = to
	s.subject = subject
	s.textBody = textBody
	s.htmlBody = htmlBody
	return s.err
}

func TestNotifier_SendOrderConfirmation(t *testing.T) {
	sender := &capturingSender{}
	n := NewNotifier(sender)

	order := entities.Order{
		ID:            "order-1",
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		TotalCost:     230,
		Status:        entities.OrderStatusPlaced,
	}

	if err := n.SendOrderConfirmation(context.Background(), order); err != nil {
		t.Fatalf("SendOrderConfirmation: %v", err)
	}
	if sender.to != "ada@example.com" {
		t.Fatalf("expected recipient ada@example.com, got %q", sender.to)
	}
	if sender.subject != "Order received" {
		t.Fatalf("unexpected subject %q", sender.subject)
	}
	if !strings.Contains(sender.textBody, "order-1") || !strings.Contains(sender.textBody, "230.00") {
		t.Fatalf("text body missing order details: %q", sender.textBody)
	}
	if !strings.Contains(sender.htmlBody, "<strong>order-1</strong>") {
		t.Fatalf("html body missing order id: %q", sender.htmlBody)
	}
}

func TestNotifier_SendStatusUpdate(t *testing.T) {
	t.Run("known status uses its subject", func(t *testing.T) {
		sender := &capturingSender{}
		n := NewNotifier(sender)

		order := entities.Order{
			ID:            "order-1",
			CustomerName:  "Ada",
			CustomerEmail: "ada@example.com",
			Status:        entities.OrderStatusReady,
		}

		if err := n.SendStatusUpdate(context.Background(), order, entities.OrderStatusPrinting); err != nil {
			t.Fatalf("SendStatusUpdate: %v", err)
		}
		if sender.subject != "Your print is ready for pickup" {
			t.Fatalf("unexpected subject %q", sender.subject)
		}
		if !strings.Contains(sender.textBody, "from PRINTING to READY") {
			t.Fatalf("text body missing transition: %q", sender.textBody)
		}
	})

	t.Run("html escapes hostile customer name", func(t *testing.T) {
		sender := &capturingSender{}
		n := NewNotifier(sender)

		order := entities.Order{
			ID:            "order-1",
			CustomerName:  `<script>alert("x")</script>`,
			CustomerEmail: "mallory@example.com",
			Status:        entities.OrderStatusCancelled,
		}

		if err := n.SendStatusUpdate(context.Background(), order, entities.OrderStatusPlaced); err != nil {
			t.Fatalf("SendStatusUpdate: %v", err)
		}
		if strings.Contains(sender.htmlBody, "<script>") {
			t.Fatalf("html body was not escaped: %q", sender.htmlBody)
		}
		if !strings.Contains(sender.htmlBody, "&lt;script&gt;") {
			t.Fatalf("expected escaped name in html body: %q", sender.htmlBody)
		}
	})

	t.Run("sender failure propagates", func(t *testing.T) {
		sender := &capturingSender{err: errors.New("smtp down")}
		n := NewNotifier(sender)

		order := entities.Order{ID: "order-1", CustomerEmail: "ada@example.com", Status: entities.OrderStatusPrinting}
		if err := n.SendStatusUpdate(context.Background(), order, entities.OrderStatusPlaced); err == nil {
			t.Fatal("expected sender error to propagate")
		}
	})
}
