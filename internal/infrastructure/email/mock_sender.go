package email

import (
	"context"
	"log"
)

// MockSender logs instead of delivering. Default channel for local
// development and tests.

type MockSender struct{}

var _ Sender = (*MockSender)(nil)

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (s *MockSender) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	log.Printf("[email][mock] to=%s subject=%q body=%q", to, subject, textBody)
	return nil
}
