package email

import (
	"fmt"

	"swiftprints/internal/config"
)

// FromConfig selects the delivery channel named by EMAIL_CHANNEL.
func FromConfig(cfg config.Config) (*Notifier, error) {
	switch cfg.EmailChannel {
	case "mock":
		return NewNotifier(NewMockSender()), nil
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend email channel requires RESEND_API_KEY")
		}
		return NewNotifier(NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)), nil
	default:
		return nil, fmt.Errorf("unknown email channel %q", cfg.EmailChannel)
	}
}
