// Package notifier defines the outbound notification channels.
package notifier

import (
	"context"
	"fmt"
)

// MessagingChannel delivers plain text to a phone number.
type MessagingChannel interface {
	Send(ctx context.Context, body, phone string) error
}

// EmailChannel delivers an HTML email.
type EmailChannel interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ChannelError is returned by channel adapters on transport failure.
type ChannelError struct {
	Channel     string
	Destination string
	Err         error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s send to %s failed: %v", e.Channel, e.Destination, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
