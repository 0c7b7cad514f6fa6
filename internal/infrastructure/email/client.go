// Package email sends HTML reminders over SMTP.
package email

import (
	"context"
	"fmt"
	"motor/internal/domain/notifier"
	"motor/internal/pkg/logger"
	"time"

	"github.com/wneessen/go-mail"
)

// ChannelName identifies this channel in ChannelError.
const ChannelName = "email"

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Client implements notifier.EmailChannel.
type Client struct {
	cfg Config
	log logger.Logger
}

// NewClient creates an SMTP client. No connection is opened until Send.
func NewClient(cfg Config, log logger.Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

func (c *Client) buildMessage(to, subject, htmlBody string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(c.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", c.cfg.From, err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)
	return m, nil
}

func (c *Client) options() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(c.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if c.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(c.cfg.Timeout))
	}
	if c.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.cfg.Username),
			mail.WithPassword(c.cfg.Password),
		)
	}
	return opts
}

// Send delivers one HTML message to a single recipient. A single attempt is made.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	m, err := c.buildMessage(to, subject, htmlBody)
	if err != nil {
		return &notifier.ChannelError{Channel: ChannelName, Destination: to, Err: err}
	}

	client, err := mail.NewClient(c.cfg.Host, c.options()...)
	if err != nil {
		return &notifier.ChannelError{Channel: ChannelName, Destination: to, Err: err}
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return &notifier.ChannelError{Channel: ChannelName, Destination: to, Err: err}
	}

	c.log.Debug(fmt.Sprintf("Email delivered to %s via %s", to, c.cfg.Host))
	return nil
}
