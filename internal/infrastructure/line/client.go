package line

import (
	"context"
	"fmt"
	"motor/internal/application/dto"
	"motor/internal/pkg/logger"
	"net/http"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client used by the ops bot.
type Client struct {
	*linebot.Client
	adminUserID string
	log         logger.Logger
}

// Option configures the underlying linebot client.
type Option = linebot.ClientOption

// WithEndpoint points the client at a different API host. Used in tests.
func WithEndpoint(endpoint string) Option {
	return linebot.WithEndpointBase(endpoint)
}

// NewClient creates a LINE Bot client that talks to adminUserID.
func NewClient(channelSecret, channelToken, adminUserID string, log logger.Logger, opts ...Option) (*Client, error) {
	if channelSecret == "" || channelToken == "" || adminUserID == "" {
		return nil, fmt.Errorf("channel secret, channel access token and admin user id are required")
	}
	bot, err := linebot.New(channelSecret, channelToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client:      bot,
		adminUserID: adminUserID,
		log:         log,
	}, nil
}

// AdminUserID is the only user the ops bot answers.
func (c *Client) AdminUserID() string {
	return c.adminUserID
}

// SendMessages sends one or more messages using the ReplyMessage API.
func (c *Client) SendMessages(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	if _, err := c.ReplyMessage(replyToken, messages...).WithContext(ctx).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent reply message.")
	return nil
}

// PushMessages sends one or more messages using the PushMessage API.
func (c *Client) PushMessages(ctx context.Context, to string, messages ...linebot.SendingMessage) error {
	if _, err := c.PushMessage(to, messages...).WithContext(ctx).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// ParseRequest parses and verifies incoming webhook requests.
func (c *Client) ParseRequest(r *http.Request) ([]*linebot.Event, error) {
	return c.Client.ParseRequest(r)
}

// NotifySweep pushes the sweep summary to the admin.
func (c *Client) NotifySweep(ctx context.Context, report dto.SweepReport) error {
	if err := c.PushMessages(ctx, c.adminUserID, linebot.NewTextMessage(report.Summary())); err != nil {
		return fmt.Errorf("push sweep summary: %w", err)
	}
	return nil
}
