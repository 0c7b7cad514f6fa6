// Package whatsapp sends plain text messages through the WhatsApp Cloud API.
package whatsapp

import (
	"context"
	"fmt"
	"motor/internal/domain/notifier"
	"motor/internal/pkg/logger"
	"time"

	"github.com/go-resty/resty/v2"
)

// ChannelName identifies this channel in ChannelError.
const ChannelName = "whatsapp"

// Config holds the Cloud API credentials.
type Config struct {
	BaseURL       string
	PhoneNumberID string
	AccessToken   string
	Timeout       time.Duration
}

// Client implements notifier.MessagingChannel.
type Client struct {
	http          *resty.Client
	phoneNumberID string
	log           logger.Logger
}

type textBody struct {
	Body string `json:"body"`
}

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// NewClient creates a WhatsApp Cloud API client.
func NewClient(cfg Config, log logger.Logger) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.AccessToken).
		SetTimeout(cfg.Timeout)

	return &Client{http: c, phoneNumberID: cfg.PhoneNumberID, log: log}
}

// Send delivers body to phone. A single attempt is made.
func (c *Client) Send(ctx context.Context, body, phone string) error {
	req := sendRequest{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
		Text:             textBody{Body: body},
	}

	var out sendResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/%s/messages", c.phoneNumberID))
	if err != nil {
		return &notifier.ChannelError{Channel: ChannelName, Destination: phone, Err: err}
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.String()
		}
		return &notifier.ChannelError{
			Channel:     ChannelName,
			Destination: phone,
			Err:         fmt.Errorf("status %d: %s", resp.StatusCode(), msg),
		}
	}

	if len(out.Messages) > 0 {
		c.log.Debug(fmt.Sprintf("WhatsApp message accepted with id %s", out.Messages[0].ID))
	}
	return nil
}
