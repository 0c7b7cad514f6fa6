package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"motor/internal/application/service"
	"motor/internal/infrastructure/line"
	"motor/internal/pkg/logger"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Admin commands understood by the ops bot.
const (
	commandDue     = "due"
	commandMileage = "mileage"
	commandHelp    = "help"
)

const helpText = `motor ops bot
due - run the due-reminder sweep now
mileage - run the mileage update sweep now
help - show this message`

// LineHandler handles incoming LINE webhook events for the ops bot.
type LineHandler struct {
	lineClient *line.Client
	dispatch   service.DispatchService
	log        logger.Logger
}

// NewLineHandler creates a new LineHandler.
func NewLineHandler(lineClient *line.Client, dispatch service.DispatchService, log logger.Logger) *LineHandler {
	return &LineHandler{
		lineClient: lineClient,
		dispatch:   dispatch,
		log:        log,
	}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	events, err := h.lineClient.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	ctx := context.WithoutCancel(c.Request().Context())
	for _, event := range events {
		if event.Type != linebot.EventTypeMessage {
			h.log.Debug(fmt.Sprintf("Ignoring LINE event type: %s", event.Type))
			continue
		}
		h.handleMessageEvent(ctx, event)
	}

	return c.String(http.StatusOK, "OK")
}

// handleMessageEvent runs admin commands. Messages from anyone else are ignored.
func (h *LineHandler) handleMessageEvent(ctx context.Context, event *linebot.Event) {
	if event.Source == nil || event.Source.UserID != h.lineClient.AdminUserID() {
		h.log.Warn("Ignoring LINE message from non-admin user")
		return
	}
	message, ok := event.Message.(*linebot.TextMessage)
	if !ok {
		h.reply(ctx, event.ReplyToken, helpText)
		return
	}

	command := strings.ToLower(strings.TrimSpace(message.Text))
	h.log.Info(fmt.Sprintf("Ops command received: %q", command))

	switch command {
	case commandDue:
		h.reply(ctx, event.ReplyToken, h.dispatch.RunDueSweep(ctx).Summary())
	case commandMileage:
		h.reply(ctx, event.ReplyToken, h.dispatch.RunMileageSweep(ctx).Summary())
	case commandHelp:
		h.reply(ctx, event.ReplyToken, helpText)
	default:
		h.reply(ctx, event.ReplyToken, fmt.Sprintf("unknown command %q\n\n%s", command, helpText))
	}
}

func (h *LineHandler) reply(ctx context.Context, replyToken, text string) {
	if err := h.lineClient.SendMessages(ctx, replyToken, linebot.NewTextMessage(text)); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send reply message: %s", text), err)
	}
}
