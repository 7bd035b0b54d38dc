// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/dto"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/usecase/business"
)

// Handlers contains Telegram update handlers
type Handlers struct {
	uc     *business.UseCase
	logger zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc *business.UseCase, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		logger: logger.With().Str("component", "telegram_handlers").Logger(),
	}
}

// IsSectionQuery matches plain text messages that are not bot commands
func IsSectionQuery(update *models.Update) bool {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return false
	}
	return !strings.HasPrefix(update.Message.Text, "/")
}

// HandleText handles a section number sent as plain text
func (h *Handlers) HandleText(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if !IsSectionQuery(update) {
		return
	}

	req := &dto.MessageRequest{
		ChatID: update.Message.Chat.ID,
		UserID: senderID(update.Message),
		Text:   update.Message.Text,
	}

	resp, err := h.uc.HandleMessage(ctx, req)
	if err != nil {
		h.logError(req.UserID, "text", err)
		return
	}

	result := "unsupported"
	if resp.Resolved {
		result = "section " + resp.Code
	}
	h.logCommand(req.UserID, "text", result)
}

// HandleHelp handles /start and /help commands
func (h *Handlers) HandleHelp(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	userID := senderID(update.Message)
	command := strings.TrimSpace(update.Message.Text)

	if _, err := h.uc.HandleHelp(ctx, update.Message.Chat.ID); err != nil {
		h.logError(userID, command, err)
		return
	}

	h.logCommand(userID, command, "success")
}

// senderID returns the author of msg, zero for anonymous channel posts
func senderID(msg *models.Message) int64 {
	if msg.From == nil {
		return 0
	}
	return msg.From.ID
}

// logCommand logs a processed update
func (h *Handlers) logCommand(userID int64, command, result string) {
	h.logger.Info().Int64("user_id", userID).Str("command", command).Str("result", result).Msg("Telegram update processed")
}

// logError logs a failed update
func (h *Handlers) logError(userID int64, command string, err error) {
	h.logger.Error().Int64("user_id", userID).Str("command", command).Err(err).Msg("Telegram update failed")
}
