// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/consts"
)

// RequestTimeout bounds a single Bot API call
const RequestTimeout = 30 * time.Second

// Bot wraps the Telegram bot for infrastructure layer.
// Implements deps.MessageSender.
type Bot struct {
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper
func NewBot(token string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	b := &Bot{logger: logger}

	opts := []tgbot.Option{
		tgbot.WithDefaultHandler(b.defaultHandler),
	}

	bot, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	b.bot = bot

	logger.Info().Msg("Telegram bot created successfully")

	return b, nil
}

// Raw returns the underlying telegram bot for handler registration
func (b *Bot) Raw() *tgbot.Bot {
	return b.bot
}

// Start registers the command menu and starts long polling (blocking call)
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info().Msg("Starting Telegram bot...")

	if err := b.registerCommands(ctx); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to register bot commands")
	}

	b.bot.Start(ctx)
	b.logger.Info().Msg("Telegram bot stopped")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	b.logger.Info().Msg("Stopping Telegram bot...")
	return nil
}

// SendText implements deps.MessageSender interface
func (b *Bot) SendText(ctx context.Context, chatID int64, text string, disableLinkPreview bool) error {
	if text == "" {
		return fmt.Errorf("message text cannot be empty")
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	params := &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if disableLinkPreview {
		disabled := true
		params.LinkPreviewOptions = &models.LinkPreviewOptions{IsDisabled: &disabled}
	}

	if _, err := b.bot.SendMessage(msgCtx, params); err != nil {
		b.logger.Error().Int64("chat_id", chatID).Int("text_length", len(text)).Err(err).Msg("Failed to send message")
		return fmt.Errorf("failed to send message: %w", err)
	}

	b.logger.Debug().Int64("chat_id", chatID).Int("text_length", len(text)).Msg("Message sent")
	return nil
}

// SendTyping implements deps.MessageSender interface
func (b *Bot) SendTyping(ctx context.Context, chatID int64) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := b.bot.SendChatAction(msgCtx, &tgbot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
	return err
}

// registerCommands publishes the command menu shown by Telegram clients
func (b *Bot) registerCommands(ctx context.Context) error {
	commands := make([]models.BotCommand, 0, len(consts.AllCommands))
	for _, c := range consts.AllCommands {
		commands = append(commands, models.BotCommand{
			Command:     c.Name,
			Description: c.Description,
		})
	}

	reqCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := b.bot.SetMyCommands(reqCtx, &tgbot.SetMyCommandsParams{Commands: commands})
	return err
}

// defaultHandler receives updates no route matched, such as unknown commands
func (b *Bot) defaultHandler(_ context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.logger.Debug().
		Int64("chat_id", update.Message.Chat.ID).
		Msg("Ignoring unrouted update")
}
