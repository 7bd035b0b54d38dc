package telegram

import (
	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/consts"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers all handlers on the bot
func (r *Router) RegisterRoutes(bot *tgbot.Bot) {
	for _, c := range consts.AllCommands {
		bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+c.Name, tgbot.MatchTypeExact, r.handlers.HandleHelp)
	}
	bot.RegisterHandlerMatchFunc(IsSectionQuery, r.handlers.HandleText)

	r.logger.Info().Int("commands", len(consts.AllCommands)).Msg("Telegram handlers registered successfully")
}
