// Package ipc contains the IPC news domain module
package ipc

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/archita9/IPC-News-Bot/config"
	httpDelivery "github.com/archita9/IPC-News-Bot/internal/domain/ipc/delivery/http"
	telegramDelivery "github.com/archita9/IPC-News-Bot/internal/domain/ipc/delivery/telegram"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/deps"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/repository/feed"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/usecase/business"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure/http/server"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure/telegram"
)

// Module provides ipc domain components for fx dependency injection
var Module = fx.Module("ipc",
	// Repository
	fx.Provide(provideNewsFetcher),

	// UseCase
	fx.Provide(provideMessageSender),
	fx.Provide(business.NewUseCase),

	// Delivery
	fx.Provide(telegramDelivery.NewHandlers),
	fx.Provide(telegramDelivery.NewRouter),
	fx.Provide(httpDelivery.NewLivenessHandler),

	fx.Invoke(registerRoutes),
)

// provideNewsFetcher creates the Google News feed client
func provideNewsFetcher(cfg *config.NewsConfig, logger zerolog.Logger) deps.NewsFetcher {
	return feed.NewClient(cfg, logger)
}

// provideMessageSender exposes the bot as the domain's sender
func provideMessageSender(bot *telegram.Bot) deps.MessageSender {
	return bot
}

// registerRoutes registers Telegram handlers and the liveness route
func registerRoutes(
	router *telegramDelivery.Router,
	bot *telegram.Bot,
	liveness *httpDelivery.LivenessHandler,
	srv *server.Server,
) {
	router.RegisterRoutes(bot.Raw())
	liveness.RegisterRoutes(srv.Router)
}
