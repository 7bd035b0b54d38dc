// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/archita9/IPC-News-Bot/config"
	"github.com/archita9/IPC-News-Bot/internal/domain"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, metrics, telegram bot, http server)
		infrastructure.Module,

		// Domain (ipc news lookups)
		domain.Module,
	)
}
