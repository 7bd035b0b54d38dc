// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/archita9/IPC-News-Bot/internal/infrastructure/http"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure/logger"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure/metrics"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure/telegram"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	telegram.Module,
	http.Module,
)
