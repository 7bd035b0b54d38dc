// Package domain contains all domain modules
package domain

import (
	"go.uber.org/fx"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc"
)

// Module aggregates all domain modules for fx dependency injection
var Module = fx.Module("domain",
	ipc.Module,
)
