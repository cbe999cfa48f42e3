package bootstrap

import (
	"slotbooker/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule provides the env-derived Config to the rest of the graph.
// main loads .env before fx starts, so envconfig sees file-backed values.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)
