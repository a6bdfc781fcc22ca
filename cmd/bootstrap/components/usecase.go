package components

import (
	"pos-api/internal/pkg/clock"
	"pos-api/internal/pkg/config"
	"pos-api/internal/usecase/commands"
	"pos-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewPOSConfig,
		commands.NewSessionUseCase,
		commands.NewPurchaseUseCase,
		queries.NewCatalogQueries,
		NewTokenVerifier,
	),
)

func NewPOSConfig(cfg config.Config) config.POSConfig {
	return cfg.POS
}

func NewTokenVerifier(sessionCommands commands.SessionCommands) commands.TokenVerifier {
	return sessionCommands
}
