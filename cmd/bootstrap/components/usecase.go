package components

import (
	"slotbooker/internal/pkg/clock"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewScheduleUseCase,
		commands.NewServiceTypeUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewCatalogQueries,
	),
)
