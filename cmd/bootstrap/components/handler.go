package components

import (
	"slotbooker/internal/handler"
	"slotbooker/internal/handler/api"
	"slotbooker/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewServiceTypeHandler,
		api.NewScheduleHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	slot *api.SlotHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	serviceType *api.ServiceTypeHandler,
	schedule *api.ScheduleHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Slot:        slot,
		Booking:     booking,
		Payment:     payment,
		ServiceType: serviceType,
		Schedule:    schedule,
	}
}
