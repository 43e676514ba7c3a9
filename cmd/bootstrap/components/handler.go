package components

import (
	"canchacontrol/internal/handler"
	"canchacontrol/internal/handler/api"
	"canchacontrol/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFieldHandler,
		api.NewReservationHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
