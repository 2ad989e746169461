package components

import (
	"checkout-engine/internal/handler"
	"checkout-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewCouponHandler,
		api.NewDeliveryHandler,
	),
	fx.Invoke(handler.NewRouter),
)
