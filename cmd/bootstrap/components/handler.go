package components

import (
	"parkshare/internal/handler"
	"parkshare/internal/handler/api"
	"parkshare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)

func NewHandlers(
	resource *api.ResourceHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Resource: resource,
		Booking:  booking,
		Payment:  payment,
		Review:   review,
	}
}
