package routes

import (
	"jobpilot/internal/delivery/http/handler"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires pre-built handlers onto the app. Everything under /api/v1
// except auth requires an access token; the websocket endpoint authenticates
// with a token query parameter through the same middleware.
type Registry struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	State         *handler.StateHandler
	Jobs          *handler.JobsHandler
	Profiles      *handler.ProfilesHandler
	Searches      *handler.SearchesHandler
	Modal         *handler.ModalHandler
	Notifications *handler.NotificationsHandler
	AI            *handler.AIHandler
	WS            *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.Auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.AuthMW.Middleware())
	r.State.RegisterRoutes(protected)
	r.Jobs.RegisterRoutes(protected)
	r.Profiles.RegisterRoutes(protected)
	r.Searches.RegisterRoutes(protected)
	r.Modal.RegisterRoutes(protected)
	r.Notifications.RegisterRoutes(protected)
	if r.AI != nil {
		r.AI.RegisterRoutes(protected)
	}
	if r.WS != nil {
		protected.Get("/ws", r.WS.HandleEventsWS)
	}
}
