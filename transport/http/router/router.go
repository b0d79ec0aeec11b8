package router

import (
	"libraryhub/internal/handlers/auth"
	"libraryhub/internal/handlers/booking"
	"libraryhub/internal/handlers/library"
	"libraryhub/internal/handlers/plan"
	"libraryhub/internal/handlers/seat"
	"libraryhub/internal/handlers/user"
	"libraryhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Library library.Handler
	Seat    seat.Handler
	Plan    plan.Handler
	User    user.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AuthRole
}

// SetupRoutes mounts every domain under /api. Access is decided per route by the
// embedded permissions table; public routes are marked skip there.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(guarded chi.Router) {
		guarded.Use(r.Middleware.APIKey, r.Middleware.Auth, r.Middleware.RBAC)

		guarded.Route("/api", func(routerGroup chi.Router) {
			r.DomainHandlers.Auth.Router(routerGroup)
			r.DomainHandlers.Library.Router(routerGroup)
			r.DomainHandlers.Seat.Router(routerGroup)
			r.DomainHandlers.Plan.Router(routerGroup)
			r.DomainHandlers.User.Router(routerGroup)
			r.DomainHandlers.Booking.Router(routerGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
