package router

import (
	"zeit/internal/handlers/system"
	"zeit/internal/handlers/worldtime"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	WorldTime worldtime.Handler
	System    system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.System.RootRouter(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.System.Router(routerGroup)
		r.DomainHandlers.WorldTime.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
