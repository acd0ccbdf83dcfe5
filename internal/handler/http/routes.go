package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		// compressed JSON and text endpoints
		r.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}
			r.Use(withGZip)
			r.Get("/notifications", h.getNotifications)
			r.Get("/devices", h.getDevices)
			r.Get("/commands", h.getCommands)
			r.Get("/status", h.getStatus)
			r.Get("/version", h.getServerVersion)
			r.Get("/build", h.getBuildInfo)
		})

		// the websocket upgrade needs the raw connection
		r.Get("/events", h.streamEvents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
