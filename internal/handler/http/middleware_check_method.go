package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// It answers 404 instead of chi's default 405 when the matched route does not
// handle the requested method, so that unsupported methods do not reveal the
// route. Only exact route patterns are compared.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range allRoutes(router) {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// allRoutes flattens the routes of mounted sub-routers into full patterns.
func allRoutes(router chi.Routes) []chi.Route {
	var routes []chi.Route
	_ = chi.Walk(router, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = appendRoute(routes, route, method, handler)
		return nil
	})
	return routes
}

func appendRoute(routes []chi.Route, pattern, method string, handler http.Handler) []chi.Route {
	for i := range routes {
		if routes[i].Pattern == pattern {
			routes[i].Handlers[method] = handler
			return routes
		}
	}
	return append(routes, chi.Route{
		Pattern:  pattern,
		Handlers: map[string]http.Handler{method: handler},
	})
}
