package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler) {
	// "/{$}" matches only the root; unknown paths fall through to 404.
	mux.HandleFunc("GET /{$}", handler.BoardPage)
	mux.HandleFunc("GET /v1/fixtures/upcoming", handler.GetUpcomingFixtures)
}
