package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListLeagueTeams)
}

func registerCalendarRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/calendar/preview", handler.PreviewCalendar)
	mux.HandleFunc("POST /v1/calendar/export", handler.ExportCalendar)
}
