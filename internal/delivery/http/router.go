package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conftrack/internal/delivery/http/controllers"
	"conftrack/internal/metrics"
)

// Controllers bundles the handlers wired into the router.
type Controllers struct {
	Conferences *controllers.ConferenceController
	Filters     *controllers.FilterController
	Data        *controllers.DataController
	Auth        *controllers.AuthController
}

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards the write endpoints; reads stay open.
func NewRouter(c Controllers, requireAuth func(http.HandlerFunc) http.HandlerFunc, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Conferences
	mux.HandleFunc("GET /conferences", c.Conferences.ListConferences)
	mux.HandleFunc("POST /conferences", requireAuth(c.Conferences.CreateConference))
	mux.HandleFunc("PUT /conferences/{conferenceID}", requireAuth(c.Conferences.UpdateConference))
	mux.HandleFunc("DELETE /conferences/{conferenceID}", requireAuth(c.Conferences.DeleteConference))

	// Filters
	mux.HandleFunc("GET /filters", c.Filters.GetFilters)
	mux.HandleFunc("PUT /filters", c.Filters.UpdateFilters)

	// Data management
	mux.HandleFunc("POST /data/refresh", requireAuth(c.Data.Refresh))
	mux.HandleFunc("PUT /data", requireAuth(c.Data.Import))
	mux.HandleFunc("GET /data/export", c.Data.ExportJSON)
	mux.HandleFunc("GET /data/export/pdf", c.Data.ExportPDF)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Operational
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
