// internal/app/features/dashboard/routes.go
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

// Routes wires the dashboard feature under whatever mount point the
// top-level router chooses (e.g., "/dashboard").
//
// The page itself is open: a missing navigation context renders blank
// identity fields rather than redirecting. allowedOrigins governs CORS on
// the JSON state endpoint only. An empty list sends no CORS headers at all,
// so browsers keep the endpoint same-origin.
func Routes(h *Handler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDashboard)
	r.Post("/enter", h.ServeEnter)

	if len(allowedOrigins) == 0 {
		// rs/cors reads an empty AllowedOrigins as "*".
		r.Get("/state", h.ServeState)
		return r
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet},
		AllowCredentials: true,
	})
	r.Group(func(cr chi.Router) {
		cr.Use(c.Handler)
		cr.Get("/state", h.ServeState)
		// Preflight requests are answered by the CORS middleware.
		cr.Options("/state", func(http.ResponseWriter, *http.Request) {})
	})

	return r
}
