// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"go.uber.org/zap"
)

// NavClearer removes the navigation state carried by a request.
type NavClearer interface {
	Clear(w http.ResponseWriter, r *http.Request) error
}

type Handler struct {
	Log *zap.Logger
	Nav NavClearer
}

func NewHandler(nav NavClearer, logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
		Nav: nav,
	}
}

// ServeLogout handles GET and POST /logout.
//
// It always ends at the application root, whatever the viewer's type or
// the state of any course fetch.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Nav.Clear(w, r); err != nil {
		h.Log.Error("logout: clear navigation state", zap.Error(err))
	}

	// HTMX handling: use HX-Redirect to force a client-side navigation to "/".
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
