package home

import (
	"net/http"

	"github.com/dalemusser/enrolldash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the root page.
type Handler struct {
	Log    *zap.Logger
	Render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot is where logout lands. It offers the navigation handoff form
// that opens the dashboard.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
	}

	h.Render(w, r, "home", data)
}
