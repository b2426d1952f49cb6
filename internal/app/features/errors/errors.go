// Package errors serves the friendly error pages.
package errors

import (
	"net/http"

	"github.com/dalemusser/enrolldash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No backends needed; it just renders templates.
type Handler struct {
	Render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
	}
}

// NotFound renders the "page not found" page with a 404 status.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found", "/"),
		Message: "The page you asked for does not exist.",
	}

	w.WriteHeader(http.StatusNotFound)
	h.Render(w, r, "error_not_found", data)
}
