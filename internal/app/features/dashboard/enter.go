// internal/app/features/dashboard/enter.go
package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/enrolldash/internal/domain/models"
	"go.uber.org/zap"
)

// enterForm is the navigation handoff posted by the login/routing
// collaborator.
type enterForm struct {
	FullName string `validate:"max=200"`
	UserID   string `validate:"required,max=100"`
	UserType string `validate:"required,numeric"`
}

// ServeEnter handles POST /dashboard/enter.
//
// It stores the posted identity as the navigation context and redirects to
// the dashboard. Invalid input gets a 400.
func (h *Handler) ServeEnter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := enterForm{
		FullName: strings.TrimSpace(r.PostFormValue("fullName")),
		UserID:   strings.TrimSpace(r.PostFormValue("userId")),
		UserType: strings.TrimSpace(r.PostFormValue("userType")),
	}
	if err := h.Validate.Struct(form); err != nil {
		h.Log.Debug("navigation handoff rejected", zap.Error(err))
		http.Error(w, "invalid navigation state", http.StatusBadRequest)
		return
	}

	code, err := strconv.Atoi(form.UserType)
	if err != nil {
		http.Error(w, "invalid navigation state", http.StatusBadRequest)
		return
	}
	ut, known := models.ParseUserType(code)
	if !known {
		h.Log.Warn("unknown user type code; using student view", zap.Int("code", code))
	}

	id := models.Identity{
		FullName: form.FullName,
		UserID:   form.UserID,
		UserType: ut,
	}
	if err := h.Nav.Enter(w, r, id); err != nil {
		h.Log.Error("navigation handoff: save failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
