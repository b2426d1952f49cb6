// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/enrolldash/internal/app/system/timeouts"
	"github.com/dalemusser/enrolldash/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CourseLister reads the full course collection.
type CourseLister interface {
	ListAll(ctx context.Context) ([]models.Course, error)
}

// NavState reads and writes the inbound navigation context.
type NavState interface {
	Identity(r *http.Request) (models.Identity, bool)
	Enter(w http.ResponseWriter, r *http.Request, id models.Identity) error
}

// RenderFunc renders a named template.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

type Handler struct {
	Courses  CourseLister
	Nav      NavState
	Validate *validator.Validate
	Render   RenderFunc
	Log      *zap.Logger
}

func NewHandler(courses CourseLister, nav NavState, logger *zap.Logger) *Handler {
	return &Handler{
		Courses:  courses,
		Nav:      nav,
		Validate: validator.New(),
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
		Log: logger,
	}
}

// mount builds the state for one view instance: enter with the navigation
// context, run the course read if the transition asks for it, and apply the
// optional collapse toggle.
func (h *Handler) mount(r *http.Request) (ViewState, string) {
	viewID := uuid.NewString()

	id, present := h.Nav.Identity(r)
	st, eff := NewViewState().Apply(Entered{Identity: id, Present: present})
	if eff == EffectFetchCourses {
		st = h.fetchCourses(r.Context(), st, viewID)
	}

	if r.URL.Query().Get("courses") == "open" {
		st, _ = st.Apply(CoursesToggled{})
	}
	return st, viewID
}

// fetchCourses performs the one course read. A failure is logged and leaves
// the state as it was.
func (h *Handler) fetchCourses(parent context.Context, st ViewState, viewID string) ViewState {
	ctx, cancel := timeouts.WithTimeout(parent, timeouts.CourseFetch(), h.Log, "course list fetch")
	defer cancel()

	courses, err := h.Courses.ListAll(ctx)
	if err != nil {
		h.Log.Error("error fetching courses",
			zap.String("view_id", viewID),
			zap.Stringer("user_type", st.Identity.UserType),
			zap.Error(err))
		st, _ = st.Apply(CoursesFailed{Err: err})
		return st
	}

	st, _ = st.Apply(CoursesLoaded{Courses: courses})
	return st
}
