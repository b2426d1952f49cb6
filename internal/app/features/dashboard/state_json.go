// internal/app/features/dashboard/state_json.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/enrolldash/internal/domain/models"
	"go.uber.org/zap"
)

type identityJSON struct {
	FullName     string `json:"fullName"`
	UserID       string `json:"userId"`
	UserType     string `json:"userType"`
	UserTypeCode int    `json:"userTypeCode"`
}

type enrollmentJSON struct {
	models.Enrollment
	Band  string `json:"band"`
	Color string `json:"color"`
}

type stateResponse struct {
	ViewID           string           `json:"viewId"`
	View             string           `json:"view"`
	Identity         *identityJSON    `json:"identity"`
	Enrollments      []enrollmentJSON `json:"enrollments"`
	Courses          []models.Course  `json:"courses"`
	Students         []models.Student `json:"students"`
	CoursesOpen      bool             `json:"coursesOpen"`
	StudentModalOpen bool             `json:"studentModalOpen"`
	CourseModalOpen  bool             `json:"courseModalOpen"`
}

// ServeState handles GET /dashboard/state.
//
// It runs the same mount as the HTML page and answers with the resulting
// view state:
//
//	{ "viewId":"…", "view":"admin", "identity":{…}, "courses":[…], … }
func (h *Handler) ServeState(w http.ResponseWriter, r *http.Request) {
	st, viewID := h.mount(r)

	resp := stateResponse{
		ViewID:           viewID,
		View:             st.Identity.UserType.String(),
		Enrollments:      make([]enrollmentJSON, 0, len(st.Enrollments)),
		Courses:          st.Courses,
		Students:         st.Students,
		CoursesOpen:      st.CoursesOpen,
		StudentModalOpen: st.StudentModalOpen,
		CourseModalOpen:  st.CourseModalOpen,
	}
	if st.HasIdentity {
		resp.Identity = &identityJSON{
			FullName:     st.Identity.FullName,
			UserID:       st.Identity.UserID,
			UserType:     st.Identity.UserType.String(),
			UserTypeCode: st.Identity.UserType.Code(),
		}
	}
	for _, e := range st.Enrollments {
		band := BandFor(e.Progress)
		resp.Enrollments = append(resp.Enrollments, enrollmentJSON{
			Enrollment: e,
			Band:       band.String(),
			Color:      band.Color(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("dashboard state: encode failed", zap.Error(err))
	}
}
