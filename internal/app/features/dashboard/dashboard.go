// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/enrolldash/internal/app/system/viewdata"
	"github.com/dalemusser/enrolldash/internal/domain/models"
	"go.uber.org/zap"
)

// enrollmentCard is one card on the student view.
type enrollmentCard struct {
	CourseName   string
	ProgressText string
	Color        string
	BandClass    string
}

type dashboardData struct {
	viewdata.BaseVM
	ViewID string

	HasIdentity bool
	UserID      string
	FullName    string
	IsAdmin     bool

	// Admin view
	Students    []models.Student
	Courses     []models.Course
	CoursesOpen bool

	// Student view
	Cards []enrollmentCard

	// Detail dialogs
	StudentModalOpen           bool
	SelectedStudentName        string
	SelectedStudentEnrollments []enrollmentCard
	CourseModalOpen            bool
	SelectedCourse             *models.Course
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	st, viewID := h.mount(r)

	data := newDashboardData(st)
	data.BaseVM = viewdata.NewBaseVM(r, dashboardTitle(st), "/")
	data.ViewID = viewID

	h.Log.Debug("dashboard served",
		zap.String("view_id", viewID),
		zap.Stringer("user_type", st.Identity.UserType),
		zap.Int("courses", len(st.Courses)))

	h.Render(w, r, "dashboard", data)
}

func dashboardTitle(st ViewState) string {
	if st.IsAdmin() {
		return "Admin Dashboard"
	}
	return "Student Dashboard"
}

func newDashboardData(st ViewState) dashboardData {
	data := dashboardData{
		HasIdentity:                st.HasIdentity,
		UserID:                     st.Identity.UserID,
		FullName:                   st.Identity.FullName,
		IsAdmin:                    st.IsAdmin(),
		Students:                   st.Students,
		Courses:                    st.Courses,
		CoursesOpen:                st.CoursesOpen,
		Cards:                      cardsFor(st.Enrollments),
		StudentModalOpen:           st.StudentModalOpen,
		SelectedStudentEnrollments: cardsFor(st.SelectedStudentEnrollments),
		CourseModalOpen:            st.CourseModalOpen,
		SelectedCourse:             st.SelectedCourse,
	}
	if st.SelectedStudentName != nil {
		data.SelectedStudentName = *st.SelectedStudentName
	}
	return data
}

func cardsFor(enrollments []models.Enrollment) []enrollmentCard {
	cards := make([]enrollmentCard, 0, len(enrollments))
	for _, e := range enrollments {
		band := BandFor(e.Progress)
		cards = append(cards, enrollmentCard{
			CourseName:   e.CourseName,
			ProgressText: progressText(e.Progress),
			Color:        band.Color(),
			BandClass:    band.Class(),
		})
	}
	return cards
}

func progressText(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
