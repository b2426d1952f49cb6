// internal/app/features/dashboard/state.go
package dashboard

import "github.com/dalemusser/enrolldash/internal/domain/models"

// ViewState is everything one dashboard instance holds. It changes only
// through Apply.
//
// Students, Enrollments, the selected-student/course slots and both modal
// flags have no event that sets them; they render as empty or closed.
type ViewState struct {
	Identity    models.Identity
	HasIdentity bool
	Mounted     bool

	Enrollments []models.Enrollment
	Courses     []models.Course
	Students    []models.Student

	SelectedStudentName        *string
	SelectedStudentEnrollments []models.Enrollment
	SelectedCourse             *models.Course

	CoursesOpen      bool
	StudentModalOpen bool
	CourseModalOpen  bool
}

// Effect is the side effect a transition asks the caller to perform.
type Effect int

const (
	EffectNone Effect = iota
	EffectFetchCourses
)

// Event is an input to ViewState.Apply.
type Event interface {
	isEvent()
}

// Entered is delivered when the view is entered with the given navigation
// context. Present is false when no context was handed over.
type Entered struct {
	Identity models.Identity
	Present  bool
}

// CoursesLoaded carries a successful course-list read.
type CoursesLoaded struct {
	Courses []models.Course
}

// CoursesFailed carries a failed course-list read.
type CoursesFailed struct {
	Err error
}

// CoursesToggled flips the courses collapse region.
type CoursesToggled struct{}

func (Entered) isEvent()        {}
func (CoursesLoaded) isEvent()  {}
func (CoursesFailed) isEvent()  {}
func (CoursesToggled) isEvent() {}

// NewViewState returns the state before the view is entered.
func NewViewState() ViewState {
	return ViewState{
		Enrollments:                []models.Enrollment{},
		Courses:                    []models.Course{},
		Students:                   []models.Student{},
		SelectedStudentEnrollments: []models.Enrollment{},
	}
}

// Apply returns the state after ev and the effect the caller must run.
func (s ViewState) Apply(ev Event) (ViewState, Effect) {
	switch e := ev.(type) {
	case Entered:
		// The course read depends only on the user type: first entry or a
		// changed type triggers it.
		fetch := !s.Mounted || s.Identity.UserType != e.Identity.UserType
		s.Identity = e.Identity
		s.HasIdentity = e.Present
		s.Mounted = true
		if fetch {
			return s, EffectFetchCourses
		}
		return s, EffectNone

	case CoursesLoaded:
		if e.Courses == nil {
			s.Courses = []models.Course{}
		} else {
			s.Courses = e.Courses
		}
		return s, EffectNone

	case CoursesFailed:
		return s, EffectNone

	case CoursesToggled:
		s.CoursesOpen = !s.CoursesOpen
		return s, EffectNone
	}
	return s, EffectNone
}

// IsAdmin reports whether the admin view renders.
func (s ViewState) IsAdmin() bool {
	return s.Identity.UserType.IsAdmin()
}
