package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/enrolldash/internal/domain/models"
)

// CourseAPI is a stand-in for the external course API. It serves the
// ShowAllCourses endpoint and counts requests.
type CourseAPI struct {
	*httptest.Server

	mu      sync.Mutex
	courses []models.Course
	status  int
	hits    int
}

// NewCourseAPI starts a CourseAPI serving courses. The server is closed
// when the test ends.
func NewCourseAPI(t *testing.T, courses []models.Course) *CourseAPI {
	t.Helper()
	api := &CourseAPI{courses: courses, status: http.StatusOK}
	api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.Close)
	return api
}

// FailWith makes subsequent requests answer with status and no body.
func (a *CourseAPI) FailWith(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
}

// Hits returns how many requests the API has received.
func (a *CourseAPI) Hits() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits
}

func (a *CourseAPI) serve(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.hits++
	status, courses := a.status, a.courses
	a.mu.Unlock()

	if r.URL.Path != "/api/Course/ShowAllCourses" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(courses)
}

// SampleCourses returns a small, fixed course collection.
func SampleCourses() []models.Course {
	day := func(y int, m time.Month, d int) models.Date {
		return models.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
	}
	return []models.Course{
		{
			CourseID:     101,
			CourseName:   "Intro to Algebra",
			Description:  "Linear equations & inequalities",
			MaxSeats:     30,
			CurrentSeats: 12,
			StartDate:    day(2024, time.September, 2),
			EndDate:      day(2024, time.December, 20),
		},
		{
			CourseID:     102,
			CourseName:   "World History",
			Description:  "From <antiquity> to today",
			MaxSeats:     25,
			CurrentSeats: 25,
			StartDate:    day(2024, time.September, 3),
			EndDate:      day(2025, time.January, 17),
		},
		{
			CourseID:     103,
			CourseName:   "Chemistry",
			Description:  "",
			MaxSeats:     20,
			CurrentSeats: 0,
			StartDate:    day(2025, time.January, 6),
			EndDate:      day(2025, time.May, 30),
		},
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }
