package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/enrolldash/internal/app/features/health"
	"github.com/dalemusser/enrolldash/internal/app/store/courses"
	"github.com/dalemusser/enrolldash/internal/testutil"
	"go.uber.org/zap"
)

type healthBody struct {
	Status    string `json:"status"`
	CourseAPI string `json:"course_api"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

func serve(t *testing.T, handler *health.Handler) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_CourseAPIReachable(t *testing.T) {
	api := testutil.NewCourseAPI(t, testutil.SampleCourses())
	handler := health.NewHandler(courses.New(api.URL, api.Client()), zap.NewNop())

	rec, body := serve(t, handler)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	if body.Status != "ok" || body.CourseAPI != "reachable" {
		t.Errorf("body: got %+v", body)
	}
}

func TestServe_CourseAPIDown(t *testing.T) {
	api := testutil.NewCourseAPI(t, nil)
	api.FailWith(http.StatusBadGateway)
	handler := health.NewHandler(courses.New(api.URL, api.Client()), zap.NewNop())

	rec, body := serve(t, handler)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.Status != "error" || body.CourseAPI != "unreachable" {
		t.Errorf("body: got %+v", body)
	}
	if body.Message != "Course API unavailable" || body.Error == "" {
		t.Errorf("expected message and error, got %+v", body)
	}
}

func TestRoutes_GetAndHead(t *testing.T) {
	api := testutil.NewCourseAPI(t, nil)
	r := health.Routes(health.NewHandler(courses.New(api.URL, api.Client()), zap.NewNop()))

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s /: got %d, want %d", method, rec.Code, http.StatusOK)
		}
	}
}
