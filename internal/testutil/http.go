package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/enrolldash/internal/app/system/navstate"
	"github.com/dalemusser/enrolldash/internal/domain/models"
	"go.uber.org/zap"
)

// NavKey signs navigation cookies in tests.
const NavKey = "test-navstate-key-for-testing-only-0123456789"

// NavCookieName is the navigation cookie name used by NewNavManager.
const NavCookieName = "test-nav"

// AdminIdentity returns an identity that selects the admin view.
func AdminIdentity() models.Identity {
	return models.Identity{
		FullName: "Test Admin",
		UserID:   "1001",
		UserType: models.UserTypeAdmin,
	}
}

// StudentIdentity returns an identity that selects the student view.
func StudentIdentity() models.Identity {
	return models.Identity{
		FullName: "Test Student",
		UserID:   "2002",
		UserType: models.UserTypeStudent,
	}
}

// NewNavManager returns a navstate.Manager suitable for tests.
func NewNavManager(t *testing.T) *navstate.Manager {
	t.Helper()
	m, err := navstate.NewManager(NavKey, NavCookieName, "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("navstate.NewManager failed: %v", err)
	}
	return m
}

// WithIdentity returns a copy of r carrying the navigation cookie for id.
func WithIdentity(t *testing.T, m *navstate.Manager, r *http.Request, id models.Identity) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := m.Enter(rec, httptest.NewRequest("POST", "/dashboard/enter", nil), id); err != nil {
		t.Fatalf("navstate Enter failed: %v", err)
	}
	out := r.Clone(r.Context())
	for _, c := range rec.Result().Cookies() {
		out.AddCookie(c)
	}
	return out
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// AssertNotContains checks that the response body lacks the given string.
func (r *ResponseRecorder) AssertNotContains(t interface{ Errorf(string, ...any) }, unexpected string) {
	if strings.Contains(r.Body.String(), unexpected) {
		t.Errorf("response body unexpectedly contains %q", unexpected)
	}
}
