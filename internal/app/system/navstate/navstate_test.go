package navstate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/enrolldash/internal/app/system/navstate"
	"github.com/dalemusser/enrolldash/internal/domain/models"
	"go.uber.org/zap"
)

const testKey = "test-navstate-key-for-testing-only-0123456789"

func newManager(t *testing.T) *navstate.Manager {
	t.Helper()
	m, err := navstate.NewManager(testKey, "test-nav", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

// enter writes id and returns the cookies a browser would send back.
func enter(t *testing.T, m *navstate.Manager, id models.Identity) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest("POST", "/dashboard/enter", nil)
	rec := httptest.NewRecorder()
	if err := m.Enter(rec, req, id); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	return rec.Result().Cookies()
}

func TestNewManager_EmptyKey(t *testing.T) {
	if _, err := navstate.NewManager("", "x", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestNewManager_DefaultName(t *testing.T) {
	m, err := navstate.NewManager(testKey, "", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if m.Name() != navstate.DefaultName {
		t.Errorf("Name(): got %q, want %q", m.Name(), navstate.DefaultName)
	}
}

func TestIdentity_AbsentWithoutCookie(t *testing.T) {
	m := newManager(t)
	req := httptest.NewRequest("GET", "/dashboard", nil)

	id, ok := m.Identity(req)
	if ok {
		t.Errorf("expected no identity, got %+v", id)
	}
	if id != (models.Identity{}) {
		t.Errorf("expected zero identity, got %+v", id)
	}
}

func TestEnterThenIdentity(t *testing.T) {
	m := newManager(t)
	want := models.Identity{FullName: "Ada Lovelace", UserID: "42", UserType: models.UserTypeAdmin}
	cookies := enter(t, m, want)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	got, ok := m.Identity(req)
	if !ok {
		t.Fatal("expected identity to be present")
	}
	if got != want {
		t.Errorf("Identity(): got %+v, want %+v", got, want)
	}
}

func TestIdentity_TamperedCookieIsAbsent(t *testing.T) {
	m := newManager(t)
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "test-nav", Value: "not-a-signed-value"})

	if _, ok := m.Identity(req); ok {
		t.Error("expected tampered cookie to be treated as absent")
	}
}

func TestIdentity_OtherKeyIsAbsent(t *testing.T) {
	other, err := navstate.NewManager("a-completely-different-signing-key-0123456789", "test-nav", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	cookies := enter(t, other, models.Identity{UserID: "1", UserType: models.UserTypeAdmin})

	m := newManager(t)
	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if _, ok := m.Identity(req); ok {
		t.Error("expected cookie signed with another key to be treated as absent")
	}
}

func TestClear_DeletesCookie(t *testing.T) {
	m := newManager(t)
	cookies := enter(t, m, models.Identity{UserID: "7"})

	req := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	if err := m.Clear(rec, req); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-nav" {
			found = true
			if c.MaxAge != -1 {
				t.Errorf("cookie MaxAge: got %d, want -1", c.MaxAge)
			}
		}
	}
	if !found {
		t.Error("expected navigation cookie to be set for deletion")
	}
}

func TestClear_WithoutCookie(t *testing.T) {
	m := newManager(t)
	req := httptest.NewRequest("POST", "/logout", nil)
	rec := httptest.NewRecorder()
	if err := m.Clear(rec, req); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
}
