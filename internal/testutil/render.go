package testutil

import (
	"html/template"
	"io/fs"
	"net/http"
	"testing"

	"github.com/dalemusser/enrolldash/internal/app/resources"
)

// TemplateRenderer parses the shared templates plus each feature set and
// returns a render function with the same shape handlers use in
// production. Execution errors fail the test.
func TemplateRenderer(t *testing.T, sets ...fs.FS) func(w http.ResponseWriter, r *http.Request, name string, data any) {
	t.Helper()
	tmpl, err := template.ParseFS(resources.FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse shared templates: %v", err)
	}
	for _, set := range sets {
		if tmpl, err = tmpl.ParseFS(set, "templates/*.gohtml"); err != nil {
			t.Fatalf("parse feature templates: %v", err)
		}
	}
	return func(w http.ResponseWriter, r *http.Request, name string, data any) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
			t.Errorf("execute %q: %v", name, err)
		}
	}
}
