package errors_test

import (
	"net/http"
	"testing"

	errorsfeature "github.com/dalemusser/enrolldash/internal/app/features/errors"
	"github.com/dalemusser/enrolldash/internal/testutil"
)

func TestNotFound(t *testing.T) {
	h := errorsfeature.NewHandler()
	h.Render = testutil.TemplateRenderer(t, errorsfeature.FS)

	rec := testutil.NewRecorder()
	h.NotFound(rec, testutil.NewRequest("GET", "/nope"))

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Page not found")
	rec.AssertContains(t, `href="/"`)
}
