// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"net/http"

	coursestore "github.com/dalemusser/enrolldash/internal/app/store/courses"
)

// DBDeps holds back-end dependencies for the app. The dashboard owns no
// database; its one backend is the course API.
type DBDeps struct {
	HTTPClient *http.Client
	Courses    *coursestore.Store
}
