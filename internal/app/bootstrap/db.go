// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"net/http"

	coursestore "github.com/dalemusser/enrolldash/internal/app/store/courses"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the back-end clients. Nothing is dialed here; the course
// API is contacted lazily on each dashboard mount.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client := &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	store := coursestore.New(appCfg.CourseAPIBaseURL, client)

	logger.Info("course API client ready", zap.String("base_url", store.BaseURL()))

	return DBDeps{
		HTTPClient: client,
		Courses:    store,
	}, nil
}

// EnsureSchema sets up indexes or schema as needed. There is no schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
