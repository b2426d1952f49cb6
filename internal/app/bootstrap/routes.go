// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/enrolldash/internal/app/features/dashboard"
	_ "github.com/dalemusser/enrolldash/internal/app/features/dashboard/views"
	errorsfeature "github.com/dalemusser/enrolldash/internal/app/features/errors"
	healthfeature "github.com/dalemusser/enrolldash/internal/app/features/health"
	homefeature "github.com/dalemusser/enrolldash/internal/app/features/home"
	_ "github.com/dalemusser/enrolldash/internal/app/features/home/views"
	logoutfeature "github.com/dalemusser/enrolldash/internal/app/features/logout"
	"github.com/dalemusser/enrolldash/internal/app/system/navstate"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, back-end clients and Startup have
// completed. It boots the template engine, builds the navigation state
// manager, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	nav, err := navstate.NewManager(appCfg.NavKey, appCfg.NavName, appCfg.NavDomain, secure, logger)
	if err != nil {
		logger.Error("navigation state init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Courses, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Application root; logout lands here.
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Dashboard: HTML view, JSON state, navigation handoff.
	dashboardHandler := dashboardfeature.NewHandler(deps.Courses, nav, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, appCfg.CORSAllowedOrigins))

	logoutHandler := logoutfeature.NewHandler(nav, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	return r, nil
}
