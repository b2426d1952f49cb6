// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: course_api_base_url, nav_name, etc.
//   - Environment variables: ENROLLDASH_COURSE_API_BASE_URL, etc.
//   - Command-line flags: --course_api_base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "course_api_base_url", Default: "http://localhost:5000", Desc: "Base URL of the course API"},
	{Name: "course_api_timeout", Default: "0s", Desc: "Deadline for the dashboard course read (0 = none)"},

	{Name: "nav_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Navigation state signing key (must be strong in production)"},
	{Name: "nav_name", Default: "enrolldash-nav", Desc: "Navigation state cookie name"},
	{Name: "nav_domain", Default: "", Desc: "Navigation state cookie domain (blank means current host)"},

	{Name: "cors_allowed_origins", Default: "http://localhost:3000", Desc: "Comma-separated origins allowed to read /dashboard/state"},

	{Name: "ping_timeout", Default: "2s", Desc: "Timeout for course API health pings"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ENROLLDASH", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		CourseAPIBaseURL: appValues.String("course_api_base_url"),
		CourseAPITimeout: appValues.Duration("course_api_timeout", 0),

		NavKey:    appValues.String("nav_key"),
		NavName:   appValues.String("nav_name"),
		NavDomain: appValues.String("nav_domain"),

		CORSAllowedOrigins: splitList(appValues.String("cors_allowed_origins")),

		PingTimeout: appValues.Duration("ping_timeout", 2*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	return validateAppConfig(validator.New(), appCfg, logger)
}

func validateAppConfig(v *validator.Validate, appCfg AppConfig, logger *zap.Logger) error {
	if err := v.Struct(appCfg); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return fmt.Errorf("invalid app config: %w", err)
	}
	return nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
