// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging level, request limits).
type AppConfig struct {
	// Course API
	CourseAPIBaseURL string        `validate:"required,url"` // e.g., http://localhost:5000
	CourseAPITimeout time.Duration `validate:"min=0"`        // 0 means no deadline beyond the request

	// Navigation state cookie
	NavKey    string `validate:"required"` // signing key (must be strong in production)
	NavName   string `validate:"required"` // cookie name
	NavDomain string // cookie domain (blank means current host)

	// CORS for the JSON state endpoint (empty means same-origin only)
	CORSAllowedOrigins []string `validate:"dive,required"`

	// Health checks
	PingTimeout time.Duration `validate:"min=0"`
}
