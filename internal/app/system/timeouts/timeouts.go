// Package timeouts provides centralized timeout values for outbound calls.
//
// Handlers wrap outbound I/O with context.WithTimeout using these values.
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults are used.
//
//   - Ping: health checks against the course API
//   - CourseFetch: the dashboard's course-list read; zero means no deadline
//     beyond the request context
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing        = 2 * time.Second
	DefaultCourseFetch = time.Duration(0)
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping        = DefaultPing
	courseFetch = DefaultCourseFetch
)

// Ping returns the timeout for health checks against the course API.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// CourseFetch returns the deadline applied to the dashboard's course read.
// Zero means the read is bounded only by the request context.
func CourseFetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return courseFetch
}

// Config holds timeout configuration values.
// A zero Ping is ignored; a zero CourseFetch disables the fetch deadline.
type Config struct {
	Ping        time.Duration
	CourseFetch time.Duration
}

// Configure sets custom timeout values. This should be called during
// application startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.CourseFetch >= 0 {
		courseFetch = cfg.CourseFetch
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	courseFetch = DefaultCourseFetch
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:        ping,
		CourseFetch: courseFetch,
	}
}

// WithTimeout derives a context bounded by timeout. A non-positive timeout
// returns a cancelable child of parent with no deadline. The returned cancel
// logs a warning if the deadline was what ended the context.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.CourseFetch(), h.Log, "course list fetch")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
