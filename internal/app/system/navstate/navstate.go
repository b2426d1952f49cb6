// Package navstate carries the dashboard's inbound navigation context.
//
// The login/routing collaborator hands the viewer's identity over by calling
// Enter; the dashboard reads it back with Identity. Logout calls Clear. The
// state lives in a signed cookie, so nothing is persisted server-side.
package navstate

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/enrolldash/internal/domain/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	// DefaultName is the cookie name used when none is configured.
	DefaultName = "enrolldash-nav"

	fullNameKey = "full_name"
	userIDKey   = "user_id"
	userTypeKey = "user_type"
)

// Manager reads and writes navigation state cookies.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager signing cookies with key. The `secure` flag
// controls the Secure attribute and SameSite mode, as for any session cookie:
// Secure + SameSite=None in production, Lax over plain http in dev.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if key == "" {
		return nil, fmt.Errorf("navigation state key is empty; provide ≥32 random chars")
	}
	if len(key) < 32 {
		logger.Warn("navigation state key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}
	if name == "" {
		name = DefaultName
	}

	store := sessions.NewCookieStore([]byte(key))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   0, // browser-session cookie
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("navigation state store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{store: store, name: name, log: logger}, nil
}

// Name returns the cookie name.
func (m *Manager) Name() string { return m.name }

// Enter records id as the current navigation context.
func (m *Manager) Enter(w http.ResponseWriter, r *http.Request, id models.Identity) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil && !isDecodeError(err) {
		return fmt.Errorf("load navigation state: %w", err)
	}
	sess.Values[fullNameKey] = id.FullName
	sess.Values[userIDKey] = id.UserID
	sess.Values[userTypeKey] = id.UserType.Code()
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save navigation state: %w", err)
	}
	return nil
}

// Identity returns the navigation context carried by r. ok is false when
// there is none, including when the cookie cannot be decoded.
func (m *Manager) Identity(r *http.Request) (models.Identity, bool) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		if isDecodeError(err) {
			m.log.Warn("navigation state undecodable; treating as absent", zap.Error(err))
		} else {
			m.log.Warn("navigation state load failed", zap.Error(err))
		}
		return models.Identity{}, false
	}
	if sess.IsNew {
		return models.Identity{}, false
	}

	id := models.Identity{
		FullName: getString(sess, fullNameKey),
		UserID:   getString(sess, userIDKey),
	}
	code, _ := sess.Values[userTypeKey].(int)
	ut, known := models.ParseUserType(code)
	if !known {
		m.log.Warn("unknown user type code; using student view", zap.Int("code", code))
	}
	id.UserType = ut
	return id, true
}

// Clear deletes the navigation state cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// Decode failed; still overwrite the cookie below.
		m.log.Warn("navigation state decode failed during clear", zap.Error(err))
	}

	// The deletion cookie must match the store's settings.
	if opts := m.store.Options; opts != nil {
		sess.Options.Domain = opts.Domain
		sess.Options.Path = opts.Path
		sess.Options.Secure = opts.Secure
		sess.Options.HttpOnly = opts.HttpOnly
		sess.Options.SameSite = opts.SameSite
	}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear navigation state: %w", err)
	}
	return nil
}

func isDecodeError(err error) bool {
	var scErr securecookie.Error
	return errors.As(err, &scErr) && scErr.IsDecode()
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
