package session

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/config"
)

// MaxAge is how long the browser keeps the session cookie. The token
// itself has no client-side expiry.
const MaxAge = 30 * 24 * time.Hour

// FromConfig builds the store selected by SESSION_STORE.
func FromConfig(cfg config.Config) (Store, error) {
	switch cfg.SessionStore {
	case "", "cookie":
		return NewCookieStore([]byte(cfg.SessionSecret), cfg.CookieSecure, MaxAge), nil
	case "db":
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("session: connect database: %w", err)
		}
		return NewDBStore(db, cfg.CookieSecure, MaxAge), nil
	default:
		return nil, fmt.Errorf("session: unknown store %q", cfg.SessionStore)
	}
}
