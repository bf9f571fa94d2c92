package flash

import (
	"errors"
	"strings"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/gabrielcoffee/mba-fullstack-frontend/pkg/view"
)

var ErrInvalid = errors.New("invalid flash cookie")

// MaxAge is how long a flash survives; it only has to outlive one redirect.
const MaxAge = 2 * time.Minute

// Codec signs flash messages into a cookie value.
type Codec struct {
	CookieName string
	Secure     bool
	sc         *securecookie.SecureCookie
}

func NewCodec(hashKey []byte, cookieName string, secure bool) *Codec {
	sc := securecookie.New(hashKey, nil).
		MaxAge(int(MaxAge.Seconds())).
		SetSerializer(securecookie.JSONEncoder{})
	return &Codec{CookieName: cookieName, Secure: secure, sc: sc}
}

func (c *Codec) Encode(f view.Flash) (string, error) {
	return c.sc.Encode(c.CookieName, f)
}

func (c *Codec) Decode(v string) (*view.Flash, error) {
	var f view.Flash
	if err := c.sc.Decode(c.CookieName, v, &f); err != nil {
		return nil, ErrInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		return nil, ErrInvalid
	}
	return &f, nil
}

func (c *Codec) CookieMaxAge() int {
	return int(MaxAge.Seconds())
}
