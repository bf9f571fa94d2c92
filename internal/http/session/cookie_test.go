package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
)

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, rec
}

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore([]byte("test-secret"), false, time.Hour)

	c, rec := newContext()
	if err := Bind(store, c).Set("tok_abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	next, _ := newContext(cookies[0])
	tokens := Bind(store, next)
	if tok, err := tokens.Get(); err != nil || tok != "tok_abc" {
		t.Fatalf("get = %q, %v", tok, err)
	}
	if !auth.IsAuthenticated(tokens) {
		t.Error("not authenticated with cookie present")
	}
}

func TestCookieStoreClear(t *testing.T) {
	store := NewCookieStore([]byte("test-secret"), false, time.Hour)

	c, rec := newContext()
	_ = store.Save(c, "tok")
	cookie := rec.Result().Cookies()[0]

	c2, rec2 := newContext(cookie)
	if err := store.Clear(c2); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if tok, _ := store.Load(c2); tok != "" {
		t.Errorf("token visible after clear in same request: %q", tok)
	}
	cleared := rec2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("clear should expire the cookie: %v", cleared)
	}
}

func TestCookieStoreRejectsForeignCookie(t *testing.T) {
	issuer := NewCookieStore([]byte("other-secret"), false, time.Hour)
	c, rec := newContext()
	_ = issuer.Save(c, "tok")

	store := NewCookieStore([]byte("test-secret"), false, time.Hour)
	next, _ := newContext(rec.Result().Cookies()[0])
	if auth.IsAuthenticated(Bind(store, next)) {
		t.Error("cookie signed with another secret must not authenticate")
	}

	garbage, _ := newContext(&http.Cookie{Name: CookieName, Value: "not-a-session"})
	if auth.IsAuthenticated(Bind(store, garbage)) {
		t.Error("garbage cookie must not authenticate")
	}
}

func TestDeriveKey(t *testing.T) {
	a := DeriveKey([]byte("s"), "cookie hash")
	b := DeriveKey([]byte("s"), "cookie block")
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("lengths %d %d", len(a), len(b))
	}
	if string(a) == string(b) {
		t.Error("purposes must yield distinct keys")
	}
	if string(a) != string(DeriveKey([]byte("s"), "cookie hash")) {
		t.Error("derivation must be deterministic")
	}
}
