package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(RequestID(), Logger(l), ErrorHandler(l), Recovery(l))
	return r
}

func TestRequestIDKeepsInboundValue(t *testing.T) {
	r := newEngine()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Body.String() != "abc-123" || rec.Header().Get(HeaderRequestID) != "abc-123" {
		t.Errorf("body=%q header=%q", rec.Body.String(), rec.Header().Get(HeaderRequestID))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rec.Body.String()) != 36 {
		t.Errorf("generated id = %q", rec.Body.String())
	}
}

func TestPanicBecomesErrorPage(t *testing.T) {
	r := newEngine()
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ocorreu um erro inesperado.") || strings.Contains(body, "kaboom") {
		t.Errorf("body = %s", body)
	}

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), `"request_id"`) {
		t.Errorf("json body = %s", rec.Body.String())
	}
}

func TestRedirectIfAuthenticatedWithoutSession(t *testing.T) {
	r := newEngine()
	r.GET("/login", RedirectIfAuthenticated("/produtos"), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
