package http

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend/backendtest"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/config"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/session"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/products"
)

type testApp struct {
	fake   *backendtest.Fake
	api    *httptest.Server
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := backendtest.New()
	api := httptest.NewServer(fake.Handler())
	t.Cleanup(api.Close)

	cfg, err := config.FromLookup(func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.BackendBaseURL = api.URL

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.NewClient(api.URL, 5*time.Second)
	r := NewRouter(l, Deps{
		Config:       cfg,
		Auth:         auth.NewService(client, l),
		Products:     products.NewService(client),
		Sessions:     session.NewCookieStore([]byte(cfg.SessionSecret), false, time.Hour),
		ResolveImage: client.ResolveURL,
	})
	return &testApp{fake: fake, api: api, router: r}
}

// browser replays cookies between requests the way a real one would.
type browser struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) browser(t *testing.T) *browser {
	return &browser{t: t, app: a, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.app.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postMultipart(path string, fields map[string]string, fileName string, file []byte) *httptest.ResponseRecorder {
	b.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("image", fileName)
		if err != nil {
			b.t.Fatalf("form file: %v", err)
		}
		_, _ = fw.Write(file)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return b.do(req)
}

func (b *browser) login() {
	b.t.Helper()
	rec := b.postForm("/login", url.Values{"email": {b.app.fake.Email}, "password": {b.app.fake.Password}})
	if rec.Code != http.StatusFound {
		b.t.Fatalf("login status = %d, body:\n%s", rec.Code, rec.Body.String())
	}
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, prefix string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, prefix) {
		t.Fatalf("location = %q, want prefix %q", loc, prefix)
	}
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(body, w) {
			t.Errorf("body missing %q", w)
		}
	}
}

func TestLandingRedirects(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	assertRedirect(t, b.get("/"), "/login")
	b.login()
	assertRedirect(t, b.get("/"), "/produtos")
}

func TestProtectedPagesRequireToken(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	for _, path := range []string{"/produtos", "/produtos/cadastro"} {
		rec := b.get(path)
		assertRedirect(t, rec, "/login?return_to="+url.QueryEscape(path))
	}
	if n := app.fake.Calls("GET /products"); n != 0 {
		t.Errorf("list fetched %d times without a token", n)
	}

	rec := b.get("/login")
	if rec.Code != http.StatusOK {
		t.Fatalf("login page status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), "Faça login para continuar.")

	req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
	req.Header.Set("Accept", "application/json")
	if rec := b.do(req); rec.Code != http.StatusUnauthorized {
		t.Errorf("json caller status = %d, want 401", rec.Code)
	}
}

func TestLoginFailureShowsFixedMessage(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.postForm("/login", url.Values{"email": {app.fake.Email}, "password": {"wrong"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body, "E-mail ou senha inválidos", `value="`+app.fake.Email+`"`)
	if strings.Contains(body, "Credenciais inválidas") {
		t.Error("backend message leaked into the page")
	}
	if _, ok := b.cookies[session.CookieName]; ok {
		t.Error("failed login must not set a session")
	}
	assertRedirect(t, b.get("/produtos"), "/login")
}

func TestLoginValidation(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.postForm("/login", url.Values{"email": {"not-an-email"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), "Informe um e-mail válido.", "Este campo é obrigatório.")
	if n := app.fake.Calls("POST /auth/login"); n != 0 {
		t.Errorf("backend called %d times for an invalid form", n)
	}
}

func TestLoginBlankPasswordShowsFixedMessage(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.postForm("/login", url.Values{"email": {app.fake.Email}, "password": {""}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), "E-mail ou senha inválidos", `id="login-error"`, `value="`+app.fake.Email+`"`)
	if n := app.fake.Calls("POST /auth/login"); n != 0 {
		t.Errorf("backend called %d times for a blank password", n)
	}
}

func TestLoginSuccessAndGuestGuard(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.postForm("/login", url.Values{
		"email":     {app.fake.Email},
		"password":  {app.fake.Password},
		"return_to": {"/produtos/cadastro"},
	})
	assertRedirect(t, rec, "/produtos/cadastro")

	assertRedirect(t, b.get("/login"), "/produtos")
}

func TestLoginIgnoresForeignReturnTo(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.postForm("/login", url.Values{
		"email":     {app.fake.Email},
		"password":  {app.fake.Password},
		"return_to": {"//evil.example/phish"},
	})
	if loc := rec.Header().Get("Location"); loc != "/produtos" {
		t.Errorf("location = %q", loc)
	}
}

func TestProductListStates(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()

	rec := b.get("/produtos")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body, "Nenhum produto encontrado.", `data-tooltip-delay="7000"`, `action="/logout"`)
	if strings.Contains(body, `id="grid"`) {
		t.Error("empty list rendered the grid")
	}

	app.fake.SetFailures(true, false, false)
	rec = b.get("/produtos")
	assertContains(t, rec.Body.String(), "Erro ao carregar produtos. Tente novamente.", `id="retry"`, `href="/produtos"`)

	app.fake.SetFailures(false, false, false)
	app.fake.Seed(backend.Product{
		ID: "7", Title: "Caneca", Category: "Casa", Price: 12.5, Status: "active",
	})
	rec = b.get("/produtos")
	assertContains(t, rec.Body.String(), `id="grid"`, "Caneca", "R$ 12,50", "Sem+imagem")

	if n := app.fake.Calls("GET /products"); n != 3 {
		t.Errorf("list calls = %d, want one per request", n)
	}
}

var draftFields = map[string]string{
	"title":       "Caneca",
	"description": "Cerâmica",
	"category":    "Casa",
}

func withPrice(price string) map[string]string {
	out := map[string]string{"price": price}
	for k, v := range draftFields {
		out[k] = v
	}
	return out
}

func TestCreateWithoutImage(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()

	rec := b.postMultipart("/produtos/cadastro", withPrice("abc"), "", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body:\n%s", rec.Code, rec.Body.String())
	}
	assertContains(t, rec.Body.String(),
		"Produto cadastrado com sucesso! Redirecionando...",
		`content="2;url=/produtos"`,
	)

	if n := app.fake.Calls("POST /products/upload"); n != 0 {
		t.Errorf("upload called %d times without a file", n)
	}
	created := app.fake.Created()
	if len(created) != 1 {
		t.Fatalf("created = %d", len(created))
	}
	got := created[0]
	if got.Price != 0 || got.ImageURL != "" || got.Status != "active" || got.Title != "Caneca" {
		t.Errorf("payload = %+v", got)
	}
	if h := app.fake.LastAuthorization(); h != "Bearer "+app.fake.Token {
		t.Errorf("authorization = %q", h)
	}
}

func TestCreateWithImage(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()

	rec := b.postMultipart("/produtos/cadastro", withPrice("19.90"), "caneca.png", []byte("\x89PNG fake"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	created := app.fake.Created()
	if len(created) != 1 || created[0].ImageURL != "/uploads/caneca.png" || created[0].Price != 19.9 {
		t.Fatalf("created = %+v", created)
	}

	list := b.get("/produtos").Body.String()
	assertContains(t, list, `src="`+app.api.URL+`/uploads/caneca.png"`, "R$ 19,90")
}

func TestCreateFailedUploadSkipsCreate(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()
	app.fake.SetFailures(false, true, false)

	rec := b.postMultipart("/produtos/cadastro", withPrice("10"), "a.png", []byte("x"))
	body := rec.Body.String()
	assertContains(t, body, "Erro ao cadastrar produto. Tente novamente.", `value="Caneca"`)
	if strings.Contains(body, "http-equiv") {
		t.Error("failed submit must not redirect")
	}
	if n := app.fake.Calls("POST /products"); n != 0 {
		t.Errorf("create sent %d times after a failed upload", n)
	}
}

func TestCreateBackendFailure(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()
	app.fake.SetFailures(false, false, true)

	rec := b.postMultipart("/produtos/cadastro", withPrice("10"), "", nil)
	assertContains(t, rec.Body.String(), "Erro ao cadastrar produto. Tente novamente.")
	if len(app.fake.Created()) != 0 {
		t.Error("nothing should be recorded as created")
	}
}

func TestCreateMissingFields(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()

	rec := b.postMultipart("/produtos/cadastro", map[string]string{"title": "Caneca"}, "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), "Este campo é obrigatório.", `value="Caneca"`)
	if n := app.fake.Calls("POST /products"); n != 0 {
		t.Errorf("create sent for an incomplete form")
	}
}

func TestCreateOversizedUpload(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()

	rec := b.postMultipart("/produtos/cadastro", withPrice("10"), "big.png", bytes.Repeat([]byte("x"), 11<<20))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body, "Erro ao cadastrar produto. Tente novamente.", `id="create-error"`)
	if strings.Contains(body, "Dados do formulário inválidos.") {
		t.Error("bind failure must show the generic create message")
	}
	if n := app.fake.Calls("POST /products/upload") + app.fake.Calls("POST /products"); n != 0 {
		t.Errorf("backend called %d times for an oversized body", n)
	}
}

func TestCreateURLEncodedFormWithoutImage(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()

	form := url.Values{}
	for k, v := range withPrice("12abc") {
		form.Set(k, v)
	}
	rec := b.postForm("/produtos/cadastro", form)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body:\n%s", rec.Code, rec.Body.String())
	}
	if n := app.fake.Calls("POST /products/upload"); n != 0 {
		t.Errorf("upload called %d times without a file", n)
	}
	created := app.fake.Created()
	if len(created) != 1 || created[0].ImageURL != "" || created[0].Price != 12 {
		t.Fatalf("created = %+v", created)
	}
}

func TestLogoutClearsToken(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.login()

	assertRedirect(t, b.postForm("/logout", nil), "/login")
	assertRedirect(t, b.get("/produtos"), "/login")

	// logging out twice is harmless
	assertRedirect(t, b.postForm("/logout", nil), "/login")
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.get("/nada")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), "Página não encontrada.")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/nada", nil)
	req.Header.Set("Accept", "application/json")
	rec = b.do(req)
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("json 404 = %d %s", rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	if rec := app.browser(t).get("/healthz"); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
