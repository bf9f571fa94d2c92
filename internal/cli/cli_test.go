package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend/backendtest"
)

type env struct {
	fake      *backendtest.Fake
	url       string
	tokenFile string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	t.Setenv("BACKEND_BASE_URL", "")
	t.Setenv("STOREFRONT_PASSWORD", "")
	fake := backendtest.New()
	srv := httptest.NewServer(fake.Handler())
	t.Cleanup(srv.Close)
	return &env{fake: fake, url: srv.URL, tokenFile: filepath.Join(t.TempDir(), "token")}
}

func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--backend", e.url, "--token-file", e.tokenFile}, args...))
	err := root.Execute()
	return out.String(), err
}

func (e *env) login(t *testing.T) {
	t.Helper()
	if _, err := e.run(t, "login", "--email", e.fake.Email, "--password", e.fake.Password); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestLoginStatusLogout(t *testing.T) {
	e := newEnv(t)

	out, _ := e.run(t, "status")
	if !strings.Contains(out, "not authenticated") {
		t.Errorf("status before login: %q", out)
	}

	e.login(t)
	b, err := os.ReadFile(e.tokenFile)
	if err != nil || string(b) != e.fake.Token {
		t.Fatalf("token file = %q, %v", b, err)
	}
	out, _ = e.run(t, "status")
	if !strings.HasPrefix(out, "authenticated") {
		t.Errorf("status after login: %q", out)
	}

	if _, err := e.run(t, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := os.Stat(e.tokenFile); !os.IsNotExist(err) {
		t.Errorf("token file still present: %v", err)
	}
}

func TestLoginRejected(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "login", "--email", e.fake.Email, "--password", "nope")
	if err == nil || err.Error() != "E-mail ou senha inválidos" {
		t.Fatalf("err = %v", err)
	}
	if _, statErr := os.Stat(e.tokenFile); !os.IsNotExist(statErr) {
		t.Error("rejected login wrote a token")
	}
}

func TestProductsRequireLogin(t *testing.T) {
	e := newEnv(t)
	if _, err := e.run(t, "products", "list"); err != errNotLoggedIn {
		t.Errorf("list err = %v", err)
	}
	if _, err := e.run(t, "products", "create", "--title", "x"); err != errNotLoggedIn {
		t.Errorf("create err = %v", err)
	}
	if n := e.fake.Calls("GET /products"); n != 0 {
		t.Errorf("backend hit %d times", n)
	}
}

func TestProductsListFormats(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	out, err := e.run(t, "products", "list")
	if err != nil || !strings.Contains(out, "Nenhum produto encontrado.") {
		t.Fatalf("empty list: %q, %v", out, err)
	}

	e.fake.Seed(backend.Product{ID: "1", Title: "Caneca", Category: "Casa", Price: 12.5, Status: "active"})

	out, err = e.run(t, "products", "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"TITLE", "Caneca", "R$ 12,50", "active"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}

	out, err = e.run(t, "products", "list", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var js []productRow
	if err := json.Unmarshal([]byte(out), &js); err != nil || len(js) != 1 || js[0].Price != 12.5 {
		t.Errorf("json = %q (%v)", out, err)
	}

	out, err = e.run(t, "products", "list", "-o", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	var ys []productRow
	if err := yaml.Unmarshal([]byte(out), &ys); err != nil || len(ys) != 1 || ys[0].Title != "Caneca" {
		t.Errorf("yaml = %q (%v)", out, err)
	}

	if _, err := e.run(t, "products", "list", "-o", "xml"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestProductsListBackendError(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.fake.SetFailures(true, false, false)

	if _, err := e.run(t, "products", "list"); err != errListFailed {
		t.Errorf("err = %v", err)
	}
}

func TestProductsCreate(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	img := filepath.Join(t.TempDir(), "caneca.png")
	if err := os.WriteFile(img, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := e.run(t, "products", "create",
		"--title", "Caneca", "--description", "Cerâmica", "--category", "Casa",
		"--price", "abc", "--image", img)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, "Produto cadastrado com sucesso!") {
		t.Errorf("output = %q", out)
	}
	created := e.fake.Created()
	if len(created) != 1 || created[0].Price != 0 || created[0].ImageURL != "/uploads/caneca.png" {
		t.Errorf("created = %+v", created)
	}
}

func TestProductsCreateUploadFailure(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.fake.SetFailures(false, true, false)

	img := filepath.Join(t.TempDir(), "a.png")
	_ = os.WriteFile(img, []byte("png"), 0o600)

	_, err := e.run(t, "products", "create",
		"--title", "Caneca", "--description", "d", "--category", "c", "--price", "1", "--image", img)
	if err != errCreateFailed {
		t.Errorf("err = %v", err)
	}
	if n := e.fake.Calls("POST /products"); n != 0 {
		t.Errorf("create sent after failed upload")
	}
}
