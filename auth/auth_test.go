package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/middleware"
	"github.com/Javi0322/suenos-valenti/session"
	"github.com/Javi0322/suenos-valenti/store"
)

// authEnv wires the auth endpoints the way main does, over temp files.
type authEnv struct {
	router   *gin.Engine
	users    *store.UserStore
	sessions *session.MemoryStore
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	env := &authEnv{
		users:    store.NewUserStore(filepath.Join(dir, "usuarios.json")),
		sessions: session.NewMemoryStore(),
	}
	auditLog := audit.NewLogger(filepath.Join(dir, "logs.txt"))

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.Use(middleware.Sesion(env.sessions))
	r.GET("/registro", GetRegistro)
	r.POST("/registro", PostRegistro(env.users, auditLog))
	r.GET("/login", GetLogin)
	r.POST("/login", PostLogin(env.users, auditLog))
	r.POST("/logout", PostLogout(env.sessions, auditLog))

	env.router = r
	return env
}

func (e *authEnv) postForm(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *authEnv) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// sessionFor returns the server-side session behind the sid cookie of a response.
func (e *authEnv) sessionFor(t *testing.T, w *httptest.ResponseRecorder) *session.Session {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			s, ok := e.sessions.Get(c.Value)
			require.True(t, ok)
			return s
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}
