package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/middleware"
	"github.com/Javi0322/suenos-valenti/models"
	"github.com/Javi0322/suenos-valenti/session"
	"github.com/Javi0322/suenos-valenti/store"
	"github.com/Javi0322/suenos-valenti/theme"
)

// FixedPassword is the single shared password. There are no per-user
// credentials in this app.
const FixedPassword = "1234"

var (
	// ErrCredencialesInvalidas: the password did not match. The usuarios
	// file is never read in this case.
	ErrCredencialesInvalidas = errors.New("credenciales incorrectas")
	// ErrUsuarioNoEncontrado: password ok, but no record has that email.
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
)

// Authenticate checks the fixed password first and only then scans the
// usuarios file for a case-insensitive email match.
func Authenticate(users *store.UserStore, email, password string) (models.User, error) {
	if password != FixedPassword {
		return models.User{}, ErrCredencialesInvalidas
	}
	u, ok := users.FindByEmail(email)
	if !ok {
		return models.User{}, ErrUsuarioNoEncontrado
	}
	return u, nil
}

// GetLogin renders the login form.
func GetLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"error": nil,
		"tema":  theme.Current(c),
	})
}

// PostLogin authenticates and installs the user snapshot on the session.
func PostLogin(users *store.UserStore, auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		u, err := Authenticate(users, email, password)
		switch {
		case errors.Is(err, ErrCredencialesInvalidas):
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"error": "Credenciales incorrectas",
				"tema":  theme.Current(c),
			})
			return
		case errors.Is(err, ErrUsuarioNoEncontrado):
			c.HTML(http.StatusNotFound, "login.html", gin.H{
				"error": "Usuario no encontrado",
				"tema":  theme.Current(c),
			})
			return
		}

		// Snapshot of the record at login time; never re-synced afterwards.
		usuario := u
		sess := middleware.CurrentSession(c)
		sess.Usuario = &usuario

		auditLog.Record(sess.ActorEmail(), "Inicia sesión")
		c.Redirect(http.StatusFound, "/perfil")
	}
}

// PostLogout destroys the whole session identity. The cart and any pending
// flash die with it; the next request starts a fresh anonymous session.
func PostLogout(sessions session.Store, auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		auditLog.Record(sess.ActorEmail(), "Cierra sesión")

		sessions.Destroy(sess.ID)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/")
	}
}
