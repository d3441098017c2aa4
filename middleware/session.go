package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/session"
)

const (
	// SessionCookie carries the opaque session id.
	SessionCookie = "sid"
	// sessionKey is where the session lives in the gin context.
	sessionKey = "sesion"
)

// Sesion loads the browser session named by the cookie, or creates a fresh
// anonymous one when the cookie is missing, stale or expired. Every request
// that passes through slides the session's expiry forward.
func Sesion(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s *session.Session
		if id, err := c.Cookie(SessionCookie); err == nil {
			if existing, ok := store.Get(id); ok {
				s = existing
				store.Touch(s)
			}
		}
		if s == nil {
			s = store.New()
		}
		c.SetCookie(SessionCookie, s.ID, int(session.TTL.Seconds()), "/", "", false, true)
		c.Set(sessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session attached by Sesion. Handlers are only
// registered behind that middleware, so the session is always present.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// RequireLogin guards private pages, bouncing anonymous visitors to /login.
func RequireLogin(c *gin.Context) {
	if !CurrentSession(c).Authenticated() {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}
