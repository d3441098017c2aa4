package theme

import (
	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the tema preference cookie.
	CookieName = "tema"
	// Default applies whenever the cookie is absent.
	Default = "claro"
	// maxAge is 7 days, in seconds.
	maxAge = 7 * 24 * 60 * 60
)

// Current returns the visitor's theme, defaulting to "claro".
func Current(c *gin.Context) string {
	tema, err := c.Cookie(CookieName)
	if err != nil || tema == "" {
		return Default
	}
	return tema
}

// Set stores modo as the theme. Any string is accepted; the pages only
// style "claro" and "oscuro" but the cookie itself is not validated.
func Set(c *gin.Context, modo string) {
	c.SetCookie(CookieName, modo, maxAge, "/", "", false, true)
}

// Clear removes the theme cookie.
func Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
