package pageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/middleware"
	"github.com/Javi0322/suenos-valenti/theme"
)

// GET /
func Inicio(c *gin.Context) {
	c.HTML(http.StatusOK, "inicio.html", gin.H{
		"tema":    theme.Current(c),
		"usuario": middleware.CurrentSession(c).Usuario,
	})
}

// GET /perfil — behind RequireLogin.
func Perfil(auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		auditLog.Record(sess.ActorEmail(), "Accede a /perfil")

		c.HTML(http.StatusOK, "perfil.html", gin.H{
			"tema":    theme.Current(c),
			"usuario": sess.Usuario,
		})
	}
}

// GET /preferencias
func Preferencias(c *gin.Context) {
	c.HTML(http.StatusOK, "preferencias.html", gin.H{
		"tema":    theme.Current(c),
		"usuario": middleware.CurrentSession(c).Usuario,
	})
}

// GET /tema/:modo — any string is stored, not just claro/oscuro.
func SetTema(c *gin.Context) {
	theme.Set(c, c.Param("modo"))
	c.Redirect(http.StatusFound, "/preferencias")
}

// GET /borrar-tema
func BorrarTema(c *gin.Context) {
	theme.Clear(c)
	c.Redirect(http.StatusFound, "/preferencias")
}
