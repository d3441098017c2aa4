package cartControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/middleware"
	"github.com/Javi0322/suenos-valenti/models"
	"github.com/Javi0322/suenos-valenti/store"
	"github.com/Javi0322/suenos-valenti/theme"
)

// GET /carrito — only visible while logged in. Anonymous visitors bounce to
// the catalog with an error flash; whatever the session's cart holds stays
// untouched, it is just not shown.
func GetCarrito(auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		if !sess.Authenticated() {
			sess.SetFlash(models.FlashError, "🔒 No puedes ver el carrito hasta iniciar sesión")
			c.Redirect(http.StatusFound, "/sesiones")
			return
		}
		auditLog.Record(sess.ActorEmail(), "Accede a /carrito")

		carrito := sess.Carrito
		total := 0.0
		for _, s := range carrito {
			total += s.PrecioNum()
		}

		c.HTML(http.StatusOK, "carrito.html", gin.H{
			"tema":    theme.Current(c),
			"usuario": sess.Usuario,
			"carrito": carrito,
			"total":   total,
		})
	}
}

// POST /carrito/agregar — appends a full copy of the catalog entry named by
// sesionId. Repeated adds create repeated line items; nothing merges.
// An unknown or non-numeric id redirects silently, with no flash and no
// mutation.
func AgregarCarrito(sesiones *store.SesionStore, auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		if !sess.Authenticated() {
			sess.SetFlash(models.FlashError, "🔒 No puedes añadir al carrito hasta iniciar sesión")
			c.Redirect(http.StatusFound, "/sesiones")
			return
		}

		id, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("sesionId")), 64)
		if err != nil {
			c.Redirect(http.StatusFound, "/sesiones")
			return
		}

		sesion, ok := sesiones.FindByID(id)
		if !ok {
			c.Redirect(http.StatusFound, "/sesiones")
			return
		}

		sess.Carrito = append(sess.Carrito, sesion)
		sess.SetFlash(models.FlashOk, fmt.Sprintf(`🛒 Sesión "%s" añadida al carrito`, sesion.Nombre))

		auditLog.Record(sess.ActorEmail(), fmt.Sprintf(`Agrega "%s" al carrito`, sesion.Nombre))
		c.Redirect(http.StatusFound, "/sesiones")
	}
}

// POST /carrito/vaciar — resets the cart unconditionally. There is no
// explicit auth check here; the only link to it lives on the login-gated
// cart page.
func VaciarCarrito(auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		auditLog.Record(sess.ActorEmail(), "Vacía el carrito")

		sess.Carrito = []models.Sesion{}
		c.Redirect(http.StatusFound, "/carrito")
	}
}
