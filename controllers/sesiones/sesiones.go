package sesionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/middleware"
	"github.com/Javi0322/suenos-valenti/store"
	"github.com/Javi0322/suenos-valenti/theme"
)

// GET /sesiones — the public catalog. The file is re-read on every request,
// and any pending flash is consumed here: it shows on this render and on no
// render after it.
func GetSesiones(sesiones *store.SesionStore, auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		auditLog.Record(sess.ActorEmail(), "Accede a /sesiones")

		c.HTML(http.StatusOK, "sesiones.html", gin.H{
			"tema":     theme.Current(c),
			"usuario":  sess.Usuario,
			"sesiones": sesiones.Load(),
			"flash":    sess.TakeFlash(),
		})
	}
}
