package routes

import (
	"github.com/gin-gonic/gin"

	sesionControllers "github.com/Javi0322/suenos-valenti/controllers/sesiones"
)

// SetupSesionRoutes registers the catalog page.
func SetupSesionRoutes(r *gin.Engine, deps Deps) {
	r.GET("/sesiones", sesionControllers.GetSesiones(deps.Sesiones, deps.Audit))
}
