package routes

import (
	"github.com/gin-gonic/gin"

	pageControllers "github.com/Javi0322/suenos-valenti/controllers/pages"
	"github.com/Javi0322/suenos-valenti/middleware"
)

// SetupPageRoutes registers the public pages and the theme endpoints.
func SetupPageRoutes(r *gin.Engine, deps Deps) {
	r.GET("/", pageControllers.Inicio)
	r.GET("/perfil", middleware.RequireLogin, pageControllers.Perfil(deps.Audit))
	r.GET("/preferencias", pageControllers.Preferencias)
	r.GET("/tema/:modo", pageControllers.SetTema)
	r.GET("/borrar-tema", pageControllers.BorrarTema)
}
