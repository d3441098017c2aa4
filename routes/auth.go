package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/auth"
)

// SetupAuthRoutes registers registration, login and logout.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	r.GET("/registro", auth.GetRegistro)
	r.POST("/registro", auth.PostRegistro(deps.Users, deps.Audit))
	r.GET("/login", auth.GetLogin)
	r.POST("/login", auth.PostLogin(deps.Users, deps.Audit))
	r.POST("/logout", auth.PostLogout(deps.Sessions, deps.Audit))
}
