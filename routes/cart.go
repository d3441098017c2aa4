package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Javi0322/suenos-valenti/controllers/cart"
)

// SetupCartRoutes registers the cart endpoints. Auth gating happens inside
// the handlers (flash + redirect to /sesiones), not in middleware, so the
// cart page can explain itself instead of silently bouncing to /login.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	r.GET("/carrito", cartControllers.GetCarrito(deps.Audit))
	r.POST("/carrito/agregar", cartControllers.AgregarCarrito(deps.Sesiones, deps.Audit))
	r.POST("/carrito/vaciar", cartControllers.VaciarCarrito(deps.Audit))
}
