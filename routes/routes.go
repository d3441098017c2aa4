package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/session"
	"github.com/Javi0322/suenos-valenti/store"
)

// Deps is everything the handlers close over.
type Deps struct {
	Users    *store.UserStore
	Sesiones *store.SesionStore
	Sessions session.Store
	Audit    *audit.Logger
}

// SetupRoutes is the single entry-point that wires up the page, auth,
// catalog and cart route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupPageRoutes(r, deps)
	SetupAuthRoutes(r, deps)
	SetupSesionRoutes(r, deps)
	SetupCartRoutes(r, deps)
}
