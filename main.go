package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/config"
	"github.com/Javi0322/suenos-valenti/middleware"
	"github.com/Javi0322/suenos-valenti/routes"
	"github.com/Javi0322/suenos-valenti/session"
	"github.com/Javi0322/suenos-valenti/store"
)

func main() {
	log.Println("✅ Iniciando aplicación...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	deps := routes.Deps{
		Users:    store.NewUserStore(cfg.UsuariosFile()),
		Sesiones: store.NewSesionStore(cfg.SesionesFile()),
		Sessions: session.NewMemoryStore(),
		Audit:    audit.NewLogger(cfg.LogsFile()),
	}

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	// Server-rendered views and the static assets they reference
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/public", "./public")

	// Every route runs behind the session middleware
	r.Use(middleware.Sesion(deps.Sessions))

	routes.SetupRoutes(r, deps)

	log.Printf("🚀 Servidor iniciado en http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ No se pudo iniciar el servidor: %v", err)
	}
}
