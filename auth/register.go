package auth

import (
	"log"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Javi0322/suenos-valenti/audit"
	"github.com/Javi0322/suenos-valenti/middleware"
	"github.com/Javi0322/suenos-valenti/models"
	"github.com/Javi0322/suenos-valenti/store"
	"github.com/Javi0322/suenos-valenti/theme"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegistroForm holds the raw submitted values so the form can be
// re-rendered exactly as typed when validation fails.
type RegistroForm struct {
	Nombre    string
	Email     string
	Edad      string
	Ciudad    string
	Intereses []string
}

// ValidateRegistro collects every violated constraint instead of stopping
// at the first one. The returned messages render above the form.
func ValidateRegistro(form RegistroForm) []string {
	errores := []string{}

	if len(strings.TrimSpace(form.Nombre)) < 2 {
		errores = append(errores, "El nombre es obligatorio y debe tener al menos 2 caracteres.")
	}
	if !emailRe.MatchString(form.Email) {
		errores = append(errores, "El email no es válido.")
	}
	if edad, err := strconv.ParseFloat(strings.TrimSpace(form.Edad), 64); err != nil || math.IsInf(edad, 0) || edad <= 0 {
		errores = append(errores, "La edad debe ser un número mayor que 0.")
	}

	return errores
}

// GetRegistro renders the empty registration form.
func GetRegistro(c *gin.Context) {
	c.HTML(http.StatusOK, "registro.html", gin.H{
		"errores": []string{},
		"form":    RegistroForm{},
		"tema":    theme.Current(c),
	})
}

// PostRegistro validates the submission, enforces email uniqueness and
// appends the new record to the usuarios file.
func PostRegistro(users *store.UserStore, auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := RegistroForm{
			Nombre:    c.PostForm("nombre"),
			Email:     c.PostForm("email"),
			Edad:      c.PostForm("edad"),
			Ciudad:    c.PostForm("ciudad"),
			Intereses: c.PostFormArray("intereses"),
		}

		if errores := ValidateRegistro(form); len(errores) > 0 {
			c.HTML(http.StatusBadRequest, "registro.html", gin.H{
				"errores": errores,
				"form":    form,
				"tema":    theme.Current(c),
			})
			return
		}

		email := strings.ToLower(strings.TrimSpace(form.Email))
		if users.EmailExists(email) {
			c.HTML(http.StatusBadRequest, "registro.html", gin.H{
				"errores": []string{"Ya existe un usuario con ese email."},
				"form":    form,
				"tema":    theme.Current(c),
			})
			return
		}

		edad, _ := strconv.ParseFloat(strings.TrimSpace(form.Edad), 64)
		intereses := form.Intereses
		if intereses == nil {
			intereses = []string{}
		}

		_, err := users.Append(models.User{
			Nombre:    strings.TrimSpace(form.Nombre),
			Email:     email,
			Edad:      edad,
			Ciudad:    strings.TrimSpace(form.Ciudad),
			Intereses: intereses,
		})
		if err != nil {
			log.Printf("❌ Error guardando usuarios: %v", err)
			c.String(http.StatusInternalServerError, "No se pudo completar el registro")
			return
		}

		auditLog.Record(middleware.CurrentSession(c).ActorEmail(), "Se registra")
		c.Redirect(http.StatusFound, "/login")
	}
}
