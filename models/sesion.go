package models

import (
	"math"
	"strconv"
	"strings"
)

// Sesion is a bookable catalog entry from sesiones.json. The catalog is
// reference data: this app never creates or mutates entries, it only reads
// the file and copies entries into carts.
//
// Precio is kept loosely typed because the catalog file is hand-edited and
// some entries carry the price as a string or omit it entirely.
type Sesion struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Precio      any    `json:"precio"`
	Descripcion string `json:"descripcion,omitempty"`
	Horario     string `json:"horario,omitempty"`
}

// PrecioNum coerces Precio to a number, falling back to 0 for missing or
// unparseable values so cart totals never fail on a bad catalog entry.
func (s Sesion) PrecioNum() float64 {
	switch v := s.Precio.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	default:
		return 0
	}
}
