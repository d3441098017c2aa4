package store

import (
	"encoding/json"
	"os"

	"github.com/Javi0322/suenos-valenti/models"
)

// SesionStore reads the sesiones catalog. The file is reference data owned
// by whoever edits it by hand, so every call re-reads it fresh. No caching.
type SesionStore struct {
	path string
}

func NewSesionStore(path string) *SesionStore {
	return &SesionStore{path: path}
}

// Load returns the catalog, or an empty one when the file is missing or
// does not parse as an array.
func (s *SesionStore) Load() []models.Sesion {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Sesion{}
	}
	var sesiones []models.Sesion
	if err := json.Unmarshal(raw, &sesiones); err != nil || sesiones == nil {
		return []models.Sesion{}
	}
	return sesiones
}

// FindByID loads the catalog fresh and returns the entry with the given id.
// The comparison is numeric, not integral, because the id arrives from a
// form field: "1", " 1 " and "1.0" all name entry 1.
func (s *SesionStore) FindByID(id float64) (models.Sesion, bool) {
	for _, sesion := range s.Load() {
		if float64(sesion.ID) == id {
			return sesion, true
		}
	}
	return models.Sesion{}, false
}
