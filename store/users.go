package store

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/Javi0322/suenos-valenti/models"
)

// UserStore persists the usuarios collection as one pretty-printed JSON
// array. Every write rewrites the whole file. There is deliberately no
// locking: two concurrent registrations can read the same snapshot and the
// later write wins, which is the long-standing behavior of this app.
type UserStore struct {
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// Load reads the whole collection. A missing, empty or unparseable file
// degrades to an empty collection instead of failing the request.
func (s *UserStore) Load() []models.User {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []models.User{}
	}
	var usuarios []models.User
	if err := json.Unmarshal(raw, &usuarios); err != nil || usuarios == nil {
		return []models.User{}
	}
	return usuarios
}

// FindByEmail scans the collection for a case-insensitive email match.
func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.Load() {
		if strings.ToLower(u.Email) == needle {
			return u, true
		}
	}
	return models.User{}, false
}

// EmailExists reports whether any record already uses the email,
// compared case-insensitively.
func (s *UserStore) EmailExists(email string) bool {
	_, ok := s.FindByEmail(email)
	return ok
}

// Append assigns the next id and rewrites the collection with the new
// record at the end. The id is the LAST element's id plus one, not a true
// maximum: a gap or out-of-order last element produces a non-monotonic id,
// and that quirk is kept as-is.
func (s *UserStore) Append(u models.User) (models.User, error) {
	usuarios := s.Load()

	u.ID = 1
	if len(usuarios) > 0 {
		u.ID = usuarios[len(usuarios)-1].ID + 1
	}

	usuarios = append(usuarios, u)

	raw, err := json.MarshalIndent(usuarios, "", "  ")
	if err != nil {
		return models.User{}, err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return models.User{}, err
	}
	return u, nil
}
