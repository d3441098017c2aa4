package session

import (
	"time"

	"github.com/Javi0322/suenos-valenti/models"
)

// TTL is how long a browser session lives past its last use.
const TTL = time.Hour

// Session is the server-side state behind one browser's session cookie.
//
// Usuario is a snapshot taken at login time; it is never re-synced against
// the usuarios file. Carrito holds full copies of catalog entries, with
// duplicates allowed. Flash is one-shot: read once via TakeFlash, then gone.
type Session struct {
	ID        string
	Usuario   *models.User
	Carrito   []models.Sesion
	Flash     *models.Flash
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Authenticated reports whether a user is logged in on this session.
func (s *Session) Authenticated() bool {
	return s.Usuario != nil
}

// ActorEmail is the identity used in audit lines.
func (s *Session) ActorEmail() string {
	if s.Usuario != nil {
		return s.Usuario.Email
	}
	return "anonimo"
}

// TakeFlash returns the pending flash and clears it, so it is visible on
// exactly one render.
func (s *Session) TakeFlash() *models.Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

// SetFlash replaces any pending flash.
func (s *Session) SetFlash(tipo, mensaje string) {
	s.Flash = &models.Flash{Tipo: tipo, Mensaje: mensaje}
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
