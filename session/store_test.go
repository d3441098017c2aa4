package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Javi0322/suenos-valenti/models"
)

// clockedStore pins the store's clock so expiry is deterministic.
func clockedStore(start time.Time) (*MemoryStore, *time.Time) {
	now := start
	m := NewMemoryStore()
	m.now = func() time.Time { return now }
	return m, &now
}

func TestMemoryStore_NewAndGet(t *testing.T) {
	m, _ := clockedStore(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	s := m.New()
	require.NotEmpty(t, s.ID)
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Carrito)
	assert.Equal(t, s.CreatedAt.Add(TTL), s.ExpiresAt)

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	other := m.New()
	assert.NotEqual(t, s.ID, other.ID)
}

func TestMemoryStore_Destroy(t *testing.T) {
	m, _ := clockedStore(time.Now())

	s := m.New()
	s.Usuario = &models.User{ID: 1, Email: "a@x.com"}
	s.Carrito = append(s.Carrito, models.Sesion{ID: 1})

	m.Destroy(s.ID)

	// user, cart and flash all die with the identity
	_, ok := m.Get(s.ID)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m, now := clockedStore(start)
	s := m.New()

	t.Run("live just before the deadline", func(t *testing.T) {
		*now = start.Add(TTL)
		_, ok := m.Get(s.ID)
		assert.True(t, ok)
	})

	t.Run("gone past the deadline", func(t *testing.T) {
		*now = start.Add(TTL + time.Second)
		_, ok := m.Get(s.ID)
		assert.False(t, ok)
	})

	t.Run("touch slides the deadline", func(t *testing.T) {
		*now = start
		s2 := m.New()

		*now = start.Add(30 * time.Minute)
		m.Touch(s2)
		assert.Equal(t, start.Add(30*time.Minute).Add(TTL), s2.ExpiresAt)

		*now = start.Add(TTL + time.Minute) // past the original deadline
		_, ok := m.Get(s2.ID)
		assert.True(t, ok)
	})
}

func TestMemoryStore_ConcurrentGetAndTouch(t *testing.T) {
	// Two tabs sharing one sid cookie hit Get and Touch at the same time;
	// run with -race.
	m := NewMemoryStore()
	s := m.New()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if got, ok := m.Get(s.ID); ok {
					m.Touch(got)
				}
			}
		}()
	}
	wg.Wait()

	_, ok := m.Get(s.ID)
	assert.True(t, ok)
}

func TestSession_TakeFlash(t *testing.T) {
	s := &Session{}
	assert.Nil(t, s.TakeFlash())

	s.SetFlash(models.FlashOk, "hecho")

	f := s.TakeFlash()
	require.NotNil(t, f)
	assert.Equal(t, models.FlashOk, f.Tipo)
	assert.Equal(t, "hecho", f.Mensaje)

	// read-once: the second take is empty
	assert.Nil(t, s.TakeFlash())
}

func TestSession_ActorEmail(t *testing.T) {
	s := &Session{}
	assert.Equal(t, "anonimo", s.ActorEmail())

	s.Usuario = &models.User{Email: "ana@x.com"}
	assert.Equal(t, "ana@x.com", s.ActorEmail())
}
