package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("cart session not found")

// Store keeps cart sessions in memory. The lock serializes mutations to a
// cart so two concurrent requests cannot produce a lost update.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	seed     []LineItem
}

// NewStore returns a store whose new sessions start with the given sample
// items.
func NewStore(seed []LineItem) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		seed:     seed,
	}
}

// Create opens a new pre-populated session and returns a snapshot of it.
func (st *Store) Create() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := &Session{
		ID:        uuid.NewString(),
		Cart:      New(st.seed),
		Step:      StepCart,
		Favorites: map[string]bool{},
	}
	st.sessions[s.ID] = s
	return snapshot(s)
}

// Get returns a snapshot of the session.
func (st *Store) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return snapshot(s), nil
}

// Update applies fn to the session under the write lock and returns the
// resulting snapshot. If fn returns an error the session is left unchanged.
func (st *Store) Update(id string, fn func(*Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	work := snapshot(s)
	if err := fn(&work); err != nil {
		return Session{}, err
	}
	*s = work
	st.sessions[id] = s
	return snapshot(s), nil
}

// snapshot deep-copies the session so callers never share slices or maps
// with stored state.
func snapshot(s *Session) Session {
	out := *s
	out.Cart.Items = make([]LineItem, len(s.Cart.Items))
	copy(out.Cart.Items, s.Cart.Items)
	out.Favorites = make(map[string]bool, len(s.Favorites))
	for k, v := range s.Favorites {
		out.Favorites[k] = v
	}
	return out
}
