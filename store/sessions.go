package store

import (
	"log"
	"sync"

	"shoppos/models"
)

const sessionKey = "inventory_system_user"

// SessionStore holds the current operator. One active user per session; a
// missing or malformed snapshot means anonymous. Logout clears only the
// session, never the ledger.
type SessionStore struct {
	mu    sync.Mutex
	user  *models.User
	snaps Snapshotter
}

func NewSessionStore(snaps Snapshotter) *SessionStore {
	s := &SessionStore{snaps: snaps}

	var stored models.User
	if err := snaps.Load(sessionKey, &stored); err == nil {
		if stored.Name != "" && models.ValidRole(stored.Role) {
			s.user = &stored
		}
	}
	return s
}

// Set records the logged-in user and persists the session snapshot.
func (s *SessionStore) Set(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	if err := s.snaps.Save(sessionKey, user); err != nil {
		log.Printf("failed to persist session: %v", err)
	}
}

// Clear returns the session to anonymous.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.snaps.Delete(sessionKey); err != nil {
		log.Printf("failed to clear session snapshot: %v", err)
	}
}

// Current returns the active user, or nil when anonymous.
func (s *SessionStore) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SessionStore) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.RoleAnonymous
	}
	return s.user.Role
}
