package session

import (
	"encoding/json"
	"fmt"

	"gotodo/pkg/client"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Store is a durable string key-value store, the stand-in for browser
// localStorage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Session holds the issued token and user profile in memory, backed by a
// Store so a restart restores the session without re-authentication.
type Session struct {
	store Store
	token string
	user  *client.User
}

// New restores any stored session. A stored user entry that fails to
// deserialize is discarded and treated as no session.
func New(store Store) *Session {
	s := &Session{store: store}

	token, ok := store.Get(tokenKey)
	if !ok {
		return s
	}

	raw, ok := store.Get(userKey)
	if !ok {
		return s
	}

	var user client.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		_ = store.Delete(userKey)
		_ = store.Delete(tokenKey)
		return s
	}

	s.token = token
	s.user = &user
	return s
}

// Login stores the token and user profile.
func (s *Session) Login(token string, user client.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serialize user: %w", err)
	}

	if err := s.store.Set(tokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.store.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}

	s.token = token
	s.user = &user
	return nil
}

// Logout clears the in-memory state and both stored entries.
func (s *Session) Logout() error {
	s.token = ""
	s.user = nil

	if err := s.store.Delete(tokenKey); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if err := s.store.Delete(userKey); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (s *Session) Authenticated() bool {
	return s.user != nil && s.token != ""
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) User() (client.User, bool) {
	if s.user == nil {
		return client.User{}, false
	}
	return *s.user, true
}
