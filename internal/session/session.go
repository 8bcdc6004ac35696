// Package session holds the bearer credential used by the admin client.
//
// A Session is created once at startup and handed to the gateway explicitly;
// nothing in the client reads the credential from process-wide state.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Session stores the credential for the signed-in user. It is safe for
// concurrent use: every outbound request reads it, logout clears it.
type Session struct {
	mu    sync.RWMutex
	token string
	path  string
}

// Claims is the subset of token claims shown to the user.
type Claims struct {
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// New creates a session holding token. An empty token yields an
// unauthenticated session.
func New(token string) *Session {
	return &Session{token: strings.TrimSpace(token)}
}

// FromFile creates a session backed by a token file. A missing file is not an
// error; the session simply starts without a credential.
func FromFile(path string) (*Session, error) {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read token file %s: %w", path, err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Credential returns the bearer token and whether one is present.
func (s *Session) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set replaces the credential and, for file-backed sessions, persists it.
func (s *Session) Set(token string) error {
	token = strings.TrimSpace(token)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}
	return nil
}

// Clear drops the credential. Requests already in flight keep the header they
// were built with.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file %s: %w", s.path, err)
	}
	return nil
}

// Claims decodes the credential without verifying its signature. The server
// is the authority on validity; this is only for display.
func (s *Session) Claims() (*Claims, error) {
	token, ok := s.Credential()
	if !ok {
		return nil, errors.New("no credential")
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, mapClaims); err != nil {
		return nil, fmt.Errorf("credential is not a readable token: %w", err)
	}

	claims := &Claims{}
	if v, ok := mapClaims["user_id"].(string); ok {
		claims.UserID = v
	}
	if v, ok := mapClaims["username"].(string); ok {
		claims.Username = v
	}
	if v, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(v), 0)
	}
	return claims, nil
}
