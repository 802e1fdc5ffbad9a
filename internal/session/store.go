// Package session holds the client-owned authentication state and persists
// it across runs, the way the browser client kept token and user id in
// localStorage.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/model"
)

// Store is the process-wide session accessor. The session is read-only for
// callers once set; only Set and Clear mutate it.
type Store struct {
	mu     sync.RWMutex
	path   string
	cur    model.Session
	logger logger.ZapLogger
}

// NewStore loads any previously persisted session from path. A missing or
// unreadable file just means starting unauthenticated.
func NewStore(path string, log logger.ZapLogger) *Store {
	s := &Store{path: path, logger: log}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("could not read persisted session", zap.String("path", path), zap.Error(err))
		}
		return s
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Warn("persisted session is corrupt, ignoring", zap.String("path", path), zap.Error(err))
		return s
	}
	s.cur = sess
	return s
}

// Set installs a new session and persists it.
func (s *Store) Set(sess model.Session) error {
	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Get returns the current session and whether one is present.
func (s *Store) Get() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur, s.cur.Valid()
}

// Current implements httpx.CredentialSource.
func (s *Store) Current() (userID, token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.cur.Valid() {
		return "", "", false
	}
	return s.cur.UserID, s.cur.Token, true
}

// Clear wipes the in-memory session first and then the file. Local state is
// always cleared even when the file removal fails.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cur = model.Session{}
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("could not remove persisted session", zap.String("path", s.path), zap.Error(err))
	}
}
