package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName = "flashcards-cli"
	sessionFile   = "session.json"
)

// Session holds the credentials persisted between CLI invocations.
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
}

// SessionStore keeps the session file under the user config directory.
type SessionStore struct {
	dir string
}

func NewSessionStore() (*SessionStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &SessionStore{dir: filepath.Join(base, configDirName)}, nil
}

func (s *SessionStore) path() string {
	return filepath.Join(s.dir, sessionFile)
}

func (s *SessionStore) Save(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o600)
}

// Load returns an empty session when no file exists yet.
func (s *SessionStore) Load() (Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SessionStore) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
