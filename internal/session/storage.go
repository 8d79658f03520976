package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meetspace/roomclient/internal/models"
)

// Storage persists the session across client restarts. Save must write the
// token/identity pair atomically: a reader never observes one without the
// other.
type Storage interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, sess models.Session) error
	Clear(ctx context.Context) error
}

// FileStorage keeps the session in a JSON file, the local-client equivalent
// of the browser's durable key-value entries.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed storage at the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the persisted session. A missing file is an empty session, not
// an error; a corrupt file is an error so the caller can clear it.
func (s *FileStorage) Load(_ context.Context) (models.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Session{}, nil
		}
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return models.Session{}, fmt.Errorf("parse session file: %w", err)
	}
	return sess, nil
}

// Save writes the session via a temp file and rename, so a crash mid-write
// leaves either the old pair or the new pair, never a torn one.
func (s *FileStorage) Save(_ context.Context, sess models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. A missing file counts as cleared.
func (s *FileStorage) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
