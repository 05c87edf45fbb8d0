package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var _ TokenStore = (*EnvFileStore)(nil)

// EnvFileStore persists the access token as a KEY=value line in a dotenv file.
// Other keys in the file are preserved on write.
type EnvFileStore struct {
	mu   sync.RWMutex
	path string
	key  string
}

func NewEnvFileStore(path, key string) *EnvFileStore {
	return &EnvFileStore{path: path, key: key}
}

// Get reads the file on every call so edits made outside the process are seen.
// When the file or key is missing the process environment is consulted.
func (s *EnvFileStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, err := godotenv.Read(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read env file %s: %w", s.path, err)
	}
	if token, ok := values[s.key]; ok && token != "" {
		return token, nil
	}
	return os.Getenv(s.key), nil
}

func (s *EnvFileStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := godotenv.Read(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", s.path, err)
		}
		values = map[string]string{}
	}
	values[s.key] = token

	if err := s.replaceFile(values); err != nil {
		return fmt.Errorf("write env file %s: %w", s.path, err)
	}
	return os.Setenv(s.key, token)
}

// replaceFile writes values to a 0600 temp file next to the env file and
// renames it into place.
func (s *EnvFileStore) replaceFile(values map[string]string) error {
	content, err := godotenv.Marshal(values)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content + "\n"); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *EnvFileStore) Close() error {
	return nil
}
