package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FileStore persists the key-value map as a single JSON file.
type FileStore struct {
	path    string
	entries map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path:    path,
		entries: map[string]string{},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if err := json.Unmarshal(raw, &fs.entries); err != nil {
		// unreadable store starts over empty
		fs.entries = map[string]string{}
	}

	return fs, nil
}

func (f *FileStore) Get(key string) (string, bool) {
	value, ok := f.entries[key]
	return value, ok
}

func (f *FileStore) Set(key, value string) error {
	f.entries[key] = value
	return f.persist()
}

func (f *FileStore) Delete(key string) error {
	delete(f.entries, key)
	return f.persist()
}

func (f *FileStore) persist() error {
	raw, err := json.Marshal(f.entries)
	if err != nil {
		return fmt.Errorf("serialize store: %w", err)
	}

	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	return nil
}
