package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"restaurant-pos/models"
)

// FileStore keeps the catalog in a JSON file shaped as
// {"<name>": {"price": ..., "tax": ..., "tip": ..., "category": ...}}.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns an empty mapping when the file does not exist yet.
func (s *FileStore) Load(ctx context.Context) (map[string]models.MenuEntry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]models.MenuEntry{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageIO, s.Path, err)
	}

	items := make(map[string]models.MenuEntry)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrStorageParse, s.Path, err)
	}
	return items, nil
}

func (s *FileStore) Save(ctx context.Context, items map[string]models.MenuEntry) error {
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode menu: %w", ErrStorageParse, err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageIO, s.Path, err)
	}
	return nil
}
