package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/roles"
)

// File keeps the role catalog in a JSON file. A missing file reads as an
// empty catalog so a fresh checkout works without setup.
type File struct {
	path string

	mu sync.Mutex
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) List(ctx context.Context) ([]roles.Definition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *File) load() ([]roles.Definition, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []roles.Definition{}, nil
		}
		return nil, fmt.Errorf("read roles file: %w", err)
	}

	// Decode through an intermediate map so unknown keys in hand-edited
	// files are tolerated rather than fatal.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse roles file %s: %w", f.path, err)
	}

	var catalog []roles.Definition
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &catalog,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build roles decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode roles file %s: %w", f.path, err)
	}

	if catalog == nil {
		catalog = []roles.Definition{}
	}

	return catalog, nil
}

func (f *File) Append(ctx context.Context, role roles.Definition) (roles.Definition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	catalog, err := f.load()
	if err != nil {
		return roles.Definition{}, err
	}

	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	catalog = append(catalog, role)

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return roles.Definition{}, fmt.Errorf("create roles dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return roles.Definition{}, fmt.Errorf("encode roles: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return roles.Definition{}, fmt.Errorf("write roles file: %w", err)
	}

	return role, nil
}

func (f *File) Close() {}
