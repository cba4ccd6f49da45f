package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON file on disk, the CLI analogue of
// browser local storage. The file maps the two fixed keys to their
// JSON-serialized string values and is written with 0600 permissions.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed Store at path. The file is created lazily on
// the first Save.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("session file path required")
	}
	return &File{path: path}, nil
}

// Save writes the token and identity projection to the session file,
// replacing its whole content.
func (f *File) Save(_ context.Context, token string, identity Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	data, err := json.MarshalIndent(map[string]string{
		TokenKey:    token,
		IdentityKey: string(raw),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// LoadToken reads the stored token. A missing or unreadable session file
// reports absence.
func (f *File) LoadToken(context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	token, ok := values[TokenKey]
	if !ok || token == "" {
		return "", false, nil
	}
	return token, true, nil
}

// LoadIdentity reads the stored identity projection. A corrupt identity
// value reports absence rather than an error; the session is simply treated
// as unauthenticated.
func (f *File) LoadIdentity(context.Context) (Identity, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return Identity{}, false, err
	}
	raw, ok := values[IdentityKey]
	if !ok || raw == "" {
		return Identity{}, false, nil
	}

	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return Identity{}, false, nil
	}
	return identity, true, nil
}

// Clear removes the session file, dropping both keys. Clearing an absent
// session is a no-op.
func (f *File) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (f *File) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		// Corrupt session files are treated as empty, not fatal.
		return map[string]string{}, nil
	}
	return values, nil
}
