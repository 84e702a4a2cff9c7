package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the key-value capability the tracker consumes. Values are strings,
// a missing key is reported with ok == false rather than an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) []string
}

// Watcher is implemented by stores that can report changes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a diskv backed store using the provided config.
func Load(cfg Config) (*Diskv, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	// No read cache: other sip processes write the same files and diskv only
	// invalidates its cache on its own writes.
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: flatTransform,
	}), basePath: basePath}, nil
}

// Diskv stores every key as one file directly under the base path.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

var _ KV = (*Diskv)(nil)
var _ Watcher = (*Diskv)(nil)

// BasePath is the directory holding the key files.
func (s *Diskv) BasePath() string {
	return s.basePath
}

func (s *Diskv) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if err := validKey(key); err != nil {
		return "", false, err
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *Diskv) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *Diskv) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validKey(key); err != nil {
		return err
	}
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in lexical order.
func (s *Diskv) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, ".") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func flatTransform(string) []string {
	return []string{}
}

func validKey(key string) error {
	switch {
	case key == "":
		return errors.New("store: key required")
	case strings.ContainsAny(key, `/\`):
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}
