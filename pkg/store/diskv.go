package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"
)

// Diskv is a Persistence keeping one file per key below a base directory.
// The key "studyhub-tasks" is stored at <base>/studyhub/tasks.
type Diskv struct {
	// Logger receives watcher failures. Nil discards them.
	Logger *log.Logger

	d        *diskv.Diskv
	basePath string
}

// NewDiskv returns a Diskv rooted at basePath.
func NewDiskv(basePath string) *Diskv {
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// Other processes write the same files; reads must see them.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}
}

func (p *Diskv) Read(_ context.Context, key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, ErrKeyNotFound
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("%w: diskv read %s: %w", ErrUnavailable, key, err)
	}
	return val, nil
}

func (p *Diskv) Write(_ context.Context, key string, data []byte) error {
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("%w: diskv write %s: %w", ErrUnavailable, key, err)
	}
	return nil
}

// Close is a no-op; diskv holds no open handles between calls.
func (p *Diskv) Close() error { return nil }

func (p *Diskv) Describe() string {
	return "diskv " + p.basePath
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
