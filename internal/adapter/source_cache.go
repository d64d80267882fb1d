package adapter

import (
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	m "cutgen.dev/pkg/cutgen/internal/model"
)

// DefaultSourceCacheSize is the number of files kept when no size is configured.
const DefaultSourceCacheSize = 256

// SourceReader returns the text of module source files.
type SourceReader interface {
	ReadText(path m.Path) (string, error)
	// Purge forgets everything read so far.
	Purge()
}

type cachedSource struct {
	size    int64
	modTime time.Time
	text    string
}

// SourceCache keeps recently read source files in memory. Every module file
// is scanned once per target, so a module with many targets re-reads the same
// headers; entries are revalidated against size and modification time so a
// watch session sees edits.
type SourceCache struct {
	fs    SourceFSAdapter
	cache *lru.Cache[m.Path, cachedSource]
}

// NewSourceCache creates a cache holding up to size files. A non-positive size
// falls back to DefaultSourceCacheSize.
func NewSourceCache(fs SourceFSAdapter, size int) (*SourceCache, error) {
	if size <= 0 {
		size = DefaultSourceCacheSize
	}

	cache, err := lru.New[m.Path, cachedSource](size)
	if err != nil {
		return nil, fmt.Errorf("create source cache: %w", err)
	}

	return &SourceCache{fs: fs, cache: cache}, nil
}

// ReadText returns the file contents, served from the cache while the file is
// unchanged on disk.
func (c *SourceCache) ReadText(path m.Path) (string, error) {
	info, err := c.fs.FileInfo(path)
	if err != nil {
		return "", err
	}

	if entry, ok := c.cache.Get(path); ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		return entry.text, nil
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return "", err
	}

	text := string(data)

	if c.cache.Add(path, cachedSource{size: info.Size(), modTime: info.ModTime(), text: text}) {
		slog.Debug("source cache eviction", "path", path)
	}

	return text, nil
}

// Purge drops every cached file. Size and modification time cannot tell apart
// two same-size writes within one timestamp tick, so watch sessions purge
// before each regeneration.
func (c *SourceCache) Purge() {
	slog.Debug("source cache purged", "files", c.cache.Len())
	c.cache.Purge()
}
