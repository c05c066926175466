package models

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// ============================================================================
// Detail Cache
//
// Detail records never change for a given URL, so the client keeps them in a
// msgpack file between runs. A restart then renders the grid without
// refetching a hundred details. A nil *DetailCache is valid and caches nothing.
// ============================================================================

// DetailCache maps detail URLs to decoded records
type DetailCache struct {
	path    string
	mu      sync.RWMutex
	entries map[string]PokemonDetail
	dirty   bool
}

// cacheFile is the on-disk layout. The version lets a future layout change
// discard old files instead of misreading them.
type cacheFile struct {
	Version int                      `msgpack:"version"`
	Entries map[string]PokemonDetail `msgpack:"entries"`
}

const cacheFileVersion = 1

// OpenDetailCache loads the cache at path. A missing file yields an empty cache.
func OpenDetailCache(path string) (*DetailCache, error) {
	c := &DetailCache{path: path, entries: make(map[string]PokemonDetail)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, serr.Wrap(err, "failed to read detail cache", "path", path)
	}

	var f cacheFile
	if err := msgpack.Unmarshal(data, &f); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode detail cache"), "starting with an empty cache", "path", path)
		return c, nil
	}
	if f.Version != cacheFileVersion {
		logger.Info("Detail cache version mismatch, starting empty", "path", path, "version", f.Version)
		return c, nil
	}
	if f.Entries != nil {
		c.entries = f.Entries
	}

	logger.Debug("Detail cache loaded", "path", path, "entries", len(c.entries))
	return c, nil
}

// Get returns a copy of the cached record for url
func (c *DetailCache) Get(url string) (*PokemonDetail, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	return &d, true
}

// Put stores a record for url
func (c *DetailCache) Put(url string, d *PokemonDetail) {
	if c == nil || d == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[url] = *d
	c.dirty = true
}

// Len reports the number of cached records
func (c *DetailCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Save writes the cache to disk if anything changed since the last save.
// The file is written to a temp path and renamed so a crash never leaves a torn file.
func (c *DetailCache) Save() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return nil
	}

	data, err := msgpack.Marshal(cacheFile{Version: cacheFileVersion, Entries: c.entries})
	if err != nil {
		return serr.Wrap(err, "failed to encode detail cache")
	}

	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return serr.Wrap(err, "failed to create cache directory", "dir", dir)
		}
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return serr.Wrap(err, "failed to write detail cache", "path", tmp)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return serr.Wrap(err, "failed to replace detail cache", "path", c.path)
	}

	c.dirty = false
	logger.Info("Detail cache saved", "path", c.path, "entries", len(c.entries))
	return nil
}
