package texture

import (
	"image"
	"os"
	"sync"

	"go.uber.org/zap"

	"mocap-zone-configurator/internal/logging"
)

// Resolver resolves a texture name to a decoded image.
type Resolver interface {
	Resolve(name string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached too, so
// a broken file is reported once rather than on every frame.
type Cache struct {
	mu     sync.RWMutex
	items  map[string]*image.NRGBA
	index  *Index
	logger *zap.Logger
}

// NewCache creates a cache backed by index, which may be nil.
func NewCache(index *Index, logger *zap.Logger) *Cache {
	return &Cache{
		items:  make(map[string]*image.NRGBA),
		index:  index,
		logger: logging.OrNop(logger),
	}
}

// Resolve loads and caches a texture. The name is looked up in the index
// first and otherwise treated as a file path. Returns nil if not found.
func (c *Cache) Resolve(name string) *image.NRGBA {
	if name == "" {
		return nil
	}
	path, ok := c.index.ResolvePath(name)
	if !ok {
		if _, err := os.Stat(name); err != nil {
			c.logger.Warn("texture not found", logging.Path(name))
			return nil
		}
		path = name
	}

	// Fast path: read lock
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	// Slow path: load from disk
	img, err := LoadTexture(path)
	if err != nil {
		c.logger.Warn("texture load failed", logging.Path(path), zap.Error(err))
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, exists := c.items[path]; exists {
		return prev
	}
	c.items[path] = img
	return img
}
