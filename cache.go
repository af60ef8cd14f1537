package ufmt

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// TemplateCache compiles each distinct template source once. Compile
// errors are cached too, so a bad template is rejected on every use without
// being parsed again.
type TemplateCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	maxEntries int
	hits       atomic.Uint64
	misses     atomic.Uint64
	logger     *zap.Logger
}

type cacheEntry struct {
	tmpl *Template
	err  error
}

// CacheStats reports cache usage.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// NewTemplateCache returns a cache holding at most maxEntries templates.
// Zero means unlimited. Once full, new templates are still compiled but not
// stored.
func NewTemplateCache(maxEntries int, logger *zap.Logger) *TemplateCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateCache{
		entries:    make(map[string]cacheEntry),
		maxEntries: maxEntries,
		logger:     logger,
	}
}

// Get returns the compiled form of src.
func (c *TemplateCache) Get(src string) (*Template, error) {
	c.mu.RLock()
	e, ok := c.entries[src]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		c.logger.Debug(LogMsgCacheHit, zap.String(LogFieldTemplate, src))
		return e.tmpl, e.err
	}

	c.misses.Add(1)
	t, err := Compile(src)
	if err != nil {
		c.logger.Debug(LogMsgTemplateRejected, zap.String(LogFieldTemplate, src), zap.Error(err))
	} else {
		c.logger.Debug(LogMsgTemplateCompiled,
			zap.String(LogFieldTemplate, src),
			zap.Int(LogFieldPieces, len(t.pieces)),
			zap.Int(LogFieldPositional, t.positional),
			zap.Strings(LogFieldNames, t.names))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[src]; ok {
		return e.tmpl, e.err
	}
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.logger.Debug(LogMsgCacheFull, zap.Int(LogFieldEntries, len(c.entries)))
		return t, err
	}
	c.entries[src] = cacheEntry{tmpl: t, err: err}
	return t, err
}

// Stats returns a snapshot of the cache counters.
func (c *TemplateCache) Stats() CacheStats {
	c.mu.RLock()
	n := len(c.entries)
	c.mu.RUnlock()
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Entries: n}
}

// Len returns the number of cached templates.
func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached template and resets the counters.
func (c *TemplateCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
	c.logger.Debug(LogMsgCacheCleared)
}
