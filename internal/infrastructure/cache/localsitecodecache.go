package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultLocalSiteCodeEntries = 1024

// LocalSiteCodeCache keeps site code to id mappings in process memory. It
// stands in for SiteCodeCache when Redis is disabled; the least recently
// resolved codes are evicted once size entries are held.
type LocalSiteCodeCache struct {
	entries *lru.Cache[string, uint]
}

func NewLocalSiteCodeCache(size int) *LocalSiteCodeCache {
	if size <= 0 {
		size = defaultLocalSiteCodeEntries
	}
	entries, err := lru.New[string, uint](size)
	if err != nil {
		// lru.New only fails on a non-positive size
		entries, _ = lru.New[string, uint](defaultLocalSiteCodeEntries)
	}
	return &LocalSiteCodeCache{entries: entries}
}

func (c *LocalSiteCodeCache) Get(_ context.Context, code string) (uint, bool, error) {
	id, ok := c.entries.Get(code)
	return id, ok, nil
}

func (c *LocalSiteCodeCache) Set(_ context.Context, code string, id uint) error {
	c.entries.Add(code, id)
	return nil
}

func (c *LocalSiteCodeCache) Len() int {
	return c.entries.Len()
}
