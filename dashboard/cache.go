package dashboard

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of chart options kept when none is configured.
const DefaultCacheSize = 256

// optionCache holds encoded chart options by (panel, trace). Entries never go
// stale because the dataset is immutable once loaded.
type optionCache struct {
	entries *lru.Cache[string, []byte]
}

func newOptionCache(size int) (*optionCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("creating chart cache: %w", err)
	}
	return &optionCache{entries: entries}, nil
}

func cacheKey(panel, trace string) string {
	return panel + "\x00" + trace
}

func (c *optionCache) get(panel, trace string) ([]byte, bool) {
	return c.entries.Get(cacheKey(panel, trace))
}

func (c *optionCache) add(panel, trace string, option []byte) {
	c.entries.Add(cacheKey(panel, trace), option)
}

func (c *optionCache) len() int {
	return c.entries.Len()
}
