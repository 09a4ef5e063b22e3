package stemmer

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached memoizes stems of recently seen words. Purge must be called after
// the underlying dictionary changes.
type Cached struct {
	stemmer *Stemmer
	cache   *lru.Cache[string, string]

	// gen counts purges. A stem computed before a purge is not stored.
	mu  sync.Mutex
	gen uint64
}

func NewCached(s *Stemmer, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("error creating stem cache: %w", err)
	}

	return &Cached{stemmer: s, cache: cache}, nil
}

func (c *Cached) Stem(word string) string {
	if stem, ok := c.cache.Get(word); ok {
		return stem
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	stem := c.stemmer.Stem(word)

	c.mu.Lock()
	if gen == c.gen {
		c.cache.Add(word, stem)
	}
	c.mu.Unlock()

	return stem
}

func (c *Cached) Len() int {
	return c.cache.Len()
}

func (c *Cached) Purge() {
	c.mu.Lock()
	c.gen++
	c.cache.Purge()
	c.mu.Unlock()
}
