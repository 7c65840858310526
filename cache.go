package fdicons

import "sync"

// CacheState distinguishes the three outcomes of a cached lookup key.
type CacheState int

const (
	// StateUnknown means the key has never been looked up; a full
	// search is required.
	StateUnknown CacheState = iota

	// StateFound records a successful lookup and its resulting path.
	StateFound

	// StateNotFound records that a full search definitively failed.
	// Repeating the request reports absence without touching the
	// filesystem again.
	StateNotFound
)

// CacheEntry is a tri-state cached lookup result. The zero value is
// StateUnknown, which is also what Cache.Get returns for absent keys, so
// an unknown key can never be confused with a confirmed negative.
//
// The whole Icon is stored, not just its path: a cached hit must be
// indistinguishable from the search that produced it, directory metadata
// included.
type CacheEntry struct {
	State CacheState
	Icon  Icon
}

type cacheKey struct {
	theme string
	icon  string
	size  int
	scale int
}

// Cache memoizes lookup results per (theme, icon, size, scale). One mutex
// guards the whole map; hold times are map operations only, filesystem
// probing always happens outside the lock.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]CacheEntry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]CacheEntry)}
}

// Get returns the cached entry for the key, or a StateUnknown entry if the
// key was never stored.
func (c *Cache) Get(theme, icon string, size, scale int) CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[cacheKey{theme, icon, size, scale}]
}

// Store records the outcome of a completed search: the found icon, or a
// confirmed negative when found is false.
func (c *Cache) Store(theme, icon string, size, scale int, result Icon, found bool) {
	entry := CacheEntry{State: StateNotFound}
	if found {
		entry = CacheEntry{State: StateFound, Icon: result}
	}
	c.mu.Lock()
	c.entries[cacheKey{theme, icon, size, scale}] = entry
	c.mu.Unlock()
}

// Evict forgets a single key, restoring full-search behavior for it.
func (c *Cache) Evict(theme, icon string, size, scale int) {
	c.mu.Lock()
	delete(c.entries, cacheKey{theme, icon, size, scale})
	c.mu.Unlock()
}

// Clear forgets every cached result.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]CacheEntry)
	c.mu.Unlock()
}

// processCache backs lookups that enable caching without supplying their
// own Cache.
var processCache = NewCache()
