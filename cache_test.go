package fdicons

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheDistinguishesUnknownFromNotFound(t *testing.T) {
	cache := NewCache()

	entry := cache.Get("hicolor", "firefox", 24, 1)
	assert.Equal(t, StateUnknown, entry.State)

	cache.Store("hicolor", "firefox", 24, 1, Icon{}, false)
	entry = cache.Get("hicolor", "firefox", 24, 1)
	assert.Equal(t, StateNotFound, entry.State)

	// Different size, different key.
	assert.Equal(t, StateUnknown, cache.Get("hicolor", "firefox", 48, 1).State)
}

func TestCacheStoreAndEvict(t *testing.T) {
	cache := NewCache()

	found := Icon{Name: "firefox", Path: "/tmp/firefox.png", Size: 24, Scale: 1, MinSize: 24, MaxSize: 24}
	cache.Store("Arc", "firefox", 24, 1, found, true)
	entry := cache.Get("Arc", "firefox", 24, 1)
	assert.Equal(t, StateFound, entry.State)
	assert.Equal(t, found, entry.Icon)

	cache.Evict("Arc", "firefox", 24, 1)
	assert.Equal(t, StateUnknown, cache.Get("Arc", "firefox", 24, 1).State)
}

func TestCacheClear(t *testing.T) {
	cache := NewCache()
	cache.Store("a", "x", 24, 1, Icon{Name: "x", Path: "/x.png"}, true)
	cache.Store("b", "y", 24, 1, Icon{}, false)

	cache.Clear()

	assert.Equal(t, StateUnknown, cache.Get("a", "x", 24, 1).State)
	assert.Equal(t, StateUnknown, cache.Get("b", "y", 24, 1).State)
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Store("theme", "icon", j, 1, Icon{Name: "icon", Path: "/p.png"}, true)
				cache.Get("theme", "icon", j, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, StateFound, cache.Get("theme", "icon", 0, 1).State)
}
