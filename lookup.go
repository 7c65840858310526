package fdicons

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Query holds the parameters of one icon lookup. It is a value: every
// mutator returns an updated copy, so queries can be shared and reused
// freely. Build one with Lookup and execute it with Find.
type Query struct {
	name     string
	theme    string
	size     int
	scale    int
	vector   bool
	useCache bool
	registry *Registry
	cache    *Cache
}

// Lookup starts a query for the named icon with the default theme
// ("hicolor"), size (24) and scale (1).
//
//	icon, ok := fdicons.Lookup("firefox").
//		WithSize(48).
//		WithTheme("Arc").
//		Find()
func Lookup(name string) Query {
	return Query{
		name:  name,
		theme: FallbackTheme,
		size:  24,
		scale: 1,
	}
}

// WithTheme sets the theme the lookup starts from, by directory name.
func (q Query) WithTheme(theme string) Query {
	q.theme = theme
	return q
}

// WithSize sets the requested unscaled size. Panics if size is not
// positive: that is a programming error, not a lookup failure.
func (q Query) WithSize(size int) Query {
	if size <= 0 {
		panic(fmt.Sprintf("fdicons: icon size must be positive, got %d", size))
	}
	q.size = size
	return q
}

// WithScale sets the requested display scale. Panics if scale is not
// positive.
func (q Query) WithScale(scale int) Query {
	if scale <= 0 {
		panic(fmt.Sprintf("fdicons: icon scale must be positive, got %d", scale))
	}
	q.scale = scale
	return q
}

// ForceVector makes the lookup prefer SVG over PNG candidates, useful
// when the caller needs a recolorable icon.
func (q Query) ForceVector() Query {
	q.vector = true
	return q
}

// WithCache memoizes the result in the shared process cache. Repeating an
// identical query then answers from the cache, including confirmed
// negatives, without walking the filesystem again.
func (q Query) WithCache() Query {
	q.useCache = true
	return q
}

// WithCacheStore is WithCache against a caller-owned cache.
func (q Query) WithCacheStore(cache *Cache) Query {
	q.useCache = true
	q.cache = cache
	return q
}

// WithRegistry runs the lookup against an explicit registry snapshot
// instead of the shared process-wide one.
func (q Query) WithRegistry(registry *Registry) Query {
	q.registry = registry
	return q
}

// Find executes the lookup. The fallback chain is: the requested theme
// (exact size match anywhere in the theme, then closest size), its
// inherited parents recursively, the hicolor theme, the icon name probed
// directly under each base path (legacy pixmaps), and finally, for
// path-like names, the literal parent directory. The first hit wins.
//
// Absence is a result, not an error: ok is false after the whole chain
// misses.
func (q Query) Find() (icon Icon, ok bool) {
	registry := q.registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	cache := q.cache
	if cache == nil {
		cache = processCache
	}

	if q.useCache {
		switch entry := cache.Get(q.theme, q.name, q.size, q.scale); entry.State {
		case StateFound:
			return entry.Icon, true
		case StateNotFound:
			return Icon{}, false
		}
	}

	icon, ok = q.search(registry)

	// A hit found through a parent theme, hicolor or the pixmap
	// fallback is still stored under the requested theme's key, so the
	// repeat query never re-walks the inheritance chain.
	if q.useCache {
		cache.Store(q.theme, q.name, q.size, q.scale, icon, ok)
	}
	return icon, ok
}

func (q Query) search(registry *Registry) (Icon, bool) {
	visited := map[string]bool{}
	if icon, ok := q.searchTheme(registry, q.theme, visited); ok {
		return icon, true
	}

	if q.theme != FallbackTheme {
		if icon, ok := q.searchRecords(registry.Theme(FallbackTheme)); ok {
			return icon, true
		}
	}

	for _, base := range registry.BasePaths() {
		if path, ok := probeIcon(base, q.name, q.vector); ok {
			return Icon{Name: q.name, Path: path}, true
		}
	}

	if dir, stem, ok := splitPathName(q.name); ok {
		if path, ok := probeIcon(dir, stem, q.vector); ok {
			return Icon{Name: q.name, Path: path}, true
		}
	}

	return Icon{}, false
}

// searchTheme searches one theme and then, recursively, its parents.
// The visited set keeps cyclic or repeated inheritance declarations from
// being searched twice.
func (q Query) searchTheme(registry *Registry, theme string, visited map[string]bool) (Icon, bool) {
	if visited[theme] {
		return Icon{}, false
	}
	visited[theme] = true

	records := registry.Theme(theme)
	if icon, ok := q.searchRecords(records); ok {
		return icon, true
	}

	// Parent names are collected across all of the theme's records and
	// deduplicated, preserving declaration order.
	var parents []string
	seen := map[string]bool{}
	for _, record := range records {
		for _, parent := range record.Index.Inherits {
			if seen[parent] {
				continue
			}
			seen[parent] = true
			parents = append(parents, parent)
		}
	}

	for _, parent := range parents {
		if icon, ok := q.searchTheme(registry, parent, visited); ok {
			return icon, true
		}
	}

	return Icon{}, false
}

// searchRecords runs the two-phase size search over a theme's records:
// every exact-size directory anywhere in the theme is probed before any
// closest-size directory is considered.
func (q Query) searchRecords(records []*ThemeRecord) (Icon, bool) {
	for _, record := range records {
		for i := range record.Index.Directories {
			dir := &record.Index.Directories[i]
			if !dir.MatchesSize(q.size, q.scale) {
				continue
			}
			if path, ok := probeIcon(filepath.Join(record.Path, dir.Name), q.name, q.vector); ok {
				return q.iconIn(dir, path), true
			}
		}
	}

	for _, record := range records {
		for _, dir := range rankBySize(record.Index.Directories, q.size, q.scale) {
			if path, ok := probeIcon(filepath.Join(record.Path, dir.Name), q.name, q.vector); ok {
				return q.iconIn(dir, path), true
			}
		}
	}

	return Icon{}, false
}

func (q Query) iconIn(dir *Directory, path string) Icon {
	return Icon{
		Name:    q.name,
		Path:    path,
		Size:    dir.Size,
		Scale:   dir.Scale,
		MinSize: dir.MinSize,
		MaxSize: dir.MaxSize,
	}
}

// splitPathName treats a path-like icon name ("~/art/logo.png") as a
// directory plus a file stem, so the literal-path fallback can probe the
// named directory directly.
func splitPathName(name string) (dir, stem string, ok bool) {
	if !strings.ContainsRune(name, filepath.Separator) {
		return "", "", false
	}
	base := filepath.Base(name)
	stem = strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", "", false
	}
	return filepath.Dir(name), stem, true
}

// FindBest resolves the first name from the list that yields an icon at
// the given size and scale, searching in listing order.
func FindBest(names []string, size, scale int) (Icon, bool) {
	for _, name := range names {
		if icon, ok := Lookup(name).WithSize(size).WithScale(scale).Find(); ok {
			return icon, true
		}
	}
	return Icon{}, false
}
