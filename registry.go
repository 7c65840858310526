package fdicons

import (
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Registry is an immutable snapshot of every icon theme installed under a
// set of base paths. It maps a theme's directory name (e.g. "hicolor", not
// the human-readable Name= value) to its records, ordered by base-path
// priority. Concurrent reads need no locking; picking up newly installed
// themes means building a fresh Registry.
type Registry struct {
	themes    map[string][]*ThemeRecord
	basePaths []string
}

// NewRegistry discovers themes under the given base paths, in priority
// order. A subdirectory qualifies as a theme if it has its own index.theme,
// or if a same-named directory under a higher-priority base path already
// provided one; that recorded index completes index-less copies of the
// theme. Directories that end up with no resolvable index are excluded.
//
// Unreadable base paths and malformed indexes are skipped, never fatal: an
// inaccessible environment yields an empty registry, and every lookup
// against it reports absence.
func NewRegistry(basePaths []string, log zerolog.Logger) *Registry {
	type candidate struct {
		name  string
		path  string
		index *ThemeIndex
	}

	var candidates []candidate
	firstIndex := make(map[string]*ThemeIndex)

	for _, base := range basePaths {
		entries, err := os.ReadDir(base)
		if err != nil {
			log.Debug().Err(err).Str("path", base).Msg("cannot list base path, skipping")
			continue
		}

		for _, entry := range entries {
			themePath := filepath.Join(base, entry.Name())
			if !dirExists(themePath) {
				continue
			}

			index, err := ParseThemeIndex(filepath.Join(themePath, indexFileName))
			if err != nil {
				log.Debug().Err(err).Str("theme", entry.Name()).Str("path", themePath).
					Msg("no usable theme index")
			} else if firstIndex[entry.Name()] == nil {
				firstIndex[entry.Name()] = index
			}

			candidates = append(candidates, candidate{
				name:  entry.Name(),
				path:  themePath,
				index: index,
			})
		}
	}

	// Second pass: complete index-less directories from the first index
	// recorded for the same theme name, preserving base-path order.
	themes := make(map[string][]*ThemeRecord)
	for _, c := range candidates {
		index := c.index
		if index == nil {
			index = firstIndex[c.name]
			if index == nil {
				continue
			}
			log.Debug().Str("theme", c.name).Str("path", c.path).
				Msg("completing theme from an earlier base path's index")
		}
		themes[c.name] = append(themes[c.name], &ThemeRecord{
			Path:  c.path,
			Index: index,
		})
	}

	return &Registry{themes: themes, basePaths: basePaths}
}

// Theme returns the records of the named theme in base-path priority
// order, or nil if the theme is not installed.
func (r *Registry) Theme(name string) []*ThemeRecord {
	return r.themes[name]
}

// BasePaths returns the base paths the registry was built from.
func (r *Registry) BasePaths() []string {
	return r.basePaths
}

// ListThemes returns the human-readable Name= of every installed theme,
// ordered by theme directory name. Themes whose index declares no Name
// report their directory name instead.
func (r *Registry) ListThemes() []string {
	dirs := make([]string, 0, len(r.themes))
	for dir := range r.themes {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	names := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		name := r.themes[dir][0].Index.Name
		if name == "" {
			name = dir
		}
		names = append(names, name)
	}
	return names
}

var processRegistry atomic.Pointer[Registry]

// DefaultRegistry returns the shared process-wide registry, built from
// DefaultBasePaths on first use and reused afterwards.
func DefaultRegistry() *Registry {
	if r := processRegistry.Load(); r != nil {
		return r
	}
	processRegistry.CompareAndSwap(nil, NewRegistry(DefaultBasePaths(), zerolog.Nop()))
	return processRegistry.Load()
}

// ReloadThemes rebuilds the shared registry, picking up themes installed
// since process start. The new snapshot is swapped in atomically; lookups
// already running keep reading the old one.
func ReloadThemes() {
	processRegistry.Store(NewRegistry(DefaultBasePaths(), zerolog.Nop()))
}
