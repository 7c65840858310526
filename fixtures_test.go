package fdicons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// writeTheme lays a theme directory under base: an index.theme with the
// given content (skipped when empty, for index-less theme copies) plus one
// empty file per icon, given as a path relative to the theme directory.
func writeTheme(t testing.TB, base, theme, index string, icons ...string) {
	t.Helper()
	dir := filepath.Join(base, theme)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if index != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, indexFileName), []byte(index), 0o644))
	}
	writeFiles(t, dir, icons...)
}

func writeFiles(t testing.TB, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
}

func testRegistry(t testing.TB, basePaths ...string) *Registry {
	t.Helper()
	return NewRegistry(basePaths, zerolog.Nop())
}

// countProbes swaps the stat hook for one that counts filesystem probes.
// Tests using it must not run in parallel.
func countProbes(t testing.TB) *int {
	orig := statPath
	count := new(int)
	statPath = func(path string) bool {
		*count++
		return orig(path)
	}
	t.Cleanup(func() { statPath = orig })
	return count
}

const hicolorIndex = `[Icon Theme]
Name=Hicolor
Comment=Fallback icon theme
Directories=22x22/apps,48x48/apps

[22x22/apps]
Size=22

[48x48/apps]
Size=48
`
