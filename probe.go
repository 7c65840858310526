package fdicons

import (
	"os"
	"path/filepath"
)

var defaultExtensions = []string{".png", ".svg", ".xmp"}
var vectorExtensions = []string{".svg", ".png", ".xmp"}

// statPath is the single filesystem touch point of the lookup chain.
// Swapped out in tests to count or fake probes.
var statPath = func(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// probeIcon tests candidate filenames for the icon inside dir and returns
// the first that exists. PNG is preferred over SVG unless vectorFirst is
// set. Results are intentionally not cached here; caching happens at
// whole-request granularity.
func probeIcon(dir, name string, vectorFirst bool) (string, bool) {
	extensions := defaultExtensions
	if vectorFirst {
		extensions = vectorExtensions
	}
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		if statPath(path) {
			return path, true
		}
	}
	return "", false
}
