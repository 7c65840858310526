package fdicons

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBasePaths returns the ordered list of directories searched for
// icon themes: ~/.icons, the icons and pixmaps subdirectories of
// XDG_DATA_HOME, then of every XDG_DATA_DIRS entry, with /usr/share used
// when the environment provides nothing. Duplicates and directories that
// do not exist are dropped.
func DefaultBasePaths() []string {
	return basePathsFromEnv(zerolog.Nop())
}

func basePathsFromEnv(log zerolog.Logger) []string {
	var candidates []string

	home, err := os.UserHomeDir()
	if err != nil {
		log.Debug().Err(err).Msg("no home directory, skipping user icon paths")
	} else {
		candidates = append(candidates, filepath.Join(home, ".icons"))
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" && home != "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	if dataHome != "" {
		candidates = append(candidates,
			filepath.Join(dataHome, "icons"),
			filepath.Join(dataHome, "pixmaps"),
		)
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, dataDir := range strings.Split(dataDirs, ":") {
		if dataDir == "" {
			continue
		}
		candidates = append(candidates,
			filepath.Join(dataDir, "icons"),
			filepath.Join(dataDir, "pixmaps"),
		)
	}

	// Legacy location, always probed last.
	candidates = append(candidates, "/usr/share/pixmaps")

	seen := make(map[string]bool, len(candidates))
	paths := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if seen[p] {
			continue
		}
		seen[p] = true
		if !dirExists(p) {
			log.Debug().Str("path", p).Msg("base path does not exist, skipping")
			continue
		}
		paths = append(paths, p)
	}

	return paths
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
