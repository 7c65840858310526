package fdicons

import (
	"fmt"

	"gopkg.in/ini.v1"
)

const (
	indexFileName    = "index.theme"
	iconThemeSection = "Icon Theme"

	// FallbackTheme is the theme every lookup ultimately falls back to.
	FallbackTheme = "hicolor"
)

// ThemeIndex is the parsed content of an index.theme file.
type ThemeIndex struct {
	// Human-readable name of the theme, used in e.g. lists when
	// selecting themes.
	Name string

	// Longer description of the theme.
	Comment string

	// Names of the themes this theme inherits from. If an icon is not
	// found in the current theme it is searched for in each parent, and
	// recursively in their parents. "hicolor" never appears here: it is
	// searched unconditionally as the final theme stage, so an explicit
	// hicolor parent is dropped during parsing.
	Inherits []string

	// Subdirectories of the theme holding icon files, in declaration
	// order, merged from the Directories and ScaledDirectories lists.
	Directories []Directory
}

// ThemeRecord is one physical theme directory together with its parsed
// index. A logical theme may be split across several base paths, yielding
// one record per base path. Records are immutable after construction.
type ThemeRecord struct {
	// Absolute path of the theme directory.
	Path string

	Index *ThemeIndex
}

// ParseThemeIndex parses index.theme content from a file path or raw
// bytes. Parsing is tolerant: comments, unknown keys, extra whitespace and
// unrecognizable lines are ignored; a directory section with a missing or
// unparseable Size is dropped; other malformed numeric fields fall back to
// their defaults. Only a missing [Icon Theme] section or unreadable input
// fails the parse.
func ParseThemeIndex(source any) (*ThemeIndex, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}, source)
	if err != nil {
		return nil, fmt.Errorf("reading theme index: %w", err)
	}

	themeSection, err := file.GetSection(iconThemeSection)
	if err != nil {
		return nil, fmt.Errorf("theme index has no [Icon Theme] section: %w", err)
	}

	index := &ThemeIndex{
		Name:    themeSection.Key("Name").String(),
		Comment: themeSection.Key("Comment").String(),
	}

	for _, parent := range themeSection.Key("Inherits").Strings(",") {
		if parent == "" || parent == FallbackTheme {
			continue
		}
		index.Inherits = append(index.Inherits, parent)
	}

	// Directories is authoritative; ScaledDirectories only adds names
	// not already listed.
	names := themeSection.Key("Directories").Strings(",")
	names = append(names, themeSection.Key("ScaledDirectories").Strings(",")...)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		section, err := file.GetSection(name)
		if err != nil {
			// Listed but not described, contributes nothing.
			continue
		}

		size, err := section.Key("Size").Int()
		if err != nil {
			continue
		}

		index.Directories = append(index.Directories, Directory{
			Name:      name,
			Size:      size,
			Scale:     section.Key("Scale").MustInt(1),
			Type:      parseDirType(section.Key("Type").String()),
			MaxSize:   section.Key("MaxSize").MustInt(size),
			MinSize:   section.Key("MinSize").MustInt(size),
			Threshold: section.Key("Threshold").MustInt(2),
		})
	}

	return index, nil
}
