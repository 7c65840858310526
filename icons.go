// Package fdicons resolves icon file paths following the freedesktop
// icon-theme specification: themes are discovered under a set of base
// directories, each theme declares sized subdirectories in its index.theme,
// and lookups fall back through inherited themes, the hicolor default theme
// and finally the legacy pixmaps directories.
//
// The package never reads icon file contents; it only establishes that a
// path exists. Rasterization lives in the renderer subpackage.
package fdicons

// Icon is a resolved lookup result.
type Icon struct {
	// Short name of the icon, as requested.
	Name string

	// Full path of the icon file.
	Path string

	// Nominal (unscaled) size of the directory the icon was found in.
	//
	// set to 0, if unknown (pixmap and literal-path hits)
	Size int

	// Scale of the directory the icon was found in.
	//
	// set to 0, if unknown
	Scale int

	// Minimum (unscaled) size that the icon can be scaled to.
	//
	// set to 0, if unknown
	MinSize int

	// Maximum (unscaled) size that the icon can be scaled to.
	//
	// set to 0, if unknown
	MaxSize int
}

// DirType is the size-matching mode of a theme subdirectory.
type DirType int

const (
	// Threshold directories match any size within a band around the
	// nominal size. This is the default when index.theme declares no
	// Type, or an unrecognized one.
	Threshold DirType = iota
	Fixed
	Scalable
)

func (t DirType) String() string {
	switch t {
	case Fixed:
		return "Fixed"
	case Scalable:
		return "Scalable"
	default:
		return "Threshold"
	}
}

func parseDirType(s string) DirType {
	switch s {
	case "Fixed":
		return Fixed
	case "Scalable":
		return Scalable
	default:
		return Threshold
	}
}

// Directory describes one icon-bearing subdirectory of a theme, as declared
// by a section of the theme's index.theme file.
//
// The subdirectory here is the inner-most directory, directly under which
// there are icon files.
type Directory struct {
	// Path of the subdirectory relative to the theme directory,
	// e.g. "24x24/apps".
	Name string

	// Nominal (unscaled) size of the icons in this directory.
	Size int

	// Target scale of the icons in this directory.
	// Defaults to 1 if not present.
	Scale int

	// Size-matching mode for this directory.
	Type DirType

	// Maximum (unscaled) size that the icons in this directory can be
	// scaled to. Defaults to Size if not present.
	MaxSize int

	// Minimum (unscaled) size that the icons in this directory can be
	// scaled to. Defaults to Size if not present.
	MinSize int

	// The icons in this directory can be used if the requested size
	// differs at most this much from the nominal size. Only meaningful
	// for Threshold directories. Defaults to 2 if not present.
	Threshold int
}
