package fdicons

import (
	"math"
	"sort"
)

// noDistance marks a directory that cannot serve a request at any size,
// excluding it from closest-size ranking.
const noDistance = math.MaxInt

// MatchesSize reports whether the directory serves the requested size and
// scale exactly: the scale must be equal, and the size must satisfy the
// directory's matching mode.
func (d *Directory) MatchesSize(size, scale int) bool {
	if d.Scale != scale {
		return false
	}
	switch d.Type {
	case Fixed:
		return d.Size == size
	case Scalable:
		return d.MinSize <= size && size <= d.MaxSize
	default:
		return d.Size-d.Threshold <= size && size <= d.Size+d.Threshold
	}
}

// SizeDistance returns how far the directory is from serving the requested
// size and scale, comparing scaled pixel sizes. A distance of 0 means the
// request falls within the directory's scaled bounds. Directories with
// malformed metadata return noDistance and are never ranked.
func (d *Directory) SizeDistance(size, scale int) int {
	if d.Size <= 0 || d.Scale <= 0 {
		return noDistance
	}

	requested := size * scale
	switch d.Type {
	case Fixed:
		return abs(d.Size*d.Scale - requested)
	case Scalable:
		if requested < d.MinSize*d.Scale {
			return d.MinSize*d.Scale - requested
		}
		if requested > d.MaxSize*d.Scale {
			return requested - d.MaxSize*d.Scale
		}
		return 0
	default:
		if requested < (d.Size-d.Threshold)*d.Scale {
			return d.MinSize*d.Scale - requested
		}
		if requested > (d.Size+d.Threshold)*d.Scale {
			return requested - d.MaxSize*d.Scale
		}
		return 0
	}
}

// rankBySize returns the directories able to serve the request, ordered by
// ascending size distance. The sort is stable so that equally distant
// directories keep their declaration order.
func rankBySize(dirs []Directory, size, scale int) []*Directory {
	type candidate struct {
		dir  *Directory
		dist int
	}

	candidates := make([]candidate, 0, len(dirs))
	for i := range dirs {
		dist := dirs[i].SizeDistance(size, scale)
		if dist == noDistance {
			continue
		}
		candidates = append(candidates, candidate{dir: &dirs[i], dist: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	ranked := make([]*Directory, len(candidates))
	for i, c := range candidates {
		ranked[i] = c.dir
	}
	return ranked
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
