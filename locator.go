// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"github.com/golang/geo/s2"
)

// NotFound is the face index reported when no face contains a point.
const NotFound = -1

// Locator maps a point on the sphere, already rotated into the projection's
// frame, to the index of the face containing it, or NotFound.
type Locator interface {
	Locate(p s2.Point) int
}

// ScanLocator tests every face in order and returns the last one containing
// the point. Boundaries are closed, so on an edge or vertex shared by several
// faces the highest index wins; this lets finer faces listed after a coarser
// container take precedence. Faces not built with NewFace never match.
type ScanLocator struct {
	Faces []Face
	// Eps is the containment tolerance in radians.
	Eps float64
}

func (l ScanLocator) Locate(p s2.Point) int {
	found := NotFound
	for i, f := range l.Faces {
		if f.Contains(p, l.Eps) {
			found = i
		}
	}
	return found
}

// FuncLocator adapts a caller-supplied face finder taking longitude and
// latitude in degrees, for partitions with a cheaper or more robust exact
// containment test than the generic scan.
type FuncLocator func(lng, lat float64) int

func (f FuncLocator) Locate(p s2.Point) int {
	ll := s2.LatLngFromPoint(p)
	return f(ll.Lng.Degrees(), ll.Lat.Degrees())
}
