// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2polyhedral implements polyhedral projections of the S2 sphere: the
// sphere is partitioned into convex spherical faces which are unfolded edge to
// edge onto the plane, like the net of a paper polyhedron.

package s2polyhedral

import (
	"fmt"

	"github.com/2dChan/s2polyhedral/spherical"
	"github.com/golang/geo/s2"
)

// Face is one cell of the sphere's partition. Faces should be built with
// NewFace; New rebuilds faces given as literals from their Ring.
type Face struct {
	// ID is the index of the face in the input face list.
	ID int
	// Ring is the closed boundary, first and last coordinate equal.
	Ring []s2.LatLng
	// Site is the representative interior point used as the origin of the
	// face's local projection.
	Site s2.Point

	polygon *spherical.Polygon
}

// NewFace builds a face from a ring of coordinates. An open ring is closed.
// The ring must describe a convex spherical polygon smaller than a hemisphere.
func NewFace(id int, ring []s2.LatLng) (Face, error) {
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring[:len(ring):len(ring)], ring[0])
	}
	points := make([]s2.Point, len(ring))
	for i, ll := range ring {
		points[i] = s2.PointFromLatLng(ll)
	}
	polygon, err := spherical.NewPolygon(points)
	if err != nil {
		return Face{}, fmt.Errorf("NewFace: face %d: %w", id, err)
	}
	return Face{
		ID:      id,
		Ring:    ring,
		Site:    spherical.Centroid(polygon.Vertices()),
		polygon: polygon,
	}, nil
}

// NewFaces builds faces from rings, numbering them in order.
func NewFaces(rings [][]s2.LatLng) ([]Face, error) {
	faces := make([]Face, len(rings))
	for i, ring := range rings {
		f, err := NewFace(i, ring)
		if err != nil {
			return nil, err
		}
		faces[i] = f
	}
	return faces, nil
}

// Polygon returns the face boundary as a CCW spherical polygon.
func (f Face) Polygon() *spherical.Polygon {
	return f.polygon
}

// Contains reports whether p lies in the face or within eps radians of its
// boundary. A Face not built with NewFace contains nothing.
func (f Face) Contains(p s2.Point, eps float64) bool {
	if f.polygon == nil {
		return false
	}
	return f.polygon.Contains(p, eps)
}
