// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"seehuhn.de/go/geom/vec"
)

// gnomonic projects the sphere onto the plane tangent at center. Great circles
// map to straight lines, so face edges stay straight in the local image.
// The plane's x axis points east and its y axis north; at the poles, where
// east is undefined, an arbitrary orthogonal axis is used.
type gnomonic struct {
	center, east, north r3.Vector
}

func newGnomonic(center s2.Point) gnomonic {
	c := center.Vector.Normalize()
	east := r3.Vector{X: 0, Y: 0, Z: 1}.Cross(c)
	if east.Norm() < 1e-12 {
		east = center.Ortho().Vector
	}
	east = east.Normalize()
	return gnomonic{
		center: c,
		east:   east,
		north:  c.Cross(east),
	}
}

// project returns the image of p. It fails for points on or beyond the
// great circle 90° from the center.
func (g gnomonic) project(p s2.Point) (vec.Vec2, bool) {
	d := p.Dot(g.center)
	if d <= 0 {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: p.Dot(g.east) / d, Y: p.Dot(g.north) / d}, true
}

func (g gnomonic) unproject(v vec.Vec2) s2.Point {
	return s2.Point{Vector: g.center.Add(g.east.Mul(v.X)).Add(g.north.Mul(v.Y)).Normalize()}
}
