// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"github.com/2dChan/s2polyhedral/spherical"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Fragment is the part of a line or ring that falls in one face, projected
// with that face's transform.
type Fragment struct {
	Face   int
	Points []vec.Vec2
	// Closed is set for fragments of rings.
	Closed bool
}

// Stitched is a geometry split at face boundaries, fragments in face
// traversal order. Fragments cut along a fold abut in the plane.
type Stitched []Fragment

// Path assembles the fragments into a single path, one subpath per fragment.
func (s Stitched) Path() *path.Data {
	d := &path.Data{}
	for _, f := range s {
		if len(f.Points) == 0 {
			continue
		}
		d = d.MoveTo(f.Points[0])
		for _, v := range f.Points[1:] {
			d = d.LineTo(v)
		}
		if f.Closed {
			d = d.Close()
		}
	}
	return d
}

// StitchLine splits a polyline of great-circle segments at face boundaries
// and projects every fragment with the face it lies in.
func (p *Projection) StitchLine(line []s2.LatLng) Stitched {
	points := p.prepare(line, false)
	var out Stitched
	for _, i := range p.net.order {
		for _, fragment := range p.net.nodes[i].Face.polygon.ClipLine(points) {
			if f, ok := p.projectFragment(i, fragment, false); ok {
				out = append(out, f)
			}
		}
	}
	return out
}

// StitchRing splits a closed ring at face boundaries; each face receives the
// part of the ring's interior it contains, as a closed fragment.
// The ring must be convex or lie within a hemisphere of each face it touches.
func (p *Projection) StitchRing(ring []s2.LatLng) Stitched {
	points := p.prepare(ring, true)
	var out Stitched
	for _, i := range p.net.order {
		clipped := p.net.nodes[i].Face.polygon.ClipRing(points)
		if len(clipped) < 3 {
			continue
		}
		if f, ok := p.projectFragment(i, clipped, true); ok {
			out = append(out, f)
		}
	}
	return out
}

// prepare rotates the coordinates into the projection frame, closes rings
// and densifies them.
func (p *Projection) prepare(lls []s2.LatLng, closed bool) []s2.Point {
	points := make([]s2.Point, len(lls), len(lls)+1)
	for i, ll := range lls {
		points[i] = p.rot.forward(s2.PointFromLatLng(ll))
	}
	if closed && len(lls) > 1 && lls[0] != lls[len(lls)-1] {
		points = append(points, points[0])
	}
	if p.cfg.Precision <= 0 {
		return points
	}
	return spherical.Densify(points, s1.Angle(p.cfg.Precision)*s1.Degree)
}

func (p *Projection) projectFragment(i int, points []s2.Point, closed bool) (Fragment, bool) {
	f := Fragment{Face: i, Points: make([]vec.Vec2, 0, len(points)), Closed: closed}
	for _, pt := range points {
		v, ok := p.projectOn(i, pt)
		if !ok {
			continue
		}
		f.Points = append(f.Points, v)
	}
	return f, len(f.Points) > 0
}
