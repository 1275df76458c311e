// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package spherical provides the small set of spherical geometry primitives the
// polyhedral projection needs: convex polygons with closed containment tests,
// clipping of lines and rings against them, densification and centroids.

package spherical

import (
	"errors"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Polygon is a convex spherical polygon smaller than a hemisphere.
// Vertices are stored open (no repeated closing vertex) and in CCW order
// when looking out of the sphere, so the interior is on the left of every edge.
type Polygon struct {
	vertices s2.PointVector
	// NOTE: normals[i] is the unit normal of the great circle through
	// vertices[i] and vertices[i+1], pointing into the polygon.
	normals []r3.Vector
	loop    *s2.Loop
}

// NewPolygon builds a Polygon from a ring of vertices. The ring may be open or
// closed and may be given in either orientation.
func NewPolygon(ring []s2.Point) (*Polygon, error) {
	vertices := make(s2.PointVector, 0, len(ring))
	for i, v := range ring {
		if i == len(ring)-1 && len(ring) > 1 && v == ring[0] {
			break
		}
		vertices = append(vertices, v)
	}
	if len(vertices) < 3 {
		return nil, errors.New("spherical: polygon needs at least 3 distinct vertices")
	}

	c := Centroid(vertices)
	if c == (s2.Point{}) {
		return nil, errors.New("spherical: polygon vertices have no well-defined centroid")
	}
	if signedTurn(vertices, c) < 0 {
		reverse(vertices)
	}

	n := len(vertices)
	p := &Polygon{
		vertices: vertices,
		normals:  make([]r3.Vector, n),
	}
	for i := range n {
		a, b := vertices[i], vertices[(i+1)%n]
		normal := a.Cross(b.Vector)
		if normal.Norm() == 0 {
			return nil, errors.New("spherical: polygon has a zero-length edge")
		}
		p.normals[i] = normal.Normalize()
	}
	p.loop = s2.LoopFromPoints(vertices)
	return p, nil
}

// NumVertices returns the number of distinct vertices.
func (p *Polygon) NumVertices() int {
	return len(p.vertices)
}

// Vertices returns the vertices in CCW order, without the closing vertex.
func (p *Polygon) Vertices() s2.PointVector {
	return p.vertices
}

// Edge returns the endpoints of the i-th edge.
func (p *Polygon) Edge(i int) (s2.Point, s2.Point) {
	n := len(p.vertices)
	if i < 0 || i >= n {
		panic("Edge: index out of range")
	}
	return p.vertices[i], p.vertices[(i+1)%n]
}

// Area returns the area of the polygon in steradians.
func (p *Polygon) Area() float64 {
	return p.loop.Area()
}

// CapBound returns a cap containing the polygon.
func (p *Polygon) CapBound() s2.Cap {
	return p.loop.CapBound()
}

// Contains reports whether pt lies inside the polygon or within eps radians of
// its boundary. Boundaries are closed, so a point on an edge shared by two
// polygons is contained by both. A negative eps requires pt to be at least
// -eps radians inside.
func (p *Polygon) Contains(pt s2.Point, eps float64) bool {
	if eps >= 0 && !p.loop.CapBound().Expanded(s1.Angle(2*eps)).ContainsPoint(pt) {
		return false
	}
	for _, n := range p.normals {
		if n.Dot(pt.Vector) < -eps {
			return false
		}
	}
	return true
}

// Contains reports whether pt lies in the closed convex polygon ring.
func Contains(ring []s2.Point, pt s2.Point, eps float64) bool {
	p, err := NewPolygon(ring)
	if err != nil {
		return false
	}
	return p.Contains(pt, eps)
}

// Centroid returns the normalized sum of the points, which is the centroid
// of the point set viewed as a multipoint. It returns the zero Point when the
// points cancel out.
func Centroid(points []s2.Point) s2.Point {
	var sum r3.Vector
	for _, p := range points {
		sum = sum.Add(p.Vector)
	}
	if sum.Norm() == 0 {
		return s2.Point{}
	}
	return s2.Point{Vector: sum.Normalize()}
}

// Densify inserts great-circle interpolated points so that no segment of the
// returned polyline is longer than maxStep. A non-positive maxStep returns the
// input unchanged.
func Densify(points []s2.Point, maxStep s1.Angle) []s2.Point {
	if maxStep <= 0 || len(points) < 2 {
		return points
	}
	out := make([]s2.Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		steps := int(a.Distance(b) / maxStep)
		for k := 1; k <= steps; k++ {
			t := float64(k) / float64(steps+1)
			out = append(out, s2.Interpolate(t, a, b))
		}
		out = append(out, b)
	}
	return out
}

func signedTurn(vertices s2.PointVector, c s2.Point) float64 {
	var sum r3.Vector
	n := len(vertices)
	for i := range n {
		sum = sum.Add(vertices[i].Cross(vertices[(i+1)%n].Vector))
	}
	return sum.Dot(c.Vector)
}

func reverse(v s2.PointVector) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
