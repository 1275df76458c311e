// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"errors"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

// hull holds the convex hull of points on the unit sphere, which is also their
// spherical Delaunay triangulation.
type hull struct {
	vertices  s2.PointVector
	triangles [][3]int
	// NOTE: Sort in CCW per vertex(look out of sphere)
	incident        []int
	incidentOffsets []int
}

func (h *hull) incidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(h.incidentOffsets) {
		panic("incidentTriangles: vIdx out of range")
	}
	return h.incident[h.incidentOffsets[vIdx]:h.incidentOffsets[vIdx+1]]
}

// NOTE: All vertices must lie on a sphere.
func newHull(vertices s2.PointVector, eps float64) (*hull, error) {
	numVertices := len(vertices)
	if numVertices < 4 {
		return nil, errors.New("polyhedra: insufficient vertices for a hull (minimum 4 required)")
	}
	numTriangles := 2 * (numVertices - 2)
	h := &hull{
		vertices:        vertices,
		triangles:       make([][3]int, numTriangles),
		incident:        make([]int, numTriangles*3),
		incidentOffsets: make([]int, numVertices+1),
	}

	r3vertices := make([]r3.Vector, numVertices)
	for i, p := range vertices {
		r3vertices[i] = p.Vector
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(r3vertices, true, true, eps)
	if len(ch.Indices) != numTriangles*3 {
		return nil, errors.New("polyhedra: inconsistent number of indices returned from QuickHull")
	}

	for _, idx := range ch.Indices {
		h.incidentOffsets[idx+1]++
	}
	for i := range numVertices {
		h.incidentOffsets[i+1] += h.incidentOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, h.incidentOffsets[:numVertices])
	for i := range numTriangles {
		for j := range 3 {
			v := ch.Indices[i*3+j]
			h.triangles[i][j] = v
			h.incident[nxt[v]] = i
			nxt[v]++
		}
		orientCCW(&h.triangles[i], h.vertices)
	}

	for i := range numVertices {
		sortIncidentCCW(i, h.incidentTriangles(i), h.triangles)
	}
	return h, nil
}

func orientCCW(t *[3]int, v s2.PointVector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	if norm.Dot(p0.Vector) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func sortIncidentCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	for i := 1; i < n; i++ {
		nxt := nextVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			if prevVertex(tris[incidentTris[j]], vIdx) == nxt {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func prevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("prevVertex: vIdx not in triangle")
}

func nextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("nextVertex: vIdx not in triangle")
}

// circumcenter returns the unit circumcenter of a CCW spherical triangle.
func circumcenter(p1, p2, p3 s2.Point) s2.Point {
	v1 := p1.Sub(p2.Vector)
	v2 := p2.Sub(p3.Vector)

	c := v1.Cross(v2)
	if c.Dot(p1.Vector.Add(p2.Vector).Add(p3.Vector)) < 0 {
		c = c.Mul(-1)
	}
	return s2.Point{Vector: c.Normalize()}
}
