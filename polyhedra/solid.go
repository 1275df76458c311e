// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package polyhedra generates face partitions of the sphere for polyhedral
// projections: the spherical Platonic solids, geodesic subdivisions of
// triangular solids and spherical Voronoi diagrams, each with a default
// unfolding tree.

package polyhedra

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

const (
	defaultEps = 1e-12
)

// Solid is a partition of the sphere into convex spherical polygons that share
// vertices by index.
type Solid struct {
	Vertices s2.PointVector
	// NOTE: Sort in CCW per Face(look out of sphere)
	Faces [][]int
	// Parents is an unfolding tree over Faces, -1 marks a root.
	Parents []int
}

// NumFaces returns the number of faces.
func (s *Solid) NumFaces() int {
	return len(s.Faces)
}

// Face returns the vertices of face i in CCW order.
// It returns an error if the index is out of range.
func (s *Solid) Face(i int) (s2.PointVector, error) {
	if i < 0 || i >= len(s.Faces) {
		return nil, fmt.Errorf("Face: index %d out of range [0 %d)", i, len(s.Faces))
	}
	face := s.Faces[i]
	out := make(s2.PointVector, len(face))
	for j, v := range face {
		out[j] = s.Vertices[v]
	}
	return out, nil
}

// Rings returns every face as a closed ring of coordinates, the first vertex
// repeated at the end.
func (s *Solid) Rings() [][]s2.LatLng {
	rings := make([][]s2.LatLng, len(s.Faces))
	for i, face := range s.Faces {
		ring := make([]s2.LatLng, 0, len(face)+1)
		for _, v := range face {
			ring = append(ring, s2.LatLngFromPoint(s.Vertices[v]))
		}
		rings[i] = append(ring, ring[0])
	}
	return rings
}

// Adjacency returns, for every face, the faces sharing an edge with it, in the
// order of the face's edges.
func (s *Solid) Adjacency() [][]int {
	edges := make(map[[2]int][]int)
	for fIdx, face := range s.Faces {
		n := len(face)
		for i := range n {
			e := sortPair(face[i], face[(i+1)%n])
			edges[e] = append(edges[e], fIdx)
		}
	}

	adj := make([][]int, len(s.Faces))
	for fIdx, face := range s.Faces {
		n := len(face)
		for i := range n {
			for _, other := range edges[sortPair(face[i], face[(i+1)%n])] {
				if other != fIdx {
					adj[fIdx] = append(adj[fIdx], other)
				}
			}
		}
	}
	return adj
}

// SpanningParents returns a breadth-first spanning forest of the face
// adjacency graph rooted at root. Faces unreachable from root start their own
// trees, in index order.
func SpanningParents(adj [][]int, root int) ([]int, error) {
	n := len(adj)
	if root < 0 || root >= n {
		return nil, fmt.Errorf("polyhedra: root %d out of range [0 %d)", root, n)
	}
	parents := make([]int, n)
	for i := range parents {
		parents[i] = -1
	}
	visited := make([]bool, n)

	bfs := func(start int) {
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, nbr := range adj[current] {
				if !visited[nbr] {
					visited[nbr] = true
					parents[nbr] = current
					queue = append(queue, nbr)
				}
			}
		}
	}

	bfs(root)
	for i := range n {
		if !visited[i] {
			bfs(i)
		}
	}
	return parents, nil
}

func sortPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// fromHull builds a triangular Solid from the hull of vertices.
func fromHull(vertices s2.PointVector) (*Solid, error) {
	h, err := newHull(vertices, defaultEps)
	if err != nil {
		return nil, err
	}
	s := &Solid{
		Vertices: h.vertices,
		Faces:    make([][]int, len(h.triangles)),
	}
	for i, t := range h.triangles {
		s.Faces[i] = []int{t[0], t[1], t[2]}
	}
	return s, s.spanFrom(0)
}

func (s *Solid) spanFrom(root int) error {
	parents, err := SpanningParents(s.Adjacency(), root)
	if err != nil {
		return err
	}
	s.Parents = parents
	return nil
}

// Tetrahedron returns the 4 triangular faces of the spherical tetrahedron.
func Tetrahedron() *Solid {
	return mustFromHull(s2.PointVector{
		s2.PointFromCoords(1, 1, 1),
		s2.PointFromCoords(1, -1, -1),
		s2.PointFromCoords(-1, 1, -1),
		s2.PointFromCoords(-1, -1, 1),
	})
}

// Octahedron returns the 8 triangular faces of the spherical octahedron.
func Octahedron() *Solid {
	return mustFromHull(octahedronVertices())
}

// Icosahedron returns the 20 triangular faces of the spherical icosahedron,
// with vertices at the poles and at ±atan(1/2) latitude every 36°.
func Icosahedron() *Solid {
	return mustFromHull(icosahedronVertices())
}

// Cube returns the 6 square faces of the spherical cube, the Voronoi diagram
// of the octahedron's vertices.
func Cube() *Solid {
	return mustVoronoi(octahedronVertices())
}

// Dodecahedron returns the 12 pentagonal faces of the spherical dodecahedron,
// the Voronoi diagram of the icosahedron's vertices.
func Dodecahedron() *Solid {
	return mustVoronoi(icosahedronVertices())
}

func octahedronVertices() s2.PointVector {
	return s2.PointVector{
		s2.PointFromCoords(0, 0, 1),
		s2.PointFromCoords(1, 0, 0),
		s2.PointFromCoords(0, 1, 0),
		s2.PointFromCoords(-1, 0, 0),
		s2.PointFromCoords(0, -1, 0),
		s2.PointFromCoords(0, 0, -1),
	}
}

func icosahedronVertices() s2.PointVector {
	theta := math.Atan(0.5) * 180 / math.Pi
	vertices := s2.PointVector{
		s2.PointFromLatLng(s2.LatLngFromDegrees(90, 0)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(-90, 0)),
	}
	for i := range 10 {
		lat := -theta
		if i&1 == 1 {
			lat = theta
		}
		lng := float64((i*36+180)%360 - 180)
		vertices = append(vertices, s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng)))
	}
	return vertices
}

// The regular solids are built from fixed, well-conditioned vertex sets.
func mustFromHull(vertices s2.PointVector) *Solid {
	s, err := fromHull(vertices)
	if err != nil {
		panic(errors.Join(errors.New("polyhedra: regular solid"), err))
	}
	return s
}

func mustVoronoi(sites s2.PointVector) *Solid {
	s, err := Voronoi(sites)
	if err != nil {
		panic(errors.Join(errors.New("polyhedra: regular solid"), err))
	}
	return s
}
