// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"errors"

	"github.com/golang/geo/s2"
)

type VoronoiOptions struct {
	Eps float64
}

type VoronoiOption func(*VoronoiOptions) error

// WithEps sets the QuickHull tolerance used for the underlying triangulation.
func WithEps(eps float64) VoronoiOption {
	return func(o *VoronoiOptions) error {
		if eps <= 0 {
			return errors.New("WithEps: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// Voronoi returns the spherical Voronoi diagram of sites as a Solid: face i
// is the cell of sites[i] and its vertices are the circumcenters of the
// Delaunay triangles around that site.
// NOTE: All sites must lie on a sphere.
func Voronoi(sites s2.PointVector, setters ...VoronoiOption) (*Solid, error) {
	opts := VoronoiOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	h, err := newHull(sites, opts.Eps)
	if err != nil {
		return nil, err
	}

	s := &Solid{
		Vertices: make(s2.PointVector, len(h.triangles)),
		Faces:    make([][]int, len(sites)),
	}
	for i, t := range h.triangles {
		s.Vertices[i] = circumcenter(h.vertices[t[0]], h.vertices[t[1]], h.vertices[t[2]])
	}
	for vIdx := range sites {
		it := h.incidentTriangles(vIdx)
		cell := make([]int, len(it))
		copy(cell, it)
		s.Faces[vIdx] = cell
	}
	return s, s.spanFrom(0)
}
