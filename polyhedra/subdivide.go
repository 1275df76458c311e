// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Subdivide returns the class I geodesic subdivision of a triangular solid:
// every face is split into freq² triangles. Points on the original edges are
// spaced evenly along the great circle, so neighbouring faces share them
// exactly; interior points are normalized barycentric combinations.
// Frequency 2 splits each triangle at its edge midpoints.
func Subdivide(s *Solid, freq int) (*Solid, error) {
	if freq < 1 {
		return nil, fmt.Errorf("Subdivide: frequency %d must be at least 1", freq)
	}
	for i, face := range s.Faces {
		if len(face) != 3 {
			return nil, fmt.Errorf("Subdivide: face %d has %d vertices, want 3", i, len(face))
		}
	}

	out := &Solid{
		Vertices: append(s2.PointVector(nil), s.Vertices...),
		Faces:    make([][]int, 0, len(s.Faces)*freq*freq),
	}
	edgePoints := make(map[[3]int]int)

	// edgePoint returns the k-th of freq+1 points from a to b.
	edgePoint := func(a, b, k int) int {
		switch k {
		case 0:
			return a
		case freq:
			return b
		}
		if a > b {
			a, b, k = b, a, freq-k
		}
		key := [3]int{a, b, k}
		if idx, ok := edgePoints[key]; ok {
			return idx
		}
		p := s2.Interpolate(float64(k)/float64(freq), out.Vertices[a], out.Vertices[b])
		out.Vertices = append(out.Vertices, p)
		edgePoints[key] = len(out.Vertices) - 1
		return edgePoints[key]
	}

	for _, face := range s.Faces {
		a, b, c := face[0], face[1], face[2]
		// grid[i][j] is the point i steps towards b and j steps towards c.
		grid := make([][]int, freq+1)
		for i := range freq + 1 {
			grid[i] = make([]int, freq+1-i)
			for j := range freq + 1 - i {
				switch {
				case j == 0:
					grid[i][j] = edgePoint(a, b, i)
				case i == 0:
					grid[i][j] = edgePoint(a, c, j)
				case i+j == freq:
					grid[i][j] = edgePoint(b, c, j)
				default:
					pa := out.Vertices[a].Mul(float64(freq - i - j))
					pb := out.Vertices[b].Mul(float64(i))
					pc := out.Vertices[c].Mul(float64(j))
					out.Vertices = append(out.Vertices, s2.Point{Vector: pa.Add(pb).Add(pc).Normalize()})
					grid[i][j] = len(out.Vertices) - 1
				}
			}
		}
		for i := range freq {
			for j := range freq - i {
				out.Faces = append(out.Faces, []int{grid[i][j], grid[i+1][j], grid[i][j+1]})
				if i+j < freq-1 {
					out.Faces = append(out.Faces, []int{grid[i+1][j], grid[i+1][j+1], grid[i][j+1]})
				}
			}
		}
	}
	return out, out.spanFrom(0)
}
