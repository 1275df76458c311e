// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"errors"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/google/go-cmp/cmp"
)

// Face

func TestNewFace(t *testing.T) {
	open := []s2.LatLng{
		s2.LatLngFromDegrees(0, 0),
		s2.LatLngFromDegrees(0, 10),
		s2.LatLngFromDegrees(10, 0),
	}
	f, err := NewFace(3, open)
	if err != nil {
		t.Fatalf("NewFace(3, ...) error = %v, want nil", err)
	}
	if f.ID != 3 {
		t.Errorf("f.ID = %v, want 3", f.ID)
	}
	if len(f.Ring) != 4 || f.Ring[0] != f.Ring[3] {
		t.Errorf("f.Ring = %v, want closed ring of 4", f.Ring)
	}
	if !f.Contains(f.Site, -1e-3) {
		t.Errorf("f.Site = %v, want strictly inside face", f.Site)
	}
	if _, err := NewFace(0, open[:2]); err == nil {
		t.Errorf("NewFace(0, 2 vertices) error = nil, want non-nil")
	}
}

// Net

func TestBuildNet_Malformed(t *testing.T) {
	tetra := tetrahedronFaces(t)
	corner := cornerFaces(t)
	tests := []struct {
		name    string
		faces   []Face
		parents []int
	}{
		{"length mismatch", tetra, []int{-1, 0}},
		{"parent out of range", tetra, []int{-1, 0, 4, 0}},
		{"parent below sentinel", tetra, []int{-1, 0, -2, 0}},
		{"self parent", tetra, []int{-1, 1, 0, 0}},
		{"two cycle", tetra[:2], []int{1, 0}},
		{"long cycle", tetra, []int{-1, 3, 1, 2}},
		{"no shared edge", corner, []int{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildNet(tt.faces, tt.parents, defaultEps)
			if !errors.Is(err, ErrMalformedTree) {
				t.Fatalf("buildNet(..., %v) error = %v, want ErrMalformedTree", tt.parents, err)
			}
			var mte *MalformedTreeError
			if !errors.As(err, &mte) {
				t.Errorf("buildNet(..., %v) error = %T, want *MalformedTreeError", tt.parents, err)
			}
		})
	}
}

func TestBuildNet_Children(t *testing.T) {
	n, err := buildNet(tetrahedronFaces(t), []int{-1, 0, 0, 0}, defaultEps)
	if err != nil {
		t.Fatalf("buildNet(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, n.nodes[0].Children); diff != "" {
		t.Errorf("n.nodes[0].Children mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, n.Roots()); diff != "" {
		t.Errorf("n.Roots() mismatch (-want +got):\n%s", diff)
	}
	if n.nodes[0].SharedEdge != ([2]s2.Point{}) {
		t.Errorf("root SharedEdge = %v, want zero", n.nodes[0].SharedEdge)
	}
}

func TestBuildNet_SharedEdge(t *testing.T) {
	faces := tetrahedronFaces(t)
	n, err := buildNet(faces, []int{-1, 0, 1, 2}, defaultEps)
	if err != nil {
		t.Fatalf("buildNet(...) error = %v, want nil", err)
	}
	for i := 1; i < n.Len(); i++ {
		node := n.nodes[i]
		for _, v := range node.SharedEdge {
			if !faces[i].Contains(v, defaultEps) || !faces[node.Parent].Contains(v, defaultEps) {
				t.Errorf("n.nodes[%d].SharedEdge vertex %v not on both faces", i, v)
			}
		}
		if node.SharedEdge[0].Distance(node.SharedEdge[1]) == 0 {
			t.Errorf("n.nodes[%d].SharedEdge has zero length", i)
		}
	}
}

func TestNet_Accessors(t *testing.T) {
	p := mustNewTetrahedral(t, []int{-1, 0, 1, 2})
	n := p.Net()

	if got := n.Len(); got != 4 {
		t.Errorf("n.Len() = %v, want 4", got)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, n.Order()); diff != "" {
		t.Errorf("n.Order() mismatch (-want +got):\n%s", diff)
	}
	if got := len(n.Folds()); got != 3 {
		t.Errorf("len(n.Folds()) = %v, want 3", got)
	}
	// 12 face edges, 3 folds seen from both sides.
	if got := len(n.Cuts()); got != 6 {
		t.Errorf("len(n.Cuts()) = %v, want 6", got)
	}

	var visited []int
	n.Walk(func(node Node) bool {
		visited = append(visited, node.Face.ID)
		return len(visited) < 2
	})
	if diff := cmp.Diff([]int{0, 1}, visited); diff != "" {
		t.Errorf("n.Walk(...) visited mismatch (-want +got):\n%s", diff)
	}

	for _, in := range []int{-1, n.Len()} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("n.Node(%d) did not panic, want panic", in)
				}
			}()
			n.Node(in)
		}()
	}
}

func TestNet_AccessorsCopy(t *testing.T) {
	p := mustNewTetrahedral(t, []int{-1, 0, 0, 0})
	n := p.Net()
	before, err := p.Forward(10, 10)
	if err != nil {
		t.Fatalf("p.Forward(...) error = %v, want nil", err)
	}

	n.Roots()[0] = 3
	n.Order()[0] = 3
	node := n.Node(0)
	node.Children[0] = 3
	node.Image[0] = node.Image[1]
	node.Face.Ring[0] = node.Face.Ring[1]

	if diff := cmp.Diff([]int{0}, n.Roots()); diff != "" {
		t.Errorf("n.Roots() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, n.Order()); diff != "" {
		t.Errorf("n.Order() mismatch (-want +got):\n%s", diff)
	}
	got := n.Node(0)
	if diff := cmp.Diff([]int{1, 2, 3}, got.Children); diff != "" {
		t.Errorf("n.Node(0).Children mismatch (-want +got):\n%s", diff)
	}
	if got.Image[0] == got.Image[1] {
		t.Errorf("n.Node(0).Image changed through a returned copy")
	}
	if got.Face.Ring[0] == got.Face.Ring[1] {
		t.Errorf("n.Node(0).Face.Ring changed through a returned copy")
	}
	if after, _ := p.Forward(10, 10); after != before {
		t.Errorf("p.Forward(10, 10) = %v, want %v", after, before)
	}
}

func TestNet_TraversalOrder(t *testing.T) {
	p := mustNewTetrahedral(t, []int{2, 2, -1, 1})
	if diff := cmp.Diff([]int{2, 0, 1, 3}, p.Net().Order()); diff != "" {
		t.Errorf("n.Order() mismatch (-want +got):\n%s", diff)
	}
}

// Helpers

// cornerFaces returns two triangles touching only at (0, 0).
func cornerFaces(t *testing.T) []Face {
	t.Helper()
	faces, err := NewFaces([][]s2.LatLng{
		{s2.LatLngFromDegrees(0, 0), s2.LatLngFromDegrees(0, 10), s2.LatLngFromDegrees(10, 0)},
		{s2.LatLngFromDegrees(0, 0), s2.LatLngFromDegrees(0, -10), s2.LatLngFromDegrees(-10, 0)},
	})
	if err != nil {
		t.Fatalf("NewFaces(...) error = %v, want nil", err)
	}
	return faces
}
