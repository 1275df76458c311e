// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"fmt"
	"slices"

	"github.com/golang/geo/s2"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Node is a face placed in the net. Nodes live in the Net's arena and refer
// to each other by index; the node index equals the face index.
type Node struct {
	Face Face
	// Parent is the index of the parent node, or -1 for a root.
	Parent int
	// Children are the indices of the child nodes, in parent array order.
	Children []int
	// SharedEdge holds the endpoints of the edge shared with the parent, in
	// this face's CCW order. It is zero for roots.
	SharedEdge [2]s2.Point
	// Placement maps the face's local projection into the net plane.
	Placement matrix.Matrix
	// Image is the face boundary in the net plane, open and CCW.
	Image []vec.Vec2

	local      gnomonic
	localImage []vec.Vec2
}

// Net is the unfolded forest of faces. It is immutable once built and safe
// for concurrent use.
type Net struct {
	nodes []Node
	roots []int
	// NOTE: depth-first preorder, roots in index order
	order []int
	eps   float64
}

// Len returns the number of faces.
func (n *Net) Len() int {
	return len(n.nodes)
}

// Node returns a copy of the node of face i.
func (n *Net) Node(i int) Node {
	if i < 0 || i >= len(n.nodes) {
		panic("Node: index out of range")
	}
	node := n.nodes[i]
	node.Face.Ring = slices.Clone(node.Face.Ring)
	node.Children = slices.Clone(node.Children)
	node.Image = slices.Clone(node.Image)
	return node
}

// Roots returns the indices of the root faces.
func (n *Net) Roots() []int {
	return slices.Clone(n.roots)
}

// Order returns the face indices in traversal order: depth first from each
// root, children in parent array order.
func (n *Net) Order() []int {
	return slices.Clone(n.order)
}

// Walk calls fn for every node in traversal order until fn returns false.
func (n *Net) Walk(fn func(node Node) bool) {
	for _, i := range n.order {
		if !fn(n.Node(i)) {
			return
		}
	}
}

// Folds returns the edges along which a child is attached to its parent, in
// traversal order.
func (n *Net) Folds() [][2]s2.Point {
	var folds [][2]s2.Point
	for _, i := range n.order {
		if n.nodes[i].Parent >= 0 {
			folds = append(folds, n.nodes[i].SharedEdge)
		}
	}
	return folds
}

// Cuts returns, for every face in traversal order, the edges of its ring that
// are not folds. Edges cut between two faces are reported once per face.
func (n *Net) Cuts() [][2]s2.Point {
	var cuts [][2]s2.Point
	for _, i := range n.order {
		node := n.nodes[i]
		polygon := node.Face.polygon
		for e := range polygon.NumVertices() {
			a, b := polygon.Edge(e)
			if !n.isFold(i, a, b) {
				cuts = append(cuts, [2]s2.Point{a, b})
			}
		}
	}
	return cuts
}

func (n *Net) isFold(i int, a, b s2.Point) bool {
	node := n.nodes[i]
	if node.Parent >= 0 && sameEdge(node.SharedEdge, a, b, n.eps) {
		return true
	}
	for _, c := range node.Children {
		if sameEdge(n.nodes[c].SharedEdge, a, b, n.eps) {
			return true
		}
	}
	return false
}

// buildNet links faces into a forest following parents. It does not place
// them; see unfold.
func buildNet(faces []Face, parents []int, eps float64) (*Net, error) {
	numFaces := len(faces)
	if len(parents) != numFaces {
		return nil, &MalformedTreeError{
			Face:   -1,
			Reason: fmt.Sprintf("%d parents for %d faces", len(parents), numFaces),
		}
	}

	n := &Net{
		nodes: make([]Node, numFaces),
		eps:   eps,
	}
	for i, f := range faces {
		p := parents[i]
		if p < -1 || p >= numFaces {
			return nil, &MalformedTreeError{
				Face:   i,
				Reason: fmt.Sprintf("parent %d out of range [-1 %d)", p, numFaces),
			}
		}
		n.nodes[i] = Node{Face: f, Parent: p}
	}
	if err := checkAcyclic(parents); err != nil {
		return nil, err
	}

	for i, p := range parents {
		if p == -1 {
			n.roots = append(n.roots, i)
			continue
		}
		edge, ok := sharedEdge(faces[i], faces[p], eps)
		if !ok {
			return nil, &MalformedTreeError{
				Face:   i,
				Reason: fmt.Sprintf("no edge shared with parent %d", p),
			}
		}
		n.nodes[i].SharedEdge = edge
		n.nodes[p].Children = append(n.nodes[p].Children, i)
	}
	if len(n.roots) == 0 && numFaces > 0 {
		return nil, &MalformedTreeError{Face: 0, Reason: "no root"}
	}
	return n, nil
}

// checkAcyclic verifies that following parents from any face reaches a root.
func checkAcyclic(parents []int) error {
	const (
		unvisited = iota
		inPath
		done
	)
	state := make([]int, len(parents))
	for start := range parents {
		var path []int
		i := start
		for i != -1 && state[i] == unvisited {
			state[i] = inPath
			path = append(path, i)
			i = parents[i]
		}
		if i != -1 && state[i] == inPath {
			return &MalformedTreeError{
				Face:   i,
				Reason: "cycle in parent links",
			}
		}
		for _, j := range path {
			state[j] = done
		}
	}
	return nil
}

// sharedEdge finds the edge of child whose endpoints match, in either
// direction, consecutive vertices of parent within eps radians.
func sharedEdge(child, parent Face, eps float64) ([2]s2.Point, bool) {
	cp, pp := child.polygon, parent.polygon
	for i := range cp.NumVertices() {
		a, b := cp.Edge(i)
		for j := range pp.NumVertices() {
			c, d := pp.Edge(j)
			if sameEdge([2]s2.Point{c, d}, a, b, eps) {
				return [2]s2.Point{a, b}, true
			}
		}
	}
	return [2]s2.Point{}, false
}

func sameEdge(e [2]s2.Point, a, b s2.Point, eps float64) bool {
	near := func(p, q s2.Point) bool {
		return float64(p.Distance(q)) <= eps
	}
	return (near(e[0], a) && near(e[1], b)) || (near(e[0], b) && near(e[1], a))
}
