// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"math"
	"slices"

	"github.com/golang/geo/s2"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// unfold places every face of the net. Roots get their entry in rootPlacement,
// or the identity. Each child is then attached rigidly to its parent's placed
// image along their shared edge, hinged open so that the child lies on the
// far side of the edge from the parent.
func (n *Net) unfold(rootPlacement map[int]matrix.Matrix) error {
	for i := range n.nodes {
		node := &n.nodes[i]
		node.local = newGnomonic(node.Face.Site)
		node.localImage = make([]vec.Vec2, node.Face.polygon.NumVertices())
		for j, v := range node.Face.polygon.Vertices() {
			img, ok := node.local.project(v)
			if !ok {
				return &DegenerateEdgeError{
					Face:   i,
					Parent: node.Parent,
					Reason: "face extends beyond its local projection",
				}
			}
			node.localImage[j] = img
		}
	}

	n.order = n.order[:0]
	for _, root := range n.roots {
		m, ok := rootPlacement[root]
		if !ok {
			m = matrix.Identity
		}
		n.place(root, m)

		stack := []int{root}
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n.order = append(n.order, i)

			children := n.nodes[i].Children
			for _, c := range slices.Backward(children) {
				m, err := n.attach(c)
				if err != nil {
					return err
				}
				n.place(c, m)
				stack = append(stack, c)
			}
		}
	}
	return nil
}

func (n *Net) place(i int, m matrix.Matrix) {
	node := &n.nodes[i]
	node.Placement = m
	node.Image = make([]vec.Vec2, len(node.localImage))
	for j, v := range node.localImage {
		node.Image[j] = apply(m, v)
	}
}

// attach solves the rigid placement of child c onto its already placed parent.
func (n *Net) attach(c int) (matrix.Matrix, error) {
	child := &n.nodes[c]
	parent := &n.nodes[child.Parent]
	degenerate := func(reason string) error {
		return &DegenerateEdgeError{Face: c, Parent: child.Parent, Reason: reason}
	}

	a, b := child.SharedEdge[0], child.SharedEdge[1]
	la, okA := child.local.project(a)
	lb, okB := child.local.project(b)
	pa, okPA := n.placedOn(parent, a)
	pb, okPB := n.placedOn(parent, b)
	if !okA || !okB || !okPA || !okPB {
		return matrix.Matrix{}, degenerate("shared edge outside local projection")
	}
	if lb.Sub(la).Length() <= n.eps || pb.Sub(pa).Length() <= n.eps {
		return matrix.Matrix{}, degenerate("shared edge has zero length")
	}

	// a maps onto the parent's image of a, never onto that of b.
	m := edgeTransform(la, lb, pa, pb)
	parentSide := side(pa, pb, apply(parent.Placement, vec.Vec2{}))
	childSide := side(pa, pb, apply(m, vec.Vec2{}))
	switch {
	case parentSide == 0 || childSide == 0:
		return matrix.Matrix{}, degenerate("face sites are collinear with the shared edge")
	case parentSide*childSide > 0:
		return matrix.Matrix{}, degenerate("face folds onto its parent")
	}
	return m, nil
}

// placedOn returns the image of p in node's placed frame.
func (n *Net) placedOn(node *Node, p s2.Point) (vec.Vec2, bool) {
	v, ok := node.local.project(p)
	if !ok {
		return vec.Vec2{}, false
	}
	return apply(node.Placement, v), true
}

// edgeTransform returns the rigid transform taking the direction of a→b to
// that of c→d and the midpoint of ab to the midpoint of cd. When both
// segments have the same length, a maps to c and b to d exactly.
func edgeTransform(a, b, c, d vec.Vec2) matrix.Matrix {
	src, dst := b.Sub(a), d.Sub(c)
	theta := math.Atan2(dst.Y, dst.X) - math.Atan2(src.Y, src.X)
	mid := apply(matrix.Rotate(theta), a.Add(b).Mul(0.5))
	t := c.Add(d).Mul(0.5).Sub(mid)
	return matrix.Rotate(theta).Translate(t.X, t.Y)
}

// side returns the signed area spanned by a→b and a→p: positive when p is to
// the left of the line through a and b.
func side(a, b, p vec.Vec2) float64 {
	ab, ap := b.Sub(a), p.Sub(a)
	return ab.X*ap.Y - ab.Y*ap.X
}
