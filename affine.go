// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Matrices follow the PDF convention: x' = m[0]x + m[2]y + m[4],
// y' = m[1]x + m[3]y + m[5]. A.Mul(B) applies A first.

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// isRigid reports whether m is a rotation plus translation within eps.
func isRigid(m matrix.Matrix, eps float64) bool {
	return math.Abs(m[0]-m[3]) <= eps &&
		math.Abs(m[1]+m[2]) <= eps &&
		math.Abs(m[0]*m[0]+m[1]*m[1]-1) <= eps
}
