// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spherical

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// ClipLine clips a polyline of great-circle segments against the polygon and
// returns the retained fragments in input order. Cut points lie exactly on
// the polygon edge that produced them.
func (p *Polygon) ClipLine(line []s2.Point) [][]s2.Point {
	var (
		fragments [][]s2.Point
		current   []s2.Point
	)
	if len(line) == 1 {
		if p.Contains(line[0], 0) {
			return [][]s2.Point{{line[0]}}
		}
		return nil
	}
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		start, end, cutStart, cutEnd, ok := p.clipSegment(a, b)
		if !ok {
			if len(current) > 0 {
				fragments = append(fragments, current)
				current = nil
			}
			continue
		}
		if len(current) == 0 || cutStart {
			if len(current) > 0 {
				fragments = append(fragments, current)
			}
			current = []s2.Point{start}
		}
		current = append(current, end)
		if cutEnd {
			fragments = append(fragments, current)
			current = nil
		}
	}
	if len(current) > 0 {
		fragments = append(fragments, current)
	}
	return fragments
}

// clipSegment clips the minor arc a→b against every edge half-space.
// cutStart and cutEnd report whether the returned endpoints were moved onto
// the polygon boundary.
func (p *Polygon) clipSegment(a, b s2.Point) (start, end s2.Point, cutStart, cutEnd, ok bool) {
	start, end = a, b
	tStart, tEnd := 0.0, 1.0
	length := float64(a.Distance(b))
	for _, n := range p.normals {
		da, db := n.Dot(a.Vector), n.Dot(b.Vector)
		switch {
		case da >= 0 && db >= 0:
			continue
		case da < 0 && db < 0:
			return s2.Point{}, s2.Point{}, false, false, false
		}
		x := crossing(a.Vector, b.Vector, da, db)
		t := 0.0
		if length > 0 {
			t = float64(a.Distance(x)) / length
		}
		if da < 0 {
			if t > tStart {
				tStart, start, cutStart = t, x, true
			}
		} else if t < tEnd {
			tEnd, end, cutEnd = t, x, true
		}
	}
	if tStart > tEnd {
		return s2.Point{}, s2.Point{}, false, false, false
	}
	return start, end, cutStart, cutEnd, true
}

// ClipRing clips a closed ring against the polygon using Sutherland-Hodgman
// over the edge half-spaces. The input may be open or closed; the result is
// open and has fewer than 3 vertices when nothing of the ring remains.
func (p *Polygon) ClipRing(ring []s2.Point) []s2.Point {
	out := make([]s2.Point, 0, len(ring))
	for i, v := range ring {
		if i == len(ring)-1 && len(ring) > 1 && v == ring[0] {
			break
		}
		out = append(out, v)
	}
	for _, n := range p.normals {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]s2.Point, 0, len(in)+2)
		s := in[len(in)-1]
		ds := n.Dot(s.Vector)
		for _, e := range in {
			de := n.Dot(e.Vector)
			switch {
			case de >= 0:
				if ds < 0 {
					out = append(out, crossing(s.Vector, e.Vector, ds, de))
				}
				out = append(out, e)
			case ds >= 0:
				out = append(out, crossing(s.Vector, e.Vector, ds, de))
			}
			s, ds = e, de
		}
	}
	return out
}

// crossing returns the point of the minor arc a→b on the great circle whose
// signed distances from a and b are da and db. The signs of da and db must differ.
func crossing(a, b r3.Vector, da, db float64) s2.Point {
	d := da - db
	return s2.Point{Vector: b.Mul(da / d).Sub(a.Mul(db / d)).Normalize()}
}
