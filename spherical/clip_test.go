// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spherical

import (
	"testing"

	"github.com/golang/geo/s2"
)

func TestPolygon_ClipLine(t *testing.T) {
	p := mustNewPolygon(t, []s2.Point{ll(0, 0), ll(20, 0), ll(20, 20), ll(0, 20)})

	tests := []struct {
		name          string
		line          []s2.Point
		wantFragments int
		wantLens      []int
	}{
		{"inside", []s2.Point{ll(5, 5), ll(10, 5), ll(10, 10)}, 1, []int{3}},
		{"outside", []s2.Point{ll(-10, 5), ll(-5, 5)}, 0, nil},
		{"crossing in", []s2.Point{ll(-10, 5), ll(10, 5)}, 1, []int{2}},
		{"crossing through", []s2.Point{ll(-10, 5), ll(30, 5)}, 1, []int{2}},
		{"leave and return", []s2.Point{ll(5, 5), ll(30, 5), ll(30, 10), ll(5, 10)}, 2, []int{2, 2}},
		{"single point inside", []s2.Point{ll(5, 5)}, 1, []int{1}},
		{"single point outside", []s2.Point{ll(-5, 5)}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ClipLine(tt.line)
			if len(got) != tt.wantFragments {
				t.Fatalf("p.ClipLine(...) = %d fragments, want %d", len(got), tt.wantFragments)
			}
			for i, f := range got {
				if len(f) != tt.wantLens[i] {
					t.Errorf("p.ClipLine(...)[%d] len = %d, want %d", i, len(f), tt.wantLens[i])
				}
				for j, pt := range f {
					if !p.Contains(pt, 1e-12) {
						t.Errorf("p.ClipLine(...)[%d][%d] = %v outside polygon", i, j, pt)
					}
				}
			}
		})
	}
}

func TestPolygon_ClipLine_CutOnEdge(t *testing.T) {
	p := mustNewPolygon(t, []s2.Point{ll(0, 0), ll(20, 0), ll(20, 20), ll(0, 20)})
	got := p.ClipLine([]s2.Point{ll(-10, 10), ll(10, 10)})
	if len(got) != 1 {
		t.Fatalf("p.ClipLine(...) = %d fragments, want 1", len(got))
	}
	// The western edge lies on the prime meridian.
	cut := got[0][0]
	if lng := s2.LatLngFromPoint(cut).Lng.Degrees(); lng > 1e-9 || lng < -1e-9 {
		t.Errorf("p.ClipLine(...) cut longitude = %v, want 0", lng)
	}
}

func TestPolygon_ClipRing(t *testing.T) {
	p := mustNewPolygon(t, []s2.Point{ll(0, 0), ll(20, 0), ll(20, 20), ll(0, 20)})

	tests := []struct {
		name     string
		ring     []s2.Point
		wantSize int
	}{
		{"inside", []s2.Point{ll(5, 5), ll(10, 5), ll(10, 10), ll(5, 5)}, 3},
		{"outside", []s2.Point{ll(-15, 5), ll(-10, 5), ll(-10, 10)}, 0},
		{"overlapping corner", []s2.Point{ll(-10, -10), ll(10, -10), ll(10, 10), ll(-10, 10)}, 4},
		{"covering", []s2.Point{ll(-10, -10), ll(30, -10), ll(30, 30), ll(-10, 30)}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ClipRing(tt.ring)
			if len(got) != tt.wantSize {
				t.Fatalf("p.ClipRing(...) = %d vertices, want %d", len(got), tt.wantSize)
			}
			for i, pt := range got {
				if !p.Contains(pt, 1e-12) {
					t.Errorf("p.ClipRing(...)[%d] = %v outside polygon", i, pt)
				}
			}
		})
	}
}
