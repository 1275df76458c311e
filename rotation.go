// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Rotation is a rotation of the sphere given by three Euler angles in degrees:
// Lambda turns about the polar axis (adding to longitude), then Phi about the
// y axis and Gamma about the x axis.
type Rotation struct {
	Lambda, Phi, Gamma float64
}

type rotator struct {
	sinL, cosL, sinP, cosP, sinG, cosG float64
}

func (r Rotation) rotator() rotator {
	var rt rotator
	rt.sinL, rt.cosL = math.Sincos(r.Lambda * math.Pi / 180)
	rt.sinP, rt.cosP = math.Sincos(r.Phi * math.Pi / 180)
	rt.sinG, rt.cosG = math.Sincos(r.Gamma * math.Pi / 180)
	return rt
}

func (rt rotator) forward(p s2.Point) s2.Point {
	x := p.X*rt.cosL - p.Y*rt.sinL
	y := p.X*rt.sinL + p.Y*rt.cosL
	z := p.Z

	k := z*rt.cosP + x*rt.sinP
	x = x*rt.cosP - z*rt.sinP

	return s2.Point{Vector: r3.Vector{
		X: x,
		Y: y*rt.cosG - k*rt.sinG,
		Z: k*rt.cosG + y*rt.sinG,
	}}
}

func (rt rotator) inverse(p s2.Point) s2.Point {
	k := p.Z*rt.cosG - p.Y*rt.sinG
	y := p.Y*rt.cosG + p.Z*rt.sinG

	x := p.X*rt.cosP + k*rt.sinP
	z := k*rt.cosP - p.X*rt.sinP

	return s2.Point{Vector: r3.Vector{
		X: x*rt.cosL + y*rt.sinL,
		Y: -x*rt.sinL + y*rt.cosL,
		Z: z,
	}}
}
