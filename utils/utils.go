// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides deterministic random inputs for tests, benchmarks and
// examples of polyhedral projections.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomPoints generates a vector of random points on the S2 sphere.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) s2.PointVector {
	lls := GenerateRandomLatLngs(cnt, seed)
	points := make(s2.PointVector, cnt)
	for i, ll := range lls {
		points[i] = s2.PointFromLatLng(ll)
	}
	return points
}

// GenerateRandomLatLngs generates random coordinates, uniformly distributed
// over the sphere's area. The seed parameter ensures reproducibility.
func GenerateRandomLatLngs(cnt int, seed int64) []s2.LatLng {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	lls := make([]s2.LatLng, cnt)

	for i := range cnt {
		lls[i] = s2.LatLng{
			Lat: s1.Angle(math.Asin(random.Float64()*2 - 1)),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		}
	}

	return lls
}

// GenerateGraticule returns the meridians and parallels every step degrees as
// polylines of coordinates, each sampled every sample degrees.
func GenerateGraticule(step, sample float64) [][]s2.LatLng {
	var lines [][]s2.LatLng
	for lng := -180.0; lng < 180; lng += step {
		var line []s2.LatLng
		for lat := -90 + sample; lat < 90; lat += sample {
			line = append(line, s2.LatLngFromDegrees(lat, lng))
		}
		lines = append(lines, line)
	}
	for lat := -90 + step; lat < 90; lat += step {
		var line []s2.LatLng
		for lng := -180.0; lng <= 180; lng += sample {
			line = append(line, s2.LatLngFromDegrees(lat, lng))
		}
		lines = append(lines, line)
	}
	return lines
}
