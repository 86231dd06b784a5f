// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package earcut triangulates simple polygons by ear clipping.
//
// Unlike a triangle fan, ear clipping handles concave outlines. Polygons
// that intersect themselves still produce a triangle list covering the
// outline, but its exact shape is unspecified.
package earcut

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// ErrDegenerate is returned for polygons that enclose no area: fewer than
// three distinct vertices, all vertices collinear, or non-finite
// coordinates.
var ErrDegenerate = errors.New("earcut: degenerate polygon")

// areaEpsilon is the smallest absolute doubled area that counts as a
// polygon.
const areaEpsilon = 1e-12

// Triangulate returns triangles covering the polygon outlined by pts as
// triples of indices into pts. The outline is implicitly closed; a final
// vertex equal to the first is ignored. Both windings are accepted.
func Triangulate(pts []gg.Point) ([]uint32, error) {
	idx := make([]int, 0, len(pts))
	for i, p := range pts {
		if !finite(p) {
			return nil, ErrDegenerate
		}
		if len(idx) > 0 && pts[idx[len(idx)-1]] == p {
			continue
		}
		idx = append(idx, i)
	}
	for len(idx) > 1 && pts[idx[0]] == pts[idx[len(idx)-1]] {
		idx = idx[:len(idx)-1]
	}
	if len(idx) < 3 {
		return nil, ErrDegenerate
	}

	area := signedArea(pts, idx)
	if math.Abs(area) < areaEpsilon {
		return nil, ErrDegenerate
	}
	if area < 0 {
		for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	out := make([]uint32, 0, (len(idx)-2)*3)
	failed := 0
	for i := 0; len(idx) > 3; {
		n := len(idx)
		prev, cur, next := idx[(i+n-1)%n], idx[i%n], idx[(i+1)%n]
		a, b, c := pts[prev], pts[cur], pts[next]

		turn := cross(a, b, c)
		switch {
		case turn == 0:
			// Collinear vertex: drop it without emitting a triangle.
			idx = remove(idx, i%n)
			failed = 0
		case turn > 0 && isEar(pts, idx, prev, cur, next):
			out = append(out, uint32(prev), uint32(cur), uint32(next))
			idx = remove(idx, i%n)
			failed = 0
		case failed >= n:
			// No ear left: the outline crosses itself. Clip a convex
			// vertex anyway so the loop terminates.
			i = convexVertex(pts, idx, i%n)
			n := len(idx)
			out = append(out, uint32(idx[(i+n-1)%n]), uint32(idx[i]), uint32(idx[(i+1)%n]))
			idx = remove(idx, i)
			failed = 0
		default:
			i++
			failed++
			continue
		}
		if i >= len(idx) {
			i = 0
		}
	}
	if cross(pts[idx[0]], pts[idx[1]], pts[idx[2]]) != 0 {
		out = append(out, uint32(idx[0]), uint32(idx[1]), uint32(idx[2]))
	}
	if len(out) == 0 {
		return nil, ErrDegenerate
	}
	return out, nil
}

// isEar reports whether no other remaining vertex lies inside the
// triangle prev, cur, next.
func isEar(pts []gg.Point, idx []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		p := pts[j]
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(a, b, c, p) {
			return false
		}
	}
	return true
}

// convexVertex returns the position of the first convex vertex in idx, or
// fallback if there is none.
func convexVertex(pts []gg.Point, idx []int, fallback int) int {
	n := len(idx)
	for i := range idx {
		if cross(pts[idx[(i+n-1)%n]], pts[idx[i]], pts[idx[(i+1)%n]]) > 0 {
			return i
		}
	}
	return fallback
}

// inTriangle reports whether p lies inside or on the counter-clockwise
// triangle a, b, c.
func inTriangle(a, b, c, p gg.Point) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}

// cross is the z component of (b-a) x (c-a).
func cross(a, b, c gg.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func signedArea(pts []gg.Point, idx []int) float64 {
	var sum float64
	for i, j := range idx {
		k := idx[(i+1)%len(idx)]
		sum += pts[j].X*pts[k].Y - pts[k].X*pts[j].Y
	}
	return sum
}

func remove(idx []int, i int) []int {
	return append(idx[:i], idx[i+1:]...)
}

func finite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
