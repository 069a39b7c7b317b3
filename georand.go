// Package georand generates randomized, bounded-complexity 2D shapes:
// single polygons and collections of mutually non-overlapping polygons,
// for use as synthetic fixtures in geometry, pathfinding and collision
// testing.
//
// Every generation function takes a caller-owned *rand.Rand and draws
// from it in a fixed order, so a given seed and Parameters reproduce
// bit-identical output. The random source is never duplicated or
// reseeded internally.
package georand

import (
	"math/rand/v2"

	"github.com/peterstace/simplefeatures/geom"
)

// uniform draws one value from the half-open interval [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// minMax orders a pair of values ascending.
func minMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// samplePoint draws a point inside the given rectangle, x first then y,
// each coordinate uniform in its half-open interval.
func samplePoint(rng *rand.Rand, minX, minY, maxX, maxY float64) geom.XY {
	x := uniform(rng, minX, maxX)
	y := uniform(rng, minY, maxY)
	return geom.XY{X: x, Y: y}
}

// Point draws one point uniformly inside the parameter region,
// consuming exactly two draws from rng (x then y).
func Point(rng *rand.Rand, params *Parameters) (geom.Point, error) {
	if err := params.Validate(); err != nil {
		return geom.Point{}, err
	}
	xy := samplePoint(rng, params.MinX, params.MinY, params.MaxX, params.MaxY)
	return geom.NewPoint(geom.Coordinates{XY: xy}), nil
}

// Polygon generates one random polygon inside the parameter region.
//
// A random sub-rectangle of the region is chosen, a vertex count is
// drawn from [3, MaxPolygonVerticesCount), that many vertices are
// sampled inside the sub-rectangle, the contour is built, and the
// whole shape is translated to a random position that keeps it inside
// the region. The polygon has no holes.
//
// The rng draw order is fixed: box x1, y1, x2, y2, then the vertex
// count, then x and y per vertex, then the translation x and y.
// Reordering any draw breaks seed reproducibility.
func Polygon(rng *rand.Rand, params *Parameters) (geom.Polygon, error) {
	if err := params.Validate(); err != nil {
		return geom.Polygon{}, err
	}

	x1 := uniform(rng, params.MinX, params.MaxX)
	y1 := uniform(rng, params.MinY, params.MaxY)
	x2 := uniform(rng, params.MinX, params.MaxX)
	y2 := uniform(rng, params.MinY, params.MaxY)
	boxMinX, boxMaxX := minMax(x1, x2)
	boxMinY, boxMaxY := minMax(y1, y2)

	verticesCount := 3 + rng.IntN(params.MaxPolygonVerticesCount-3)

	points := make([]geom.XY, verticesCount)
	for i := range points {
		points[i] = samplePoint(rng, boxMinX, boxMinY, boxMaxX, boxMaxY)
	}

	contour, err := Contour(points)
	if err != nil {
		return geom.Polygon{}, err
	}

	// The offset range keeps the translated sub-rectangle, and with it
	// every vertex, inside the overall region.
	dx := uniform(rng, params.MinX-boxMinX, params.MaxX-boxMaxX)
	dy := uniform(rng, params.MinY-boxMinY, params.MaxY-boxMaxY)

	polygon := geom.NewPolygon([]geom.LineString{contour})
	return polygon.TransformXY(func(xy geom.XY) geom.XY {
		return geom.XY{X: xy.X + dx, Y: xy.Y + dy}
	}), nil
}

// MultiPolygon generates up to MaxPolygonsCount polygons inside the
// parameter region.
//
// When a collision budget is set, each candidate is tested against
// every already accepted polygon; an intersecting candidate is
// discarded and counted, and once the counter reaches the budget the
// accepted polygons are returned as-is. A short result is valid, not
// an error. A nil budget skips the intersection check, so polygons may
// overlap and generation only stops at the target count.
func MultiPolygon(rng *rand.Rand, params *Parameters) (geom.MultiPolygon, error) {
	if err := params.Validate(); err != nil {
		return geom.MultiPolygon{}, err
	}

	polygons := make([]geom.Polygon, 0, params.MaxPolygonsCount)
	collisions := 0

outer:
	for (params.MaxCollisionsCount == nil || collisions < *params.MaxCollisionsCount) &&
		len(polygons) < params.MaxPolygonsCount {
		candidate, err := Polygon(rng, params)
		if err != nil {
			return geom.MultiPolygon{}, err
		}

		if params.MaxCollisionsCount != nil {
			cg := candidate.AsGeometry()
			for i := range polygons {
				if geom.Intersects(cg, polygons[i].AsGeometry()) {
					collisions++
					continue outer
				}
			}
		}

		polygons = append(polygons, candidate)
	}

	return geom.NewMultiPolygon(polygons), nil
}
