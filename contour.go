package georand

import (
	"errors"
	"sort"

	"github.com/peterstace/simplefeatures/geom"
)

// ErrNoPoints is returned when a contour is requested for an empty
// point list.
var ErrNoPoints = errors.New("georand: no points to build a contour from")

// scalar is any totally ordered numeric coordinate type supporting
// zero, subtraction and multiplication.
type scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// vertex is a coordinate pair over any scalar coordinate type.
type vertex[S scalar] struct {
	x, y S
}

// closedRing orders an unordered, non-empty vertex list into a closed
// ring using a two-chain split. The leftmost vertex (strictly smallest
// x, first occurrence wins) and the rightmost vertex (largest x, last
// occurrence wins) anchor the ring; every remaining vertex is assigned
// to the chain above or below the leftmost-rightmost segment by a
// left-turn test, the above chain is sorted by ascending x, the below
// chain by descending x, and the leftmost vertex is repeated to close
// the ring. Vertices equal in value to either anchor are dropped from
// both chains.
func closedRing[S scalar](points []vertex[S]) []vertex[S] {
	leftMost, rightMost := points[0], points[0]
	for _, pt := range points[1:] {
		if pt.x < leftMost.x {
			leftMost = pt
		}
		if pt.x >= rightMost.x {
			rightMost = pt
		}
	}

	ref := vertex[S]{rightMost.x - leftMost.x, rightMost.y - leftMost.y}
	var above, below []vertex[S]
	for _, pt := range points {
		if pt == leftMost || pt == rightMost {
			continue
		}
		to := vertex[S]{pt.x - leftMost.x, pt.y - leftMost.y}
		if ref.x*to.y-ref.y*to.x >= 0 {
			above = append(above, pt)
		} else {
			below = append(below, pt)
		}
	}
	sort.Slice(above, func(i, j int) bool { return above[i].x < above[j].x })
	sort.Slice(below, func(i, j int) bool { return below[i].x > below[j].x })

	ring := make([]vertex[S], 0, len(points)+1)
	ring = append(ring, leftMost)
	ring = append(ring, above...)
	ring = append(ring, rightMost)
	ring = append(ring, below...)
	ring = append(ring, leftMost)
	return ring
}

// Contour orders an unordered point list into a closed polygon ring.
// For an input of N points with distinct x values the ring has N+1
// points, the first equal to the last.
//
// Known limitation: each chain is sorted by x only, not by angle.
// Inputs with repeated or clustered x values can produce a ring that
// self-intersects; callers that need a simple polygon must verify the
// result themselves.
func Contour(points []geom.XY) (geom.LineString, error) {
	if len(points) == 0 {
		return geom.LineString{}, ErrNoPoints
	}
	verts := make([]vertex[float64], len(points))
	for i, pt := range points {
		verts[i] = vertex[float64]{pt.X, pt.Y}
	}
	ring := closedRing(verts)
	coords := make([]float64, 0, 2*len(ring))
	for _, v := range ring {
		coords = append(coords, v.x, v.y)
	}
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY)), nil
}
