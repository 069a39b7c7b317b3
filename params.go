package georand

import "fmt"

// Parameters configure one generation call. A Parameters value is read
// only for the duration of the call; the same value can be reused for
// any number of calls.
type Parameters struct {
	// MaxPolygonsCount is the target number of polygons in a generated
	// multipolygon.
	MaxPolygonsCount int

	// MaxPolygonVerticesCount is the exclusive upper bound on the
	// number of vertices per polygon. It must be greater than 3 or
	// there is no valid vertex count to draw.
	MaxPolygonVerticesCount int

	// MaxCollisionsCount is the global budget of intersecting candidate
	// polygons that may be rejected before generation stops early. A
	// nil budget disables the intersection check entirely, in which
	// case generated polygons may overlap.
	MaxCollisionsCount *int

	// Bounding region for all generated coordinates. Min must be
	// strictly less than Max on each axis.
	MinX, MinY, MaxX, MaxY float64
}

// DefaultParameters returns parameters for 60 polygons of 3 to 6
// vertices inside the region [0,100)x[0,100) with a collision budget
// of 100.
func DefaultParameters() *Parameters {
	budget := 100
	return &Parameters{
		MaxPolygonsCount:        60,
		MaxPolygonVerticesCount: 7,
		MaxCollisionsCount:      &budget,
		MaxX:                    100,
		MaxY:                    100,
	}
}

// Validate reports a configuration error if the coordinate region or
// the vertex count range is empty.
func (p *Parameters) Validate() error {
	if p.MinX >= p.MaxX {
		return fmt.Errorf("georand: min x %v is not less than max x %v", p.MinX, p.MaxX)
	}
	if p.MinY >= p.MaxY {
		return fmt.Errorf("georand: min y %v is not less than max y %v", p.MinY, p.MaxY)
	}
	if p.MaxPolygonVerticesCount <= 3 {
		return fmt.Errorf("georand: max polygon vertices count %d leaves no valid vertex count", p.MaxPolygonVerticesCount)
	}
	return nil
}
