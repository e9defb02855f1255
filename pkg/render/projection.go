package render

import (
	"cmp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/willbeason/boom/pkg/geometry"
	"github.com/willbeason/boom/pkg/tree"
	"math"
	"slices"
)

// Projection is a perspective view onto an image of Width by Height pixels.
// The tree is placed Distance units in front of the eye after being rotated
// by the Camera.
type Projection struct {
	Width, Height int

	// FOV is the vertical field of view in degrees.
	FOV       float64
	Near, Far float64
	Distance  float64
}

// NewProjection returns the standard view for an image of the passed size.
func NewProjection(width, height int) Projection {
	return Projection{
		Width:    width,
		Height:   height,
		FOV:      45.0,
		Near:     1.0,
		Far:      1000.0,
		Distance: 300.0,
	}
}

// A Line is a segment projected onto the image.
type Line struct {
	A, B  geometry.XY
	Color colorful.Color
	Width float64

	// Depth is the distance from the eye to the segment's midpoint.
	Depth float64
}

// View rotates v by the camera, spin about the vertical axis first, and moves
// it in front of the eye. The eye looks down -Z.
func (p Projection) View(cam Camera, v geometry.Vec3) geometry.Vec3 {
	spin := cam.Spin * math.Pi / 180.0
	tilt := cam.Tilt * math.Pi / 180.0

	x := v.X*math.Cos(spin) + v.Z*math.Sin(spin)
	z := -v.X*math.Sin(spin) + v.Z*math.Cos(spin)

	y := v.Y*math.Cos(tilt) - z*math.Sin(tilt)
	z = v.Y*math.Sin(tilt) + z*math.Cos(tilt)

	return geometry.Vec3{X: x, Y: y, Z: z - p.Distance}
}

// Point projects v to pixel coordinates with the origin at the top left.
// ok is false if v is outside the near and far planes.
func (p Projection) Point(cam Camera, v geometry.Vec3) (xy geometry.XY, depth float64, ok bool) {
	e := p.View(cam, v)
	depth = -e.Z
	if depth < p.Near || depth > p.Far {
		return geometry.XY{}, depth, false
	}

	top := p.Near * math.Tan(p.FOV*math.Pi/360.0)
	right := top * float64(p.Width) / float64(p.Height)

	ndcX := e.X * p.Near / depth / right
	ndcY := e.Y * p.Near / depth / top

	return geometry.XY{
		X: (ndcX + 1.0) * 0.5 * float64(p.Width),
		Y: (1.0 - ndcY) * 0.5 * float64(p.Height),
	}, depth, true
}

// Lines projects segments, dropping any that cross the near or far plane.
// The result is ordered farthest first so that drawing in order paints near
// branches over far ones.
func (p Projection) Lines(cam Camera, segments []tree.Segment) []Line {
	lines := make([]Line, 0, len(segments))
	for _, s := range segments {
		a, da, okA := p.Point(cam, s.Start)
		b, db, okB := p.Point(cam, s.End)
		if !okA || !okB {
			continue
		}

		lines = append(lines, Line{
			A:     a,
			B:     b,
			Color: s.Color,
			Width: s.Width,
			Depth: 0.5 * (da + db),
		})
	}

	slices.SortStableFunc(lines, func(l, r Line) int {
		return cmp.Compare(r.Depth, l.Depth)
	})
	return lines
}
