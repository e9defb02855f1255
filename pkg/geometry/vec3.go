package geometry

import "math"

const (
	// degenerateNorm is the magnitude below which Normalize gives up and
	// returns Up.
	degenerateNorm = 1e-4

	// verticalCos is how close to vertical a direction may be before
	// Perpendiculars switches its reference axis away from Up.
	verticalCos = 0.99
)

var (
	Up    = Vec3{X: 0, Y: 1, Z: 0}
	Right = Vec3{X: 1, Y: 0, Z: 0}
)

// Vec3 is a point or direction in tree space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// Vectors shorter than 1e-4 normalize to Up rather than dividing by ~zero.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n < degenerateNorm {
		return Up
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Perpendiculars returns two unit vectors which, together with dir, form an
// orthogonal basis. The first is dir × Up, or dir × Right when dir is nearly
// vertical and the cross product with Up would vanish.
func Perpendiculars(dir Vec3) (Vec3, Vec3) {
	ref := Up
	if math.Abs(dir.Y) > verticalCos {
		ref = Right
	}

	perp1 := dir.Cross(ref).Normalize()
	perp2 := dir.Cross(perp1).Normalize()
	return perp1, perp2
}

// Blend tilts dir towards radial by angle radians. For orthogonal unit
// inputs the result is already close to unit length; it is normalized anyway.
func Blend(dir, radial Vec3, angle float64) Vec3 {
	return dir.Scale(math.Cos(angle)).Add(radial.Scale(math.Sin(angle))).Normalize()
}
