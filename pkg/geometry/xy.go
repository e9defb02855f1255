package geometry

// XY is a point on a 2D image plane.
type XY struct {
	X, Y float64
}
