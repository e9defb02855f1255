package tree

// Symmetric returns parameters for a binary tree where both children sprout
// from the tip of their parent at the same angle.
func Symmetric(angle float64) Params {
	return Params{
		LengthRatio: 0.6,
		BranchAngle: angle,
		Emergence:   1.0,
		BranchCount: 2,
	}
}
