package tree

import "math"

// Balanced returns the resting parameters of the animated tree.
func Balanced() Params {
	return Params{
		LengthRatio: 0.65,
		BranchAngle: 35.0,
		Emergence:   0.7,
		BranchCount: 5,
	}
}

// BalancedConstant returns parameters where the crown keeps the same overall
// height regardless of how many children each node has. Adding children
// shortens them so the total branch length per generation stays near
// that of a binary tree with ratio lengthRatio.
func BalancedConstant(angle float64, branches int, lengthRatio float64) Params {
	if branches < MinBranches {
		branches = MinBranches
	}

	return Params{
		LengthRatio: lengthRatio * math.Sqrt(float64(MinBranches)/float64(branches)),
		BranchAngle: angle,
		Emergence:   0.7,
		BranchCount: branches,
	}
}
