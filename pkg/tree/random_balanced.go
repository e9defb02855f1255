package tree

import "math/rand"

// RandomBalanced returns parameters jittered around Balanced.
// The same source produces the same tree.
func RandomBalanced(r *rand.Rand) Params {
	return Params{
		LengthRatio: r.Float64()*0.15 + 0.55,
		BranchAngle: r.Float64()*30.0 + 20.0,
		Emergence:   r.Float64()*0.4 + 0.5,
		BranchCount: 3 + r.Intn(5),
	}
}
