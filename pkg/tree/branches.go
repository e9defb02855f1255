package tree

// A BranchPolicy decides how many children a node at depth sprouts.
type BranchPolicy interface {
	Branches(depth, maxDepth int, p Params) int
}

// Fixed sprouts the same number of children at every depth.
type Fixed int

func (f Fixed) Branches(int, int, Params) int {
	if int(f) < MinBranches {
		return MinBranches
	}
	return int(f)
}

// Tapered interpolates linearly from Params.BranchCount children at the trunk
// down to MinBranches at the tips.
type Tapered struct{}

func (Tapered) Branches(depth, maxDepth int, p Params) int {
	if maxDepth <= 0 {
		return MinBranches
	}

	t := float64(depth) / float64(maxDepth)
	n := MinBranches + int(float64(p.BranchCount-MinBranches)*t)
	if n < MinBranches {
		n = MinBranches
	}
	return n
}

var (
	_ BranchPolicy = Fixed(3)
	_ BranchPolicy = Tapered{}
)
