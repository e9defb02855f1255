package tree

// SegmentCount is the number of segments in a tree of the passed depth where
// every node has exactly branches children and no branch falls below
// LengthFloor: 1 + b + b^2 + ... + b^(depth-1).
func SegmentCount(branches, depth int) int {
	total := 0
	level := 1
	for d := 0; d < depth; d++ {
		total += level
		level *= branches
	}
	return total
}
