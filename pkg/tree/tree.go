package tree

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/willbeason/boom/pkg/geometry"
)

const (
	// LengthFloor is the shortest branch that is still drawn.
	// Branches shorter than this end the recursion regardless of depth.
	LengthFloor = 0.5

	// TrunkLength is the length of the first segment of a grown tree.
	TrunkLength = 60.0

	// MinBranches is the fewest children any node sprouts.
	MinBranches = 2
)

// TrunkOrigin is where Grow plants the tree, below the view center so the
// crown is centered.
var TrunkOrigin = geometry.Vec3{X: 0, Y: -80, Z: 0}

// Params shape one frame of the tree. A Params is never modified while a tree
// is being generated; the oscillator derives a fresh one per frame.
type Params struct {
	// LengthRatio is how much shorter each generation is than its parent.
	// Should be in (0, 1) for the tree to converge.
	LengthRatio float64

	// BranchAngle is the angle, in degrees, between a child and its parent.
	BranchAngle float64

	// Emergence is the fraction along the parent at which children sprout.
	// 1.0 sprouts at the tip.
	Emergence float64

	// BranchCount is the number of children at the trunk. Only some
	// BranchPolicy implementations consult it.
	BranchCount int
}

// A Segment is a single colored branch.
type Segment struct {
	Start, End geometry.Vec3
	Color      colorful.Color
	Width      float64

	// Depth is the remaining recursion budget when the segment was emitted.
	Depth int
}

// Width is the stroke width for a branch of the passed length.
// Widths are whole device units, truncated.
func Width(length float64) float64 {
	return float64(int(0.03*length + 1))
}

// Grow generates a full tree from the standard trunk, growing straight up.
func (g Generator) Grow(p Params, maxDepth int) []Segment {
	return g.grow(TrunkOrigin, geometry.Up, TrunkLength, maxDepth, maxDepth, p)
}
