package tree

import (
	"github.com/willbeason/boom/pkg/geometry"
	"math"
)

// A Generator turns Params into the line segments of a tree.
//
// The zero Generator colors with the bark-to-leaf gradient and tapers its
// branch count from Params.BranchCount at the trunk down to two at the tips.
type Generator struct {
	Palette  Palette
	Branches BranchPolicy

	// Mode is how Grow walks the tree.
	Mode Mode
}

// Default returns the zero Generator with its defaults made explicit.
func Default() Generator {
	return Generator{
		Palette:  Gradient{Trunk: Bark, Tip: Leaf},
		Branches: Tapered{},
	}
}

func (g Generator) palette() Palette {
	if g.Palette == nil {
		return Gradient{Trunk: Bark, Tip: Leaf}
	}
	return g.Palette
}

func (g Generator) branches() BranchPolicy {
	if g.Branches == nil {
		return Tapered{}
	}
	return g.Branches
}

// A node is one pending call of the recursion.
type node struct {
	origin, dir geometry.Vec3
	length      float64
	depth       int
}

// done reports whether n is past either stopping condition.
func (n node) done() bool {
	return n.depth <= 0 || n.length < LengthFloor
}

// Generate returns the segments of the tree rooted at origin, in pre-order:
// each segment is followed by the subtrees of its children in order.
// dir should be a unit vector.
func (g Generator) Generate(origin, dir geometry.Vec3, length float64, depth, maxDepth int, p Params) []Segment {
	var out []Segment
	g.generate(&out, node{origin: origin, dir: dir, length: length, depth: depth}, maxDepth, p)
	return out
}

func (g Generator) generate(out *[]Segment, n node, maxDepth int, p Params) {
	if n.done() {
		return
	}

	*out = append(*out, g.segment(n, maxDepth))
	for _, child := range g.children(n, maxDepth, p) {
		g.generate(out, child, maxDepth, p)
	}
}

func (g Generator) segment(n node, maxDepth int) Segment {
	return Segment{
		Start: n.origin,
		End:   n.origin.Add(n.dir.Scale(n.length)),
		Color: g.palette().Color(n.depth, maxDepth),
		Width: Width(n.length),
		Depth: n.depth,
	}
}

// children returns the nodes sprouting from n, spread evenly around n's
// direction starting from the first perpendicular.
func (g Generator) children(n node, maxDepth int, p Params) []node {
	emergence := n.origin.Add(n.dir.Scale(n.length * p.Emergence))
	count := g.branches().Branches(n.depth, maxDepth, p)
	angle := p.BranchAngle * math.Pi / 180.0

	perp1, perp2 := geometry.Perpendiculars(n.dir)

	result := make([]node, count)
	for i := range result {
		rot := 2.0 * math.Pi * float64(i) / float64(count)
		radial := perp1.Scale(math.Cos(rot)).Add(perp2.Scale(math.Sin(rot)))

		result[i] = node{
			origin: emergence,
			dir:    geometry.Blend(n.dir, radial, angle),
			length: n.length * p.LengthRatio,
			depth:  n.depth - 1,
		}
	}
	return result
}
