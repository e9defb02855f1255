package tree

import "github.com/willbeason/boom/pkg/geometry"

// Walk produces the same segments as Generate, in the same order, using an
// explicit stack instead of recursion. Use it for trees deep enough that the
// call stack is a concern.
func (g Generator) Walk(origin, dir geometry.Vec3, length float64, depth, maxDepth int, p Params) []Segment {
	var out []Segment

	stack := []node{{origin: origin, dir: dir, length: length, depth: depth}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.done() {
			continue
		}
		out = append(out, g.segment(n, maxDepth))

		// Push in reverse so the first child is popped first.
		children := g.children(n, maxDepth, p)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return out
}
