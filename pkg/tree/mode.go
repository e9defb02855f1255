package tree

import (
	"context"
	"fmt"
	"github.com/willbeason/boom/pkg/geometry"
)

// Mode selects how Grow walks the tree. Every mode produces the same
// segments in the same order.
type Mode int

const (
	// Recursive uses the call stack.
	Recursive Mode = iota
	// Stack uses an explicit work stack; see Walk.
	Stack
	// Parallel grows each child of the trunk in its own goroutine; see
	// GenerateParallel.
	Parallel
)

var modeNames = map[Mode]string{
	Recursive: "recursive",
	Stack:     "stack",
	Parallel:  "parallel",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode with the passed name.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return Recursive, fmt.Errorf("unknown generator %q: want recursive, stack or parallel", name)
}

func (g Generator) grow(origin, dir geometry.Vec3, length float64, depth, maxDepth int, p Params) []Segment {
	switch g.Mode {
	case Stack:
		return g.Walk(origin, dir, length, depth, maxDepth, p)
	case Parallel:
		// Only cancellation fails, and the background context is never canceled.
		segments, _ := g.GenerateParallel(context.Background(), origin, dir, length, depth, maxDepth, p)
		return segments
	default:
		return g.Generate(origin, dir, length, depth, maxDepth, p)
	}
}
