package tree

import (
	"context"
	"github.com/willbeason/boom/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// GenerateParallel produces the same segments as Generate, generating the
// subtree of each child of the root in its own goroutine. Subtrees are
// concatenated in child order, so the output is identical to Generate's.
//
// Returns ctx's error if it is canceled before all subtrees are started.
func (g Generator) GenerateParallel(ctx context.Context, origin, dir geometry.Vec3, length float64, depth, maxDepth int, p Params) ([]Segment, error) {
	root := node{origin: origin, dir: dir, length: length, depth: depth}
	if root.done() {
		return nil, nil
	}

	children := g.children(root, maxDepth, p)
	subtrees := make([][]Segment, len(children))

	eg, ctx := errgroup.WithContext(ctx)
	for i, child := range children {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.generate(&subtrees[i], child, maxDepth, p)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 1
	for _, s := range subtrees {
		total += len(s)
	}

	out := make([]Segment, 0, total)
	out = append(out, g.segment(root, maxDepth))
	for _, s := range subtrees {
		out = append(out, s...)
	}
	return out, nil
}
