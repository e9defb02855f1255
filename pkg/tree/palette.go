package tree

import "github.com/lucasb-eyer/go-colorful"

var (
	Bark = colorful.Color{R: 0.55, G: 0.27, B: 0.07}
	Leaf = colorful.Color{R: 0.13, G: 0.55, B: 0.13}
)

// A Palette colors a segment by its remaining depth.
type Palette interface {
	Color(depth, maxDepth int) colorful.Color
}

// Gradient blends per channel from Trunk at full depth to Tip as depth runs
// out.
type Gradient struct {
	Trunk, Tip colorful.Color
}

func (g Gradient) Color(depth, maxDepth int) colorful.Color {
	if maxDepth <= 0 {
		return g.Tip
	}
	t := 1.0 - float64(depth)/float64(maxDepth)
	return g.Trunk.BlendRgb(g.Tip, t)
}

// Solid colors every segment the same.
type Solid colorful.Color

func (s Solid) Color(int, int) colorful.Color {
	return colorful.Color(s)
}

var (
	_ Palette = Gradient{}
	_ Palette = Solid{}
)
