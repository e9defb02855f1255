// Package window animates the tree in a desktop window with ebiten.
package window

import (
	"context"
	"errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/willbeason/boom/pkg/animation"
	"github.com/willbeason/boom/pkg/logging"
	"github.com/willbeason/boom/pkg/render"
	"image/color"
	"log/slog"
)

const (
	Title = "Boom - 3D Recursive Tree"

	// TPS is the number of frames per second; each tick advances the
	// animation by one frame.
	TPS = 60
)

// Options configure Run.
type Options struct {
	Width, Height int
	// Frames closes the window after this many frames. Zero runs until the
	// window is closed.
	Frames int
	Logger *slog.Logger
}

// game adapts an Animator to ebiten's update and draw callbacks.
type game struct {
	ctx        context.Context
	animator   *animation.Animator
	projection render.Projection
	frames     int
	log        *slog.Logger

	current animation.Frame
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.frames > 0 && g.current.Index >= g.frames {
		return ebiten.Termination
	}

	g.current = g.animator.Next()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, l := range g.projection.Lines(g.current.Camera, g.current.Segments) {
		r, gr, b := l.Color.Clamped().RGB255()
		vector.StrokeLine(screen,
			float32(l.A.X), float32(l.A.Y), float32(l.B.X), float32(l.B.Y),
			float32(l.Width), color.RGBA{R: r, G: gr, B: b, A: 0xFF}, true)
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.projection.Width, g.projection.Height
}

func newGame(ctx context.Context, a *animation.Animator, opts Options) *game {
	return &game{
		ctx:        ctx,
		animator:   a,
		projection: render.NewProjection(opts.Width, opts.Height),
		frames:     opts.Frames,
		log:        logging.OrNop(opts.Logger),
	}
}

// Run opens a window and animates a in it. It blocks until the window is
// closed, the frame limit is reached or ctx is done.
func Run(ctx context.Context, a *animation.Animator, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 800
	}

	g := newGame(ctx, a, opts)
	a.Banner(g.log)
	g.log.Debug("opening window", "width", opts.Width, "height", opts.Height)

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(TPS)

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	g.log.Info("tree animation ended", "frames", g.current.Index)
	return ctx.Err()
}
