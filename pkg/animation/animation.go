// Package animation drives the living tree: it advances time, derives each
// frame's parameters, grows the tree and hands it to a renderer.
package animation

import (
	"context"
	"errors"
	"fmt"
	"github.com/willbeason/boom/pkg/logging"
	"github.com/willbeason/boom/pkg/oscillator"
	"github.com/willbeason/boom/pkg/render"
	"github.com/willbeason/boom/pkg/tree"
	"log/slog"
	"strings"
	"time"
)

// A Frame is everything needed to draw one step of the animation.
type Frame struct {
	Index    int
	T        float64
	Params   tree.Params
	Camera   render.Camera
	Segments []tree.Segment
}

// Animator produces successive frames. Only the frame counter and the camera
// spin carry over between frames; the tree is grown from scratch each time.
type Animator struct {
	Oscillator oscillator.Oscillator
	Generator  tree.Generator
	MaxDepth   int

	// Step is the animation time, in seconds, between frames.
	Step float64
	Tilt float64

	frame int
	spin  float64
}

// New returns an Animator for the default living tree.
func New(maxDepth int) *Animator {
	return &Animator{
		Oscillator: oscillator.Default(),
		Generator:  tree.Default(),
		MaxDepth:   maxDepth,
		Step:       oscillator.FrameStep,
		Tilt:       render.DefaultTilt,
	}
}

// Next advances the animation by one frame and returns it.
func (a *Animator) Next() Frame {
	a.frame++
	t := float64(a.frame) * a.Step

	params := a.Oscillator.At(t)
	a.spin += a.Oscillator.Spin(t)

	return Frame{
		Index:    a.frame,
		T:        t,
		Params:   params,
		Camera:   render.Camera{Tilt: a.Tilt, Spin: a.spin},
		Segments: a.Generator.Grow(params, a.MaxDepth),
	}
}

// At returns frame index, counting from 1, without advancing a. The camera
// spin is replayed from the first frame.
func (a *Animator) At(index int) Frame {
	replay := *a
	replay.frame = 0
	replay.spin = 0

	for replay.frame < index-1 {
		replay.frame++
		replay.spin += replay.Oscillator.Spin(float64(replay.frame) * replay.Step)
	}
	return replay.Next()
}

// Features lists what the animation shows, for the startup banner.
var Features = []string{
	"variable branch count (more at bottom, fewer at top)",
	"color gradient (brown trunk -> green tips)",
	"dynamic rotation speed",
	"organic swaying and breathing",
}

// Banner logs the startup banner: the depth of the tree and its features.
func (a *Animator) Banner(log *slog.Logger) {
	logging.OrNop(log).Info("living 3D recursive tree",
		"depth", a.MaxDepth,
		"features", strings.Join(Features, ", "))
}

// Options control Run.
type Options struct {
	// Interval is the wall-clock time between frames.
	Interval time.Duration
	// Frames stops the animation after this many frames. Zero runs until the
	// context is canceled or the renderer closes.
	Frames int
	// StatsEvery logs frame statistics every this many frames.
	StatsEvery int
	Logger     *slog.Logger
}

// Run presents frames to r until ctx is done, the frame limit is reached, or
// r reports render.ErrClosed. Closing the renderer is not an error.
func (a *Animator) Run(ctx context.Context, r render.Renderer, opts Options) error {
	log := logging.OrNop(opts.Logger)
	if opts.Interval <= 0 {
		opts.Interval = 16 * time.Millisecond
	}

	a.Banner(log)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	start := time.Now()
	presented := 0
	for opts.Frames <= 0 || presented < opts.Frames {
		f := a.Next()

		err := r.Present(f.Segments, f.Camera)
		if errors.Is(err, render.ErrClosed) {
			break
		} else if err != nil {
			return fmt.Errorf("presenting frame %d: %w", f.Index, err)
		}
		presented++

		if opts.StatsEvery > 0 && f.Index%opts.StatsEvery == 0 {
			log.Debug("frame",
				"index", f.Index,
				"segments", len(f.Segments),
				"branches", f.Params.BranchCount,
				"angle", f.Params.BranchAngle,
				"ratio", f.Params.LengthRatio,
				"spin", f.Camera.Spin)
		}

		select {
		case <-ctx.Done():
			log.Info("tree animation ended", "frames", presented, "elapsed", time.Since(start))
			return ctx.Err()
		case <-ticker.C:
		}
	}

	log.Info("tree animation ended", "frames", presented, "elapsed", time.Since(start))
	return nil
}
