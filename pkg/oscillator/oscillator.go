// Package oscillator derives each frame's tree parameters from the elapsed
// animation time, making the tree sway, breathe and shimmer.
package oscillator

import (
	"github.com/willbeason/boom/pkg/tree"
	"math"
)

// A Wave is a sinusoid Amplitude * sin(Frequency * t).
type Wave struct {
	Amplitude float64
	// Frequency is in radians per second of animation time.
	Frequency float64
}

func (w Wave) At(t float64) float64 {
	return w.Amplitude * math.Sin(w.Frequency*t)
}

// Oscillator holds the resting parameters of the tree and the waves which
// perturb them. It has no state; At is a pure function of t.
type Oscillator struct {
	Baseline tree.Params

	LengthRatio Wave
	// BranchAngle is the sum of a slow sway and a faster wobble.
	Sway, Wobble Wave
	Emergence    Wave
	BranchCount  Wave

	// MinBranches and MaxBranches bound the oscillating trunk branch count.
	MinBranches, MaxBranches int

	// RotationSpeed is the base camera spin in degrees per frame, and
	// SpinSpeed its oscillation.
	RotationSpeed float64
	SpinSpeed     Wave
}

// The phase rates of the animation, per frame at FrameStep seconds per frame.
// Expressed as frequencies in radians per second.
const (
	FrameStep = 0.016

	windRate        = 0.02 / FrameStep
	growthRate      = 0.01 / FrameStep
	branchCountRate = 0.005 / FrameStep
	speedRate       = 0.008 / FrameStep
)

// Default returns the living tree's oscillator.
func Default() Oscillator {
	return Oscillator{
		Baseline:      tree.Balanced(),
		LengthRatio:   Wave{Amplitude: 0.03, Frequency: 0.7 * growthRate},
		Sway:          Wave{Amplitude: 5.0, Frequency: 1.3 * windRate},
		Wobble:        Wave{Amplitude: 2.0, Frequency: 2.1},
		Emergence:     Wave{Amplitude: 0.05, Frequency: 0.9},
		BranchCount:   Wave{Amplitude: 2.0, Frequency: branchCountRate},
		MinBranches:   3,
		MaxBranches:   7,
		RotationSpeed: 0.5,
		SpinSpeed:     Wave{Amplitude: 0.3, Frequency: speedRate},
	}
}

// At returns the tree parameters at animation time t, in seconds.
func (o Oscillator) At(t float64) tree.Params {
	return tree.Params{
		LengthRatio: o.Baseline.LengthRatio + o.LengthRatio.At(t),
		BranchAngle: o.Baseline.BranchAngle + o.Sway.At(t) + o.Wobble.At(t),
		Emergence:   o.Baseline.Emergence + o.Emergence.At(t),
		BranchCount: o.branchCount(t),
	}
}

func (o Oscillator) branchCount(t float64) int {
	n := o.Baseline.BranchCount + int(o.BranchCount.At(t))
	if n < o.MinBranches {
		n = o.MinBranches
	}
	if o.MaxBranches > 0 && n > o.MaxBranches {
		n = o.MaxBranches
	}
	if n < tree.MinBranches {
		n = tree.MinBranches
	}
	return n
}

// Spin returns how far, in degrees, the camera turns during the frame at t.
func (o Oscillator) Spin(t float64) float64 {
	return o.RotationSpeed + o.SpinSpeed.At(t)
}
