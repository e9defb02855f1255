// Package config holds the settings of the tree tools, read from an optional
// TOML file and overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/willbeason/boom/pkg/animation"
	"github.com/willbeason/boom/pkg/oscillator"
	"github.com/willbeason/boom/pkg/render"
	"github.com/willbeason/boom/pkg/tree"
	"math/rand"
	"strings"
	"time"
)

// MaxDepth bounds the recursion depth; a tapered tree of depth 12 with seven
// trunk branches already has hundreds of thousands of segments.
const MaxDepth = 12

var ErrInvalid = errors.New("invalid configuration")

const (
	BranchesTapered = "tapered"
	BranchesFixed   = "fixed"

	PresetCustom           = ""
	PresetBalanced         = "balanced"
	PresetSymmetric        = "symmetric"
	PresetBalancedConstant = "balanced-constant"
	PresetRandom           = "random"

	PaletteGradient = "gradient"
	PaletteSolid    = "solid"
)

type Config struct {
	Depth int `toml:"depth"`

	Tree      Tree      `toml:"tree"`
	Palette   Palette   `toml:"palette"`
	Animation Animation `toml:"animation"`
	Output    Output    `toml:"output"`
}

type Tree struct {
	// Preset picks how the fields below become tree parameters. The custom
	// preset uses them as they are; symmetric reads only BranchAngle;
	// balanced-constant reads BranchAngle, BranchCount and LengthRatio;
	// balanced ignores them; random draws them from Seed.
	Preset string `toml:"preset"`

	LengthRatio float64 `toml:"length_ratio"`
	BranchAngle float64 `toml:"branch_angle"`
	Emergence   float64 `toml:"emergence"`
	BranchCount int     `toml:"branch_count"`

	// Branches is BranchesTapered or BranchesFixed.
	Branches string `toml:"branches"`

	// Seed, if nonzero, replaces the parameters above with random ones.
	Seed int64 `toml:"seed"`

	// Generator is how the tree is walked: recursive, stack or parallel.
	Generator string `toml:"generator"`
}

type Palette struct {
	// Mode is PaletteGradient or PaletteSolid.
	Mode  string `toml:"mode"`
	Trunk string `toml:"trunk"`
	Tip   string `toml:"tip"`
	Solid string `toml:"solid"`
}

type Animation struct {
	// Animate disables the oscillator when false, leaving only the spin.
	Animate bool `toml:"animate"`

	Step          float64 `toml:"step"`
	Interval      string  `toml:"interval"`
	Tilt          float64 `toml:"tilt"`
	RotationSpeed float64 `toml:"rotation_speed"`
	Frames        int     `toml:"frames"`
}

type Output struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Dir    string `toml:"dir"`
}

// Default returns the settings of the original living tree.
func Default() Config {
	base := tree.Balanced()
	return Config{
		Depth: 7,
		Tree: Tree{
			LengthRatio: base.LengthRatio,
			BranchAngle: base.BranchAngle,
			Emergence:   base.Emergence,
			BranchCount: base.BranchCount,
			Branches:    BranchesTapered,
			Generator:   tree.Recursive.String(),
		},
		Palette: Palette{
			Mode:  PaletteGradient,
			Trunk: tree.Bark.Hex(),
			Tip:   tree.Leaf.Hex(),
			Solid: "#ffffff",
		},
		Animation: Animation{
			Animate:       true,
			Step:          oscillator.FrameStep,
			Interval:      "16ms",
			Tilt:          render.DefaultTilt,
			RotationSpeed: 0.5,
		},
		Output: Output{
			Width:  800,
			Height: 800,
			Dir:    ".",
		},
	}
}

// LoadFile decodes the TOML file at path over c. Keys the file sets replace
// the current values; others are left alone. Unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate reports every invalid setting, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Depth < 1 || c.Depth > MaxDepth {
		invalid("depth %d must be between 1 and %d", c.Depth, MaxDepth)
	}
	if c.Tree.LengthRatio <= 0 || c.Tree.LengthRatio >= 1 {
		invalid("length ratio %v must be between 0 and 1", c.Tree.LengthRatio)
	}
	if c.Tree.Emergence < 0 || c.Tree.Emergence > 1 {
		invalid("emergence %v must be between 0 and 1", c.Tree.Emergence)
	}
	if c.Tree.BranchCount < tree.MinBranches {
		invalid("branch count %d must be at least %d", c.Tree.BranchCount, tree.MinBranches)
	}
	switch c.Tree.Preset {
	case PresetCustom, PresetBalanced, PresetSymmetric, PresetBalancedConstant, PresetRandom:
	default:
		invalid("preset %q must be one of %q, %q, %q or %q",
			c.Tree.Preset, PresetBalanced, PresetSymmetric, PresetBalancedConstant, PresetRandom)
	}
	if _, err := tree.ParseMode(c.Tree.Generator); err != nil {
		invalid("%v", err)
	}
	if c.Tree.Branches != BranchesTapered && c.Tree.Branches != BranchesFixed {
		invalid("branches %q must be %q or %q", c.Tree.Branches, BranchesTapered, BranchesFixed)
	}

	switch c.Palette.Mode {
	case PaletteGradient:
		for _, hex := range []string{c.Palette.Trunk, c.Palette.Tip} {
			if _, err := colorful.Hex(hex); err != nil {
				invalid("color %q: %v", hex, err)
			}
		}
	case PaletteSolid:
		if _, err := colorful.Hex(c.Palette.Solid); err != nil {
			invalid("color %q: %v", c.Palette.Solid, err)
		}
	default:
		invalid("palette %q must be %q or %q", c.Palette.Mode, PaletteGradient, PaletteSolid)
	}

	if c.Animation.Step <= 0 {
		invalid("step %v must be positive", c.Animation.Step)
	}
	if d, err := time.ParseDuration(c.Animation.Interval); err != nil || d <= 0 {
		invalid("interval %q must be a positive duration", c.Animation.Interval)
	}
	if c.Animation.Frames < 0 {
		invalid("frames %d must not be negative", c.Animation.Frames)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		invalid("output size %dx%d must be positive", c.Output.Width, c.Output.Height)
	}

	return errors.Join(errs...)
}

// Params returns the resting tree parameters.
func (c Config) Params() tree.Params {
	switch c.Tree.Preset {
	case PresetBalanced:
		return tree.Balanced()
	case PresetSymmetric:
		return tree.Symmetric(c.Tree.BranchAngle)
	case PresetBalancedConstant:
		return tree.BalancedConstant(c.Tree.BranchAngle, c.Tree.BranchCount, c.Tree.LengthRatio)
	case PresetRandom:
		return tree.RandomBalanced(rand.New(rand.NewSource(c.Tree.Seed)))
	}

	if c.Tree.Seed != 0 {
		return tree.RandomBalanced(rand.New(rand.NewSource(c.Tree.Seed)))
	}
	return tree.Params{
		LengthRatio: c.Tree.LengthRatio,
		BranchAngle: c.Tree.BranchAngle,
		Emergence:   c.Tree.Emergence,
		BranchCount: c.Tree.BranchCount,
	}
}

// Generator returns the tree generator. c must be valid.
func (c Config) Generator() (tree.Generator, error) {
	var g tree.Generator

	mode, err := tree.ParseMode(c.Tree.Generator)
	if err != nil {
		return g, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	g.Mode = mode

	switch c.Tree.Branches {
	case BranchesFixed:
		g.Branches = tree.Fixed(c.Params().BranchCount)
	default:
		g.Branches = tree.Tapered{}
	}

	switch c.Palette.Mode {
	case PaletteSolid:
		solid, err := colorful.Hex(c.Palette.Solid)
		if err != nil {
			return g, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		g.Palette = tree.Solid(solid)
	default:
		trunk, err := colorful.Hex(c.Palette.Trunk)
		if err != nil {
			return g, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		tip, err := colorful.Hex(c.Palette.Tip)
		if err != nil {
			return g, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		g.Palette = tree.Gradient{Trunk: trunk, Tip: tip}
	}

	return g, nil
}

// Oscillator returns the oscillator around the configured resting parameters.
func (c Config) Oscillator() oscillator.Oscillator {
	o := oscillator.Default()
	o.Baseline = c.Params()
	o.RotationSpeed = c.Animation.RotationSpeed

	if !c.Animation.Animate {
		o.LengthRatio = oscillator.Wave{}
		o.Sway = oscillator.Wave{}
		o.Wobble = oscillator.Wave{}
		o.Emergence = oscillator.Wave{}
		o.BranchCount = oscillator.Wave{}
		o.SpinSpeed = oscillator.Wave{}
		o.MinBranches = tree.MinBranches
		o.MaxBranches = 0
	}
	return o
}

// Animator returns an animator for the configuration. c must be valid.
func (c Config) Animator() (*animation.Animator, error) {
	g, err := c.Generator()
	if err != nil {
		return nil, err
	}

	a := animation.New(c.Depth)
	a.Generator = g
	a.Oscillator = c.Oscillator()
	a.Step = c.Animation.Step
	a.Tilt = c.Animation.Tilt
	return a, nil
}

// Interval is the wall-clock time between frames. c must be valid.
func (c Config) Interval() time.Duration {
	d, _ := time.ParseDuration(c.Animation.Interval)
	return d
}

// boundAnnotation marks the flags registered by BindFlags.
const boundAnnotation = "boom-config"

// BindFlags registers flags which set the fields of c.
func (c *Config) BindFlags(flags *pflag.FlagSet) {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.bind(fs)

	fs.VisitAll(func(f *pflag.Flag) {
		f.Annotations = map[string][]string{boundAnnotation: {"true"}}
	})
	flags.AddFlagSet(fs)
}

func (c *Config) bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Depth, "depth", "d", c.Depth, "recursion depth of the tree")

	fs.Float64Var(&c.Tree.LengthRatio, "length-ratio", c.Tree.LengthRatio, "length of each branch relative to its parent")
	fs.Float64Var(&c.Tree.BranchAngle, "angle", c.Tree.BranchAngle, "angle between a branch and its parent, in degrees")
	fs.Float64Var(&c.Tree.Emergence, "emergence", c.Tree.Emergence, "fraction along a branch at which children sprout")
	fs.IntVarP(&c.Tree.BranchCount, "branches", "b", c.Tree.BranchCount, "children per node at the trunk")
	fs.StringVar(&c.Tree.Branches, "branch-policy", c.Tree.Branches, "tapered or fixed branch count")
	fs.StringVar(&c.Tree.Preset, "preset", c.Tree.Preset, "balanced, symmetric, balanced-constant or random; empty uses the tree flags as given")
	fs.StringVar(&c.Tree.Generator, "generator", c.Tree.Generator, "recursive, stack or parallel tree walk")
	fs.Int64Var(&c.Tree.Seed, "seed", c.Tree.Seed, "if nonzero, randomize the tree parameters with this seed")

	fs.StringVar(&c.Palette.Mode, "palette", c.Palette.Mode, "gradient or solid")
	fs.StringVar(&c.Palette.Trunk, "trunk-color", c.Palette.Trunk, "trunk color of the gradient")
	fs.StringVar(&c.Palette.Tip, "tip-color", c.Palette.Tip, "tip color of the gradient")
	fs.StringVar(&c.Palette.Solid, "color", c.Palette.Solid, "color of the solid palette")

	fs.BoolVar(&c.Animation.Animate, "animate", c.Animation.Animate, "sway, breathe and shimmer")
	fs.Float64Var(&c.Animation.Step, "step", c.Animation.Step, "animation seconds per frame")
	fs.StringVar(&c.Animation.Interval, "interval", c.Animation.Interval, "wall-clock time between frames")
	fs.Float64Var(&c.Animation.Tilt, "tilt", c.Animation.Tilt, "camera tilt in degrees")
	fs.Float64Var(&c.Animation.RotationSpeed, "rotation-speed", c.Animation.RotationSpeed, "camera spin in degrees per frame")
	fs.IntVarP(&c.Animation.Frames, "frames", "n", c.Animation.Frames, "stop after this many frames; 0 runs until closed")

	fs.IntVar(&c.Output.Width, "width", c.Output.Width, "image width in pixels")
	fs.IntVar(&c.Output.Height, "height", c.Output.Height, "image height in pixels")
	fs.StringVarP(&c.Output.Dir, "out", "o", c.Output.Dir, "directory for written images")
}

// Resolve loads the file at path, if any, then reapplies every flag from
// BindFlags set on fs so that flags take precedence over the file. Returns the validation
// result of the merged configuration.
func (c *Config) Resolve(path string, fs *pflag.FlagSet) error {
	if path != "" {
		changed := make(map[string]string)
		fs.Visit(func(f *pflag.Flag) {
			if _, ok := f.Annotations[boundAnnotation]; ok {
				changed[f.Name] = f.Value.String()
			}
		})

		if err := c.LoadFile(path); err != nil {
			return err
		}

		for name, value := range changed {
			if err := fs.Set(name, value); err != nil {
				return fmt.Errorf("reapplying --%s: %w", name, err)
			}
		}
	}

	return c.Validate()
}
