package config

import (
	"errors"
	"github.com/spf13/pflag"
	"github.com/willbeason/boom/pkg/tree"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boom.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault_Valid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Params() != tree.Balanced() {
		t.Errorf("Params() = %+v, want %+v", c.Params(), tree.Balanced())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "zero depth", modify: func(c *Config) { c.Depth = 0 }},
		{name: "deep", modify: func(c *Config) { c.Depth = MaxDepth + 1 }},
		{name: "ratio one", modify: func(c *Config) { c.Tree.LengthRatio = 1 }},
		{name: "ratio zero", modify: func(c *Config) { c.Tree.LengthRatio = 0 }},
		{name: "emergence", modify: func(c *Config) { c.Tree.Emergence = 1.5 }},
		{name: "one branch", modify: func(c *Config) { c.Tree.BranchCount = 1 }},
		{name: "branch policy", modify: func(c *Config) { c.Tree.Branches = "random" }},
		{name: "preset", modify: func(c *Config) { c.Tree.Preset = "willow" }},
		{name: "generator", modify: func(c *Config) { c.Tree.Generator = "breadth-first" }},
		{name: "palette", modify: func(c *Config) { c.Palette.Mode = "rainbow" }},
		{name: "trunk color", modify: func(c *Config) { c.Palette.Trunk = "brown" }},
		{name: "solid color", modify: func(c *Config) { c.Palette.Mode = PaletteSolid; c.Palette.Solid = "#12" }},
		{name: "step", modify: func(c *Config) { c.Animation.Step = 0 }},
		{name: "interval", modify: func(c *Config) { c.Animation.Interval = "soon" }},
		{name: "frames", modify: func(c *Config) { c.Animation.Frames = -1 }},
		{name: "size", modify: func(c *Config) { c.Output.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want %v", err, ErrInvalid)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
depth = 5

[tree]
length_ratio = 0.6
branches = "fixed"
branch_count = 3

[palette]
mode = "solid"
solid = "#00ff00"

[animation]
interval = "40ms"
`)

	c := Default()
	if err := c.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	if c.Depth != 5 || c.Tree.LengthRatio != 0.6 || c.Tree.Branches != BranchesFixed {
		t.Errorf("LoadFile() = %+v", c)
	}
	// Unset keys keep their defaults.
	if c.Tree.BranchAngle != 35 {
		t.Errorf("BranchAngle = %v, want default 35", c.Tree.BranchAngle)
	}
	if c.Interval().Milliseconds() != 40 {
		t.Errorf("Interval() = %v, want 40ms", c.Interval())
	}

	g, err := c.Generator()
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Grow(c.Params(), c.Depth)) != tree.SegmentCount(3, 5) {
		t.Error("fixed branch policy not applied")
	}
	for _, s := range g.Grow(c.Params(), 2) {
		if s.Color.G != 1 || s.Color.R != 0 {
			t.Fatalf("segment color = %v, want solid green", s.Color)
		}
	}
}

func TestLoadFile_Errors(t *testing.T) {
	c := Default()

	if err := c.LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFile() of a missing file succeeded")
	}
	if err := c.LoadFile(writeConfig(t, "depth = ")); err == nil {
		t.Error("LoadFile() of malformed TOML succeeded")
	}
	if err := c.LoadFile(writeConfig(t, "[tree]\nleaves = 3\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadFile() with unknown key = %v, want %v", err, ErrInvalid)
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "depth = 4\n[tree]\nbranch_angle = 50.0\n")

	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse([]string{"--depth", "6", "--tilt", "10"}); err != nil {
		t.Fatal(err)
	}

	if err := c.Resolve(path, fs); err != nil {
		t.Fatal(err)
	}

	if c.Depth != 6 {
		t.Errorf("Depth = %d, want flag value 6", c.Depth)
	}
	if c.Tree.BranchAngle != 50 {
		t.Errorf("BranchAngle = %v, want file value 50", c.Tree.BranchAngle)
	}
	if c.Animation.Tilt != 10 {
		t.Errorf("Tilt = %v, want flag value 10", c.Animation.Tilt)
	}
}

func TestResolve_NoFile(t *testing.T) {
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse([]string{"--length-ratio", "1.2"}); err != nil {
		t.Fatal(err)
	}

	if err := c.Resolve("", fs); !errors.Is(err, ErrInvalid) {
		t.Errorf("Resolve() = %v, want %v", err, ErrInvalid)
	}
}

func TestSeed(t *testing.T) {
	c := Default()
	c.Tree.Seed = 99

	if c.Params() != c.Params() {
		t.Error("seeded Params() not deterministic")
	}
	if c.Params() == tree.Balanced() {
		t.Error("seed did not change the parameters")
	}
}

func TestParams_Presets(t *testing.T) {
	tests := []struct {
		preset string
		want   tree.Params
	}{
		{preset: PresetCustom, want: tree.Params{LengthRatio: 0.6, BranchAngle: 50, Emergence: 0.8, BranchCount: 4}},
		{preset: PresetBalanced, want: tree.Balanced()},
		{preset: PresetSymmetric, want: tree.Symmetric(50)},
		{preset: PresetBalancedConstant, want: tree.BalancedConstant(50, 4, 0.6)},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			c := Default()
			c.Tree.Preset = tt.preset
			c.Tree.LengthRatio = 0.6
			c.Tree.BranchAngle = 50
			c.Tree.Emergence = 0.8
			c.Tree.BranchCount = 4

			if got := c.Params(); got != tt.want {
				t.Errorf("Params() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParams_RandomPreset(t *testing.T) {
	c := Default()
	c.Tree.Preset = PresetRandom
	c.Tree.Seed = 7

	other := c
	other.Tree.Seed = 8

	if c.Params() != c.Params() {
		t.Error("random preset not deterministic for a seed")
	}
	if c.Params() == other.Params() {
		t.Error("random preset ignored the seed")
	}
}

func TestResolve_PresetFlags(t *testing.T) {
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)

	if err := fs.Parse([]string{"--preset", "symmetric", "--angle", "30", "--generator", "stack"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Resolve("", fs); err != nil {
		t.Fatal(err)
	}

	if got, want := c.Params(), tree.Symmetric(30); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	g, err := c.Generator()
	if err != nil {
		t.Fatal(err)
	}
	if g.Mode != tree.Stack {
		t.Errorf("Generator().Mode = %v, want %v", g.Mode, tree.Stack)
	}
}

func TestLoadFile_PresetAndGenerator(t *testing.T) {
	path := writeConfig(t, `
[tree]
preset = "balanced-constant"
branch_angle = 40.0
branch_count = 5
length_ratio = 0.5
generator = "parallel"
`)

	c := Default()
	if err := c.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	if got, want := c.Params(), tree.BalancedConstant(40, 5, 0.5); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	g, err := c.Generator()
	if err != nil {
		t.Fatal(err)
	}
	if g.Mode != tree.Parallel {
		t.Errorf("Generator().Mode = %v, want %v", g.Mode, tree.Parallel)
	}
}

func TestOscillator_Still(t *testing.T) {
	c := Default()
	c.Animation.Animate = false

	o := c.Oscillator()
	for _, ts := range []float64{0, 1, 17.5} {
		if got := o.At(ts); got != c.Params() {
			t.Errorf("At(%v) = %+v, want still %+v", ts, got, c.Params())
		}
		if got := o.Spin(ts); got != c.Animation.RotationSpeed {
			t.Errorf("Spin(%v) = %v, want %v", ts, got, c.Animation.RotationSpeed)
		}
	}
}

func TestAnimator(t *testing.T) {
	c := Default()
	c.Depth = 3
	c.Animation.Tilt = 45

	a, err := c.Animator()
	if err != nil {
		t.Fatal(err)
	}
	f := a.Next()
	if f.Camera.Tilt != 45 || a.MaxDepth != 3 {
		t.Errorf("Animator() frame camera %+v depth %d", f.Camera, a.MaxDepth)
	}
}
