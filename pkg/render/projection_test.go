package render

import (
	"github.com/willbeason/boom/pkg/geometry"
	"github.com/willbeason/boom/pkg/tree"
	"math"
	"testing"
)

func TestPoint_Center(t *testing.T) {
	p := NewProjection(800, 600)

	xy, depth, ok := p.Point(Camera{Tilt: 35, Spin: 123}, geometry.Vec3{})
	if !ok {
		t.Fatal("origin not visible")
	}
	if math.Abs(xy.X-400) > 1e-9 || math.Abs(xy.Y-300) > 1e-9 {
		t.Errorf("origin projects to %v, want image center", xy)
	}
	if math.Abs(depth-300) > 1e-9 {
		t.Errorf("origin depth = %v, want 300", depth)
	}
}

func TestPoint_Up(t *testing.T) {
	p := NewProjection(800, 800)

	top, _, _ := p.Point(Camera{}, geometry.Vec3{Y: 50})
	bottom, _, _ := p.Point(Camera{}, geometry.Vec3{Y: -50})
	if top.Y >= 400 || bottom.Y <= 400 {
		t.Errorf("up projects to %v and down to %v; want above and below center", top, bottom)
	}

	// At the view distance, half the image height spans tan(fov/2) * distance.
	edge, _, _ := p.Point(Camera{}, geometry.Vec3{Y: 300 * math.Tan(22.5*math.Pi/180)})
	if math.Abs(edge.Y) > 1e-6 {
		t.Errorf("point at view edge projects to %v, want top of image", edge)
	}
}

func TestView_Spin(t *testing.T) {
	p := NewProjection(100, 100)

	got := p.View(Camera{Spin: 90}, geometry.Vec3{X: 10})
	want := geometry.Vec3{Z: -310}
	if got.Sub(want).Norm() > 1e-9 {
		t.Errorf("View() = %v, want %v", got, want)
	}

	got = p.View(Camera{Tilt: 90}, geometry.Vec3{Y: 10})
	want = geometry.Vec3{Z: -290}
	if got.Sub(want).Norm() > 1e-9 {
		t.Errorf("View() = %v, want %v", got, want)
	}
}

func TestPoint_Clipped(t *testing.T) {
	p := NewProjection(100, 100)
	if _, _, ok := p.Point(Camera{}, geometry.Vec3{Z: 299.5}); ok {
		t.Error("point behind near plane is visible")
	}
	if _, _, ok := p.Point(Camera{}, geometry.Vec3{Z: -800}); ok {
		t.Error("point past far plane is visible")
	}
}

func TestLines_FarthestFirst(t *testing.T) {
	p := NewProjection(200, 200)
	segments := []tree.Segment{
		{Start: geometry.Vec3{Z: 50}, End: geometry.Vec3{Y: 1, Z: 50}, Width: 1},
		{Start: geometry.Vec3{Z: -50}, End: geometry.Vec3{Y: 1, Z: -50}, Width: 2},
		{Start: geometry.Vec3{Z: 299.9}, End: geometry.Vec3{Y: 1}, Width: 3},
		{Start: geometry.Vec3{}, End: geometry.Vec3{Y: 1}, Width: 4},
	}

	lines := p.Lines(Camera{}, segments)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	wantWidths := []float64{2, 4, 1}
	for i, l := range lines {
		if l.Width != wantWidths[i] {
			t.Errorf("line %d has width %v, want %v", i, l.Width, wantWidths[i])
		}
	}
}
