package raster

import (
	"fmt"
	"github.com/willbeason/boom/pkg/render"
	"github.com/willbeason/boom/pkg/tree"
	"path/filepath"
)

// Sequence is a Renderer that saves every presented frame as a numbered PNG
// in Dir.
type Sequence struct {
	*Canvas
	Dir string

	frame int
}

var _ render.Renderer = (*Sequence)(nil)

func NewSequence(dir string, width, height int) *Sequence {
	return &Sequence{Canvas: NewCanvas(width, height), Dir: dir}
}

// FrameName is the file name of the frame with the passed index.
func FrameName(index int) string {
	return fmt.Sprintf("frame%05d.png", index)
}

func (s *Sequence) Present(segments []tree.Segment, camera render.Camera) error {
	if err := s.Canvas.Present(segments, camera); err != nil {
		return err
	}

	s.frame++
	path := filepath.Join(s.Dir, FrameName(s.frame))
	if err := s.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
