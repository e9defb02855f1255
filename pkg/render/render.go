// Package render projects tree segments through a perspective camera and
// defines the interface that drawing backends implement.
package render

import (
	"errors"
	"github.com/willbeason/boom/pkg/tree"
)

// ErrClosed is returned by a Renderer once its surface is closed by the user.
var ErrClosed = errors.New("render: surface closed")

// Camera orients the view of the tree.
type Camera struct {
	// Tilt is the rotation about the horizontal axis, in degrees.
	Tilt float64
	// Spin is the rotation about the vertical axis, in degrees.
	Spin float64
}

// DefaultTilt looks slightly down onto the tree.
const DefaultTilt = 20.0

// A Renderer draws and presents one frame.
type Renderer interface {
	Present(segments []tree.Segment, camera Camera) error
}
