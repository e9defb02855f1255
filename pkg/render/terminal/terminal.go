// Package terminal draws the tree in a terminal with tcell, using half-block
// characters so that each cell holds two vertically stacked pixels.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/willbeason/boom/pkg/geometry"
	"github.com/willbeason/boom/pkg/render"
	"github.com/willbeason/boom/pkg/tree"
	"sync"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

var background = tcell.StyleDefault.Background(tcell.ColorBlack)

// Renderer presents frames to a tcell screen. Esc, q and Ctrl-C close it.
type Renderer struct {
	screen tcell.Screen
	events chan tcell.Event
	once   sync.Once

	// done is closed by Close; stopped is closed once the event goroutine
	// has returned.
	done    chan struct{}
	stopped chan struct{}

	// pixels is reused between frames; nil entries are background.
	pixels []*colorful.Color
}

var _ render.Renderer = (*Renderer)(nil)

// New initializes the terminal and starts listening for input.
func New() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen presents to an already initialized screen.
func NewWithScreen(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen: screen,
		events:  make(chan tcell.Event, 100),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	screen.SetStyle(background)
	screen.HideCursor()

	go func() {
		defer close(r.stopped)
		defer close(r.events)

		for {
			ev := screen.PollEvent()
			if ev == nil {
				// The screen was finalized.
				return
			}

			select {
			case r.events <- ev:
			case <-r.done:
				return
			}
		}
	}()

	return r
}

// HandleEvent reacts to one input event. Returns false if the user asked to
// quit.
func (r *Renderer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

// pollEvents handles all pending input without blocking.
func (r *Renderer) pollEvents() bool {
	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return false
			}
			if !r.HandleEvent(ev) {
				return false
			}
		default:
			return true
		}
	}
}

// Present draws segments and shows the frame. Returns render.ErrClosed once
// the user has asked to quit.
func (r *Renderer) Present(segments []tree.Segment, camera render.Camera) error {
	if !r.pollEvents() {
		return render.ErrClosed
	}

	width, rows := r.screen.Size()
	height := rows * 2
	r.rasterize(render.NewProjection(width, height).Lines(camera, segments), width, height)

	r.screen.Fill(' ', background)
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			top := r.pixels[2*y*width+x]
			bottom := r.pixels[(2*y+1)*width+x]

			switch {
			case top != nil && bottom != nil:
				r.screen.SetContent(x, y, upperHalf, nil, background.Foreground(rgb(*top)).Background(rgb(*bottom)))
			case top != nil:
				r.screen.SetContent(x, y, upperHalf, nil, background.Foreground(rgb(*top)))
			case bottom != nil:
				r.screen.SetContent(x, y, lowerHalf, nil, background.Foreground(rgb(*bottom)))
			}
		}
	}
	r.screen.Show()

	return nil
}

// rasterize draws lines, in order, into the pixel buffer.
// Widths are ignored; at terminal resolution every branch is one pixel.
func (r *Renderer) rasterize(lines []render.Line, width, height int) {
	if cap(r.pixels) < width*height {
		r.pixels = make([]*colorful.Color, width*height)
	}
	r.pixels = r.pixels[:width*height]
	clear(r.pixels)

	for i := range lines {
		if !onScreen(lines[i].A, width, height) || !onScreen(lines[i].B, width, height) {
			continue
		}

		c := &lines[i].Color
		plot(lines[i].A, lines[i].B, func(x, y int) {
			if x >= 0 && x < width && y >= 0 && y < height {
				r.pixels[y*width+x] = c
			}
		})
	}
}

// Close restores the terminal.
func (r *Renderer) Close() error {
	r.once.Do(func() {
		close(r.done)
		r.screen.Fini()
	})
	return nil
}

// onScreen reports whether p is near enough the screen to be worth plotting
// towards.
func onScreen(p geometry.XY, width, height int) bool {
	w, h := float64(width), float64(height)
	return p.X > -w && p.X < 2*w && p.Y > -h && p.Y < 2*h
}

func rgb(c colorful.Color) tcell.Color {
	red, green, blue := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

// plot calls set for every pixel on the line from a to b.
func plot(a, b geometry.XY, set func(x, y int)) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
