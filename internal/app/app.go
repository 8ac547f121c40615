// Package app holds the per-session state of the showcase and advances it
// one frame at a time. It has no graphics dependencies; a Renderer draws
// each frame and a Host supplies frames until it asks to stop.
package app

import (
	"context"
	"fmt"
	"iter"

	"showcase/internal/config"
	"showcase/internal/field"
	"showcase/internal/page"
	"showcase/internal/scroll"
)

// Frame is one tick of the host clock.
type Frame struct {
	DT     float64 // seconds since the previous frame, already capped
	Width  int     // logical window size
	Height int
	Wheel  float64 // wheel notches since the previous frame, positive scrolls down
}

// View is everything a Renderer needs for one frame.
type View struct {
	Spheres iter.Seq[field.Transform]
	Panels  []float32 // page.FloatsPerVertex floats per vertex, viewport pixels
	Width   int
	Height  int
	Scroll  float64
}

type Renderer interface {
	Render(v View)
}

// Host drives the frame loop. Poll blocks until the next frame is due and
// reports false once the host wants to stop. Present is called after each
// rendered frame.
type Host interface {
	Poll() (Frame, bool)
	Present()
}

// App is the owned context passed to the frame loop.
type App struct {
	Field  *field.Field
	Scroll *scroll.Smooth
	Choreo *scroll.Choreographer
	Page   *page.Page
	Navbar *page.Navbar

	renderer Renderer
	width    int
	height   int
	panelBuf []float32
	frames   uint64
}

// New builds the session state. The only failure is an invalid field
// configuration.
func New(cfg config.Config, r Renderer) (*App, error) {
	f, err := field.New(cfg.Field, field.NewRand(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("particle field: %w", err)
	}
	return NewWithField(f, r), nil
}

// NewWithField wires an already constructed field.
func NewWithField(f *field.Field, r Renderer) *App {
	a := &App{
		Field:    f,
		Scroll:   scroll.NewSmooth(config.ScrollDuration, config.WheelMultiplier),
		Choreo:   scroll.NewChoreographer(),
		Navbar:   page.NewNavbar(),
		renderer: r,
	}
	a.Scroll.On(scroll.EventScroll, a.Navbar.OnScroll)
	return a
}

// Frames reports how many frames Step has completed.
func (a *App) Frames() uint64 { return a.frames }

// Resize relays out the page for a new logical size. Particle state is
// never touched.
func (a *App) Resize(w, h int) {
	if w == a.width && h == a.height && a.Page != nil {
		return
	}
	a.width, a.height = w, h
	a.Page = page.Build(float64(w), float64(h))
	a.Page.Choreograph(a.Choreo)
	a.Scroll.SetLimit(a.Page.ScrollLimit())
}

// Step advances every subsystem by one frame, then renders. All state
// updates complete before the renderer reads them.
func (a *App) Step(f Frame) {
	if f.Width > 0 && f.Height > 0 {
		a.Resize(f.Width, f.Height)
	}
	if f.Wheel != 0 {
		a.Scroll.Wheel(f.Wheel)
	}

	a.Field.Tick(f.DT)
	a.Scroll.Update(f.DT)
	y := a.Scroll.Scroll()
	a.Choreo.Update(f.DT, y)

	if a.Page != nil {
		a.panelBuf = a.Page.Quads(a.Choreo, a.Navbar, y, a.panelBuf)
	}
	if a.renderer != nil {
		a.renderer.Render(View{
			Spheres: a.Field.Snapshot(),
			Panels:  a.panelBuf,
			Width:   a.width,
			Height:  a.height,
			Scroll:  y,
		})
	}
	a.frames++
}

// Run steps once per host frame until the host stops or ctx is cancelled.
// Cancellation is reported as nil: there is no in-flight work to abandon.
func (a *App) Run(ctx context.Context, h Host) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		f, ok := h.Poll()
		if !ok {
			return nil
		}
		a.Step(f)
		h.Present()
	}
}
