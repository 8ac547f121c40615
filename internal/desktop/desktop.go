//go:build !android

package desktop

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"showcase/internal/app"
	"showcase/internal/config"
	"showcase/internal/scene"
)

// Fraction of the viewport one page key scrolls.
const pageFraction = 0.9

// desktopHost adapts a GLFW window to app.Host.
type desktopHost struct {
	window   *glfw.Window
	viewport *scene.Viewport
	input    *Input
	last     float64
}

func (h *desktopHost) Poll() (app.Frame, bool) {
	glfw.PollEvents()
	if h.window.ShouldClose() || h.window.GetKey(glfw.KeyEscape) == glfw.Press {
		return app.Frame{}, false
	}

	now := glfw.GetTime()
	dt := now - h.last
	h.last = now
	if dt > config.MaxFrameDT {
		dt = config.MaxFrameDT
	}
	if dt < 0 {
		dt = 0
	}

	w, ht := h.window.GetSize()
	fbW, fbH := h.window.GetFramebufferSize()
	h.viewport.Resize(w, ht, fbW, fbH)

	wheel := h.input.TakeWheel()
	notchesPerPage := float64(ht) * pageFraction / config.WheelMultiplier
	if h.input.JustPressed(h.window, glfw.KeyPageDown) || h.input.JustPressed(h.window, glfw.KeySpace) {
		wheel += notchesPerPage
	}
	if h.input.JustPressed(h.window, glfw.KeyPageUp) {
		wheel -= notchesPerPage
	}
	if h.input.JustPressed(h.window, glfw.KeyHome) {
		wheel -= 1e6
	}
	if h.input.JustPressed(h.window, glfw.KeyEnd) {
		wheel += 1e6
	}

	return app.Frame{DT: dt, Width: w, Height: ht, Wheel: wheel}, true
}

func (h *desktopHost) Present() { h.window.SwapBuffers() }

// RunDesktop opens a window and runs the showcase until the window is
// closed, Escape is pressed or ctx is cancelled.
func RunDesktop(ctx context.Context, cfg config.Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	w, h := window.GetSize()
	fbW, fbH := window.GetFramebufferSize()
	viewport := scene.NewViewport(w, h, fbW, fbH)

	rend, err := NewRenderer(viewport)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	a, err := app.New(cfg, rend)
	if err != nil {
		return err
	}
	a.Resize(w, h)

	// Resize arrives out of band; the next Poll picks up the new sizes, this
	// only keeps the projection current while the window is being dragged.
	window.SetFramebufferSizeCallback(func(win *glfw.Window, fw, fh int) {
		ww, wh := win.GetSize()
		viewport.Resize(ww, wh, fw, fh)
	})

	fmt.Fprintf(os.Stderr, "showcase initialized: %d spheres, seed %d, GL %s\n",
		a.Field.Len(), cfg.Seed, gl.GoStr(gl.GetString(gl.VERSION)))

	host := &desktopHost{
		window:   window,
		viewport: viewport,
		input:    NewInput(window),
		last:     glfw.GetTime(),
	}
	return a.Run(ctx, host)
}
