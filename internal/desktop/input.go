//go:build !android

package desktop

import "github.com/go-gl/glfw/v3.3/glfw"

// Input accumulates wheel motion between frames and tracks key edges.
type Input struct {
	wheel    float64
	prevKeys map[glfw.Key]bool
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{prevKeys: make(map[glfw.Key]bool)}
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		// GLFW reports wheel-up as positive; the page scrolls down for negative.
		in.wheel -= yoff
	})
	return in
}

// TakeWheel returns and clears the wheel notches since the last call.
func (in *Input) TakeWheel() float64 {
	w := in.wheel
	in.wheel = 0
	return w
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}
