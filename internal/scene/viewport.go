package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"showcase/internal/config"
)

// Viewport owns the drawable size, pixel density and the projection that
// follows from them. It is updated out of band from the frame loop and
// never touches particle state.
type Viewport struct {
	Width, Height     int // logical window size
	FBWidth, FBHeight int // framebuffer size in device pixels

	proj mgl32.Mat4
}

func NewViewport(w, h, fbW, fbH int) *Viewport {
	v := &Viewport{}
	v.Resize(w, h, fbW, fbH)
	return v
}

// Resize records new sizes and recomputes the projection. It reports
// whether anything changed.
func (v *Viewport) Resize(w, h, fbW, fbH int) bool {
	if w == v.Width && h == v.Height && fbW == v.FBWidth && fbH == v.FBHeight {
		return false
	}
	v.Width, v.Height = w, h
	v.FBWidth, v.FBHeight = fbW, fbH
	v.proj = mgl32.Perspective(
		mgl32.DegToRad(config.FOVDegrees),
		v.Aspect(),
		config.NearPlane,
		config.FarPlane,
	)
	return true
}

// Aspect is width over height, 1 for a degenerate size.
func (v *Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// PixelRatio is device pixels per logical pixel.
func (v *Viewport) PixelRatio() float32 {
	if v.Width <= 0 {
		return 1
	}
	return float32(v.FBWidth) / float32(v.Width)
}

func (v *Viewport) Projection() mgl32.Mat4 { return v.proj }

// Visible reports whether there is anything to draw into.
func (v *Viewport) Visible() bool { return v.FBWidth > 0 && v.FBHeight > 0 }
