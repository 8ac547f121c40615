package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"showcase/internal/field"
)

func TestUnitSphereCounts(t *testing.T) {
	const w, h = 32, 32
	m := UnitSphere(w, h)
	if got, want := len(m.Vertices)/MeshStride, (w+1)*(h+1); got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}
	if got, want := len(m.Indices), 3*w*(2*h-2); got != want {
		t.Fatalf("index count = %d, want %d", got, want)
	}
	maxIdx := uint32((w + 1) * (h + 1))
	for i, idx := range m.Indices {
		if idx >= maxIdx {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestUnitSphereOnSurface(t *testing.T) {
	m := UnitSphere(16, 12)
	for i := 0; i < len(m.Vertices); i += MeshStride {
		x, y, z := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(r-1) > 1e-5 {
			t.Fatalf("vertex %d at radius %v", i/MeshStride, r)
		}
		if m.Vertices[i+3] != x || m.Vertices[i+4] != y || m.Vertices[i+5] != z {
			t.Fatalf("vertex %d normal does not match position", i/MeshStride)
		}
	}
}

func TestUnitSphereClampsSegments(t *testing.T) {
	m := UnitSphere(1, 1)
	if got := len(m.Vertices) / MeshStride; got != 4*3 {
		t.Fatalf("vertex count = %d, want 12", got)
	}
}

func TestModelMatrix(t *testing.T) {
	tr := field.Transform{Position: field.Vec3{X: 1, Y: -2, Z: 3}, Radius: 2}
	m := ModelMatrix(tr)
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{3, -2, 3, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("ModelMatrix * +X = %v, want %v", got, want)
	}

	tr.Rotation.Yaw = math.Pi / 2
	got = ModelMatrix(tr).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want = mgl32.Vec4{1, -2, 1, 1} // +X rotates to -Z under a quarter yaw
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("yawed ModelMatrix * +X = %v, want %v", got, want)
	}
}

func TestViewport(t *testing.T) {
	v := NewViewport(1280, 800, 2560, 1600)
	if v.Aspect() != 1.6 {
		t.Fatalf("Aspect() = %v", v.Aspect())
	}
	if v.PixelRatio() != 2 {
		t.Fatalf("PixelRatio() = %v", v.PixelRatio())
	}
	p := v.Projection()
	if p[0] == 0 || p[5] == 0 {
		t.Fatalf("projection not initialised: %v", p)
	}
	if math.Abs(float64(p[5]/p[0])-1.6) > 1e-5 {
		t.Fatalf("projection x/y scale ratio = %v, want aspect", p[5]/p[0])
	}

	if v.Resize(1280, 800, 2560, 1600) {
		t.Fatalf("Resize() with identical sizes reported a change")
	}
	if !v.Resize(800, 800, 800, 800) || v.Aspect() != 1 {
		t.Fatalf("Resize() to square: aspect %v", v.Aspect())
	}
	if !v.Visible() {
		t.Fatalf("Visible() = false")
	}
	v.Resize(0, 0, 0, 0)
	if v.Visible() || v.Aspect() != 1 || v.PixelRatio() != 1 {
		t.Fatalf("degenerate viewport: visible=%v aspect=%v ratio=%v", v.Visible(), v.Aspect(), v.PixelRatio())
	}
}

func TestViewMatrixLooksDownZ(t *testing.T) {
	c := NewCamera()
	got := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{0, 0, -5, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("origin in view space = %v, want %v", got, want)
	}
}
