//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"showcase/internal/app"
	"showcase/internal/config"
	"showcase/internal/page"
	"showcase/internal/scene"
)

// MaxPanelVertices bounds the streaming panel buffer.
const MaxPanelVertices = 6 * 256

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the sphere field and the page panels. It implements
// app.Renderer and must be used from the thread owning the GL context.
type Renderer struct {
	Viewport *scene.Viewport
	Camera   scene.Camera
	Lights   scene.Lights

	// Sphere program.
	sphereProg  uint32
	sphereVAO   uint32
	sphereVBO   uint32
	sphereEBO   uint32
	sphereCount int32

	uModel     int32
	uView      int32
	uProj      int32
	uNormalMat int32
	uBase      int32
	uEmissive  int32
	uShininess int32
	uAmbient   int32
	uPointCol  int32
	uPointPos  int32

	// Panel program.
	panelProg uint32
	panelVAO  uint32
	panelVBO  uint32
	panelURes int32
}

func NewRenderer(vp *scene.Viewport) (*Renderer, error) {
	sphereProg, err := linkProgram(sphereVertSrc, sphereFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sphere program: %w", err)
	}
	panelProg, err := linkProgram(panelVertSrc, panelFragSrc)
	if err != nil {
		gl.DeleteProgram(sphereProg)
		return nil, fmt.Errorf("panel program: %w", err)
	}

	r := &Renderer{
		Viewport:   vp,
		Camera:     scene.NewCamera(),
		Lights:     scene.DefaultLights(),
		sphereProg: sphereProg,
		panelProg:  panelProg,
	}

	// Sphere VAO: one shared unit mesh, scaled per draw.
	mesh := scene.UnitSphere(config.SphereWidthSegments, config.SphereHeightSegments)
	gl.GenVertexArrays(1, &r.sphereVAO)
	gl.GenBuffers(1, &r.sphereVBO)
	gl.GenBuffers(1, &r.sphereEBO)
	gl.BindVertexArray(r.sphereVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	stride := int32(scene.MeshStride * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.sphereEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	r.sphereCount = int32(len(mesh.Indices))

	gl.UseProgram(sphereProg)
	r.uModel = uniform(sphereProg, "uModel")
	r.uView = uniform(sphereProg, "uView")
	r.uProj = uniform(sphereProg, "uProj")
	r.uNormalMat = uniform(sphereProg, "uNormalMat")
	r.uBase = uniform(sphereProg, "uBase")
	r.uEmissive = uniform(sphereProg, "uEmissive")
	r.uShininess = uniform(sphereProg, "uShininess")
	r.uAmbient = uniform(sphereProg, "uAmbient")
	r.uPointCol = uniform(sphereProg, "uPointColor")
	r.uPointPos = uniform(sphereProg, "uPointPos")

	// Panel VAO/VBO: per-vertex pos(2) + color(4).
	gl.GenVertexArrays(1, &r.panelVAO)
	gl.GenBuffers(1, &r.panelVBO)
	gl.BindVertexArray(r.panelVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.panelVBO)
	pStride := int32(page.FloatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxPanelVertices*int(pStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, pStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, pStride, glOffset(2*4))

	gl.UseProgram(panelProg)
	r.panelURes = uniform(panelProg, "uResolution")

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.sphereVBO, r.sphereEBO, r.panelVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.sphereVAO, r.panelVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.sphereProg, r.panelProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Render draws one frame: spheres first with depth testing, then panels
// blended on top.
func (r *Renderer) Render(v app.View) {
	vp := r.Viewport
	if !vp.Visible() {
		return
	}
	bg := page.ColorBackground
	gl.Viewport(0, 0, int32(vp.FBWidth), int32(vp.FBHeight))
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.drawSpheres(v)
	r.drawPanels(v)
}

func (r *Renderer) drawSpheres(v app.View) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.UseProgram(r.sphereProg)
	gl.BindVertexArray(r.sphereVAO)

	view := r.Camera.View()
	proj := r.Viewport.Projection()
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])

	l := r.Lights
	lightPos := view.Mul4x1(l.PointPos.Vec4(1)).Vec3()
	gl.Uniform3f(r.uAmbient, l.Ambient.X(), l.Ambient.Y(), l.Ambient.Z())
	gl.Uniform3f(r.uPointCol, l.PointColor.X(), l.PointColor.Y(), l.PointColor.Z())
	gl.Uniform3f(r.uPointPos, lightPos.X(), lightPos.Y(), lightPos.Z())

	for t := range v.Spheres {
		model := scene.ModelMatrix(t)
		normal := view.Mul4(model).Mat3().Inv().Transpose()
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		gl.UniformMatrix3fv(r.uNormalMat, 1, false, &normal[0])
		gl.Uniform3f(r.uBase, float32(t.Base.R), float32(t.Base.G), float32(t.Base.B))
		gl.Uniform3f(r.uEmissive, float32(t.Emissive.R), float32(t.Emissive.G), float32(t.Emissive.B))
		gl.Uniform1f(r.uShininess, float32(t.Shininess))
		gl.DrawElements(gl.TRIANGLES, r.sphereCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawPanels(v app.View) {
	if len(v.Panels) == 0 || v.Width <= 0 || v.Height <= 0 {
		return
	}
	buf := v.Panels
	if limit := MaxPanelVertices * page.FloatsPerVertex; len(buf) > limit {
		buf = buf[:limit]
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.panelProg)
	gl.BindVertexArray(r.panelVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.panelVBO)
	gl.Uniform2f(r.panelURes, float32(v.Width), float32(v.Height))

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(buf)/page.FloatsPerVertex))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
