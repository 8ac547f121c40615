package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"showcase/internal/field"
)

// Mesh is an indexed triangle list with interleaved position and normal.
type Mesh struct {
	Vertices []float32 // x, y, z, nx, ny, nz
	Indices  []uint32
}

// MeshStride is floats per vertex in Mesh.Vertices.
const MeshStride = 6

// UnitSphere tessellates a radius-1 UV sphere. Poles get a full ring of
// vertices so every ring has widthSegments+1 entries; degenerate pole
// triangles are skipped.
func UnitSphere(widthSegments, heightSegments int) Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	var m Mesh
	m.Vertices = make([]float32, 0, (widthSegments+1)*(heightSegments+1)*MeshStride)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi
			x := -math.Cos(phi) * math.Sin(theta)
			y := math.Cos(theta)
			z := math.Sin(phi) * math.Sin(theta)
			m.Vertices = append(m.Vertices,
				float32(x), float32(y), float32(z),
				float32(x), float32(y), float32(z),
			)
		}
	}

	row := widthSegments + 1
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy*row + ix + 1)
			b := uint32(iy*row + ix)
			c := uint32((iy+1)*row + ix)
			d := uint32((iy+1)*row + ix + 1)
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}

// ModelMatrix places a unit sphere at the transform's position, scaled to
// its radius and rotated in XYZ Euler order (pitch about X, yaw about Y).
func ModelMatrix(t field.Transform) mgl32.Mat4 {
	pos := mgl32.Translate3D(float32(t.Position.X), float32(t.Position.Y), float32(t.Position.Z))
	rot := mgl32.HomogRotate3DX(float32(t.Rotation.Pitch)).Mul4(mgl32.HomogRotate3DY(float32(t.Rotation.Yaw)))
	r := float32(t.Radius)
	return pos.Mul4(rot).Mul4(mgl32.Scale3D(r, r, r))
}
