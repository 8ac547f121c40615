package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"showcase/internal/config"
)

// Camera is a fixed perspective eye looking at the origin.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

func NewCamera() Camera {
	return Camera{
		Eye: mgl32.Vec3{0, 0, config.CameraZ},
		Up:  mgl32.Vec3{0, 1, 0},
	}
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Lights is the scene lighting: one white ambient term and one coloured
// point light.
type Lights struct {
	Ambient    mgl32.Vec3 // colour * intensity
	PointPos   mgl32.Vec3
	PointColor mgl32.Vec3 // colour * intensity
}

func DefaultLights() Lights {
	r, g, b := config.RGB(config.PointLightColor)
	return Lights{
		Ambient:    mgl32.Vec3{1, 1, 1}.Mul(config.AmbientIntensity),
		PointPos:   mgl32.Vec3{config.PointLightX, config.PointLightY, config.PointLightZ},
		PointColor: mgl32.Vec3{r, g, b}.Mul(config.PointIntensity),
	}
}
