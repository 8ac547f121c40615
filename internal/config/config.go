package config

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"showcase/internal/field"
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Modern Web Showcase"
)

// Camera/projection, matching a 75° perspective camera pulled back on +Z.
const (
	FOVDegrees = 75.0
	NearPlane  = 0.1
	FarPlane   = 1000.0
	CameraZ    = 5.0
)

// Sphere tessellation.
const (
	SphereWidthSegments  = 32
	SphereHeightSegments = 32
)

// Lights.
const (
	AmbientIntensity = 0.5
	PointIntensity   = 1.0
	PointLightX      = 5.0
	PointLightY      = 5.0
	PointLightZ      = 5.0
	PointLightColor  = 0x00d4ff
)

// Smooth scrolling.
const (
	ScrollDuration  = 1.2 // seconds per eased glide
	WheelMultiplier = 100.0
	MaxFrameDT      = 0.1
)

// Environment keys.
const (
	EnvSeed    = "SHOWCASE_SEED"
	EnvSpheres = "SHOWCASE_SPHERES"
	EnvBounds  = "SHOWCASE_BOUNDS"
)

// Config is the resolved startup configuration.
type Config struct {
	Seed  uint64
	Field field.Config
}

// Load resolves configuration from defaults and getenv. Unparseable values
// are reported to warn and ignored. The seed falls back to the clock.
func Load(getenv func(string) string, warn io.Writer) Config {
	cfg := Config{
		Seed:  uint64(time.Now().UnixNano()),
		Field: field.DefaultConfig(),
	}

	if s := getenv(EnvSeed); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = v
		} else {
			fmt.Fprintf(warn, "ignoring %s=%q: %v\n", EnvSeed, s, err)
		}
	}
	if s := getenv(EnvSpheres); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			cfg.Field.Count = v
		} else {
			fmt.Fprintf(warn, "ignoring %s=%q: %v\n", EnvSpheres, s, err)
		}
	}
	if s := getenv(EnvBounds); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			cfg.Field.BoundsRange = v
		} else {
			fmt.Fprintf(warn, "ignoring %s=%q: %v\n", EnvBounds, s, err)
		}
	}
	return cfg
}

// RGB splits a 0xRRGGBB literal into unit floats.
func RGB(hex uint32) (r, g, b float32) {
	r = float32((hex>>16)&0xff) / 255.0
	g = float32((hex>>8)&0xff) / 255.0
	b = float32(hex&0xff) / 255.0
	return
}
