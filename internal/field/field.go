// Package field owns the bouncing spheres drawn behind the page: their
// kinematic state, rotation and fixed materials.
package field

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Defaults matching the landing page background.
const (
	DefaultCount         = 5
	DefaultSpawnRange    = 7.5
	DefaultBoundsRange   = 8.0
	DefaultVelocityRange = 0.01
	DefaultPitchRate     = 0.003
	DefaultYawRate       = 0.002
	DefaultRadiusMin     = 0.5
	DefaultRadiusSpan    = 1.0
	DefaultShininess     = 100.0
)

// Two-tone material scheme: pastel base, saturated emissive.
const (
	baseSaturation     = 0.7
	baseLightness      = 0.6
	emissiveSaturation = 1.0
	emissiveLightness  = 0.4
)

// ErrInvalidConfig is returned (wrapped) when a field cannot be built from
// the supplied configuration.
var ErrInvalidConfig = errors.New("invalid field configuration")

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Rotation is accumulated Euler angles in radians. Never normalized.
type Rotation struct {
	Pitch, Yaw float64
}

// Material is assigned at construction and never changes.
type Material struct {
	Radius    float64
	Base      colorful.Color
	Emissive  colorful.Color
	Shininess float64
}

type Particle struct {
	Position Vec3
	Velocity Vec3
	Rotation Rotation
	Material Material
}

// Transform is the per-particle record handed to the renderer.
type Transform struct {
	Position  Vec3
	Rotation  Rotation
	Radius    float64
	Base      colorful.Color
	Emissive  colorful.Color
	Shininess float64
}

type Config struct {
	Count         int
	SpawnRange    float64 // positions sampled in [-SpawnRange, SpawnRange] per axis
	BoundsRange   float64 // reflection bound B
	VelocityRange float64 // velocities sampled in [-VelocityRange, VelocityRange] per axis
	PitchRate     float64 // radians added to pitch per tick
	YawRate       float64 // radians added to yaw per tick
	RadiusMin     float64
	RadiusSpan    float64
	Shininess     float64
}

func DefaultConfig() Config {
	return Config{
		Count:         DefaultCount,
		SpawnRange:    DefaultSpawnRange,
		BoundsRange:   DefaultBoundsRange,
		VelocityRange: DefaultVelocityRange,
		PitchRate:     DefaultPitchRate,
		YawRate:       DefaultYawRate,
		RadiusMin:     DefaultRadiusMin,
		RadiusSpan:    DefaultRadiusSpan,
		Shininess:     DefaultShininess,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: count %d < 0", ErrInvalidConfig, c.Count)
	case !(c.BoundsRange > 0) || math.IsInf(c.BoundsRange, 0):
		return fmt.Errorf("%w: bounds range %v must be finite and > 0", ErrInvalidConfig, c.BoundsRange)
	case !(c.SpawnRange >= 0) || math.IsInf(c.SpawnRange, 0):
		return fmt.Errorf("%w: spawn range %v", ErrInvalidConfig, c.SpawnRange)
	case !(c.VelocityRange >= 0) || math.IsInf(c.VelocityRange, 0):
		return fmt.Errorf("%w: velocity range %v", ErrInvalidConfig, c.VelocityRange)
	case !(c.RadiusMin >= 0) || !(c.RadiusSpan >= 0):
		return fmt.Errorf("%w: radius %v+%v", ErrInvalidConfig, c.RadiusMin, c.RadiusSpan)
	case math.IsNaN(c.PitchRate) || math.IsNaN(c.YawRate):
		return fmt.Errorf("%w: rotation rates must be numbers", ErrInvalidConfig)
	}
	return nil
}

// Field is the fixed set of spheres. It is not safe for concurrent use;
// the frame loop is its only caller.
type Field struct {
	cfg       Config
	particles []Particle
}

// New builds cfg.Count particles with state drawn from src.
func New(cfg Config, src Source) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	ps := make([]Particle, cfg.Count)
	for i := range ps {
		p := &ps[i]
		// Sampling order is fixed so a seed always reproduces the same field.
		p.Material.Radius = cfg.RadiusMin + src.Float64()*cfg.RadiusSpan
		p.Material.Base = colorful.Hsl(src.Float64()*360, baseSaturation, baseLightness)
		p.Material.Emissive = colorful.Hsl(src.Float64()*360, emissiveSaturation, emissiveLightness)
		p.Material.Shininess = cfg.Shininess
		p.Position = Vec3{
			symmetric(src, cfg.SpawnRange),
			symmetric(src, cfg.SpawnRange),
			symmetric(src, cfg.SpawnRange),
		}
		p.Velocity = Vec3{
			symmetric(src, cfg.VelocityRange),
			symmetric(src, cfg.VelocityRange),
			symmetric(src, cfg.VelocityRange),
		}
	}
	return &Field{cfg: cfg, particles: ps}, nil
}

// FromParticles builds a field from explicit initial state. cfg.Count is
// taken from len(ps); the slice is copied.
func FromParticles(cfg Config, ps []Particle) (*Field, error) {
	cfg.Count = len(ps)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	own := make([]Particle, len(ps))
	copy(own, ps)
	return &Field{cfg: cfg, particles: own}, nil
}

func (f *Field) Config() Config { return f.cfg }

func (f *Field) Len() int { return len(f.particles) }

// Particle returns a copy of particle i.
func (f *Field) Particle(i int) Particle { return f.particles[i] }

// Tick advances every particle by one unit step. The delta argument is
// accepted for the frame clock's signature but ignored: motion is
// frame-coupled.
func (f *Field) Tick(_ float64) {
	b := f.cfg.BoundsRange
	for i := range f.particles {
		p := &f.particles[i]
		p.Position = p.Position.Add(p.Velocity)
		p.Velocity.X = bounce(p.Position.X, p.Velocity.X, b)
		p.Velocity.Y = bounce(p.Position.Y, p.Velocity.Y, b)
		p.Velocity.Z = bounce(p.Position.Z, p.Velocity.Z, b)
		p.Rotation.Pitch += f.cfg.PitchRate
		p.Rotation.Yaw += f.cfg.YawRate
	}
}

// bounce flips v when pos is strictly outside [-b, b].
func bounce(pos, v, b float64) float64 {
	if pos > b || pos < -b {
		return -v
	}
	return v
}

// Snapshot yields one Transform per particle in index order. The sequence
// is lazy and may be ranged over repeatedly; each pass reads current state.
func (f *Field) Snapshot() iter.Seq[Transform] {
	return func(yield func(Transform) bool) {
		for i := range f.particles {
			p := &f.particles[i]
			t := Transform{
				Position:  p.Position,
				Rotation:  p.Rotation,
				Radius:    p.Material.Radius,
				Base:      p.Material.Base,
				Emissive:  p.Material.Emissive,
				Shininess: p.Material.Shininess,
			}
			if !yield(t) {
				return
			}
		}
	}
}
