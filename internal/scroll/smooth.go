// Package scroll emulates inertial page scrolling and maps scroll position
// onto element tweens.
package scroll

import "math"

// Easing maps normalized time in [0,1] to normalized progress.
type Easing func(float64) float64

// ExpoOut is the smooth-scroll glide curve. It reaches 1 slightly before
// t=1 and is clamped there.
func ExpoOut(t float64) float64 {
	return math.Min(1, 1.001-math.Pow(2, -10*t))
}

// Smooth replays raw wheel input as eased glides toward a target offset.
type Smooth struct {
	Duration        float64 // seconds per glide
	Easing          Easing
	WheelMultiplier float64

	bus *EventBus

	limit     float64
	scroll    float64
	target    float64
	from      float64
	elapsed   float64
	velocity  float64
	animating bool
}

func NewSmooth(duration, wheelMultiplier float64) *Smooth {
	if duration <= 0 {
		duration = 1.2
	}
	if wheelMultiplier <= 0 {
		wheelMultiplier = 1
	}
	return &Smooth{
		Duration:        duration,
		Easing:          ExpoOut,
		WheelMultiplier: wheelMultiplier,
		bus:             NewEventBus(),
	}
}

func (s *Smooth) Scroll() float64   { return s.scroll }
func (s *Smooth) Target() float64   { return s.target }
func (s *Smooth) Velocity() float64 { return s.velocity }
func (s *Smooth) Limit() float64    { return s.limit }
func (s *Smooth) Animating() bool   { return s.animating }

// On subscribes fn to events of type t.
func (s *Smooth) On(t EventType, fn Handler) { s.bus.Subscribe(t, fn) }

// SetLimit sets the maximum scroll offset (page height minus viewport
// height) and clamps the current state into it.
func (s *Smooth) SetLimit(limit float64) {
	if limit < 0 {
		limit = 0
	}
	s.limit = limit
	if s.target > limit {
		s.glideTo(limit)
	}
	if s.scroll > limit && !s.animating {
		s.scroll = limit
	}
}

// Wheel applies a raw wheel delta in notches; positive scrolls down.
func (s *Smooth) Wheel(delta float64) {
	if delta == 0 {
		return
	}
	s.glideTo(s.target + delta*s.WheelMultiplier)
}

// ScrollTo moves toward y, or jumps there when immediate is set.
func (s *Smooth) ScrollTo(y float64, immediate bool) {
	if !immediate {
		s.glideTo(y)
		return
	}
	y = s.clamp(y)
	prev := s.scroll
	s.scroll, s.target, s.from = y, y, y
	s.elapsed = 0
	s.animating = false
	s.velocity = 0
	if y != prev {
		s.emit(EventScroll, y-prev)
	}
}

func (s *Smooth) glideTo(y float64) {
	y = s.clamp(y)
	if y == s.target && s.animating {
		return
	}
	s.target = y
	s.from = s.scroll
	s.elapsed = 0
	s.animating = y != s.scroll
}

func (s *Smooth) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > s.limit {
		return s.limit
	}
	return y
}

// Update advances the glide by dt seconds.
func (s *Smooth) Update(dt float64) {
	if !s.animating {
		s.velocity = 0
		return
	}
	s.elapsed += dt
	t := s.elapsed / s.Duration
	prev := s.scroll
	done := t >= 1
	if done {
		s.scroll = s.target
		s.animating = false
	} else {
		s.scroll = s.from + (s.target-s.from)*s.Easing(t)
	}
	s.velocity = s.scroll - prev

	if s.scroll != prev {
		s.emit(EventScroll, s.velocity)
	}
	if done {
		s.velocity = 0
		s.emit(EventSettled, 0)
	}
}

func (s *Smooth) emit(t EventType, velocity float64) {
	dir := 0
	switch {
	case velocity > 0:
		dir = 1
	case velocity < 0:
		dir = -1
	}
	progress := 0.0
	if s.limit > 0 {
		progress = s.scroll / s.limit
	}
	s.bus.Emit(Event{
		Type:      t,
		Scroll:    s.scroll,
		Velocity:  velocity,
		Direction: dir,
		Progress:  progress,
	})
}
