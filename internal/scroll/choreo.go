package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Scrub spring: critically damped, settles in roughly one second.
const (
	ScrubFrequency = 5.0
	ScrubDamping   = 1.0
)

// Props are the animatable visual properties of a page element. X and Y
// are pixel offsets from the element's laid-out position.
type Props struct {
	Opacity float64
	X, Y    float64
	Scale   float64
}

// Natural is the resting state every tween animates toward.
var Natural = Props{Opacity: 1, Scale: 1}

func (p Props) Lerp(to Props, t float64) Props {
	return Props{
		Opacity: p.Opacity + (to.Opacity-p.Opacity)*t,
		X:       p.X + (to.X-p.X)*t,
		Y:       p.Y + (to.Y-p.Y)*t,
		Scale:   p.Scale + (to.Scale-p.Scale)*t,
	}
}

// Power1Out is the default tween ease.
func Power1Out(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

// Trigger binds a tween's progress to where an element's top edge sits in
// the viewport. Start and End are fractions of viewport height measured
// from the top (0.8 means 80% down).
type Trigger struct {
	Top        float64 // element top in page pixels
	Start, End float64
	Scrub      bool
}

// Range returns the scroll offsets at which progress is 0 and 1.
func (tr Trigger) Range(viewportH float64) (from, to float64) {
	return tr.Top - tr.Start*viewportH, tr.Top - tr.End*viewportH
}

// Progress maps scrollY to [0,1].
func (tr Trigger) Progress(scrollY, viewportH float64) float64 {
	from, to := tr.Range(viewportH)
	if to == from {
		if scrollY >= to {
			return 1
		}
		return 0
	}
	return clamp01((scrollY - from) / (to - from))
}

// Tween animates an element from From toward Natural. Without a Trigger it
// plays once on the choreographer clock after Delay.
type Tween struct {
	From     Props
	Duration float64 // seconds; timed tweens only, triggered tweens follow scroll
	Delay    float64
	Ease     Easing
	Trigger  *Trigger
}

type track struct {
	tween    Tween
	progress float64
	vel      float64
	primed   bool
}

// Choreographer owns a set of named tweens and advances them each frame.
type Choreographer struct {
	tracks    map[string]*track
	order     []string
	clock     float64
	viewportH float64
}

func NewChoreographer() *Choreographer {
	return &Choreographer{tracks: make(map[string]*track)}
}

// Add registers tw under id, replacing any existing tween with that id.
func (c *Choreographer) Add(id string, tw Tween) {
	if tw.Ease == nil {
		tw.Ease = Power1Out
	}
	if _, ok := c.tracks[id]; !ok {
		c.order = append(c.order, id)
	}
	c.tracks[id] = &track{tween: tw}
}

// Retarget moves the trigger of id to a new element top, as after a layout
// change. Scrub state is kept.
func (c *Choreographer) Retarget(id string, top float64) {
	if t, ok := c.tracks[id]; ok && t.tween.Trigger != nil {
		tr := *t.tween.Trigger
		tr.Top = top
		t.tween.Trigger = &tr
	}
}

func (c *Choreographer) SetViewport(h float64) { c.viewportH = h }

func (c *Choreographer) IDs() []string { return c.order }

func (c *Choreographer) Clock() float64 { return c.clock }

// Update advances timed tweens by dt and moves scrubbed tweens toward the
// progress implied by scrollY.
func (c *Choreographer) Update(dt, scrollY float64) {
	if dt < 0 {
		dt = 0
	}
	c.clock += dt

	var spring harmonica.Spring
	if dt > 0 {
		spring = harmonica.NewSpring(dt, ScrubFrequency, ScrubDamping)
	}

	for _, id := range c.order {
		t := c.tracks[id]
		tw := t.tween
		if tw.Trigger == nil {
			if tw.Duration <= 0 {
				if c.clock >= tw.Delay {
					t.progress = 1
				}
				continue
			}
			t.progress = clamp01((c.clock - tw.Delay) / tw.Duration)
			continue
		}

		raw := tw.Trigger.Progress(scrollY, c.viewportH)
		if !tw.Trigger.Scrub || !t.primed {
			t.progress, t.vel = raw, 0
			t.primed = true
			continue
		}
		if dt > 0 {
			t.progress, t.vel = spring.Update(t.progress, t.vel, raw)
		}
	}
}

// Progress returns the current linear progress of id in [0,1].
func (c *Choreographer) Progress(id string) (float64, bool) {
	t, ok := c.tracks[id]
	if !ok {
		return 0, false
	}
	return clamp01(t.progress), true
}

// Props returns the current eased properties of id. Unknown ids report
// Natural.
func (c *Choreographer) Props(id string) (Props, bool) {
	t, ok := c.tracks[id]
	if !ok {
		return Natural, false
	}
	return t.tween.From.Lerp(Natural, t.tween.Ease(clamp01(t.progress))), true
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
