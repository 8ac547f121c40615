package scroll

import (
	"math"
	"testing"
)

func TestExpoOut(t *testing.T) {
	if got := ExpoOut(0); math.Abs(got-0.001) > 1e-12 {
		t.Fatalf("ExpoOut(0) = %v, want 0.001", got)
	}
	if got := ExpoOut(1); got != 1 {
		t.Fatalf("ExpoOut(1) = %v, want 1", got)
	}
	prev := ExpoOut(0)
	for i := 1; i <= 100; i++ {
		v := ExpoOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("ExpoOut not monotonic at %d", i)
		}
		prev = v
	}
}

func TestSmoothGlideReachesTarget(t *testing.T) {
	s := NewSmooth(1.2, 100)
	s.SetLimit(1000)
	s.Wheel(3)
	if s.Target() != 300 {
		t.Fatalf("Target() = %v, want 300", s.Target())
	}
	var last float64
	for i := 0; i < 200; i++ {
		s.Update(1.0 / 60)
		if s.Scroll() < last {
			t.Fatalf("scroll moved backwards at frame %d: %v < %v", i, s.Scroll(), last)
		}
		last = s.Scroll()
	}
	if s.Scroll() != 300 || s.Animating() {
		t.Fatalf("after glide: scroll=%v animating=%v", s.Scroll(), s.Animating())
	}
	if s.Velocity() != 0 {
		t.Fatalf("Velocity() = %v after settle, want 0", s.Velocity())
	}
}

func TestSmoothClampsToLimit(t *testing.T) {
	s := NewSmooth(1.2, 100)
	s.SetLimit(250)
	s.Wheel(10)
	if s.Target() != 250 {
		t.Fatalf("Target() = %v, want 250", s.Target())
	}
	s.Wheel(-50)
	if s.Target() != 0 {
		t.Fatalf("Target() = %v, want 0", s.Target())
	}
	if s.Animating() {
		t.Fatalf("glide toward the current position should not animate")
	}
}

func TestSmoothShrinkingLimit(t *testing.T) {
	s := NewSmooth(1.2, 1)
	s.SetLimit(500)
	s.ScrollTo(400, true)
	s.SetLimit(100)
	if s.Target() != 100 {
		t.Fatalf("Target() = %v, want 100", s.Target())
	}
	for range 120 {
		s.Update(1.0 / 60)
	}
	if s.Scroll() != 100 {
		t.Fatalf("Scroll() = %v, want 100", s.Scroll())
	}
}

func TestSmoothEvents(t *testing.T) {
	s := NewSmooth(0.5, 100)
	s.SetLimit(1000)

	var scrolls []Event
	settled := 0
	s.On(EventScroll, func(e Event) { scrolls = append(scrolls, e) })
	s.On(EventSettled, func(Event) { settled++ })

	s.Update(1.0 / 60)
	if len(scrolls) != 0 {
		t.Fatalf("idle Update emitted %d events", len(scrolls))
	}

	s.Wheel(2)
	for range 60 {
		s.Update(1.0 / 60)
	}
	if len(scrolls) == 0 {
		t.Fatalf("no scroll events during glide")
	}
	for i, e := range scrolls {
		if e.Velocity <= 0 || e.Direction != 1 {
			t.Fatalf("event %d = %+v, want downward motion", i, e)
		}
	}
	lastEv := scrolls[len(scrolls)-1]
	if lastEv.Scroll != 200 || math.Abs(lastEv.Progress-0.2) > 1e-12 {
		t.Fatalf("last event = %+v", lastEv)
	}
	if settled != 1 {
		t.Fatalf("settled fired %d times, want 1", settled)
	}

	scrolls = nil
	s.Wheel(-1)
	for range 60 {
		s.Update(1.0 / 60)
	}
	if len(scrolls) == 0 || scrolls[0].Direction != -1 {
		t.Fatalf("upward glide events = %+v", scrolls)
	}
}

func TestScrollToImmediate(t *testing.T) {
	s := NewSmooth(1.2, 1)
	s.SetLimit(800)
	var got []Event
	s.On(EventScroll, func(e Event) { got = append(got, e) })
	s.ScrollTo(500, true)
	if s.Scroll() != 500 || s.Animating() {
		t.Fatalf("ScrollTo immediate: scroll=%v animating=%v", s.Scroll(), s.Animating())
	}
	if len(got) != 1 || got[0].Velocity != 500 {
		t.Fatalf("events = %+v", got)
	}
}

func TestTriggerProgress(t *testing.T) {
	tr := Trigger{Top: 1000, Start: 0.8, End: 0.5}
	const vh = 800
	from, to := tr.Range(vh)
	if from != 360 || to != 600 {
		t.Fatalf("Range() = %v, %v, want 360, 600", from, to)
	}
	tests := []struct {
		scroll, want float64
	}{
		{0, 0},
		{360, 0},
		{480, 0.5},
		{600, 1},
		{5000, 1},
	}
	for _, tt := range tests {
		if got := tr.Progress(tt.scroll, vh); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Progress(%v) = %v, want %v", tt.scroll, got, tt.want)
		}
	}

	flat := Trigger{Top: 100, Start: 0.5, End: 0.5}
	if flat.Progress(-301, vh) != 0 || flat.Progress(-300, vh) != 1 || flat.Progress(0, vh) != 1 {
		t.Fatalf("zero-length trigger should step at its offset")
	}
}

func TestTimedTween(t *testing.T) {
	c := NewChoreographer()
	c.Add("title", Tween{From: Props{Opacity: 0, Y: 50, Scale: 1}, Duration: 1, Delay: 0.2})

	c.Update(0.1, 0)
	p, _ := c.Props("title")
	if p.Opacity != 0 || p.Y != 50 {
		t.Fatalf("before delay: %+v", p)
	}

	c.Update(0.6, 0) // clock 0.7 -> progress 0.5
	prog, _ := c.Progress("title")
	if math.Abs(prog-0.5) > 1e-9 {
		t.Fatalf("progress = %v, want 0.5", prog)
	}
	p, _ = c.Props("title")
	if math.Abs(p.Opacity-0.75) > 1e-9 || math.Abs(p.Y-12.5) > 1e-9 {
		t.Fatalf("mid tween = %+v, want opacity 0.75 y 12.5", p)
	}

	c.Update(5, 0)
	p, _ = c.Props("title")
	if p != Natural {
		t.Fatalf("finished tween = %+v, want %+v", p, Natural)
	}
}

func TestScaleTween(t *testing.T) {
	c := NewChoreographer()
	c.Add("cta", Tween{From: Props{Opacity: 0, Scale: 0.8}, Duration: 1, Delay: 0.6})
	c.Update(0.6, 0)
	p, _ := c.Props("cta")
	if p.Scale != 0.8 || p.Opacity != 0 {
		t.Fatalf("at delay: %+v", p)
	}
	c.Update(2, 0)
	p, _ = c.Props("cta")
	if p.Scale != 1 || p.Opacity != 1 {
		t.Fatalf("done: %+v", p)
	}
}

func TestScrubbedTriggerLagsThenConverges(t *testing.T) {
	c := NewChoreographer()
	c.SetViewport(800)
	c.Add("card", Tween{
		From:    Props{Opacity: 0, Y: 50, Scale: 1},
		Trigger: &Trigger{Top: 1000, Start: 0.8, End: 0.5, Scrub: true},
	})

	c.Update(1.0/60, 0)
	if p, _ := c.Progress("card"); p != 0 {
		t.Fatalf("initial progress = %v, want 0", p)
	}

	c.Update(1.0/60, 600)
	p, _ := c.Progress("card")
	if p <= 0 || p >= 1 {
		t.Fatalf("scrubbed progress after one frame = %v, want strictly between 0 and 1", p)
	}

	for range 240 {
		c.Update(1.0/60, 600)
	}
	p, _ = c.Progress("card")
	if math.Abs(p-1) > 1e-3 {
		t.Fatalf("progress after 4s = %v, want ~1", p)
	}
	props, _ := c.Props("card")
	if math.Abs(props.Opacity-1) > 1e-3 || math.Abs(props.Y) > 0.1 {
		t.Fatalf("props after settle = %+v", props)
	}
}

func TestTriggerPrimesToCurrentScroll(t *testing.T) {
	c := NewChoreographer()
	c.SetViewport(800)
	c.Add("tech", Tween{
		From:    Props{Opacity: 0, X: -50, Scale: 1},
		Trigger: &Trigger{Top: 200, Start: 0.9, End: 0.6, Scrub: true},
	})
	c.Update(1.0/60, 0)
	if p, _ := c.Progress("tech"); p != 1 {
		t.Fatalf("element already above its end line: progress = %v, want 1", p)
	}
}

func TestRetarget(t *testing.T) {
	c := NewChoreographer()
	c.SetViewport(1000)
	c.Add("card", Tween{From: Props{Scale: 1}, Trigger: &Trigger{Top: 2000, Start: 0.8, End: 0.5}})
	c.Update(0, 1200)
	if p, _ := c.Progress("card"); p != 0 {
		t.Fatalf("progress = %v, want 0", p)
	}
	c.Retarget("card", 1500)
	c.Update(0, 1200)
	if p, _ := c.Progress("card"); p != 1 {
		t.Fatalf("progress after retarget = %v, want 1", p)
	}
}

func TestUnknownID(t *testing.T) {
	c := NewChoreographer()
	if p, ok := c.Props("nope"); ok || p != Natural {
		t.Fatalf("Props(unknown) = %+v, %v", p, ok)
	}
}
