// Package page lays out the landing page panels that sit over the sphere
// background and wires them to scroll choreography.
package page

import (
	"fmt"
	"math"

	"showcase/internal/scroll"
)

type Kind uint8

const (
	KindNavbar Kind = iota
	KindHeroTitle
	KindHeroSubtitle
	KindCTA
	KindFeatureCard
	KindTechItem
	KindFooter
)

// RGBA is a straight-alpha colour with unit channels.
type RGBA struct {
	R, G, B, A float32
}

type Rect struct {
	X, Y, W, H float64
}

// Element is a laid-out panel. Rect is in page pixels unless Fixed, in
// which case it is in viewport pixels.
type Element struct {
	ID    string
	Kind  Kind
	Rect  Rect
	Color RGBA
	Fixed bool
}

// Layout constants in logical pixels.
const (
	NavbarHeight   = 64.0
	ContentWidth   = 1100.0
	SidePadding    = 24.0
	FeatureCards   = 6
	FeatureColumns = 3
	CardHeight     = 220.0
	CardGap        = 32.0
	TechItems      = 4
	TechItemHeight = 90.0
	TechGap        = 24.0
	SectionGap     = 160.0
	FooterHeight   = 200.0
)

// Palette.
var (
	ColorBackground = RGBA{10.0 / 255, 14.0 / 255, 39.0 / 255, 1}
	colorNavbar     = RGBA{10.0 / 255, 14.0 / 255, 39.0 / 255, NavbarIdleAlpha}
	colorTitle      = RGBA{0.95, 0.96, 1.0, 0.92}
	colorSubtitle   = RGBA{0.70, 0.74, 0.88, 0.80}
	colorCTA        = RGBA{0.0, 0.83, 1.0, 1.0}
	colorCard       = RGBA{0.16, 0.20, 0.42, 0.55}
	colorTech       = RGBA{0.12, 0.55, 0.78, 0.45}
	colorFooter     = RGBA{0.04, 0.05, 0.14, 0.85}
)

type Page struct {
	Width, Height float64 // viewport width, full document height
	ViewportH     float64
	Elements      []Element
}

// Build lays out the page for a viewport of w x h logical pixels.
func Build(w, h float64) *Page {
	p := &Page{Width: w, ViewportH: h}

	colW := math.Min(ContentWidth, w-2*SidePadding)
	if colW < 0 {
		colW = 0
	}
	left := (w - colW) * 0.5

	p.add(Element{ID: "navbar", Kind: KindNavbar, Rect: Rect{0, 0, w, NavbarHeight}, Color: colorNavbar, Fixed: true})

	// Hero fills the first screen.
	heroTop := NavbarHeight
	heroH := math.Max(h-NavbarHeight, 360)
	titleW := math.Min(colW, 760)
	p.add(Element{ID: "hero-title", Kind: KindHeroTitle,
		Rect: Rect{(w - titleW) * 0.5, heroTop + heroH*0.30, titleW, 72}, Color: colorTitle})
	subW := math.Min(colW, 560)
	p.add(Element{ID: "hero-subtitle", Kind: KindHeroSubtitle,
		Rect: Rect{(w - subW) * 0.5, heroTop + heroH*0.30 + 104, subW, 28}, Color: colorSubtitle})
	p.add(Element{ID: "cta-button", Kind: KindCTA,
		Rect: Rect{(w - 200) * 0.5, heroTop + heroH*0.30 + 172, 200, 52}, Color: colorCTA})

	y := heroTop + heroH + SectionGap*0.5

	cols := FeatureColumns
	if colW < 720 {
		cols = 1
	}
	cardW := (colW - CardGap*float64(cols-1)) / float64(cols)
	for i := 0; i < FeatureCards; i++ {
		row, col := i/cols, i%cols
		p.add(Element{
			ID:    fmt.Sprintf("feature-card-%d", i),
			Kind:  KindFeatureCard,
			Rect:  Rect{left + float64(col)*(cardW+CardGap), y + float64(row)*(CardHeight+CardGap), cardW, CardHeight},
			Color: colorCard,
		})
	}
	rows := (FeatureCards + cols - 1) / cols
	y += float64(rows)*(CardHeight+CardGap) - CardGap + SectionGap

	techW := math.Min(colW, 720)
	for i := 0; i < TechItems; i++ {
		p.add(Element{
			ID:    fmt.Sprintf("tech-item-%d", i),
			Kind:  KindTechItem,
			Rect:  Rect{(w - techW) * 0.5, y + float64(i)*(TechItemHeight+TechGap), techW, TechItemHeight},
			Color: colorTech,
		})
	}
	y += float64(TechItems)*(TechItemHeight+TechGap) - TechGap + SectionGap

	p.add(Element{ID: "footer", Kind: KindFooter, Rect: Rect{0, y, w, FooterHeight}, Color: colorFooter})
	p.Height = y + FooterHeight
	return p
}

func (p *Page) add(e Element) { p.Elements = append(p.Elements, e) }

// ScrollLimit is the furthest the document can scroll.
func (p *Page) ScrollLimit() float64 {
	return math.Max(0, p.Height-p.ViewportH)
}

func (p *Page) Element(id string) (Element, bool) {
	for _, e := range p.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Choreograph registers the entrance tweens for every animated element.
// Calling it again after a relayout retargets scroll triggers in place.
func (p *Page) Choreograph(c *scroll.Choreographer) {
	c.SetViewport(p.ViewportH)
	known := make(map[string]bool, len(c.IDs()))
	for _, id := range c.IDs() {
		known[id] = true
	}

	tech := 0
	for _, e := range p.Elements {
		if known[e.ID] {
			c.Retarget(e.ID, e.Rect.Y)
			continue
		}
		switch e.Kind {
		case KindHeroTitle:
			c.Add(e.ID, scroll.Tween{From: scroll.Props{Opacity: 0, Y: 50, Scale: 1}, Duration: 1, Delay: 0.2})
		case KindHeroSubtitle:
			c.Add(e.ID, scroll.Tween{From: scroll.Props{Opacity: 0, Y: 30, Scale: 1}, Duration: 1, Delay: 0.4})
		case KindCTA:
			c.Add(e.ID, scroll.Tween{From: scroll.Props{Opacity: 0, Scale: 0.8}, Duration: 1, Delay: 0.6})
		case KindFeatureCard:
			c.Add(e.ID, scroll.Tween{
				From:     scroll.Props{Opacity: 0, Y: 50, Scale: 1},
				Duration: 0.6,
				Trigger:  &scroll.Trigger{Top: e.Rect.Y, Start: 0.8, End: 0.5, Scrub: true},
			})
		case KindTechItem:
			x := 50.0
			if tech%2 == 0 {
				x = -50
			}
			tech++
			c.Add(e.ID, scroll.Tween{
				From:     scroll.Props{Opacity: 0, X: x, Scale: 1},
				Duration: 0.8,
				Trigger:  &scroll.Trigger{Top: e.Rect.Y, Start: 0.9, End: 0.6, Scrub: true},
			})
		}
	}
}
