package page

import "showcase/internal/scroll"

const (
	NavbarIdleAlpha   = 0.7
	NavbarActiveAlpha = 0.95
	NavbarSolidBelow  = 100.0 // scroll offset under which the idle alpha returns
)

// Navbar tracks the background opacity of the fixed navigation bar.
type Navbar struct {
	Alpha float32
}

func NewNavbar() *Navbar { return &Navbar{Alpha: NavbarIdleAlpha} }

// OnScroll darkens the bar while scrolling down and restores it near the
// top of the page. Anywhere else the previous alpha is kept.
func (n *Navbar) OnScroll(e scroll.Event) {
	if e.Velocity > 0 {
		n.Alpha = NavbarActiveAlpha
	} else if e.Scroll < NavbarSolidBelow {
		n.Alpha = NavbarIdleAlpha
	}
}
