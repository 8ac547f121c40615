package page

import "showcase/internal/scroll"

// FloatsPerVertex is the panel vertex layout: x, y, r, g, b, a.
const FloatsPerVertex = 6

// Quads appends two triangles per visible element to buf, in viewport
// pixels with the origin at the top left. Elements are offset by scrollY
// (unless fixed), then by their tween offsets, and scaled about their
// centre. Opacity multiplies the element's alpha.
func (p *Page) Quads(c *scroll.Choreographer, nav *Navbar, scrollY float64, buf []float32) []float32 {
	buf = buf[:0]
	for _, e := range p.Elements {
		props := scroll.Natural
		if c != nil {
			props, _ = c.Props(e.ID)
		}

		r := e.Rect
		if !e.Fixed {
			r.Y -= scrollY
		}
		r.X += props.X
		r.Y += props.Y
		if props.Scale != 1 {
			cx, cy := r.X+r.W*0.5, r.Y+r.H*0.5
			r.W *= props.Scale
			r.H *= props.Scale
			r.X = cx - r.W*0.5
			r.Y = cy - r.H*0.5
		}
		if r.Y+r.H < 0 || r.Y > p.ViewportH || r.W <= 0 || r.H <= 0 {
			continue
		}

		col := e.Color
		if e.Kind == KindNavbar && nav != nil {
			col.A = nav.Alpha
		}
		col.A *= float32(props.Opacity)
		if col.A <= 0 {
			continue
		}

		x0, y0 := float32(r.X), float32(r.Y)
		x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
		// TL, BL, TR then TR, BL, BR: counter-clockwise once the panel
		// shader flips y into NDC.
		buf = append(buf,
			x0, y0, col.R, col.G, col.B, col.A,
			x0, y1, col.R, col.G, col.B, col.A,
			x1, y0, col.R, col.G, col.B, col.A,
			x1, y0, col.R, col.G, col.B, col.A,
			x0, y1, col.R, col.G, col.B, col.A,
			x1, y1, col.R, col.G, col.B, col.A,
		)
	}
	return buf
}
