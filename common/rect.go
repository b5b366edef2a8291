package common

// Rect is an axis-aligned rectangle in integer window coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for a Rect literal.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Intersects reports whether the interiors of r and other overlap. Touching
// edges do not count and rectangles with a zero side never intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.W == 0 || r.H == 0 || other.W == 0 || other.H == 0 {
		return false
	}
	return min(r.X, r.X+r.W) < max(other.X, other.X+other.W) &&
		min(r.Y, r.Y+r.H) < max(other.Y, other.Y+other.H) &&
		max(r.X, r.X+r.W) > min(other.X, other.X+other.W) &&
		max(r.Y, r.Y+r.H) > min(other.Y, other.Y+other.H)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Centered returns a w by h rect whose center is (cx, cy).
func Centered(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
