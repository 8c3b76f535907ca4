package entity

// Inset shrinks a sprite rectangle to its gameplay collision rectangle.
// Each field is the margin removed from that side, in pixels.
type Inset struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Rect is an axis-aligned rectangle given by its edges
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Apply returns the inset rectangle of a sprite at x, y with size w, h
func (in Inset) Apply(x, y, w, h float64) Rect {
	return Rect{
		MinX: x + in.Left,
		MinY: y + in.Top,
		MaxX: x + w - in.Right,
		MaxY: y + h - in.Bottom,
	}
}

// Overlaps reports whether two collision rectangles intersect.
// All four tests are strict, so rectangles that only touch do not overlap.
func Overlaps(a, b Rect) bool {
	return a.MaxX > b.MinX && a.MaxY > b.MinY && a.MinX < b.MaxX && a.MinY < b.MaxY
}

// Collider is anything with an inset hit-box
type Collider interface {
	HitRect() Rect
}

// Colliding reports whether two colliders overlap
func Colliding(a, b Collider) bool {
	return Overlaps(a.HitRect(), b.HitRect())
}
