package core

// Rect is an integer axis-aligned bounding box anchored at its lower-left corner.
type Rect struct {
	X, Y int // Lower-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround builds the box of an entity centered at pos.
// Coordinates are truncated toward zero.
func RectAround(pos, size Vec2) Rect {
	return Rect{
		X: int(pos.X - size.X/2),
		Y: int(pos.Y - size.Y/2),
		W: int(size.X),
		H: int(size.Y),
	}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y + r.H
}

// Overlaps reports whether two boxes overlap. Boxes that share an edge
// count as overlapping. There is no swept test: a fast body can pass
// through a thin one between two frames.
func (r Rect) Overlaps(other Rect) bool {
	if r.Right() < other.X || r.X > other.Right() {
		return false
	}
	if r.Top() < other.Y || r.Y > other.Top() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Top()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
