// Package geometry provides cell-based coordinate math for placing the
// floating control inside the terminal viewport.
package geometry

// Point is a position in terminal cells, measured from the top-left corner.
// The zero value is a sentinel meaning "use the default anchor" rather than
// a literal coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IsZero reports whether p is the default-anchor sentinel.
func (p Point) IsZero() bool {
	return p == Point{}
}

// Size is a width/height pair in terminal cells.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned rectangle anchored at Min.
type Rect struct {
	Min  Point
	Size Size
}

// Contains reports whether p falls inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.Size.W &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.Size.H
}

// Clamp constrains proposed to the viewport given the control's size.
// Each axis is held to [0, viewport-control]. When the viewport is smaller
// than the control on an axis, the result clamps to 0 so the control may
// overflow the edge rather than go negative. Unknown (zero) dimensions
// degrade the same way.
func Clamp(proposed Point, control, viewport Size) Point {
	return Point{
		X: clampAxis(proposed.X, control.W, viewport.W),
		Y: clampAxis(proposed.Y, control.H, viewport.H),
	}
}

func clampAxis(v, control, viewport int) int {
	limit := viewport - control
	if limit < 0 {
		limit = 0
	}
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Anchored resolves the default-anchor sentinel to a concrete bottom-right
// position with the given margins, clamped to the viewport.
func Anchored(control, viewport Size, marginX, marginY int) Point {
	return Clamp(Point{
		X: viewport.W - control.W - marginX,
		Y: viewport.H - control.H - marginY,
	}, control, viewport)
}
