package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle with X0 <= X1 and Y0 <= Y1.
// Zero-width and zero-height rectangles are valid.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// FromSize returns the rectangle spanning (0,0)-(w,h).
func FromSize(w, h float64) Rect {
	return Rect{X1: w, Y1: h}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Wide reports whether the rectangle is strictly wider than it is tall.
func (r Rect) Wide() bool { return r.Width() > r.Height() }

// LongSide returns the length of the longer side.
func (r Rect) LongSide() float64 { return math.Max(r.Width(), r.Height()) }

// ShortSide returns the length of the shorter side.
func (r Rect) ShortSide() float64 { return math.Min(r.Width(), r.Height()) }

// AspectRatio returns long side / short side. A rectangle with a zero
// short side and a non-zero long side reports +Inf; a point reports 1.
func (r Rect) AspectRatio() float64 {
	long, short := r.LongSide(), r.ShortSide()
	if short == 0 {
		if long == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return long / short
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool { return r.Area() == 0 }

// Contains reports whether the point lies in the rectangle. The near edges
// are inclusive and the far edges exclusive, so adjacent rectangles never
// both claim a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// ContainsRect reports whether o lies within r, allowing eps of slack on
// every edge.
func (r Rect) ContainsRect(o Rect, eps float64) bool {
	return o.X0 >= r.X0-eps && o.Y0 >= r.Y0-eps &&
		o.X1 <= r.X1+eps && o.Y1 <= r.Y1+eps
}

// Intersect returns the overlapping region of r and o. The result is a
// zero-area rectangle when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := math.Max(r.X0, o.X0), math.Max(r.Y0, o.Y0)
	x1, y1 := math.Min(r.X1, o.X1), math.Min(r.Y1, o.Y1)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Overlaps reports whether r and o share a region of non-zero area.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Origin returns the zero-area rectangle at r's top-left corner.
func (r Rect) Origin() Rect {
	return Rect{X0: r.X0, Y0: r.Y0, X1: r.X0, Y1: r.Y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}
