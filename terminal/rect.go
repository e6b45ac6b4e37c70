package terminal

// Rect is a rectangle in absolute cell-grid coordinates
// An empty rectangle (W == 0 or H == 0) is valid and inert
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle, negative sizes collapse to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// IsEmpty reports whether the rectangle covers no cells
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Contains reports whether the absolute position lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles, empty if they are disjoint
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Inset returns the rectangle shrunk by n cells on all sides
func (r Rect) Inset(n int) Rect {
	return r.Shrink(n, n, n, n)
}

// Shrink removes the given margins; the result never has negative size
func (r Rect) Shrink(left, top, right, bottom int) Rect {
	x := r.X + left
	y := r.Y + top
	w := r.W - left - right
	h := r.H - top - bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}
