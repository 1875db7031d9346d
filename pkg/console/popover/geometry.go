package popover

// Side is a caller-supplied placement preference, not a guarantee.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

// Origin is the edge the menu visually grows from, used for animation
// anchoring and for callers that draw directional markers.
type Origin int

const (
	OriginTop Origin = iota
	OriginBottom
	OriginLeft
	OriginRight
)

func (o Origin) String() string {
	switch o {
	case OriginTop:
		return "top"
	case OriginBottom:
		return "bottom"
	case OriginLeft:
		return "left"
	case OriginRight:
		return "right"
	}
	return "unknown"
}

// Rect is an anchor rectangle in viewport-relative coordinates, captured from
// the trigger element at calculation time.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Bottom returns the row just below the rectangle
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Right returns the column just right of the rectangle
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Contains reports whether the point is inside the rectangle.
// Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Empty reports whether the rectangle has no measurable area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size is the measured dimensions of rendered menu content
type Size struct {
	Width  int
	Height int
}

// Empty reports whether the size has no measurable area
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Viewport is the visible document area at calculation time
type Viewport struct {
	Width   int
	Height  int
	ScrollX int
	ScrollY int
}

// Placement is the computed absolute position for a menu, in document
// coordinates (scroll offsets folded in)
type Placement struct {
	Top    int
	Left   int
	Origin Origin
}
