// Package hitmap maps terminal cells to named interactive regions. Screens
// rebuild the map on every render and route mouse events through Test; menu
// anchors are looked up by ID so a region that disappears between frames
// reads as gone rather than stale.
package hitmap

import "github.com/marcus/shopdesk/pkg/console/popover"

// Rect is a rectangular screen region
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point is inside the rectangle.
// Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit target with optional payload
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap is an ordered collection of hit regions. Later additions win on
// overlap, so screens add backgrounds first and controls last.
type HitMap struct {
	regions []Region
}

// New creates an empty hit map
func New() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. IDs need not be unique; lookup by ID returns
// the most recently added match.
func (m *HitMap) AddRect(id string, x, y, w, h int, data any) {
	m.regions = append(m.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: h},
		Data: data,
	})
}

// Test returns the topmost region containing the point, or nil
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Get returns the most recently added region with the given ID
func (m *HitMap) Get(id string) (Region, bool) {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].ID == id {
			return m.regions[i], true
		}
	}
	return Region{}, false
}

// Regions returns all registered regions in addition order
func (m *HitMap) Regions() []Region {
	return m.regions
}

// Clear removes all regions. Called at the top of every render pass.
func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

// Anchor returns an accessor that resolves the region with the given ID at
// call time. When the region is absent from the current frame the accessor
// reports the anchor as gone.
func (m *HitMap) Anchor(id string) popover.AnchorFunc {
	return func() (popover.Rect, bool) {
		region, ok := m.Get(id)
		if !ok {
			return popover.Rect{}, false
		}
		return popover.Rect{
			Top:    region.Rect.Y,
			Left:   region.Rect.X,
			Width:  region.Rect.W,
			Height: region.Rect.H,
		}, true
	}
}
