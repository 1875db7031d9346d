package popover

import (
	"testing"
)

func TestComputeFlipsAboveWhenNoRoomBelow(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768}
	anchor := Rect{Top: 700, Left: 500, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 150}

	// spaceBelow = 768-720 = 48 < 158, spaceAbove = 700 >= 158
	pl, ok := Compute(anchor, menu, view, SideBottom)
	if !ok {
		t.Fatal("Expected placement")
	}
	if pl.Top != 542 {
		t.Errorf("Expected top 542, got %d", pl.Top)
	}
	if pl.Origin != OriginBottom {
		t.Errorf("Expected origin bottom, got %s", pl.Origin)
	}
}

func TestComputePlacesBelowWhenRoomExists(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768}
	anchor := Rect{Top: 100, Left: 500, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 150}

	pl, ok := Compute(anchor, menu, view, SideBottom)
	if !ok {
		t.Fatal("Expected placement")
	}
	if pl.Top != 128 {
		t.Errorf("Expected top 128 (anchor bottom + gap), got %d", pl.Top)
	}
	if pl.Origin != OriginTop {
		t.Errorf("Expected origin top, got %s", pl.Origin)
	}
}

func TestComputeClampsLeftEdge(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768}
	anchor := Rect{Top: 100, Left: 10, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 150}

	pl, ok := Compute(anchor, menu, view, SideBottom)
	if !ok {
		t.Fatal("Expected placement")
	}
	if pl.Left != DefaultMetrics().EdgeMargin {
		t.Errorf("Expected left clamped to %d, got %d", DefaultMetrics().EdgeMargin, pl.Left)
	}
	if pl.Left < 0 {
		t.Errorf("Left must never be negative, got %d", pl.Left)
	}
}

func TestComputeLeftAlwaysWithinBounds(t *testing.T) {
	m := DefaultMetrics()
	view := Viewport{Width: 1024, Height: 768}
	menu := Size{Width: 220, Height: 150}

	minLeft := m.EdgeMargin
	maxLeft := view.Width - menu.Width - m.EdgeMarginFar

	anchors := []Rect{
		{Top: 100, Left: 0, Width: 10, Height: 10},
		{Top: 100, Left: 500, Width: 40, Height: 20},
		{Top: 100, Left: 1000, Width: 40, Height: 20},
		{Top: 700, Left: 1020, Width: 4, Height: 4},
		{Top: 5, Left: 512, Width: 1, Height: 1},
	}
	prefs := []Side{SideBottom, SideTop, SideLeft, SideRight}

	for _, anchor := range anchors {
		for _, pref := range prefs {
			pl, ok := m.Compute(anchor, menu, view, pref)
			if !ok {
				t.Fatalf("Expected placement for anchor %+v pref %d", anchor, pref)
			}
			if pl.Left < minLeft || pl.Left > maxLeft {
				t.Errorf("anchor %+v pref %d: left %d outside [%d, %d]",
					anchor, pref, pl.Left, minLeft, maxLeft)
			}
		}
	}
}

func TestComputeClampsWhenNeitherSideFits(t *testing.T) {
	m := DefaultMetrics()
	view := Viewport{Width: 1024, Height: 100}
	anchor := Rect{Top: 40, Left: 500, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 90}

	// spaceBelow = 40, spaceAbove = 40, both < 98
	pl, ok := m.Compute(anchor, menu, view, SideBottom)
	if !ok {
		t.Fatal("Expected placement")
	}
	if pl.Top < 0 || pl.Top > view.Height {
		t.Errorf("Clamped top %d escaped the viewport", pl.Top)
	}
	// Clamped to the top of the viewport, at/above the anchor
	if pl.Origin != OriginBottom {
		t.Errorf("Expected origin bottom for clamped-above placement, got %s", pl.Origin)
	}
}

func TestComputeTopPreferenceNeverFlips(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768}
	anchor := Rect{Top: 300, Left: 500, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 150}

	pl, ok := Compute(anchor, menu, view, SideTop)
	if !ok {
		t.Fatal("Expected placement")
	}
	if pl.Top != 300-150-8 {
		t.Errorf("Expected top %d, got %d", 300-150-8, pl.Top)
	}
	if pl.Origin != OriginBottom {
		t.Errorf("Expected origin bottom, got %s", pl.Origin)
	}
}

func TestComputeHorizontalPlacements(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768}
	anchor := Rect{Top: 300, Left: 500, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 150}

	left, ok := Compute(anchor, menu, view, SideLeft)
	if !ok {
		t.Fatal("Expected placement")
	}
	if left.Left != 500-220-8 {
		t.Errorf("SideLeft: expected left %d, got %d", 500-220-8, left.Left)
	}
	if left.Top != 300 {
		t.Errorf("SideLeft: expected top aligned to anchor (300), got %d", left.Top)
	}
	if left.Origin != OriginRight {
		t.Errorf("SideLeft: expected origin right, got %s", left.Origin)
	}

	right, ok := Compute(anchor, menu, view, SideRight)
	if !ok {
		t.Fatal("Expected placement")
	}
	if right.Left != 540+8 {
		t.Errorf("SideRight: expected left %d, got %d", 540+8, right.Left)
	}
	if right.Origin != OriginLeft {
		t.Errorf("SideRight: expected origin left, got %s", right.Origin)
	}
}

func TestComputeScrollOffsetsFoldIn(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768, ScrollX: 100, ScrollY: 50}
	anchor := Rect{Top: 100, Left: 500, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 150}

	pl, ok := Compute(anchor, menu, view, SideBottom)
	if !ok {
		t.Fatal("Expected placement")
	}
	if pl.Top != 128+50 {
		t.Errorf("Expected top %d with scrollY folded in, got %d", 128+50, pl.Top)
	}
	if pl.Left != 410+100 {
		t.Errorf("Expected left %d with scrollX folded in, got %d", 410+100, pl.Left)
	}
}

func TestComputeGeometryUnavailable(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768}

	cases := []struct {
		name   string
		anchor Rect
		menu   Size
	}{
		{"zero anchor", Rect{}, Size{Width: 220, Height: 150}},
		{"zero menu", Rect{Top: 100, Left: 500, Width: 40, Height: 20}, Size{}},
		{"negative menu width", Rect{Top: 100, Left: 500, Width: 40, Height: 20}, Size{Width: -1, Height: 10}},
	}

	for _, tc := range cases {
		if _, ok := Compute(tc.anchor, tc.menu, view, SideBottom); ok {
			t.Errorf("%s: expected no placement", tc.name)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	view := Viewport{Width: 1024, Height: 768}
	anchor := Rect{Top: 700, Left: 500, Width: 40, Height: 20}
	menu := Size{Width: 220, Height: 150}

	first, _ := Compute(anchor, menu, view, SideBottom)
	for i := 0; i < 10; i++ {
		again, _ := Compute(anchor, menu, view, SideBottom)
		if again != first {
			t.Fatalf("Compute not deterministic: %+v != %+v", again, first)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Top: 10, Left: 10, Width: 20, Height: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 10, true},  // Top-right edge (exclusive width)
		{10, 19, true},  // Bottom-left edge (exclusive height)
		{29, 19, true},  // Bottom-right corner
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}
