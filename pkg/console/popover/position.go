package popover

// Metrics are the fixed spacing constants used by placement calculation.
// EdgeMargin and EdgeMarginFar are intentionally asymmetric: the far (right)
// margin leaves room for the trailing submenu indicator.
type Metrics struct {
	Gap           int
	EdgeMargin    int
	EdgeMarginFar int
}

// DefaultMetrics returns the package default spacing
func DefaultMetrics() Metrics {
	return Metrics{
		Gap:           8,
		EdgeMargin:    8,
		EdgeMarginFar: 24,
	}
}

// Compute calculates a placement with the default metrics. See Metrics.Compute.
func Compute(anchor Rect, menu Size, view Viewport, pref Side) (Placement, bool) {
	return DefaultMetrics().Compute(anchor, menu, view, pref)
}

// Compute calculates where to place a menu of the given size so it stays
// inside the viewport. Pure and deterministic. Returns ok=false when anchor
// or menu geometry is unavailable (not yet measurable) — the caller must not
// render the menu until geometry exists.
//
// Horizontally the menu is centered on the anchor's midpoint and clamped to
// the viewport edges. Vertically, a Bottom preference places below the anchor
// and flips above when there is no room; when neither side fits, the top is
// clamped into the viewport. A Top preference always places above (the caller
// asserts there is room). Left/Right place flush against the anchor's edge.
func (m Metrics) Compute(anchor Rect, menu Size, view Viewport, pref Side) (Placement, bool) {
	if anchor.Empty() || menu.Empty() {
		return Placement{}, false
	}

	// Horizontal: center on the anchor, clamp into the viewport
	left := anchor.Left + anchor.Width/2 - menu.Width/2 + view.ScrollX
	minLeft := view.ScrollX + m.EdgeMargin
	maxLeft := view.ScrollX + view.Width - menu.Width - m.EdgeMarginFar
	if maxLeft < minLeft {
		maxLeft = minLeft
	}

	var top int
	var origin Origin

	switch pref {
	case SideTop:
		// Caller asserts there is room above; no flip attempted
		top = anchor.Top - menu.Height - m.Gap + view.ScrollY
		origin = OriginBottom

	case SideLeft:
		left = anchor.Left - menu.Width - m.Gap + view.ScrollX
		top = anchor.Top + view.ScrollY
		origin = OriginRight

	case SideRight:
		left = anchor.Right() + m.Gap + view.ScrollX
		top = anchor.Top + view.ScrollY
		origin = OriginLeft

	default: // SideBottom
		spaceBelow := view.Height - anchor.Bottom()
		spaceAbove := anchor.Top

		switch {
		case spaceBelow >= menu.Height+m.Gap:
			top = anchor.Bottom() + m.Gap + view.ScrollY
			origin = OriginTop
		case spaceAbove >= menu.Height+m.Gap:
			top = anchor.Top - menu.Height - m.Gap + view.ScrollY
			origin = OriginBottom
		default:
			// Neither side fits: clamp into the viewport and pick the
			// origin from where the menu ended up relative to the anchor
			top = anchor.Bottom() + m.Gap + view.ScrollY
			top = clamp(top, m.Gap+view.ScrollY, view.ScrollY+view.Height-menu.Height-m.Gap)
			if top > anchor.Top+view.ScrollY {
				origin = OriginTop
			} else {
				origin = OriginBottom
			}
		}
	}

	left = clamp(left, minLeft, maxLeft)

	return Placement{Top: top, Left: left, Origin: origin}, true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
