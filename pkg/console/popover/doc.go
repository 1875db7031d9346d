// Package popover provides a floating contextual-menu engine for terminal
// UIs: given an anchor rectangle and a list of actions, it computes where to
// draw a small menu so it stays fully inside the viewport, flips sides when
// there is no room, and composites the menu over the host view at a layer
// independent of the anchor's own panel.
//
// The engine uses a render-then-measure pattern: placement is computed from
// the menu's rendered size on the first frame after opening, never from
// guessed dimensions, so the user never sees a frame at default coordinates.
//
// # Quick Start
//
//	ctl := popover.New()
//
//	// Opening (anchor geometry comes from a hit-region registry):
//	ctl.Open(anchors.RectFunc(rowID), []popover.MenuItem{
//	    {Label: "Edit", Icon: "✎", Action: editCmd},
//	    {Label: "Delete", Icon: "✗", Kind: popover.KindDanger, Action: deleteCmd},
//	}, popover.SideBottom)
//
//	// In Update(), route pointer-downs while open:
//	if idx, ok := ctl.ItemIndexAt(x, y); ok {
//	    cmd = ctl.Activate(idx)
//	} else if ctl.HandlePointerDown(x, y) {
//	    // closed by an outside interaction
//	}
//
//	// In View():
//	return ctl.Render(base, popover.Viewport{Width: w, Height: h})
//
// A controller owns exactly one menu; many controllers may coexist (one per
// list screen, or one per row). Nothing in the engine prevents two being open
// at once — callers wanting a single active menu track it themselves.
package popover
