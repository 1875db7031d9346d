package popover

// AnchorFunc reports the anchor's current rectangle. ok=false means the
// anchor is gone (its row was removed while the menu was open).
type AnchorFunc func() (Rect, bool)

// outsideTracker watches document-level pointer-downs while a menu is open
// and closes it when an interaction lands outside both the menu and its
// anchor. It is armed exactly while the controller is OPEN; arming and
// disarming are synchronous with the open/close transitions so there is no
// window where it is attached without an open menu or vice versa.
type outsideTracker struct {
	armed  bool
	anchor AnchorFunc
	menu   func() (Rect, bool)
	close  func()
}

// arm starts watching. The anchor is excluded from outside checks so the
// click that opened the menu (or a deliberate re-click to toggle) is never
// misread as an outside interaction.
func (t *outsideTracker) arm(anchor AnchorFunc, menu func() (Rect, bool), close func()) {
	t.armed = true
	t.anchor = anchor
	t.menu = menu
	t.close = close
}

// disarm stops watching. Safe to call repeatedly.
func (t *outsideTracker) disarm() {
	t.armed = false
	t.anchor = nil
	t.menu = nil
	t.close = nil
}

// pointerDown handles one document-level pointer-down at (x, y) in document
// coordinates. Returns true when the interaction was outside and closed the
// menu. A disarmed tracker ignores everything, so a second outside click
// after closing is a no-op.
func (t *outsideTracker) pointerDown(x, y int) bool {
	if !t.armed {
		return false
	}

	if menuRect, ok := t.menu(); ok && menuRect.Contains(x, y) {
		return false
	}

	// A missing anchor degrades to checking menu containment only
	if t.anchor != nil {
		if anchorRect, ok := t.anchor(); ok && anchorRect.Contains(x, y) {
			return false
		}
	}

	close := t.close
	t.disarm()
	if close != nil {
		close()
	}
	return true
}
