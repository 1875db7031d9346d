package popover

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// testView builds a blank base view of the given size
func testView(w, h int) string {
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func anchorAt(r Rect) AnchorFunc {
	return func() (Rect, bool) { return r, true }
}

func testItems(actions ...func() tea.Msg) []MenuItem {
	items := []MenuItem{
		{Label: "Edit", Icon: "✎"},
		{Label: "Hide"},
		{Label: "Discontinue", Kind: KindDanger},
	}
	for i, a := range actions {
		if i < len(items) {
			items[i].Action = a
		}
	}
	return items
}

// place opens the controller and renders once so placement exists
func place(t *testing.T, c *Controller, anchor AnchorFunc, items []MenuItem) Viewport {
	t.Helper()
	view := Viewport{Width: 80, Height: 24}
	c.Open(anchor, items, SideBottom)
	c.Render(testView(80, 24), view)
	if _, ok := c.Placement(); !ok {
		t.Fatal("Expected placement after render")
	}
	return view
}

// runCmd executes a command tree and returns all leaf messages
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			msgs = append(msgs, runCmd(sub)...)
		}
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}

func TestControllerStartsClosed(t *testing.T) {
	c := New()
	if c.IsOpen() {
		t.Error("New controller must start closed")
	}
	base := testView(20, 5)
	if got := c.Render(base, Viewport{Width: 20, Height: 5}); got != base {
		t.Error("Closed controller must render nothing")
	}
}

func TestOpenRequiresAnchorAndItems(t *testing.T) {
	c := New()

	c.Open(nil, testItems(), SideBottom)
	if c.IsOpen() {
		t.Error("Open without anchor must not transition to OPEN")
	}

	c.Open(anchorAt(Rect{Top: 2, Left: 2, Width: 3, Height: 1}), nil, SideBottom)
	if c.IsOpen() {
		t.Error("Open without items must not transition to OPEN")
	}
}

func TestRenderDefersUntilGeometryAvailable(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	gone := func() (Rect, bool) { return Rect{}, false }

	c.Open(gone, testItems(), SideBottom)
	if !c.IsOpen() {
		t.Fatal("Expected OPEN")
	}

	base := testView(80, 24)
	if got := c.Render(base, Viewport{Width: 80, Height: 24}); got != base {
		t.Error("Render with unavailable anchor geometry must produce the base unchanged")
	}
	if _, ok := c.Placement(); ok {
		t.Error("No placement must be produced while geometry is unavailable")
	}
}

func TestRenderPlacesAndPaintsMenu(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	view := place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())

	out := c.Render(testView(80, 24), view)
	if !strings.Contains(out, "Edit") || !strings.Contains(out, "Discontinue") {
		t.Error("Expected menu labels painted into the view")
	}

	pl, _ := c.Placement()
	if pl.Top != 4 { // anchor bottom (3) + gap (1)
		t.Errorf("Expected menu below anchor at row 4, got %d", pl.Top)
	}
	if pl.Origin != OriginTop {
		t.Errorf("Expected origin top, got %s", pl.Origin)
	}
}

func TestPlacementStableWhileOpen(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	view := place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())

	first, _ := c.Placement()
	c.Render(testView(80, 24), view)
	second, _ := c.Placement()
	if first != second {
		t.Errorf("Placement changed while open: %+v -> %+v", first, second)
	}
}

func TestOutsideClickClosesExactlyOnce(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())

	if !c.HandlePointerDown(70, 20) {
		t.Fatal("Expected outside pointer-down to close the menu")
	}
	if c.IsOpen() {
		t.Fatal("Expected CLOSED after outside interaction")
	}

	// Second outside click while already closed is a no-op
	if c.HandlePointerDown(70, 20) {
		t.Error("Pointer-down on a closed controller must be a no-op")
	}
}

func TestClickInsideMenuDoesNotClose(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())

	pl, _ := c.Placement()
	if c.HandlePointerDown(pl.Left+1, pl.Top+1) {
		t.Error("Pointer-down inside the menu must not close it")
	}
	if !c.IsOpen() {
		t.Error("Expected menu to stay open")
	}
}

func TestClickOnAnchorDoesNotClose(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	anchor := Rect{Top: 2, Left: 10, Width: 3, Height: 1}
	place(t, c, anchorAt(anchor), testItems())

	if c.HandlePointerDown(anchor.Left, anchor.Top) {
		t.Error("Pointer-down on the anchor must not be misread as outside")
	}
	if !c.IsOpen() {
		t.Error("Expected menu to stay open")
	}
}

func TestStaleAnchorDegradesToMenuContainment(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	anchor := Rect{Top: 2, Left: 10, Width: 3, Height: 1}

	present := true
	accessor := func() (Rect, bool) {
		if !present {
			return Rect{}, false
		}
		return anchor, true
	}

	view := Viewport{Width: 80, Height: 24}
	c.Open(accessor, testItems(), SideBottom)
	c.Render(testView(80, 24), view)

	// Row deleted while the menu is open
	present = false

	pl, _ := c.Placement()
	if c.HandlePointerDown(pl.Left+1, pl.Top+1) {
		t.Error("Click inside the menu must not close it even with a stale anchor")
	}
	if !c.HandlePointerDown(70, 20) {
		t.Error("Outside click must still close with a stale anchor")
	}
}

func TestActivateInvokesActionOnceAndCloses(t *testing.T) {
	calls := 0
	items := testItems(func() tea.Msg {
		calls++
		return nil
	})

	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), items)

	msgs := runCmd(c.Activate(0))

	if calls != 1 {
		t.Errorf("Expected action invoked exactly once, got %d", calls)
	}
	if c.IsOpen() {
		t.Error("Expected CLOSED after activation")
	}

	found := false
	for _, msg := range msgs {
		if am, ok := msg.(ActivatedMsg); ok {
			found = true
			if am.Index != 0 || am.Item.Label != "Edit" {
				t.Errorf("Unexpected ActivatedMsg: %+v", am)
			}
		}
	}
	if !found {
		t.Error("Expected ActivatedMsg to be emitted")
	}
}

func TestActivateSurvivesPanickingAction(t *testing.T) {
	var reported error
	items := testItems(func() tea.Msg {
		panic("boom")
	})

	c := New(
		WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}),
		WithDiagnostics(func(err error) { reported = err }),
	)
	place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), items)

	msgs := runCmd(c.Activate(0))

	if c.IsOpen() {
		t.Error("Expected CLOSED even when the action panics")
	}
	if reported == nil {
		t.Error("Expected the panic to reach the diagnostics hook")
	} else if !strings.Contains(reported.Error(), "boom") {
		t.Errorf("Expected panic detail in diagnostic, got %v", reported)
	}

	found := false
	for _, msg := range msgs {
		if _, ok := msg.(ActivatedMsg); ok {
			found = true
		}
	}
	if !found {
		t.Error("Expected ActivatedMsg even when the action panics")
	}
}

func TestActivateOutOfRange(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())

	if cmd := c.Activate(-1); cmd != nil {
		t.Error("Expected nil command for negative index")
	}
	if cmd := c.Activate(99); cmd != nil {
		t.Error("Expected nil command for out-of-range index")
	}
	if !c.IsOpen() {
		t.Error("Out-of-range activation must not close the menu")
	}
}

func TestReopenDiscardsPriorPlacement(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	view := place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())
	first, _ := c.Placement()

	// Toggle onto a different anchor without closing first
	c.Open(anchorAt(Rect{Top: 10, Left: 40, Width: 3, Height: 1}), testItems(), SideBottom)
	if _, ok := c.Placement(); ok {
		t.Fatal("Expected placement discarded on reopen")
	}

	c.Render(testView(80, 24), view)
	second, ok := c.Placement()
	if !ok {
		t.Fatal("Expected placement for the new anchor")
	}
	if second == first {
		t.Error("Expected a fresh placement, got the stale one")
	}
	if second.Top != 12 { // new anchor bottom (11) + gap (1)
		t.Errorf("Expected top 12 for the new anchor, got %d", second.Top)
	}
}

func TestItemIndexAt(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())

	pl, _ := c.Placement()

	// First item row sits below the top border
	idx, ok := c.ItemIndexAt(pl.Left+2, pl.Top+1)
	if !ok || idx != 0 {
		t.Errorf("Expected item 0, got %d ok=%v", idx, ok)
	}

	idx, ok = c.ItemIndexAt(pl.Left+2, pl.Top+3)
	if !ok || idx != 2 {
		t.Errorf("Expected item 2, got %d ok=%v", idx, ok)
	}

	// The border row itself hits nothing
	if _, ok := c.ItemIndexAt(pl.Left+2, pl.Top); ok {
		t.Error("Border row must not map to an item")
	}

	// Outside the menu entirely
	if _, ok := c.ItemIndexAt(0, 0); ok {
		t.Error("Point outside the menu must not map to an item")
	}
}

func TestHandleKeyNavigation(t *testing.T) {
	c := New(WithMetrics(Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}))
	place(t, c, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	if _, handled := c.HandleKey(down); !handled {
		t.Error("Expected down to be consumed")
	}
	if c.Cursor() != 1 {
		t.Errorf("Expected cursor 1, got %d", c.Cursor())
	}

	c.HandleKey(down)
	c.HandleKey(down) // clamps at the last item
	if c.Cursor() != 2 {
		t.Errorf("Expected cursor clamped at 2, got %d", c.Cursor())
	}

	c.HandleKey(up)
	if c.Cursor() != 1 {
		t.Errorf("Expected cursor 1, got %d", c.Cursor())
	}

	if _, handled := c.HandleKey(esc); !handled {
		t.Error("Expected esc to be consumed")
	}
	if c.IsOpen() {
		t.Error("Expected esc to close the menu")
	}

	// Closed controller consumes nothing
	if _, handled := c.HandleKey(down); handled {
		t.Error("Closed controller must not consume keys")
	}
}

func TestControllersAreIndependent(t *testing.T) {
	metrics := Metrics{Gap: 1, EdgeMargin: 1, EdgeMarginFar: 2}
	a := New(WithMetrics(metrics))
	b := New(WithMetrics(metrics))

	place(t, a, anchorAt(Rect{Top: 2, Left: 10, Width: 3, Height: 1}), testItems())
	place(t, b, anchorAt(Rect{Top: 10, Left: 40, Width: 3, Height: 1}), testItems())

	if !a.IsOpen() || !b.IsOpen() {
		t.Fatal("Nothing in the engine prevents two controllers being open")
	}

	a.Close()
	if !b.IsOpen() {
		t.Error("Closing one controller must not affect another")
	}
}
