package popover

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ItemKind selects the visual treatment of a menu item
type ItemKind int

const (
	KindNormal ItemKind = iota
	KindDanger          // destructive actions, rendered in the error color
	KindArrow           // leads somewhere else, rendered with a trailing ▸
)

// MenuItem is one entry in a contextual menu. Items are ordered; order is
// display order. Labels need not be unique.
type MenuItem struct {
	Label  string
	Icon   string
	Kind   ItemKind
	Action func() tea.Msg
}

// ActivatedMsg is emitted when a menu item is activated, whether or not its
// action succeeds. Callers wanting completion feedback from asynchronous
// actions must track that themselves.
type ActivatedMsg struct {
	Item  MenuItem
	Index int
}

// Option configures a Controller
type Option func(*Controller)

// WithMetrics overrides the placement spacing constants
func WithMetrics(m Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithStyles overrides the menu styling
func WithStyles(s Styles) Option {
	return func(c *Controller) {
		c.styles = s
	}
}

// WithDiagnostics sets the hook that receives recovered action failures.
// Failures are never surfaced through the render tree.
func WithDiagnostics(fn func(error)) Option {
	return func(c *Controller) {
		c.onError = fn
	}
}

// Controller owns one contextual menu's open/closed lifecycle: it records
// the anchor and item list on open, computes placement once the menu's own
// geometry is measurable, routes outside interactions to close, and mediates
// item activation. The zero value is unusable; call New.
type Controller struct {
	metrics Metrics
	styles  Styles
	onError func(error)

	open      bool
	anchor    AnchorFunc
	items     []MenuItem
	pref      Side
	cursor    int
	placement *Placement
	size      Size
	tracker   outsideTracker
}

// New creates a closed controller
func New(opts ...Option) *Controller {
	c := &Controller{
		metrics: DefaultMetrics(),
		styles:  DefaultStyles(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open transitions CLOSED → OPEN with the given anchor, items, and side
// preference. Placement is deferred until the menu content has been rendered
// and measured. Opening while already open is close-then-open: the previous
// placement is discarded and recalculated for the new anchor.
func (c *Controller) Open(anchor AnchorFunc, items []MenuItem, pref Side) {
	if c.open {
		c.Close()
	}
	if anchor == nil || len(items) == 0 {
		return
	}

	c.anchor = anchor
	c.items = items
	c.pref = pref
	c.cursor = 0
	c.open = true
	c.tracker.arm(anchor, c.menuRect, c.Close)
}

// Close transitions to CLOSED unconditionally. Idempotent. The tracker is
// disarmed synchronously, so no pointer-down can arrive for a closed menu.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.anchor = nil
	c.items = nil
	c.cursor = 0
	c.placement = nil
	c.size = Size{}
	c.tracker.disarm()
}

// IsOpen reports the current state, for conditional rendering by the caller
func (c *Controller) IsOpen() bool {
	return c.open
}

// Items returns the current item list (nil when closed)
func (c *Controller) Items() []MenuItem {
	return c.items
}

// Cursor returns the keyboard selection index
func (c *Controller) Cursor() int {
	return c.cursor
}

// Placement returns the computed placement, if any. It exists only after the
// first Render following Open and is discarded on close.
func (c *Controller) Placement() (Placement, bool) {
	if c.placement == nil {
		return Placement{}, false
	}
	return *c.placement, true
}

// Render composites the open menu over the base view and returns the result.
// When closed, or when geometry is not yet available, base is returned
// unchanged. The first successful render measures the menu and fixes its
// placement; it is not recomputed while the menu stays open.
func (c *Controller) Render(base string, view Viewport) string {
	if !c.open {
		return base
	}

	content := menuView(c.items, c.cursor, c.styles)

	if c.placement == nil {
		size := Size{Width: lipgloss.Width(content), Height: lipgloss.Height(content)}
		anchor, ok := c.anchor()
		if !ok {
			return base
		}
		pl, ok := c.metrics.Compute(anchor, size, view, c.pref)
		if !ok {
			return base
		}
		c.size = size
		c.placement = &pl
	}

	return composite(base, content, c.placement.Top-view.ScrollY, c.placement.Left-view.ScrollX)
}

// HandlePointerDown routes a document-level pointer-down at (x, y) in
// document coordinates. Returns true when the interaction was outside both
// the menu and its anchor and therefore closed the menu.
func (c *Controller) HandlePointerDown(x, y int) bool {
	return c.tracker.pointerDown(x, y)
}

// ItemIndexAt maps a document-coordinate point to a menu item index.
// ok=false when the menu is closed, unplaced, or the point misses the items.
func (c *Controller) ItemIndexAt(x, y int) (int, bool) {
	if !c.open || c.placement == nil {
		return 0, false
	}
	rect, ok := c.menuRect()
	if !ok || !rect.Contains(x, y) {
		return 0, false
	}

	idx := y - rect.Top - boxFrameTop
	if idx < 0 || idx >= len(c.items) {
		return 0, false
	}
	if x < rect.Left+1 || x >= rect.Right()-1 {
		return 0, false
	}
	return idx, true
}

// Activate invokes the item's action and closes the menu. The transition to
// CLOSED happens immediately, before the action runs: actions are
// fire-and-forget and a slow or faulty action cannot hold the menu open. A
// panicking action is recovered and reported to the diagnostics hook, never
// propagated. The returned command always delivers ActivatedMsg.
func (c *Controller) Activate(index int) tea.Cmd {
	if !c.open || index < 0 || index >= len(c.items) {
		return nil
	}
	item := c.items[index]
	c.Close()

	activated := func() tea.Msg {
		return ActivatedMsg{Item: item, Index: index}
	}
	if item.Action == nil {
		return activated
	}

	action := item.Action
	guarded := func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				c.report(fmt.Errorf("menu action %q: %v", item.Label, r))
				msg = nil
			}
		}()
		return action()
	}
	return tea.Batch(activated, guarded)
}

// HandleKey handles keyboard navigation while open. Returns the command to
// run (if any) and whether the key was consumed.
func (c *Controller) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !c.open {
		return nil, false
	}

	switch msg.String() {
	case "esc":
		c.Close()
		return nil, true
	case "up", "k", "ctrl+p":
		if c.cursor > 0 {
			c.cursor--
		}
		return nil, true
	case "down", "j", "ctrl+n":
		if c.cursor < len(c.items)-1 {
			c.cursor++
		}
		return nil, true
	case "enter":
		return c.Activate(c.cursor), true
	}
	return nil, false
}

// menuRect is the menu's on-screen rectangle, available once placed
func (c *Controller) menuRect() (Rect, bool) {
	if c.placement == nil || c.size.Empty() {
		return Rect{}, false
	}
	return Rect{
		Top:    c.placement.Top,
		Left:   c.placement.Left,
		Width:  c.size.Width,
		Height: c.size.Height,
	}, true
}

func (c *Controller) report(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}
