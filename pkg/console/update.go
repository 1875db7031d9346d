package console

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/shopdesk/internal/config"
	"github.com/marcus/shopdesk/internal/models"
	"github.com/marcus/shopdesk/pkg/console/hitmap"
	"github.com/marcus/shopdesk/pkg/console/popover"
)

// rowRef is the hit-region payload for list rows and their menu buttons
type rowRef struct {
	Index  int
	Entity any
}

// Update is the root message handler
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.Detail != nil {
			m.Detail = newTicketDetail(m.Detail.Ticket, m.Width, m.Height)
		}
		m.clampCursors()
		return m, nil

	case RefreshDataMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Data = msg
		m.clampCursors()
		return m, nil

	case ClearStatusMsg:
		m.StatusMessage = ""
		m.StatusIsError = false
		return m, nil

	case actionResultMsg:
		var cmds []tea.Cmd
		if msg.Err != nil {
			cmds = append(cmds, m.setStatus(msg.Err.Error(), true))
		} else if msg.Status != "" {
			cmds = append(cmds, m.setStatus(msg.Status, false))
		}
		if msg.Refresh {
			cmds = append(cmds, m.fetchData())
		}
		return m, tea.Batch(cmds...)

	case popover.ActivatedMsg:
		m.ActiveRowID = ""
		return m, nil

	case editProductMsg:
		p, err := m.DB.GetProduct(msg.ProductID)
		if err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		m.Form = newProductForm(p)
		return m, m.Form.Init()

	case newProductMsg:
		m.Form = newProductForm(nil)
		return m, m.Form.Init()

	case viewTicketMsg:
		t, err := m.DB.GetTicket(msg.TicketID)
		if err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		m.Detail = newTicketDetail(*t, m.Width, m.Height)
		return m, nil

	case viewProductReviewsMsg:
		return m.switchScreen(ScreenReviews)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Remaining messages (blinks, form ticks) go to the active overlay
	if m.Form != nil {
		cmd, done := m.Form.Update(msg)
		if done {
			return m.submitForm(cmd)
		}
		return m, cmd
	}
	if m.Searching {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Modal overlays take priority over everything else
	if m.Form != nil {
		if msg.String() == "esc" {
			m.Form = nil
			return m, nil
		}
		cmd, done := m.Form.Update(msg)
		if done {
			return m.submitForm(cmd)
		}
		return m, cmd
	}

	if m.Detail != nil {
		switch msg.String() {
		case "esc", "q":
			m.Detail = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.Detail.Viewport, cmd = m.Detail.Viewport.Update(msg)
		return m, cmd
	}

	// An open menu consumes navigation keys before the list does
	if cmd, handled := m.Menu.HandleKey(msg); handled {
		if !m.Menu.IsOpen() {
			m.ActiveRowID = ""
		}
		return m, cmd
	}

	if m.Searching {
		switch msg.String() {
		case "esc":
			m.Searching = false
			m.Search.SetValue("")
			m.Search.Blur()
			return m, m.fetchData()
		case "enter":
			m.Searching = false
			m.Search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, tea.Batch(cmd, m.fetchData())
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.Searching = true
		return m, m.Search.Focus()

	case "tab":
		return m.switchScreen((m.Screen + 1) % 3)
	case "shift+tab":
		return m.switchScreen((m.Screen + 2) % 3)
	case "1":
		return m.switchScreen(ScreenCatalog)
	case "2":
		return m.switchScreen(ScreenReviews)
	case "3":
		return m.switchScreen(ScreenTickets)

	case "down", "j":
		if m.Cursors[m.Screen] < m.rowCount()-1 {
			m.Cursors[m.Screen]++
			m.ensureCursorVisible()
		}
		return m, nil
	case "up", "k":
		if m.Cursors[m.Screen] > 0 {
			m.Cursors[m.Screen]--
			m.ensureCursorVisible()
		}
		return m, nil
	case "g":
		m.Cursors[m.Screen] = 0
		m.ensureCursorVisible()
		return m, nil
	case "G":
		if count := m.rowCount(); count > 0 {
			m.Cursors[m.Screen] = count - 1
			m.ensureCursorVisible()
		}
		return m, nil

	case "m", "enter":
		return m.openMenuForCursor()

	case "n":
		if m.Screen == ScreenCatalog {
			m.Form = newProductForm(nil)
			return m, m.Form.Init()
		}
		return m, nil

	case "H":
		m.IncludeHidden = !m.IncludeHidden
		config.SetIncludeHidden(m.DB.BaseDir(), m.IncludeHidden)
		return m, m.fetchData()

	case "r":
		return m, m.fetchData()
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Form != nil || m.Detail != nil {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.scrollList(1)
			return m, nil
		case tea.MouseButtonWheelUp:
			m.scrollList(-1)
			return m, nil
		case tea.MouseButtonLeft:
			return m.handleLeftPress(msg.X, msg.Y)
		}
	}

	return m, nil
}

func (m Model) handleLeftPress(x, y int) (tea.Model, tea.Cmd) {
	if m.Menu.IsOpen() {
		if idx, ok := m.Menu.ItemIndexAt(x, y); ok {
			m.ActiveRowID = ""
			return m, m.Menu.Activate(idx)
		}
		anchorID := m.ActiveRowID
		if m.Menu.HandlePointerDown(x, y) {
			m.ActiveRowID = ""
			return m, nil
		}
		// Anchor clicks are excluded from outside tracking; a re-click on
		// the button that opened the menu toggles it closed.
		if region := m.Hits.Test(x, y); region != nil && region.ID == anchorID {
			m.Menu.Close()
			m.ActiveRowID = ""
		}
		return m, nil
	}

	region := m.Hits.Test(x, y)
	if region == nil {
		return m, nil
	}

	switch {
	case strings.HasPrefix(region.ID, "tab:"):
		return m.switchScreen(screenFromString(strings.TrimPrefix(region.ID, "tab:")))

	case strings.HasPrefix(region.ID, "menu:"):
		return m.openMenuForRegion(*region)

	case strings.HasPrefix(region.ID, "row:"):
		if ref, ok := region.Data.(rowRef); ok {
			m.Cursors[m.Screen] = ref.Index
			m.ensureCursorVisible()
		}
		return m, nil
	}

	return m, nil
}

// openMenuForRegion opens the contextual menu anchored at a menu button
// region. The anchor resolves through the hit map each frame, so it follows
// the row if the list scrolls and reads as gone if the row disappears.
func (m Model) openMenuForRegion(region hitmap.Region) (tea.Model, tea.Cmd) {
	ref, ok := region.Data.(rowRef)
	if !ok {
		return m, nil
	}
	items := m.menuForRow(ref.Entity)
	if len(items) == 0 {
		return m, nil
	}

	m.Cursors[m.Screen] = ref.Index
	m.ensureCursorVisible()
	m.ActiveRowID = region.ID
	m.Menu.Open(m.Hits.Anchor(region.ID), items, popover.SideBottom)
	return m, nil
}

// openMenuForCursor opens the menu for the keyboard-selected row, anchored at
// its menu button
func (m Model) openMenuForCursor() (tea.Model, tea.Cmd) {
	id := m.selectedRowID()
	if id == "" {
		return m, nil
	}
	region, ok := m.Hits.Get("menu:" + id)
	if !ok {
		return m, nil
	}
	return m.openMenuForRegion(region)
}

func (m *Model) scrollList(delta int) {
	s := m.Screen
	maxScroll := m.rowCount() - m.visibleRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.Scrolls[s] += delta
	if m.Scrolls[s] > maxScroll {
		m.Scrolls[s] = maxScroll
	}
	if m.Scrolls[s] < 0 {
		m.Scrolls[s] = 0
	}
}

// switchScreen changes the active screen, closing any open menu and
// persisting the choice
func (m Model) switchScreen(s Screen) (tea.Model, tea.Cmd) {
	m.Menu.Close()
	m.ActiveRowID = ""
	m.Screen = s
	config.SetLastScreen(m.DB.BaseDir(), s.String())
	return m, nil
}

// submitForm persists the completed product form
func (m Model) submitForm(pending tea.Cmd) (tea.Model, tea.Cmd) {
	form := m.Form
	m.Form = nil

	product, err := form.ToProduct()
	if err != nil {
		return m, m.setStatus(err.Error(), true)
	}

	if form.Mode == formModeCreate {
		product.Status = models.ProductStatus(form.Status)
		err = m.DB.CreateProduct(product)
	} else {
		err = m.DB.UpdateProduct(product)
	}
	if err != nil {
		return m, m.setStatus(err.Error(), true)
	}

	verb := "updated"
	if form.Mode == formModeCreate {
		verb = "created"
	}
	return m, tea.Batch(pending, m.setStatus(product.SKU+" "+verb, false), m.fetchData())
}
