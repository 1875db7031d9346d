package console

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/shopdesk/internal/config"
	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/pkg/console/hitmap"
	"github.com/marcus/shopdesk/pkg/console/popover"
)

// Screen identifies one of the console's top-level views
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenReviews
	ScreenTickets
)

func (s Screen) String() string {
	switch s {
	case ScreenCatalog:
		return "catalog"
	case ScreenReviews:
		return "reviews"
	case ScreenTickets:
		return "tickets"
	}
	return "unknown"
}

func screenFromString(name string) Screen {
	switch name {
	case "reviews":
		return ScreenReviews
	case "tickets":
		return ScreenTickets
	default:
		return ScreenCatalog
	}
}

// ClearStatusMsg clears the transient status bar message
type ClearStatusMsg struct{}

// actionResultMsg carries the outcome of a menu action back to the update loop
type actionResultMsg struct {
	Status  string
	Err     error
	Refresh bool
}

// editProductMsg asks the update loop to open the product form
type editProductMsg struct {
	ProductID string
}

// newProductMsg asks the update loop to open an empty product form
type newProductMsg struct{}

// viewTicketMsg asks the update loop to open the ticket detail overlay
type viewTicketMsg struct {
	TicketID string
}

// viewProductReviewsMsg switches to the reviews screen for one product
type viewProductReviewsMsg struct {
	ProductID string
}

// Model is the root console model. One popover controller serves all three
// screens, so opening a menu for one row closes any menu already open.
type Model struct {
	DB *db.DB

	Width  int
	Height int

	Screen        Screen
	Cursors       [3]int
	Scrolls       [3]int
	IncludeHidden bool

	Search    textinput.Model
	Searching bool

	Data RefreshDataMsg

	Menu        *popover.Controller
	Hits        *hitmap.HitMap
	ActiveRowID string

	Form   *productForm
	Detail *ticketDetail

	StatusMessage string
	StatusIsError bool
	Err           error
}

// New creates the console model, restoring the last screen and visibility
// settings from config
func New(database *db.DB) Model {
	search := textinput.New()
	search.Placeholder = "search..."
	search.CharLimit = 120
	search.Width = 40

	m := Model{
		DB:     database,
		Search: search,
		Hits:   hitmap.New(),
	}

	lastScreen, _ := config.GetLastScreen(database.BaseDir())
	m.Screen = screenFromString(lastScreen)
	m.IncludeHidden, _ = config.GetIncludeHidden(database.BaseDir())

	baseDir := database.BaseDir()
	m.Menu = popover.New(
		popover.WithDiagnostics(func(err error) {
			db.LogDiagnosticEvent(baseDir, db.DiagnosticEvent{
				Source: "console.menu",
				Detail: err.Error(),
			})
		}),
	)

	return m
}

// Init starts the first data fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchData(), textinput.Blink)
}

// fetchData returns a command that loads a fresh snapshot off the UI thread
func (m Model) fetchData() tea.Cmd {
	database := m.DB
	query := m.Search.Value()
	includeHidden := m.IncludeHidden
	return func() tea.Msg {
		return FetchData(database, query, includeHidden)
	}
}

// clearStatusAfter schedules the status bar to clear
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// setStatus records a transient status bar message
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.StatusMessage = msg
	m.StatusIsError = isError
	return clearStatusAfter(3 * time.Second)
}

// rowCount is the number of rows on the active screen
func (m Model) rowCount() int {
	switch m.Screen {
	case ScreenCatalog:
		return len(m.Data.Products)
	case ScreenReviews:
		return len(m.Data.Reviews)
	case ScreenTickets:
		return len(m.Data.Tickets)
	}
	return 0
}

// selectedRowID returns the entity ID under the cursor on the active screen
func (m Model) selectedRowID() string {
	idx := m.Cursors[m.Screen]
	switch m.Screen {
	case ScreenCatalog:
		if idx >= 0 && idx < len(m.Data.Products) {
			return m.Data.Products[idx].ID
		}
	case ScreenReviews:
		if idx >= 0 && idx < len(m.Data.Reviews) {
			return m.Data.Reviews[idx].ID
		}
	case ScreenTickets:
		if idx >= 0 && idx < len(m.Data.Tickets) {
			return m.Data.Tickets[idx].ID
		}
	}
	return ""
}

// clampCursors keeps cursors and scroll offsets in range after a data refresh
func (m *Model) clampCursors() {
	counts := [3]int{len(m.Data.Products), len(m.Data.Reviews), len(m.Data.Tickets)}
	for i, count := range counts {
		if count == 0 {
			m.Cursors[i] = 0
			m.Scrolls[i] = 0
			continue
		}
		if m.Cursors[i] >= count {
			m.Cursors[i] = count - 1
		}
		if m.Cursors[i] < 0 {
			m.Cursors[i] = 0
		}
		maxScroll := count - m.visibleRows()
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.Scrolls[i] > maxScroll {
			m.Scrolls[i] = maxScroll
		}
	}
}

// visibleRows is how many list rows fit between the header block and the
// status bar
func (m Model) visibleRows() int {
	// header, tabs, search, column headers, status bar
	rows := m.Height - listTopRows - 1
	if rows < 1 {
		return 1
	}
	return rows
}

// ensureCursorVisible adjusts the active screen's scroll so the cursor row
// stays on screen
func (m *Model) ensureCursorVisible() {
	s := m.Screen
	visible := m.visibleRows()
	if m.Cursors[s] < m.Scrolls[s] {
		m.Scrolls[s] = m.Cursors[s]
	} else if m.Cursors[s] >= m.Scrolls[s]+visible {
		m.Scrolls[s] = m.Cursors[s] - visible + 1
	}
	if m.Scrolls[s] < 0 {
		m.Scrolls[s] = 0
	}
}
