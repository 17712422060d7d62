package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"storefront/core/money"
	productEntity "storefront/model/entity/product"
	"storefront/service/storefront"
	"storefront/store/catalog"
	"storefront/store/filter"
)

type View int

const (
	ViewList View = iota
	ViewDetail
	ViewCart
)

type fetchedMsg struct{ err error }

// Model is the bubbletea model for the shop.
type Model struct {
	ctx    context.Context
	sf     *storefront.Storefront
	money  *money.Formatter
	styles Styles

	view       View
	cursor     int
	cartCursor int
	detail     productEntity.Product

	search    textinput.Model
	searching bool

	status string
	width  int
	height int
}

func New(ctx context.Context, sf *storefront.Storefront) Model {
	si := textinput.New()
	si.Placeholder = "Search name, brand, model..."
	si.CharLimit = 80
	si.Width = 40
	si.SetValue(sf.Catalog().SearchQuery)

	return Model{
		ctx:    ctx,
		sf:     sf,
		money:  money.NewFormatter(sf.Locale()),
		styles: DefaultStyles(),
		search: si,
	}
}

// Init fetches the catalog unless it is already loaded or loading.
func (m Model) Init() tea.Cmd {
	return fetchCmd(m.ctx, m.sf)
}

func fetchCmd(ctx context.Context, sf *storefront.Storefront) tea.Cmd {
	return func() tea.Msg {
		return fetchedMsg{err: sf.Fetch(ctx)}
	}
}

func (m Model) View() string {
	switch m.view {
	case ViewDetail:
		return m.detailView()
	case ViewCart:
		return m.cartView()
	}
	return m.listView()
}

// CurrentView reports which screen is showing.
func (m Model) CurrentView() View { return m.view }

// Cursor is the highlighted row on the current page.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Status() string { return m.status }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case fetchedMsg:
		// A failure shows through the catalog's error banner.
		if msg.err == nil {
			m.status = fmt.Sprintf("Loaded %d products", len(m.sf.Catalog().Items))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		switch m.view {
		case ViewDetail:
			return m.updateDetail(msg)
		case ViewCart:
			return m.updateCart(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.sf.SetSearchQuery(m.search.Value())
		m.cursor = 0
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.sf.Catalog().SearchQuery)
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.sf.Page()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(page.Items)-1 {
			m.cursor++
		}
	case "left", "h":
		if page.HasPrev() {
			m.sf.SetCurrentPage(page.CurrentPage - 1)
			m.cursor = 0
		}
	case "right", "l":
		if page.HasNext() {
			m.sf.SetCurrentPage(page.CurrentPage + 1)
			m.cursor = 0
		}
	case "enter":
		if m.cursor < len(page.Items) {
			m.detail = page.Items[m.cursor]
			m.view = ViewDetail
		}
	case "a":
		if m.cursor < len(page.Items) {
			m.addToCart(page.Items[m.cursor])
		}
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "s":
		m.cyclePreset()
		m.cursor = 0
	case "r":
		m.sf.ResetFilters()
		m.status = "Filters reset"
		m.cursor = 0
	case "c":
		m.view = ViewCart
		m.cartCursor = 0
	case "f":
		if m.sf.Catalog().Status == catalog.StatusFailed {
			m.status = "Retrying..."
			return m, fetchCmd(m.ctx, m.sf)
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		m.view = ViewList
	case "a":
		m.addToCart(m.detail)
	case "c":
		m.view = ViewCart
		m.cartCursor = 0
	}
	return m, nil
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.sf.Cart().Items
	switch msg.String() {
	case "esc", "backspace", "q":
		m.view = ViewList
		return m, nil
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil
	case "down", "j":
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}
		return m, nil
	case "X":
		_, err := m.sf.ClearCart(m.ctx)
		m.report("Cart cleared", err)
		m.cartCursor = 0
		return m, nil
	}
	if m.cartCursor >= len(items) {
		return m, nil
	}
	line := items[m.cartCursor]
	var err error
	switch msg.String() {
	case "+", "=":
		_, err = m.sf.UpdateQuantity(m.ctx, line.ID, line.Quantity+1)
	case "-":
		_, err = m.sf.UpdateQuantity(m.ctx, line.ID, line.Quantity-1)
	case "d", "x":
		_, err = m.sf.RemoveFromCart(m.ctx, line.ID)
	default:
		return m, nil
	}
	m.report("", err)
	if n := len(m.sf.Cart().Items); m.cartCursor >= n && n > 0 {
		m.cartCursor = n - 1
	}
	return m, nil
}

func (m *Model) addToCart(p productEntity.Product) {
	_, err := m.sf.AddProduct(m.ctx, p)
	m.report("Added "+p.Name, err)
}

// report shows err, or ok when the change was saved.
func (m *Model) report(ok string, err error) {
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = ok
}

func (m *Model) cyclePreset() {
	next := filter.Presets[0]
	if p, ok := m.sf.Filters().ActivePreset(); ok {
		for i, candidate := range filter.Presets {
			if candidate.Name == p.Name {
				next = filter.Presets[(i+1)%len(filter.Presets)]
				break
			}
		}
	}
	if _, err := m.sf.ApplySortPreset(next.Name); err == nil {
		m.status = "Sort: " + next.Label
	}
}
