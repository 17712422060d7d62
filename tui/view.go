package tui

import (
	"fmt"
	"strings"

	"storefront/store/catalog"
)

func (m Model) header() string {
	c := m.sf.Cart()
	return m.styles.Header.Render(fmt.Sprintf("Storefront  ·  cart %d item(s)  %s", c.Count(), m.money.Price(c.Total)))
}

func (m Model) footer(help string) string {
	var sb strings.Builder
	if m.status != "" {
		if strings.HasPrefix(m.status, "Error") {
			sb.WriteString(m.styles.Error.Render(m.status))
		} else {
			sb.WriteString(m.styles.Status.Render(m.status))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render(help))
	return sb.String()
}

func (m Model) listView() string {
	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n\n")

	c := m.sf.Catalog()
	if m.searching {
		sb.WriteString("Search: " + m.search.View() + "\n\n")
	} else if c.SearchQuery != "" {
		sb.WriteString(m.styles.Muted.Render("Search: "+c.SearchQuery) + "\n\n")
	}

	switch c.Status {
	case catalog.StatusIdle, catalog.StatusLoading:
		sb.WriteString("Loading...\n")
	case catalog.StatusFailed:
		sb.WriteString(m.styles.Error.Render("Error: "+c.Error) + "\n")
	}

	page := m.sf.Page()
	for i, p := range page.Items {
		line := fmt.Sprintf("%-32s %-12s %s", truncate(p.Name, 32), truncate(p.Brand, 12), m.styles.Price.Render(m.money.Price(p.Price)))
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	if c.Status == catalog.StatusSucceeded && len(page.Items) == 0 {
		sb.WriteString(m.styles.Muted.Render("No products match.") + "\n")
	}

	f := m.sf.Filters()
	sort := "none"
	if p, ok := f.ActivePreset(); ok {
		sort = p.Label
	}
	sb.WriteString(fmt.Sprintf("\nPage %d/%d  ·  %d product(s)  ·  sort: %s\n\n", page.CurrentPage, page.TotalPages, page.TotalItems, sort))
	sb.WriteString(m.footer("↑/↓ move · ←/→ page · enter details · a add · / search · s sort · r reset · c cart · q quit"))
	return sb.String()
}

func (m Model) detailView() string {
	p := m.detail
	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Title.Render(p.Name) + "\n")
	sb.WriteString(m.styles.Price.Render(m.money.Price(p.Price)) + "\n\n")
	sb.WriteString(fmt.Sprintf("Brand: %s\nModel: %s\n\n", p.Brand, p.Model))
	sb.WriteString(p.Description + "\n\n")
	sb.WriteString(m.footer("a add to cart · c cart · esc back"))
	return sb.String()
}

func (m Model) cartView() string {
	c := m.sf.Cart()
	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Title.Render("Cart") + "\n")
	if len(c.Items) == 0 {
		sb.WriteString(m.styles.Muted.Render("Your cart is empty.") + "\n")
	}
	for i, l := range c.Items {
		line := fmt.Sprintf("%-32s x%-3d %s", truncate(l.Name, 32), l.Quantity, m.money.Price(l.Subtotal()))
		if i == m.cartCursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nTotal: " + m.styles.Price.Render(m.money.Price(c.Total)) + "\n\n")
	sb.WriteString(m.footer("↑/↓ move · +/- quantity · d remove · X clear · esc back"))
	return sb.String()
}

func truncate(s string, l int) string {
	r := []rune(s)
	if len(r) > l {
		return string(r[:l-3]) + "..."
	}
	return s
}
