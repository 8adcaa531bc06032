package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"shopadmin/admin"
	"shopadmin/store"
	"shopadmin/table"
)

// Resources lists the names accepted by RenderPage, in tab order.
var Resources = []string{
	ScreenUsers, ScreenRoles, ScreenCategories, ScreenSubCategories,
	ScreenProducts, ScreenRetailers, ScreenCustomers,
}

// PageOptions select what RenderPage prints.
type PageOptions struct {
	Query string
	// Page is 1-based; out of range values are clamped.
	Page     int
	PageSize int
	// Sort names a column by title. A leading "-" sorts descending.
	Sort string
}

// RenderPage fetches resource and renders one page of it as a plain table,
// with the same columns, search and sort as the dashboard.
func RenderPage(ctx context.Context, c *admin.Console, resource string, opts PageOptions) (string, error) {
	switch resource {
	case ScreenUsers:
		return renderPage(ctx, c.Users, userColumns(), opts)
	case ScreenRoles:
		return renderPage(ctx, c.Roles, roleColumns(), opts)
	case ScreenCategories:
		return renderPage(ctx, c.Categories, categoryColumns(), opts)
	case ScreenSubCategories:
		if _, err := c.Categories.Load(ctx); err != nil {
			return "", fmt.Errorf("load categories: %w", err)
		}
		return renderPage(ctx, c.SubCategories, subCategoryColumns(c), opts)
	case ScreenProducts:
		return renderPage(ctx, c.Products, productColumns(), opts)
	case ScreenRetailers:
		return renderPage(ctx, c.Retailers, retailerColumns(), opts)
	case ScreenCustomers:
		return renderPage(ctx, c.Customers, customerColumns(), opts)
	}
	return "", fmt.Errorf("unknown resource %q (want one of %s)", resource, strings.Join(Resources, ", "))
}

func renderPage[T store.Keyed](ctx context.Context, coll *store.Collection[T], cols []table.Column[T], opts PageOptions) (string, error) {
	items, err := coll.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", coll.Name(), err)
	}
	size := opts.PageSize
	if size <= 0 {
		size = table.StandardPageSizes[0]
	}
	t := table.New(cols, size)
	t.SetRows(items)
	t.SetQuery(opts.Query)

	if opts.Sort != "" {
		name, desc := strings.CutPrefix(opts.Sort, "-")
		col := -1
		for i, c := range cols {
			if strings.EqualFold(c.Title, name) {
				col = i
			}
		}
		if !t.ToggleSort(col) {
			return "", fmt.Errorf("cannot sort by %q", name)
		}
		if desc {
			t.ToggleSort(col)
		}
	}
	t.Goto(opts.Page - 1)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
	}
	page := t.Page()
	rows := make([][]string, len(page))
	for i, r := range page {
		rows[i] = t.Cells(r)
	}
	out := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()

	p := t.Pagination()
	return fmt.Sprintf("%s\nPage %d of %d | %d of %d rows\n", out, p.CurrentPage, max(p.TotalPages, 1), t.Len(), t.Total()), nil
}
