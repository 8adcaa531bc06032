package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"shopadmin/admin"
	"shopadmin/models"
)

// nestedOverlay shows an owner's orders or products. For orders, [t]
// opens the tracking history of the selected order.
type nestedOverlay[T any] struct {
	deps
	screen  string
	title   string
	headers []string
	cells   func(T) []string
	orderID func(T) models.ID

	loading bool
	view    admin.NestedView[T]
	cursor  int
	child   overlay
}

func newNestedOverlay[T any](
	d deps,
	screen, title string,
	id models.ID,
	fetch func(context.Context, models.ID) (admin.NestedView[T], error),
	headers []string,
	cells func(T) []string,
) (*nestedOverlay[T], tea.Cmd) {
	o := &nestedOverlay[T]{deps: d, screen: screen, title: title, headers: headers, cells: cells, loading: true}
	o.view.OwnerID = id
	ctx := d.ctx
	return o, func() tea.Msg {
		v, err := fetch(ctx, id)
		return viewMsg[admin.NestedView[T]]{screen: screen, view: v, err: err}
	}
}

func (o *nestedOverlay[T]) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if m, ok := msg.(viewMsg[admin.NestedView[T]]); ok {
		o.loading = false
		o.view = m.view
		o.cursor = 0
		return o, nil
	}
	if o.child != nil {
		var cmd tea.Cmd
		o.child, cmd = o.child.Update(msg)
		return o, cmd
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch {
	case key.Matches(km, keys.Close):
		return nil, nil
	case km.String() == "down" || km.String() == "j":
		if o.cursor < len(o.view.Items)-1 {
			o.cursor++
		}
	case km.String() == "up" || km.String() == "k":
		if o.cursor > 0 {
			o.cursor--
		}
	case km.String() == "t" && o.orderID != nil && len(o.view.Items) > 0:
		var cmd tea.Cmd
		o.child, cmd = newTrackingOverlay(o.deps, o.screen, o.orderID(o.view.Items[o.cursor]))
		return o, cmd
	}
	return o, nil
}

func (o *nestedOverlay[T]) View() string {
	if o.child != nil {
		return o.child.View()
	}
	var sb strings.Builder
	sb.WriteString(o.styles.Header.Render(fmt.Sprintf("%s: %s", o.title, o.view.OwnerName)) + "\n\n")

	switch {
	case o.loading:
		sb.WriteString(o.styles.Muted.Render("Loading...") + "\n")
	case o.view.Err != "":
		sb.WriteString(o.styles.Error.Render(o.view.Err) + "\n")
	case len(o.view.Items) == 0:
		sb.WriteString(o.styles.Muted.Render("Nothing to show.") + "\n")
	default:
		rows := make([][]string, len(o.view.Items))
		for i, it := range o.view.Items {
			rows[i] = o.cells(it)
		}
		cursor := o.cursor
		t := ltable.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(Border)).
			Headers(o.headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == ltable.HeaderRow:
					return o.styles.Header.Padding(0, 1)
				case row == cursor:
					return lipgloss.NewStyle().Foreground(Primary).Padding(0, 1)
				default:
					return lipgloss.NewStyle().Padding(0, 1)
				}
			})
		sb.WriteString(t.String() + "\n")
	}

	hint := "[↑/↓] move  [esc] close"
	if o.orderID != nil {
		hint = "[↑/↓] move  [t] tracking  [esc] close"
	}
	sb.WriteString("\n" + o.styles.Muted.Render(hint))
	return o.styles.Overlay.Render(sb.String())
}

func orderCells(o models.Order) []string {
	return []string{
		o.OrderID.String(),
		strings.TrimSpace(o.FirstName + " " + o.LastName),
		o.TotalAmount.String(),
		o.PaymentStatus,
		o.OrderStatus,
		o.CreatedAt.String(),
	}
}

var orderHeaders = []string{"Order", "Customer", "Total", "Payment", "Status", "Placed"}

func newRetailerOrdersOverlay(d deps, screen string, id models.ID) (overlay, tea.Cmd) {
	o, cmd := newNestedOverlay(d, screen, "Orders", id, d.console.RetailerOrders, orderHeaders, orderCells)
	o.orderID = func(ord models.Order) models.ID { return ord.OrderID }
	return o, cmd
}

func newRetailerProductsOverlay(d deps, screen string, id models.ID) (overlay, tea.Cmd) {
	return newNestedOverlay(d, screen, "Products", id, d.console.RetailerProducts,
		[]string{"Product", "Name", "Brand", "Price", "Qty"},
		func(p models.Product) []string {
			return []string{p.ProductID.String(), p.ProductName, p.Brand, p.Price.String(), fmt.Sprint(p.Quantity)}
		})
}

func newCustomerOrdersOverlay(d deps, screen string, id models.ID) (overlay, tea.Cmd) {
	o, cmd := newNestedOverlay(d, screen, "Orders", id, d.console.CustomerOrders, orderHeaders, orderCells)
	o.orderID = func(ord models.Order) models.ID { return ord.OrderID }
	return o, cmd
}
