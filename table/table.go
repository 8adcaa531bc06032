// Package table is the filter, sort and paginate engine behind every list
// screen. It holds no terminal state; the ui package renders its pages.
package table

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"shopadmin/utils"
)

// SortDir is a column's sort state.
type SortDir int

const (
	Unsorted SortDir = iota
	Ascending
	Descending
)

func (d SortDir) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return ""
	}
}

// Column describes one rendered column.
type Column[T any] struct {
	Title    string
	Width    int
	Value    func(T) string
	Sortable bool
}

// Table filters, sorts and pages a slice of rows.
type Table[T any] struct {
	cols []Column[T]
	rows []T
	view []T

	query   string
	sortCol int
	sortDir SortDir

	pageIndex int
	pageSize  int
}

// New returns an empty table. A non-positive pageSize falls back to the
// first standard size.
func New[T any](cols []Column[T], pageSize int) *Table[T] {
	if pageSize <= 0 {
		pageSize = StandardPageSizes[0]
	}
	return &Table[T]{cols: cols, sortCol: -1, pageSize: pageSize}
}

// Columns returns the column definitions.
func (t *Table[T]) Columns() []Column[T] { return t.cols }

// SetRows replaces the source rows. The filter and sort are reapplied and
// the page index is clamped to the last page.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = append([]T(nil), rows...)
	t.recompute()
	t.clamp()
}

// SetQuery changes the filter text and returns to the first page.
func (t *Table[T]) SetQuery(q string) {
	t.query = q
	t.recompute()
	t.pageIndex = 0
}

// Query returns the filter text.
func (t *Table[T]) Query() string { return t.query }

// ToggleSort cycles column col through ascending, descending and unsorted.
// Other columns lose their sort. Returns false for unsortable columns.
func (t *Table[T]) ToggleSort(col int) bool {
	if col < 0 || col >= len(t.cols) || !t.cols[col].Sortable {
		return false
	}
	switch {
	case t.sortCol != col:
		t.sortCol, t.sortDir = col, Ascending
	case t.sortDir == Ascending:
		t.sortDir = Descending
	default:
		t.sortCol, t.sortDir = -1, Unsorted
	}
	t.recompute()
	return true
}

// Sort returns the sorted column (-1 when unsorted) and its direction.
func (t *Table[T]) Sort() (int, SortDir) { return t.sortCol, t.sortDir }

// Total is the number of source rows.
func (t *Table[T]) Total() int { return len(t.rows) }

// Len is the number of rows passing the filter.
func (t *Table[T]) Len() int { return len(t.view) }

// Rows returns every row passing the filter, in display order.
func (t *Table[T]) Rows() []T { return append([]T{}, t.view...) }

// Cells stringifies row for display.
func (t *Table[T]) Cells(row T) []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Value(row)
	}
	return out
}

// PageSize returns the current page size.
func (t *Table[T]) PageSize() int { return t.pageSize }

// SetPageSize changes the page size, keeping the first visible row on
// screen.
func (t *Table[T]) SetPageSize(n int) {
	if n <= 0 || n == t.pageSize {
		return
	}
	t.pageIndex = t.pageIndex * t.pageSize / n
	t.pageSize = n
	t.clamp()
}

// PageIndex is the 0-based current page.
func (t *Table[T]) PageIndex() int { return t.pageIndex }

// PageCount is ceil(Len/PageSize); zero when nothing matches.
func (t *Table[T]) PageCount() int {
	return (len(t.view) + t.pageSize - 1) / t.pageSize
}

// Page returns the rows on the current page.
func (t *Table[T]) Page() []T {
	start, end := utils.PageBounds(len(t.view), t.pageIndex, t.pageSize)
	return append([]T{}, t.view[start:end]...)
}

func (t *Table[T]) CanPrev() bool { return t.pageIndex > 0 }
func (t *Table[T]) CanNext() bool { return t.pageIndex+1 < t.PageCount() }

// Next advances one page if possible.
func (t *Table[T]) Next() bool {
	if !t.CanNext() {
		return false
	}
	t.pageIndex++
	return true
}

// Prev goes back one page if possible.
func (t *Table[T]) Prev() bool {
	if !t.CanPrev() {
		return false
	}
	t.pageIndex--
	return true
}

// Goto jumps to page i, clamped to the valid range.
func (t *Table[T]) Goto(i int) {
	t.pageIndex = i
	t.clamp()
}

// Pagination summarises the current position with a 1-based page number.
func (t *Table[T]) Pagination() utils.Pagination {
	return *utils.CreatePagination(len(t.view), t.pageIndex+1, t.pageSize)
}

func (t *Table[T]) clamp() {
	last := t.PageCount() - 1
	if last < 0 {
		last = 0
	}
	if t.pageIndex > last {
		t.pageIndex = last
	}
	if t.pageIndex < 0 {
		t.pageIndex = 0
	}
}

func (t *Table[T]) recompute() {
	q := strings.ToLower(strings.TrimSpace(t.query))
	view := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		if q == "" || t.matches(r, q) {
			view = append(view, r)
		}
	}
	if t.sortCol >= 0 && t.sortDir != Unsorted {
		value := t.cols[t.sortCol].Value
		desc := t.sortDir == Descending
		sort.SliceStable(view, func(i, j int) bool {
			c := compare(value(view[i]), value(view[j]))
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	t.view = view
}

func (t *Table[T]) matches(row T, q string) bool {
	for _, c := range t.cols {
		if strings.Contains(strings.ToLower(c.Value(row)), q) {
			return true
		}
	}
	return false
}

// compare orders two cells, numerically when both parse as numbers.
func compare(a, b string) int {
	if da, ok := number(a); ok {
		if db, ok := number(b); ok {
			return da.Cmp(db)
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func number(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "₹"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	return d, err == nil
}
