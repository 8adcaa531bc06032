package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"shopadmin/admin"
	"shopadmin/store"
	"shopadmin/table"
)

// tableChrome is the height of the table header and its rule.
const tableChrome = 2

// action is a per-screen key bound to the selected row.
type action[T store.Keyed] struct {
	binding key.Binding
	// needsRow skips the action when the page is empty.
	needsRow bool
	run      func(row T) (overlay, tea.Cmd)
}

// listScreen is a searchable, sortable, pageable view of one collection.
type listScreen[T store.Keyed] struct {
	deps
	id    string
	title string

	coll    *store.Collection[T]
	engine  *table.Table[T]
	view    btable.Model
	filter  textinput.Model
	help    help.Model
	sizes   []int
	actions []action[T]

	filtering  bool
	seq        int
	sortCursor int
	loading    bool
	started    bool
	// inlineErrors shows load failures under the table; other screens only
	// log them.
	inlineErrors bool
	err          string
	version      uint64

	// preload runs before each fetch, for lookups the columns depend on.
	preload func(ctx context.Context) error

	overlay overlay
	width   int
	height  int
}

func newListScreen[T store.Keyed](d deps, id, title string, coll *store.Collection[T], cols []table.Column[T], sizes []int) *listScreen[T] {
	fi := textinput.New()
	fi.Placeholder = "Search..."
	fi.CharLimit = 64
	fi.Width = 40

	v := btable.New(btable.WithFocused(true), btable.WithHeight(sizes[0]+tableChrome))
	v.SetStyles(d.styles.Table)

	s := &listScreen[T]{
		deps:   d,
		id:     id,
		title:  title,
		coll:   coll,
		engine: table.New(cols, sizes[0]),
		view:   v,
		filter: fi,
		help:   help.New(),
		sizes:  sizes,
	}
	s.renderColumns()
	return s
}

func (s *listScreen[T]) Title() string { return s.title }

// Capturing reports whether keystrokes belong to the screen rather than
// the app's navigation.
func (s *listScreen[T]) Capturing() bool { return s.filtering || s.overlay != nil }

// Init fetches the collection the first time the screen is shown.
func (s *listScreen[T]) Init() tea.Cmd {
	if s.started {
		s.sync()
		return nil
	}
	s.started = true
	return s.load(false)
}

func (s *listScreen[T]) load(force bool) tea.Cmd {
	s.loading = true
	ctx, coll, id, preload, log := s.ctx, s.coll, s.id, s.preload, s.log
	return func() tea.Msg {
		if preload != nil {
			if err := preload(ctx); err != nil {
				log.Warn("preload failed", zap.String("screen", id), zap.Error(err))
			}
		}
		var err error
		if force {
			_, err = coll.Refresh(ctx)
		} else {
			_, err = coll.Load(ctx)
		}
		return loadedMsg{screen: id, err: err}
	}
}

func (s *listScreen[T]) SetSize(w, h int) {
	s.width, s.height = w, h
	s.view.SetWidth(w - 4)
}

func (s *listScreen[T]) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.err = ""
		if msg.err != nil {
			s.log.Warn("load failed", zap.String("screen", s.id), zap.Error(msg.err))
			if s.inlineErrors {
				s.err = fmt.Sprintf("Failed to load %s.", strings.ToLower(s.title))
			}
		}
		s.sync()
		return nil

	case searchTickMsg:
		if msg.seq == s.seq {
			s.engine.SetQuery(s.filter.Value())
			s.renderRows()
		}
		return nil
	}

	if r, ok := msg.(resultMsg); ok && s.overlay == nil {
		// A background write with no dialog open, such as a status toggle.
		if r.err != nil && s.inlineErrors {
			s.err = admin.Message(r.err, "Failed to update status.")
		}
		s.sync()
		return nil
	}

	if s.overlay != nil {
		s.overlay, cmd = s.overlay.Update(msg)
		s.sync()
		return cmd
	}

	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return nil
	}

	if s.filtering {
		switch km.String() {
		case "esc", "enter":
			s.filtering = false
			s.filter.Blur()
			return nil
		}
		s.filter, cmd = s.filter.Update(km)
		s.seq++
		return tea.Batch(cmd, debounceSearch(s.id, s.seq, s.debounce))
	}

	switch {
	case key.Matches(km, keys.Filter):
		s.filtering = true
		return s.filter.Focus()
	case key.Matches(km, keys.Refresh):
		return s.load(true)
	case key.Matches(km, keys.NextPage):
		if s.engine.Next() {
			s.renderRows()
		}
		return nil
	case key.Matches(km, keys.PrevPage):
		if s.engine.Prev() {
			s.renderRows()
		}
		return nil
	case key.Matches(km, keys.PageSize):
		s.engine.SetPageSize(table.NextPageSize(s.sizes, s.engine.PageSize()))
		s.view.SetHeight(s.engine.PageSize() + tableChrome)
		s.renderRows()
		return nil
	case key.Matches(km, keys.SortNext):
		s.nextSortColumn()
		s.renderColumns()
		return nil
	case key.Matches(km, keys.Sort):
		s.engine.ToggleSort(s.sortCursor)
		s.renderColumns()
		s.renderRows()
		return nil
	}

	for _, a := range s.actions {
		if !key.Matches(km, a.binding) {
			continue
		}
		row, ok := s.selected()
		if a.needsRow && !ok {
			return nil
		}
		s.overlay, cmd = a.run(row)
		s.sync()
		return cmd
	}

	s.view, cmd = s.view.Update(km)
	return cmd
}

// selected returns the row under the cursor.
func (s *listScreen[T]) selected() (T, bool) {
	page := s.engine.Page()
	i := s.view.Cursor()
	if i < 0 || i >= len(page) {
		var zero T
		return zero, false
	}
	return page[i], true
}

func (s *listScreen[T]) nextSortColumn() {
	cols := s.engine.Columns()
	for i := 1; i <= len(cols); i++ {
		c := (s.sortCursor + i) % len(cols)
		if cols[c].Sortable {
			s.sortCursor = c
			return
		}
	}
}

// sync pulls the collection into the table when it changed.
func (s *listScreen[T]) sync() {
	if v := s.coll.Version(); v != s.version {
		s.version = v
		s.engine.SetRows(s.coll.Items())
		s.renderRows()
	}
}

func (s *listScreen[T]) renderColumns() {
	col, dir := s.engine.Sort()
	cols := s.engine.Columns()
	out := make([]btable.Column, len(cols))
	for i, c := range cols {
		title := c.Title
		if i == col {
			if dir == table.Ascending {
				title += " ▲"
			} else {
				title += " ▼"
			}
		} else if i == s.sortCursor && c.Sortable {
			title += " ·"
		}
		out[i] = btable.Column{Title: title, Width: c.Width}
	}
	// Rows must be cleared first so they never have more cells than columns.
	s.view.SetRows(nil)
	s.view.SetColumns(out)
	s.renderRows()
}

func (s *listScreen[T]) renderRows() {
	page := s.engine.Page()
	rows := make([]btable.Row, len(page))
	for i, r := range page {
		rows[i] = s.engine.Cells(r)
	}
	s.view.SetRows(rows)
	if s.view.Cursor() >= len(rows) {
		s.view.SetCursor(max(len(rows)-1, 0))
	}
}

func (s *listScreen[T]) View() string {
	var sb strings.Builder

	sb.WriteString(s.styles.Header.Render(" "+s.title+" ") + "\n\n")

	filterStyle := s.styles.Filter
	if s.filtering {
		filterStyle = filterStyle.BorderForeground(Primary)
	}
	sb.WriteString(filterStyle.Render(s.filter.View()) + "\n")

	switch {
	case s.loading && !s.coll.Loaded():
		sb.WriteString(s.styles.Muted.Render("Loading...") + "\n")
	case s.engine.Len() == 0:
		sb.WriteString(s.styles.Muted.Render("No records found.") + "\n")
	default:
		sb.WriteString(s.styles.Content.Render(s.view.View()) + "\n")
	}

	p := s.engine.Pagination()
	status := fmt.Sprintf("Page %d of %d | %d rows | %d per page", p.CurrentPage, max(p.TotalPages, 1), p.TotalItems, p.PageSize)
	if s.engine.Len() != s.engine.Total() {
		status += fmt.Sprintf(" | showing %d of %d", s.engine.Len(), s.engine.Total())
	}
	sb.WriteString(s.styles.Muted.Render(status) + "\n")

	if s.err != "" {
		sb.WriteString(s.styles.Error.Render(s.err) + "\n")
	}

	bindings := keys.listHelp()
	for _, a := range s.actions {
		bindings = append(bindings, a.binding)
	}
	sb.WriteString(s.help.ShortHelpView(bindings))

	if s.overlay != nil {
		if s.width > 0 && s.height > 0 {
			return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, s.overlay.View())
		}
		return s.overlay.View()
	}
	return sb.String()
}
