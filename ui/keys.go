package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Filter     key.Binding
	Refresh    key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	PageSize   key.Binding
	SortNext   key.Binding
	Sort       key.Binding
	NextScreen key.Binding
	PrevScreen key.Binding
	Quit       key.Binding
	Close      key.Binding
	Submit     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Confirm    key.Binding
}

var keys = keyMap{
	Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	NextPage:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
	PrevPage:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
	PageSize:   key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "page size")),
	SortNext:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "sort column")),
	Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	NextScreen: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
	PrevScreen: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev screen")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Confirm:    key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
}

// listHelp lists the bindings every table screen understands.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Filter, k.PrevPage, k.NextPage, k.PageSize, k.SortNext, k.Sort, k.Refresh, k.Quit}
}
