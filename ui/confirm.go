package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shopadmin/admin"
	"shopadmin/store"
)

// confirmOverlay asks before deleting one row.
type confirmOverlay[T store.Keyed] struct {
	deps
	screen  string
	confirm *admin.Confirm[T]
	label   string
	busy    bool
}

func newConfirmOverlay[T store.Keyed](d deps, screen string, c *admin.Confirm[T], row T, label string) *confirmOverlay[T] {
	c.Ask(row)
	return &confirmOverlay[T]{deps: d, screen: screen, confirm: c, label: label}
}

func (o *confirmOverlay[T]) Update(msg tea.Msg) (overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		o.busy = false
		if _, pending := o.confirm.Pending(); !pending {
			return nil, nil
		}
		return o, nil
	case tea.KeyMsg:
		if o.busy {
			return o, nil
		}
		switch {
		case key.Matches(msg, keys.Confirm):
			o.busy = true
			ctx, c := o.ctx, o.confirm
			return o, run(o.screen, func() error { return c.Confirm(ctx) })
		case key.Matches(msg, keys.Close), msg.String() == "n":
			o.confirm.Cancel()
			return nil, nil
		}
	}
	return o, nil
}

func (o *confirmOverlay[T]) View() string {
	var sb strings.Builder
	sb.WriteString(o.styles.Header.Render("Delete "+o.confirm.Kind()) + "\n\n")
	sb.WriteString(fmt.Sprintf("Are you sure you want to delete %s?\n", o.label))
	if o.busy {
		sb.WriteString("\n" + o.styles.Muted.Render("Deleting...") + "\n")
	}
	if err := o.confirm.Err(); err != "" {
		sb.WriteString("\n" + o.styles.Error.Render(err) + "\n")
	}
	sb.WriteString("\n" + o.styles.Muted.Render("[y] delete  [n/esc] cancel"))
	return o.styles.Overlay.Render(sb.String())
}
