package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shopadmin/admin"
	"shopadmin/models"
)

// detailOverlay shows one record fetched fresh on every open.
type detailOverlay[T any] struct {
	deps
	screen string
	title  string
	detail *admin.Detail[T]
	render func(T) [][2]string
}

func newDetailOverlay[T any](d deps, screen, title string, detail *admin.Detail[T], id models.ID, render func(T) [][2]string) (*detailOverlay[T], tea.Cmd) {
	detail.Open(id)
	o := &detailOverlay[T]{deps: d, screen: screen, title: title, detail: detail, render: render}
	ctx := d.ctx
	return o, run(screen, func() error { return detail.Load(ctx) })
}

func (o *detailOverlay[T]) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && (key.Matches(km, keys.Close) || km.String() == "enter") {
		o.detail.Close()
		return nil, nil
	}
	return o, nil
}

func (o *detailOverlay[T]) View() string {
	var sb strings.Builder
	sb.WriteString(o.styles.Header.Render(o.title) + "\n\n")
	switch v, ok := o.detail.Value(); {
	case o.detail.Loading():
		sb.WriteString(o.styles.Muted.Render("Loading...") + "\n")
	case o.detail.Err() != "":
		sb.WriteString(o.styles.Error.Render(o.detail.Err()) + "\n")
	case ok:
		for _, kv := range o.render(v) {
			sb.WriteString(o.styles.Label.Render(kv[0]) + kv[1] + "\n")
		}
	}
	sb.WriteString("\n" + o.styles.Muted.Render("[esc] close"))
	return o.styles.Overlay.Render(sb.String())
}
