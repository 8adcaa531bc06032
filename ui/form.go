package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopadmin/admin"
	"shopadmin/utils"
)

// field binds one text input to a form struct field.
type field[F any] struct {
	name     string // JSON name, matches admin.ValidationError keys
	label    string
	secret   bool
	readOnly bool
	hint     func() string
	options  func() []string
	get      func(F) string
	set      func(*F, string)
}

// formOverlay edits a form and submits it through an admin.Modal.
type formOverlay[F any] struct {
	deps
	screen string
	title  string
	modal  *admin.Modal[F]
	fields []field[F]
	inputs []textinput.Model
	focus  int
	busy   bool
}

func newFormOverlay[F any](d deps, screen, title string, modal *admin.Modal[F], seed F, fields []field[F]) (*formOverlay[F], tea.Cmd) {
	modal.Open(seed)
	o := &formOverlay[F]{deps: d, screen: screen, title: title, modal: modal, fields: fields}
	for _, f := range fields {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 36
		ti.Prompt = ""
		ti.SetValue(f.get(seed))
		if f.secret {
			ti.EchoMode = textinput.EchoPassword
		}
		if f.options != nil {
			ti.ShowSuggestions = true
			ti.SetSuggestions(f.options())
		}
		o.inputs = append(o.inputs, ti)
	}
	o.focus = -1
	return o, o.move(1)
}

// move shifts focus by delta, skipping read-only fields.
func (o *formOverlay[F]) move(delta int) tea.Cmd {
	if o.focus >= 0 && o.focus < len(o.inputs) {
		o.inputs[o.focus].Blur()
	}
	for i := 0; i < len(o.fields); i++ {
		o.focus = (o.focus + delta + len(o.fields)) % len(o.fields)
		if !o.fields[o.focus].readOnly {
			break
		}
	}
	return o.inputs[o.focus].Focus()
}

func (o *formOverlay[F]) form() F {
	f := o.modal.Form()
	for i, fd := range o.fields {
		if !fd.readOnly {
			fd.set(&f, strings.TrimSpace(o.inputs[i].Value()))
		}
	}
	return f
}

func (o *formOverlay[F]) submit() tea.Cmd {
	o.busy = true
	o.modal.SetForm(o.form())
	ctx, modal := o.ctx, o.modal
	return run(o.screen, func() error { return modal.Submit(ctx) })
}

func (o *formOverlay[F]) Update(msg tea.Msg) (overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		o.busy = false
		if !o.modal.IsOpen() {
			return nil, nil
		}
		return o, nil
	case tea.KeyMsg:
		if o.busy {
			return o, nil
		}
		switch {
		case key.Matches(msg, keys.Close):
			o.modal.Close()
			return nil, nil
		case key.Matches(msg, keys.Submit):
			return o, o.submit()
		case msg.String() == "enter":
			if o.focus == o.lastEditable() {
				return o, o.submit()
			}
			return o, o.move(1)
		case key.Matches(msg, keys.NextField):
			return o, o.move(1)
		case key.Matches(msg, keys.PrevField):
			return o, o.move(-1)
		}
		var cmd tea.Cmd
		o.inputs[o.focus], cmd = o.inputs[o.focus].Update(msg)
		return o, cmd
	}
	return o, nil
}

func (o *formOverlay[F]) lastEditable() int {
	for i := len(o.fields) - 1; i >= 0; i-- {
		if !o.fields[i].readOnly {
			return i
		}
	}
	return 0
}

func (o *formOverlay[F]) View() string {
	var sb strings.Builder
	sb.WriteString(o.styles.Header.Render(o.title) + "\n\n")

	fieldErrs := o.modal.FieldErrors()
	for i, f := range o.fields {
		label := f.label
		if i == o.focus {
			label = "> " + label
		}
		value := o.inputs[i].View()
		if f.readOnly {
			value = o.styles.Muted.Render(o.inputs[i].Value())
		}
		sb.WriteString(o.styles.Label.Render(label) + value + "\n")
		if f.hint != nil {
			if h := f.hint(); h != "" {
				sb.WriteString(o.styles.Muted.Render(strings.Repeat(" ", 20)+utils.Truncate(h, 60)) + "\n")
			}
		}
		if msg, ok := fieldErrs[f.name]; ok {
			sb.WriteString(o.styles.Error.Render(strings.Repeat(" ", 20)+msg) + "\n")
		}
	}

	if o.busy {
		sb.WriteString("\n" + o.styles.Muted.Render("Saving...") + "\n")
	}
	if err := o.modal.Err(); err != "" {
		sb.WriteString("\n" + o.styles.Error.Render(err) + "\n")
	}
	sb.WriteString("\n" + o.styles.Muted.Render("[enter] next/save  [ctrl+s] save  [esc] cancel"))
	return o.styles.Overlay.Render(sb.String())
}
