package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopadmin/admin"
	"shopadmin/models"
)

// trackingOverlay shows an order's tracking history and appends events.
type trackingOverlay struct {
	deps
	screen  string
	orderID models.ID
	history *admin.Detail[[]models.TrackingEvent]
	modal   *admin.Modal[admin.TrackingForm]

	adding bool
	status int
	notes  textinput.Model
	busy   bool
}

func newTrackingOverlay(d deps, screen string, orderID models.ID) (*trackingOverlay, tea.Cmd) {
	history := d.console.TrackingHistory()
	history.Open(orderID)
	notes := textinput.New()
	notes.Placeholder = "Notes (optional)"
	notes.CharLimit = 200
	notes.Width = 40
	o := &trackingOverlay{
		deps:    d,
		screen:  screen,
		orderID: orderID,
		history: history,
		modal:   d.console.AddTrackingModal(history),
		notes:   notes,
	}
	ctx := d.ctx
	return o, run(screen, func() error { return history.Load(ctx) })
}

func (o *trackingOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		o.busy = false
		if o.adding && !o.modal.IsOpen() {
			o.adding = false
			o.notes.Blur()
		}
		return o, nil
	case tea.KeyMsg:
		if o.busy {
			return o, nil
		}
		if !o.adding {
			switch {
			case key.Matches(msg, keys.Close):
				o.history.Close()
				return nil, nil
			case msg.String() == "a":
				o.adding = true
				o.status = 0
				o.notes.SetValue("")
				o.modal.Open(admin.TrackingForm{Status: models.TrackingStatuses[0]})
				return o, o.notes.Focus()
			}
			return o, nil
		}
		switch {
		case key.Matches(msg, keys.Close):
			o.adding = false
			o.notes.Blur()
			o.modal.Close()
			return o, nil
		case msg.String() == "ctrl+n" || msg.String() == "down":
			o.status = (o.status + 1) % len(models.TrackingStatuses)
			return o, nil
		case msg.String() == "ctrl+p" || msg.String() == "up":
			o.status = (o.status - 1 + len(models.TrackingStatuses)) % len(models.TrackingStatuses)
			return o, nil
		case msg.String() == "enter" || key.Matches(msg, keys.Submit):
			o.busy = true
			o.modal.SetForm(admin.TrackingForm{
				Status: models.TrackingStatuses[o.status],
				Notes:  strings.TrimSpace(o.notes.Value()),
			})
			ctx, m := o.ctx, o.modal
			return o, run(o.screen, func() error { return m.Submit(ctx) })
		}
		var cmd tea.Cmd
		o.notes, cmd = o.notes.Update(msg)
		return o, cmd
	}
	return o, nil
}

func (o *trackingOverlay) View() string {
	var sb strings.Builder
	sb.WriteString(o.styles.Header.Render("Tracking: "+o.orderID.String()) + "\n\n")

	events, ok := o.history.Value()
	switch {
	case o.history.Loading():
		sb.WriteString(o.styles.Muted.Render("Loading...") + "\n")
	case o.history.Err() != "":
		sb.WriteString(o.styles.Error.Render(o.history.Err()) + "\n")
	case ok && len(events) == 0:
		sb.WriteString(o.styles.Muted.Render("No tracking updates yet.") + "\n")
	case ok:
		for _, e := range events {
			line := o.styles.Label.Render(e.UpdateTime.String()) + e.Status
			if e.Notes != "" {
				line += o.styles.Muted.Render("  " + e.Notes)
			}
			sb.WriteString(line + "\n")
		}
	}

	if o.adding {
		sb.WriteString("\n" + o.styles.Header.Render("Add update") + "\n")
		sb.WriteString(o.styles.Label.Render("Status") + models.TrackingStatuses[o.status] + o.styles.Muted.Render("  [↑/↓]") + "\n")
		sb.WriteString(o.styles.Label.Render("Notes") + o.notes.View() + "\n")
		if msg, ok := o.modal.FieldErrors()["status"]; ok {
			sb.WriteString(o.styles.Error.Render(msg) + "\n")
		}
		if err := o.modal.Err(); err != "" {
			sb.WriteString(o.styles.Error.Render(err) + "\n")
		}
		sb.WriteString("\n" + o.styles.Muted.Render("[enter] save  [esc] back"))
	} else {
		sb.WriteString("\n" + o.styles.Muted.Render("[a] add update  [esc] close"))
	}
	return o.styles.Overlay.Render(sb.String())
}
