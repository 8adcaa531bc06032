package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shopadmin/admin"
	"shopadmin/models"
)

// roleOverlay picks a role with ←/→ and assigns it.
type roleOverlay struct {
	deps
	screen string
	user   models.AdminUser
	assign *admin.RoleAssignment
	cursor int
	busy   bool
}

func newRoleOverlay(d deps, screen string, user models.AdminUser) (*roleOverlay, tea.Cmd) {
	a := d.console.NewRoleAssignment()
	a.Open(user.UserID)
	o := &roleOverlay{deps: d, screen: screen, user: user, assign: a, cursor: -1}
	roles := d.console.Roles
	ctx := d.ctx
	return o, run(screen, func() error {
		_, err := roles.Load(ctx)
		return err
	})
}

func (o *roleOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		o.busy = false
		if o.assign.State() == admin.AssignClosed {
			return nil, nil
		}
		return o, nil
	case tea.KeyMsg:
		if o.busy {
			return o, nil
		}
		options := o.assign.Options()
		switch {
		case key.Matches(msg, keys.Close):
			o.assign.Close()
			return nil, nil
		case key.Matches(msg, keys.NextPage), key.Matches(msg, keys.NextField):
			if len(options) > 0 {
				o.cursor = (o.cursor + 1) % len(options)
				o.assign.Select(options[o.cursor])
			}
		case key.Matches(msg, keys.PrevPage), key.Matches(msg, keys.PrevField):
			if len(options) > 0 {
				o.cursor = (o.cursor - 1 + len(options)) % len(options)
				o.assign.Select(options[o.cursor])
			}
		case msg.String() == "enter":
			o.busy = true
			ctx, a := o.ctx, o.assign
			return o, run(o.screen, func() error { return a.Submit(ctx) })
		}
	}
	return o, nil
}

func (o *roleOverlay) View() string {
	var sb strings.Builder
	sb.WriteString(o.styles.Header.Render("Assign Role") + "\n\n")
	sb.WriteString(o.styles.Label.Render("User") + o.user.UserName + " (" + o.user.UserID.String() + ")\n")
	if cur, ok := o.console.Users.Get(o.user.UserID); ok && cur.Roles != "" {
		sb.WriteString(o.styles.Label.Render("Current roles") + cur.Roles + "\n")
	}
	sb.WriteString("\n")

	options := o.assign.Options()
	if len(options) == 0 {
		sb.WriteString(o.styles.Muted.Render("Loading roles...") + "\n")
	}
	selected := o.assign.Role()
	for _, name := range options {
		if name == selected {
			sb.WriteString(o.styles.Success.Render("● "+name) + "\n")
		} else {
			sb.WriteString(o.styles.Muted.Render("○ "+name) + "\n")
		}
	}
	if err := o.assign.Err(); err != "" {
		sb.WriteString("\n" + o.styles.Error.Render(err) + "\n")
	}
	sb.WriteString("\n" + o.styles.Muted.Render("[←/→] choose  [enter] assign  [esc] cancel"))
	return o.styles.Overlay.Render(sb.String())
}
