package admin

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"shopadmin/models"
	"shopadmin/utils"
)

// AssignState is the role assignment dialog's state.
type AssignState int

const (
	AssignClosed AssignState = iota
	AssignOpen
	AssignSelected
	AssignSubmitting
)

// RoleAssignment grants a role to one admin user. Submit appends the role
// to the cached user immediately and rolls the append back if the write
// fails.
type RoleAssignment struct {
	mu     sync.Mutex
	state  AssignState
	userID models.ID
	role   string
	err    string

	console *Console
}

// NewRoleAssignment returns a closed dialog.
func (c *Console) NewRoleAssignment() *RoleAssignment {
	return &RoleAssignment{console: c}
}

// Open starts assigning a role to userID.
func (r *RoleAssignment) Open(userID models.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = AssignOpen
	r.userID = userID
	r.role = ""
	r.err = ""
}

// Close abandons the dialog.
func (r *RoleAssignment) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = AssignClosed
	r.userID = ""
	r.role = ""
	r.err = ""
}

// Select picks role; an empty name returns the dialog to AssignOpen.
func (r *RoleAssignment) Select(role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == AssignClosed || r.state == AssignSubmitting {
		return
	}
	r.role = role
	r.err = ""
	if role == "" {
		r.state = AssignOpen
		return
	}
	r.state = AssignSelected
}

func (r *RoleAssignment) State() AssignState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *RoleAssignment) UserID() models.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.userID
}

func (r *RoleAssignment) Role() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.role
}

func (r *RoleAssignment) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Options lists the role names that can be picked.
func (r *RoleAssignment) Options() []string {
	roles := r.console.Roles.Items()
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, role.RoleName)
	}
	return out
}

// Submit assigns the selected role.
func (r *RoleAssignment) Submit(ctx context.Context) error {
	r.mu.Lock()
	switch r.state {
	case AssignClosed:
		r.mu.Unlock()
		return ErrModalClosed
	case AssignSubmitting:
		r.mu.Unlock()
		return ErrBusy
	case AssignOpen:
		r.err = "Please select a role"
		r.mu.Unlock()
		return ErrNoRoleSelected
	}
	userID, role := r.userID, r.role
	r.state = AssignSubmitting
	r.err = ""
	r.mu.Unlock()

	c := r.console
	var before, after string
	c.Users.Update(userID, func(u *models.AdminUser) {
		before = u.Roles
		u.Roles = utils.AppendRole(u.Roles, role)
		after = u.Roles
	})

	err := c.api.AssignRole(ctx, userID, role)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		c.log.Warn("assign role failed, rolling back",
			zap.Stringer("user_id", userID), zap.String("role", role), zap.Error(err))
		c.Users.Update(userID, func(u *models.AdminUser) {
			if u.Roles == after {
				u.Roles = before
			}
		})
		r.state = AssignSelected
		r.err = Message(err, "Failed to assign role")
		return err
	}
	r.state = AssignClosed
	r.userID = ""
	r.role = ""
	return nil
}
