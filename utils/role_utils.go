package utils

import (
	"strings"
)

// RoleSeparator joins role names in the admin users table.
const RoleSeparator = ", "

// Account statuses understood by the admin backends.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// SplitRoles turns a comma-joined role string into its names, dropping blanks.
func SplitRoles(roles string) []string {
	var out []string
	for _, r := range strings.Split(roles, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

// JoinRoles is the inverse of SplitRoles.
func JoinRoles(roles []string) string {
	return strings.Join(roles, RoleSeparator)
}

// HasRole reports whether roles contains role, ignoring case.
func HasRole(roles, role string) bool {
	for _, r := range SplitRoles(roles) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// AppendRole adds role to the comma-joined list unless it is already present.
func AppendRole(roles, role string) string {
	role = strings.TrimSpace(role)
	if role == "" || HasRole(roles, role) {
		return roles
	}
	return JoinRoles(append(SplitRoles(roles), role))
}

// ToggleStatus returns the opposite account status. Anything that is not
// Active is treated as Inactive.
func ToggleStatus(status string) string {
	if status == StatusActive {
		return StatusInactive
	}
	return StatusActive
}
