package admin

import (
	"errors"
	"sort"
	"strings"

	"shopadmin/api"
)

var (
	// ErrModalClosed is returned when acting on a modal that is not open.
	ErrModalClosed = errors.New("modal is not open")
	// ErrBusy is returned when a submit is already in flight.
	ErrBusy = errors.New("request already in progress")
	// ErrNoRoleSelected is returned when assigning without picking a role.
	ErrNoRoleSelected = errors.New("no role selected")
	// ErrNotLoaded is returned when an action needs a collection that has
	// not been fetched yet.
	ErrNotLoaded = errors.New("collection not loaded")
	// ErrUnknownID is returned when an id is not in the cached collection.
	ErrUnknownID = errors.New("unknown id")
	// ErrStale is returned when a detail view was closed or reopened while
	// its fetch was in flight. The result is discarded.
	ErrStale = errors.New("stale result discarded")
)

// ValidationError maps form fields to messages. It is produced before any
// network call, and also by server-side existence checks.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid " + strings.Join(names, ", ")
}

// BusinessError is a refusal the backend reported inside a 2xx response,
// such as "User already exists".
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

// Message turns err into the text shown to the operator. Validation and
// business errors, and server-reported messages, are shown as-is; anything
// else becomes fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return "Please correct the highlighted fields."
	}
	var berr *BusinessError
	if errors.As(err, &berr) && berr.Message != "" {
		return berr.Message
	}
	if msg, ok := api.ServerMessage(err); ok {
		return msg
	}
	return fallback
}
