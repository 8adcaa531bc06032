package admin

import (
	"context"
	"sync"

	"shopadmin/models"
	"shopadmin/store"
)

// DeleteFunc removes one entity on the backend.
type DeleteFunc func(ctx context.Context, id models.ID) error

// Confirm is a delete confirmation. Nothing is deleted until Confirm is
// called; on success exactly the matching id leaves the collection.
type Confirm[T store.Keyed] struct {
	mu      sync.Mutex
	target  T
	pending bool
	busy    bool
	err     string

	kind string
	del  DeleteFunc
	coll *store.Collection[T]
}

// NewConfirm returns a confirmation for kind ("User", "Role", ...).
func NewConfirm[T store.Keyed](kind string, coll *store.Collection[T], del DeleteFunc) *Confirm[T] {
	return &Confirm[T]{kind: kind, coll: coll, del: del}
}

// Ask opens the confirmation for target.
func (c *Confirm[T]) Ask(target T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
	c.pending = true
	c.err = ""
}

// Cancel closes the confirmation without deleting anything.
func (c *Confirm[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.target = zero
	c.pending = false
	c.err = ""
}

// Pending returns the entity awaiting confirmation.
func (c *Confirm[T]) Pending() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target, c.pending
}

func (c *Confirm[T]) Kind() string { return c.kind }

func (c *Confirm[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Confirm deletes the pending entity.
func (c *Confirm[T]) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		return ErrModalClosed
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	id := c.target.Key()
	c.busy = true
	c.err = ""
	c.mu.Unlock()

	err := c.del(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		c.err = Message(err, "Failed to delete "+c.kind)
		return err
	}
	c.coll.Remove(id)
	var zero T
	c.target = zero
	c.pending = false
	return nil
}
