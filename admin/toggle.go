package admin

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shopadmin/models"
	"shopadmin/store"
	"shopadmin/utils"
)

// StatusWriter persists a status change.
type StatusWriter func(ctx context.Context, id models.ID, status string) error

// Toggle is an optimistic status flip that has been applied locally but not
// yet written.
type Toggle struct {
	ID   models.ID
	Prev string
	Next string

	write  StatusWriter
	revert func()
	after  func(ctx context.Context)
	log    *zap.Logger
}

// Commit writes the new status. On failure the local flip is reverted and
// the error returned.
func (t *Toggle) Commit(ctx context.Context) error {
	if err := t.write(ctx, t.ID, t.Next); err != nil {
		t.log.Warn("status update failed, reverting",
			zap.Stringer("id", t.ID), zap.String("status", t.Next), zap.Error(err))
		t.revert()
		return err
	}
	if t.after != nil {
		t.after(ctx)
	}
	return nil
}

// beginToggle flips the status of id in coll immediately.
func beginToggle[T store.Keyed](
	coll *store.Collection[T],
	id models.ID,
	status func(*T) *string,
	write StatusWriter,
	log *zap.Logger,
) (*Toggle, error) {
	var prev, next string
	ok := coll.Update(id, func(item *T) {
		s := status(item)
		prev = *s
		next = utils.ToggleStatus(prev)
		*s = next
	})
	if !ok {
		return nil, fmt.Errorf("toggle %s %s: %w", coll.Name(), id, ErrUnknownID)
	}
	return &Toggle{
		ID:    id,
		Prev:  prev,
		Next:  next,
		write: write,
		revert: func() {
			coll.Update(id, func(item *T) {
				if s := status(item); *s == next {
					*s = prev
				}
			})
		},
		log: log,
	}, nil
}
