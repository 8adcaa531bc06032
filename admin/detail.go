package admin

import (
	"context"
	"sync"

	"shopadmin/models"
)

// FetchOne loads a single record for a detail view.
type FetchOne[T any] func(ctx context.Context, id models.ID) (T, error)

// Detail is a read-only view of one record. Every Open starts a new
// generation; a fetch only lands if its generation is still current, so a
// closed or reopened view never shows a late result.
type Detail[T any] struct {
	mu       sync.Mutex
	gen      uint64
	open     bool
	loading  bool
	id       models.ID
	value    T
	hasValue bool
	err      string

	fetch    FetchOne[T]
	fallback string
}

// NewDetail returns a closed detail view.
func NewDetail[T any](fetch FetchOne[T], fallback string) *Detail[T] {
	return &Detail[T]{fetch: fetch, fallback: fallback}
}

// Open shows the view for id and marks it loading. Any previous value is
// dropped.
func (d *Detail[T]) Open(id models.ID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.open = true
	d.loading = true
	d.id = id
	d.reset()
}

// Close hides the view and discards its value.
func (d *Detail[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.open = false
	d.loading = false
	d.id = ""
	d.reset()
}

func (d *Detail[T]) reset() {
	var zero T
	d.value = zero
	d.hasValue = false
	d.err = ""
}

// Load fetches the record for the current generation.
func (d *Detail[T]) Load(ctx context.Context) error {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return ErrModalClosed
	}
	gen, id := d.gen, d.id
	d.mu.Unlock()

	v, err := d.fetch(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return ErrStale
	}
	d.loading = false
	if err != nil {
		d.err = Message(err, d.fallback)
		return err
	}
	d.value = v
	d.hasValue = true
	return nil
}

func (d *Detail[T]) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *Detail[T]) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

func (d *Detail[T]) ID() models.ID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

// Value returns the loaded record, if any.
func (d *Detail[T]) Value() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value, d.hasValue
}

func (d *Detail[T]) Err() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}
