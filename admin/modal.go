package admin

import (
	"context"
	"errors"
	"sync"
)

// SubmitFunc performs a modal's single write and patches local state on
// success.
type SubmitFunc[F any] func(ctx context.Context, form F) error

// Modal is a form dialog that issues exactly one write per submit. A
// failed submit keeps it open with the error; a successful one closes it
// and resets the form.
type Modal[F any] struct {
	mu         sync.Mutex
	open       bool
	submitting bool
	form       F
	err        string
	fieldErrs  map[string]string

	check    func(any) error
	submit   SubmitFunc[F]
	fallback string
}

// NewModal returns a closed modal. check runs before submit; fallback is
// shown when a failure carries no message of its own.
func NewModal[F any](check func(any) error, submit SubmitFunc[F], fallback string) *Modal[F] {
	return &Modal[F]{check: check, submit: submit, fallback: fallback}
}

// Open shows the modal with seed as the initial form.
func (m *Modal[F]) Open(seed F) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.form = seed
	m.err = ""
	m.fieldErrs = nil
}

// Close hides the modal and discards the form.
func (m *Modal[F]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero F
	m.open = false
	m.form = zero
	m.err = ""
	m.fieldErrs = nil
}

func (m *Modal[F]) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Modal[F]) Submitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitting
}

// Form returns the current form values.
func (m *Modal[F]) Form() F {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

// SetForm replaces the form values while the modal is open.
func (m *Modal[F]) SetForm(f F) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open {
		m.form = f
	}
}

// Err is the banner message of the last failed submit.
func (m *Modal[F]) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// FieldErrors maps JSON field names to inline messages.
func (m *Modal[F]) FieldErrors() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.fieldErrs))
	for k, v := range m.fieldErrs {
		out[k] = v
	}
	return out
}

// Submit validates the form and, if it passes, performs the write.
func (m *Modal[F]) Submit(ctx context.Context) error {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return ErrModalClosed
	}
	if m.submitting {
		m.mu.Unlock()
		return ErrBusy
	}
	form := m.form
	m.err = ""
	m.fieldErrs = nil

	if m.check != nil {
		if err := m.check(form); err != nil {
			m.fail(err)
			m.mu.Unlock()
			return err
		}
	}
	m.submitting = true
	m.mu.Unlock()

	err := m.submit(ctx, form)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if err != nil {
		m.fail(err)
		return err
	}
	var zero F
	m.open = false
	m.form = zero
	return nil
}

// fail records err; m.mu must be held.
func (m *Modal[F]) fail(err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		m.fieldErrs = verr.Fields
		return
	}
	m.err = Message(err, m.fallback)
}
