package reactive

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDisposed is returned by Commit on a disposed owner.
var ErrDisposed = errors.New("reactive: owner disposed")

// Owner tracks the lifecycle of one component instance.
type Owner struct {
	id uint64

	mu       sync.Mutex
	mounts   []func() error
	cleanups []func()
	mounted  bool
	disposed bool
}

// NewOwner creates an owner in the unmounted state.
func NewOwner() *Owner {
	return &Owner{id: nextID()}
}

// ID returns the unique identifier for this owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// OnMount registers fn to run once, at the first Commit. Registrations made
// after the owner has mounted are ignored, so components may call OnMount
// on every render.
func (o *Owner) OnMount(fn func() error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.mounted || o.disposed {
		return
	}
	o.mounts = append(o.mounts, fn)
}

// OnCleanup registers fn to run when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disposed {
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// Commit marks a render as delivered. The first call runs the pending mount
// hooks in registration order; later calls do nothing. Mount hook errors
// are returned to the caller, joined, and are never retried.
func (o *Owner) Commit() error {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return ErrDisposed
	}
	if o.mounted {
		o.mu.Unlock()
		return nil
	}
	o.mounted = true
	mounts := o.mounts
	o.mounts = nil
	o.mu.Unlock()

	var errs []error
	for i, fn := range mounts {
		if err := fn(); err != nil {
			errs = append(errs, fmt.Errorf("mount hook %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Mounted reports whether Commit has run.
func (o *Owner) Mounted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mounted
}

// IsDisposed reports whether Dispose has run.
func (o *Owner) IsDisposed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disposed
}

// Dispose runs cleanups in reverse registration order. It is idempotent.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	o.disposed = true
	cleanups := o.cleanups
	o.cleanups = nil
	o.mounts = nil
	o.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
