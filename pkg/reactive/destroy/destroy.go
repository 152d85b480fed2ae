// Package destroy implements the destroyable registry (spec §4.2): an
// association between an opaque owner and an ordered list of destructor
// callbacks, with synchronous and asynchronous drain, and re-entrance-safe
// "destruction started" tracking for owners whose destructors must survive
// being observed mid-teardown (e.g. recursive child iteration).
//
// Grounded on the teacher's component-tree cleanup conventions and on the
// vango Owner.OnCleanup/Dispose pattern: destructors run in registration
// order on sync destroy, in reverse (LIFO) order is NOT used here — the
// spec requires registration order, unlike vango's reverse-order cleanups.
package destroy

import (
	"sync"

	"github.com/arbor-ui/arbor/pkg/reactive/observability"
)

// Deferrable is a promise-like handle an async destructor may return. The
// sync variant ignores it; the async variant collects and awaits all of
// them via Go channels.
type Deferrable <-chan struct{}

// Fn is a destructor callback. It performs synchronous teardown work and
// optionally returns a Deferrable for work that completes later.
type Fn func() Deferrable

// Owner is any opaque handle destructors are registered against. Typically
// an integer id from the tree package, but the registry itself does not
// care about the concrete type as long as it is comparable.
type Owner any

type entry struct {
	mu                  sync.Mutex
	fns                 []Fn
	destructionStarted  bool
	destroyed           bool
}

// Registry holds destructor lists keyed by owner. The zero value is not
// usable; use NewRegistry.
type Registry struct {
	mu      sync.Mutex
	entries map[Owner]*entry
}

// NewRegistry creates an empty destructor registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Owner]*entry)}
}

func (r *Registry) entryFor(owner Owner) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[owner]
	if !ok {
		e = &entry{}
		r.entries[owner] = e
	}
	return e
}

// Register appends destructor callbacks for owner. Safe to call multiple
// times; callbacks accumulate in call order.
func (r *Registry) Register(owner Owner, fns ...Fn) {
	e := r.entryFor(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fns = append(e.fns, fns...)
}

// MarkDestructionStarted records intent to destroy owner without running
// any destructors yet. Used when a destructor itself needs to be
// re-entrant-safe against concurrent child iteration observing the owner
// mid-teardown.
func (r *Registry) MarkDestructionStarted(owner Owner) {
	e := r.entryFor(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.destructionStarted = true
}

// IsDestructionStarted reports whether owner has been marked with
// MarkDestructionStarted while its entry is still registered. Destroy and
// DestroySync release the entry before running its destructors, so during
// and after them this returns false.
func (r *Registry) IsDestructionStarted(owner Owner) bool {
	r.mu.Lock()
	e, ok := r.entries[owner]
	r.mu.Unlock()
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.destructionStarted
}

// DestroySync runs owner's destructors in registration order, ignoring any
// returned Deferrable, then releases the owner's entry. Double-destroy is a
// no-op. A panicking destructor is reported via observability and the
// remaining destructors still run (spec §7: "destructor failure: log,
// continue remaining destructors").
func (r *Registry) DestroySync(owner Owner) {
	e := r.takeForDestroy(owner)
	if e == nil {
		return
	}
	for _, fn := range e.fns {
		runGuarded(fn)
	}
}

// Destroy runs owner's destructors in registration order, forwarding any
// non-nil Deferrable each one returns into pending so the caller can await
// them. Like DestroySync, a panicking destructor is reported and does not
// stop the remaining destructors from running.
func (r *Registry) Destroy(owner Owner, pending *[]Deferrable) {
	e := r.takeForDestroy(owner)
	if e == nil {
		return
	}
	for _, fn := range e.fns {
		if d := runGuarded(fn); d != nil {
			*pending = append(*pending, d)
		}
	}
}

// takeForDestroy marks owner destroyed exactly once and returns its entry,
// or nil if it was already destroyed (double-destroy no-op) or never
// registered.
func (r *Registry) takeForDestroy(owner Owner) *entry {
	r.mu.Lock()
	e, ok := r.entries[owner]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	delete(r.entries, owner)
	r.mu.Unlock()

	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return nil
	}
	e.destroyed = true
	e.destructionStarted = true
	e.mu.Unlock()
	return e
}

func runGuarded(fn Fn) (d Deferrable) {
	defer func() {
		if r := recover(); r != nil {
			if reporter := observability.GetErrorReporter(); reporter != nil {
				reporter.ReportError(panicError{r}, &observability.ErrorContext{
					ComponentName: "destroy.Registry",
				})
			}
		}
	}()
	return fn()
}

type panicError struct {
	value any
}

func (p panicError) Error() string {
	return "destructor panicked: " + errString(p.value)
}

func errString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "non-error panic value"
}
