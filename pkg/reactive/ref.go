// Package reactive provides a Vue-inspired reactive state management system for Go TUI applications.
// It offers type-safe reactive primitives built on generics that integrate seamlessly with
// the Bubbletea framework's Elm architecture.
package reactive

import "sync"

// Ref is a type-safe reactive reference that holds a mutable value of type T.
// It provides thread-safe read and write operations using a read-write mutex,
// participates in Computed dependency tracking, and notifies registered
// watchers when its value changes.
//
// Example usage:
//
//	count := reactive.NewRef(0)
//	value := count.Get()  // Read current value
//	count.Set(42)         // Update value, notify watchers
type Ref[T any] struct {
	mu         sync.RWMutex
	value      T
	watchers   []*watcher[T]
	dependents []Dependency
}

// NewRef creates a new reactive reference with the given initial value.
// The reference is thread-safe and can be safely accessed from multiple goroutines.
//
// Type parameter T can be any Go type including primitives, structs, slices,
// maps, pointers, and interfaces.
//
// Example:
//
//	intRef := NewRef(42)
//	stringRef := NewRef("hello")
//	structRef := NewRef(User{Name: "John"})
func NewRef[T any](value T) *Ref[T] {
	return &Ref[T]{
		value: value,
	}
}

// Get returns the current value of the reference.
// This operation is thread-safe and uses a read lock, allowing multiple
// concurrent readers. If called during Computed evaluation, it registers
// the Ref as a tracked dependency of the computed value being evaluated.
//
// Example:
//
//	ref := NewRef(42)
//	value := ref.Get()  // Returns 42
func (r *Ref[T]) Get() T {
	if globalTracker.IsTracking() {
		globalTracker.Track(r)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// GetTyped is an alias for Get. Several composables predate Get's current
// signature and call GetTyped explicitly for clarity at call sites that
// also handle type-erased Dependency values.
func (r *Ref[T]) GetTyped() T {
	return r.Get()
}

// Set updates the value of the reference, runs sync-flush watchers
// synchronously, queues post-flush watchers on the global scheduler, and
// invalidates any Computed values that depend on this Ref.
//
// This operation is thread-safe and uses a write lock for the mutation
// itself; watcher callbacks and dependent invalidation run outside the lock.
//
// Example:
//
//	ref := NewRef(10)
//	ref.Set(20)  // Updates value to 20, notifies watchers
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	old := r.value
	r.value = value
	watchers := make([]*watcher[T], len(r.watchers))
	copy(watchers, r.watchers)
	dependents := make([]Dependency, len(r.dependents))
	copy(dependents, r.dependents)
	r.mu.Unlock()

	for _, w := range watchers {
		w.notify(value, old)
	}
	for _, dep := range dependents {
		dep.Invalidate()
	}
}

// addWatcher registers a watcher to be notified on future Set calls.
func (r *Ref[T]) addWatcher(w *watcher[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers = append(r.watchers, w)
}

// removeWatcher unregisters a previously added watcher. Safe to call from
// within the watcher's own callback.
func (r *Ref[T]) removeWatcher(w *watcher[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.watchers {
		if existing == w {
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			return
		}
	}
}

// Invalidate re-notifies watchers and dependents with the current value as
// both old and new. Implements the Dependency interface so a Ref can stand
// in wherever a Computed-style dependency is expected.
func (r *Ref[T]) Invalidate() {
	r.mu.RLock()
	current := r.value
	r.mu.RUnlock()
	r.Set(current)
}

// AddDependent registers a dependent (typically a Computed value) to be
// invalidated whenever this Ref changes. Implements the Dependency
// interface.
func (r *Ref[T]) AddDependent(dep Dependency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.dependents {
		if d == dep {
			return
		}
	}
	r.dependents = append(r.dependents, dep)
}
