package reactive

// WatchCallback is a function that is called when a watched value changes.
// It receives both the new value and the old value as parameters.
//
// Example:
//
//	callback := func(newVal, oldVal int) {
//	    fmt.Printf("Value changed from %d to %d\n", oldVal, newVal)
//	}
type WatchCallback[T any] func(newVal, oldVal T)

// WatchCleanup is a function that stops watching when called.
// It should be called when the watcher is no longer needed to prevent memory leaks.
//
// Example:
//
//	cleanup := Watch(ref, callback)
//	defer cleanup()  // Stop watching when done
type WatchCleanup func()

// WatchOptions configures watcher behavior: when the callback fires relative
// to registration (Immediate), whether change detection uses deep comparison
// (Deep / Compare), and when the callback actually runs relative to Set
// (Flush).
type WatchOptions struct {
	// Immediate, when true, runs the callback once at registration time
	// with the current value as both old and new.
	Immediate bool

	// Deep enables reflect.DeepEqual-based change detection instead of
	// relying solely on the fact that Set was called. Intended for watching
	// nested struct/slice/map fields by value.
	Deep bool

	// Compare, when set, overrides deep comparison with a custom equality
	// function. Implies Deep.
	Compare any

	// Flush selects when the callback runs: "sync" (default) executes
	// synchronously inside Set; "post" queues the callback on the global
	// scheduler for execution at the next FlushWatchers call, coalescing
	// multiple Set calls between flushes into a single invocation.
	Flush string
}

// WatchOption configures watcher behavior via functional options passed to Watch.
type WatchOption func(*WatchOptions)

// WithImmediate runs the watcher callback once immediately at registration,
// in addition to on every subsequent change.
func WithImmediate() WatchOption {
	return func(o *WatchOptions) {
		o.Immediate = true
	}
}

// WithDeep enables reflect.DeepEqual-based change suppression: if the new
// value deep-equals the old value, the callback is skipped.
func WithDeep() WatchOption {
	return func(o *WatchOptions) {
		o.Deep = true
	}
}

// WithDeepCompare enables change suppression using a custom comparator
// instead of reflect.DeepEqual. The comparator returns true when the two
// values should be considered equal (no-op).
func WithDeepCompare[T any](cmp DeepCompareFunc[T]) WatchOption {
	return func(o *WatchOptions) {
		o.Deep = true
		o.Compare = cmp
	}
}

// WithFlush selects the flush mode: "sync" (default) or "post".
func WithFlush(mode string) WatchOption {
	return func(o *WatchOptions) {
		o.Flush = mode
	}
}

// watcher holds a single registered callback and its resolved options.
type watcher[T any] struct {
	callback WatchCallback[T]
	options  WatchOptions
}

// notify applies deep-comparison suppression and flush-mode dispatch for a
// single Set(new) call observed against old.
func (w *watcher[T]) notify(newVal, oldVal T) {
	if w.options.Deep {
		var changed bool
		if cmp, ok := w.options.Compare.(DeepCompareFunc[T]); ok {
			changed = hasChanged(oldVal, newVal, cmp)
		} else {
			changed = hasChanged(oldVal, newVal, nil)
		}
		if !changed {
			return
		}
	}

	if w.options.Flush == "post" {
		globalScheduler.enqueue(w, func() {
			w.callback(newVal, oldVal)
		})
		return
	}

	w.callback(newVal, oldVal)
}

// Watch creates a watcher that executes the callback whenever the source Ref's value changes.
// It returns a cleanup function that should be called to stop watching and prevent memory leaks.
//
// By default the callback runs synchronously inside Set, is not invoked at
// registration time, and fires on every Set call regardless of whether the
// value actually changed. Options customize this:
//
//	Watch(ref, callback, WithImmediate())        // also run once now
//	Watch(ref, callback, WithDeep())              // skip no-op Set calls
//	Watch(ref, callback, WithDeepCompare(cmp))    // custom equality
//	Watch(ref, callback, WithFlush("post"))       // batch via FlushWatchers
//
// Example:
//
//	count := NewRef(0)
//	cleanup := Watch(count, func(newVal, oldVal int) {
//	    fmt.Printf("Count changed: %d -> %d\n", oldVal, newVal)
//	})
//	defer cleanup()
//
//	count.Set(5)   // Prints: Count changed: 0 -> 5
func Watch[T any](
	source *Ref[T],
	callback WatchCallback[T],
	options ...WatchOption,
) WatchCleanup {
	if callback == nil {
		panic(ErrNilCallback)
	}

	opts := WatchOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	w := &watcher[T]{
		callback: callback,
		options:  opts,
	}

	source.addWatcher(w)

	if opts.Immediate {
		current := source.Get()
		w.callback(current, current)
	}

	return func() {
		source.removeWatcher(w)
	}
}
