package keyed

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Key is the opaque, equality-comparable, hashable identity the reconciler
// uses to correlate an item across successive SyncList calls. Any
// comparable value works; KeyFunc implementations typically return a
// string or an int.
type Key any

// KeyFunc extracts a Key from an item at a given position. It MUST yield
// unique keys across one input slice; duplicates are undefined behavior in
// release builds (first occurrence wins) and a diagnostic in debug mode
// (see arbor.DebugMode).
type KeyFunc[T any] func(item T, index int) Key

// ByField builds a KeyFunc that reads a named key out of each item via the
// supplied accessor. This is the non-identity branch of the spec's keying
// contract: the caller already knows which attribute is stable.
func ByField[T any, K comparable](field func(item T) K) KeyFunc[T] {
	return func(item T, _ int) Key {
		return field(item)
	}
}

// Identity returns the sentinel `@identity` keying strategy: keys are
// assigned lazily on first sight. Go has no weak maps, so a reference-typed
// item (pointer, map, chan, func) is keyed by its pointer value, assigned a
// synthetic uuid the first time it is seen and reused thereafter — this
// leaks for the lifetime of the reconciler, same as the spec's stated
// trade-off. A value-typed item has no reference identity at all, so it
// falls back to `{string(item)}:{index}`, which is stable only as long as
// the item doesn't change position — callers with reorderable value-typed
// lists should use ByField instead.
func Identity[T any]() KeyFunc[T] {
	var mu sync.Mutex
	assigned := make(map[uintptr]Key)

	return func(item T, index int) Key {
		rv := reflect.ValueOf(item)
		switch rv.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			if rv.IsNil() {
				break
			}
			ptr := rv.Pointer()
			mu.Lock()
			defer mu.Unlock()
			if k, ok := assigned[ptr]; ok {
				return k
			}
			k := Key(uuid.NewString())
			assigned[ptr] = k
			return k
		}
		return Key(fmt.Sprintf("%v:%d", item, index))
	}
}
