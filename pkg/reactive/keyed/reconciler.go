// Package keyed implements the keyed-list reconciler: given a reactive
// source of array-shaped state, it maintains a one-to-one correspondence
// between logical items and a contiguous segment of a host tree, issuing
// the minimum number of host mutations across updates while preserving
// node identity for unchanged items.
package keyed

import (
	"sort"
	"sync"

	"github.com/arbor-ui/arbor"
	"github.com/arbor-ui/arbor/pkg/reactive"
	"github.com/arbor-ui/arbor/pkg/reactive/composables"
	"github.com/arbor-ui/arbor/pkg/reactive/destroy"
	"github.com/arbor-ui/arbor/pkg/reactive/host"
	"github.com/arbor-ui/arbor/pkg/reactive/monitoring"
	"github.com/arbor-ui/arbor/pkg/reactive/tree"
)

// Row is the opaque output of an item factory: either a single host node, a
// list of host nodes, or (when the item itself renders a nested component
// tree) an owner handle alongside its rendered nodes.
type Row struct {
	Nodes []*host.Node
	Owner tree.ID // 0 if this row owns no nested subtree
}

// IndexBinding exposes an item's current position in the array. In debug
// mode it is backed by a reactive.Ref[int] so templates can watch it; in
// release mode it is a plain, unobservable int — the compiler-emitted
// hasIndex hint that would pick between the two per-call is out of scope
// here, so the cutover is global and keyed off arbor.DebugMode().
type IndexBinding interface {
	Get() int
}

type staticIndexBinding int

func (s staticIndexBinding) Get() int { return int(s) }

type reactiveIndexBinding struct {
	ref *reactive.Ref[int]
}

func (r *reactiveIndexBinding) Get() int  { return r.ref.GetTyped() }
func (r *reactiveIndexBinding) set(i int) { r.ref.Set(i) }

// Factory produces the Row for a newly-seen item. owner is the tree id the
// row may register nested destructors/children under.
type Factory[T any] func(item T, index IndexBinding, owner tree.ID) Row

type rowEntry[T any] struct {
	key     Key
	row     Row
	binding IndexBinding
	owner   tree.ID
}

// Reconciler owns one keyed segment of a host tree, bounded by a top and
// bottom marker, and keeps it in sync with a reactive source array via
// SyncList. The zero value is not usable; use New.
type Reconciler[T any] struct {
	adapter  host.Extended
	treeReg  *tree.Registry
	destroys *destroy.Registry
	ownerID  tree.ID

	keyFn   KeyFunc[T]
	factory Factory[T]

	outlet       *host.Node
	topMarker    *host.Node
	bottomMarker *host.Node

	keyMap      map[Key]*rowEntry[T]
	indexMap    map[Key]int
	itemMarkers map[Key]*host.Node
	markerSet   map[*host.Node]struct{}

	isFirstRender bool

	tag         *reactive.Ref[[]T]
	unsubscribe reactive.WatchCleanup

	logger *composables.LoggerReturn

	detachedFragment *host.Node

	// destroyPromise is the combined future of the most recent SyncListAsync
	// call's destroy phase, or nil if that call deferred nothing; it is
	// replaced by each SyncListAsync call, not cleared on resolution. SyncListAsync
	// awaits it before running its own Phase 4, so at most one destroy is
	// ever in flight (spec: "two flavors", async variant).
	destroyPromise destroy.Deferrable

	mu sync.Mutex
}

// New constructs a reconciler that owns the host segment between
// topMarker (supplied, already present in outlet) and a bottom sentinel it
// creates itself, and subscribes to tag with post-flush coalescing so that
// multiple invalidations between flushes collapse into a single SyncList
// call (spec §4.4).
func New[T any](
	adapter host.Extended,
	treeReg *tree.Registry,
	destroys *destroy.Registry,
	parent tree.ID,
	outlet *host.Node,
	topMarker *host.Node,
	keyFn KeyFunc[T],
	factory Factory[T],
	tag *reactive.Ref[[]T],
) *Reconciler[T] {
	r := &Reconciler[T]{
		adapter:       adapter,
		treeReg:       treeReg,
		destroys:      destroys,
		keyFn:         keyFn,
		factory:       factory,
		outlet:        outlet,
		topMarker:     topMarker,
		keyMap:        make(map[Key]*rowEntry[T]),
		indexMap:      make(map[Key]int),
		itemMarkers:   make(map[Key]*host.Node),
		markerSet:     make(map[*host.Node]struct{}),
		isFirstRender: true,
		tag:           tag,
		logger:        composables.UseLogger(nil, "keyed.Reconciler"),
	}

	r.bottomMarker = adapter.Comment("keyed-bottom")
	adapter.Insert(outlet, r.bottomMarker, nil)

	r.ownerID = treeReg.Alloc(r)
	treeReg.Add(parent, r.ownerID)

	r.unsubscribe = reactive.Watch(tag, func(newItems, _ []T) {
		r.SyncList(newItems)
	}, reactive.WithFlush("post"))

	destroys.Register(r.ownerID, func() destroy.Deferrable {
		var pending []destroy.Deferrable
		r.teardown(&pending)
		return combineDeferrables(pending)
	})

	r.SyncList(tag.GetTyped())
	return r
}

// Destroy tears down the reconciler synchronously: all live rows, both
// sentinels, the reactive subscription, and this reconciler's own tree
// entry. Any Deferrable a nested owner's destructor returns is collected
// and discarded, matching the synchronous flavor's contract (spec §6).
func (r *Reconciler[T]) Destroy() {
	r.destroys.DestroySync(r.ownerID)
}

// DestroyAsync is the asynchronous flavor of Destroy (spec §6's "two
// flavors"): host unlinking still happens before this call returns, but
// nested owners' async destructors run through the registry's pending-
// deferrable path, and their combined future is returned instead of being
// discarded.
func (r *Reconciler[T]) DestroyAsync() destroy.Deferrable {
	var pending []destroy.Deferrable
	r.destroys.Destroy(r.ownerID, &pending)
	return combineDeferrables(pending)
}

func (r *Reconciler[T]) teardown(pending *[]destroy.Deferrable) {
	r.unsubscribe()
	for _, e := range r.keyMap {
		r.destroyRow(e, pending)
	}
	r.adapter.Destroy(r.topMarker)
	r.adapter.Destroy(r.bottomMarker)
	r.treeReg.Teardown(r.ownerID, r)
}

// destroyRow tears down a single row's nested owner and host nodes. When
// pending is non-nil, the nested owner's destructors run through the
// registry's async path and any Deferrable they return is appended to
// pending rather than awaited; when pending is nil, they run synchronously
// and any Deferrable is ignored.
func (r *Reconciler[T]) destroyRow(e *rowEntry[T], pending *[]destroy.Deferrable) {
	if e.owner != 0 {
		if pending != nil {
			r.destroys.Destroy(e.owner, pending)
		} else {
			r.destroys.DestroySync(e.owner)
		}
		r.treeReg.Teardown(e.owner, e)
	}
	for _, n := range e.row.Nodes {
		r.adapter.Destroy(n)
	}
	r.removeMarker(e.key)
	if pm, ok := monitoring.GetGlobalMetrics().(*monitoring.PrometheusMetrics); ok {
		pm.RecordReconcilerDestruction()
	}
}

// combineDeferrables returns a Deferrable that resolves once every channel
// in pending has resolved, or nil if pending is empty. This is the
// reconciler's "combined future" (spec §6): a single awaitable standing in
// for an arbitrary number of nested async destructors.
func combineDeferrables(pending []destroy.Deferrable) destroy.Deferrable {
	if len(pending) == 0 {
		return nil
	}
	done := make(chan struct{})
	go func() {
		for _, d := range pending {
			<-d
		}
		close(done)
	}()
	return done
}

func (r *Reconciler[T]) removeMarker(key Key) {
	marker, ok := r.itemMarkers[key]
	if !ok {
		return
	}
	delete(r.itemMarkers, key)
	delete(r.markerSet, marker)
	r.adapter.Destroy(marker)
}

// bulkClear performs the fast-path teardown of Phase 0/1: it only fires
// when the sentinels are the first and last children of outlet (no foreign
// siblings outside them). It destroys every live row, then clears outlet
// and re-inserts both sentinels, with no relocation of any row.
func (r *Reconciler[T]) bulkClear(pending *[]destroy.Deferrable) bool {
	if r.adapter.FirstChild(r.outlet) != r.topMarker || r.adapter.LastChild(r.outlet) != r.bottomMarker {
		return false
	}
	for _, e := range r.keyMap {
		r.destroyRow(e, pending)
	}
	r.adapter.ClearChildren(r.outlet)
	r.adapter.Insert(r.outlet, r.topMarker, nil)
	r.adapter.Insert(r.outlet, r.bottomMarker, nil)
	r.keyMap = make(map[Key]*rowEntry[T])
	r.indexMap = make(map[Key]int)
	r.itemMarkers = make(map[Key]*host.Node)
	r.markerSet = make(map[*host.Node]struct{})
	return true
}

// SyncList is the reconciler's synchronous mutating operation (spec §4.5):
// it diffs the previous view against newItems and issues the minimum host
// mutations needed to reach it, in nine phases. Removed rows' nested
// destructors run to completion, and any Deferrable they return is
// discarded, before this call returns.
func (r *Reconciler[T]) SyncList(newItems []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sync(newItems, nil)
}

// SyncListAsync is the asynchronous reconciler flavor (spec §6's "two
// flavors"): it runs the same nine phases as SyncList, but Phase 2's
// removed-row destructors run through the async destroy path. Their
// combined future is recorded as destroyPromise and returned; a caller
// that needs SyncListAsync's postconditions to hold (host state fully
// settled, including deferred nested teardown) must await it.
//
// If a previous call's destroyPromise is still unresolved when this one
// starts, SyncListAsync awaits it first, so at most one destroy is ever
// in flight (spec §4.5: "overlapping SyncList invocations are serialized
// by the caller's scheduler").
func (r *Reconciler[T]) SyncListAsync(newItems []T) destroy.Deferrable {
	r.mu.Lock()
	if prev := r.destroyPromise; prev != nil {
		r.mu.Unlock()
		<-prev
		r.mu.Lock()
	}
	defer r.mu.Unlock()

	var pending []destroy.Deferrable
	r.sync(newItems, &pending)
	promise := combineDeferrables(pending)
	r.destroyPromise = promise
	return promise
}

// sync is the nine-phase algorithm shared by SyncList and SyncListAsync.
// Callers must hold r.mu. pending is nil for the synchronous flavor (row
// destructors run to completion and their Deferrables are discarded) or a
// non-nil accumulator for the asynchronous flavor (Deferrables are
// collected instead of awaited).
func (r *Reconciler[T]) sync(newItems []T, pending *[]destroy.Deferrable) {
	// Phase 0: fast empty.
	if len(newItems) == 0 && !r.isFirstRender {
		if r.bulkClear(pending) {
			r.isFirstRender = false
			return
		}
	}

	keysForItems := make([]Key, len(newItems))
	firstIndexOfKey := make(map[Key]int, len(newItems))
	for i, item := range newItems {
		k := r.keyFn(item, i)
		keysForItems[i] = k
		if first, exists := firstIndexOfKey[k]; exists {
			if arbor.DebugMode() {
				r.logger.Warn("duplicate key in keyed list, dropping later occurrence",
					map[string]any{"key": k, "firstIndex": first, "droppedIndex": i})
			}
			continue
		}
		firstIndexOfKey[k] = i
	}

	// Phase 1: classify removals.
	var keysToRemove []Key
	var removedOldIndices []int
	for k := range r.keyMap {
		if _, live := firstIndexOfKey[k]; !live {
			keysToRemove = append(keysToRemove, k)
			removedOldIndices = append(removedOldIndices, r.indexMap[k])
		}
	}

	removedAlready := false
	if len(r.keyMap) > 0 && len(keysToRemove) == len(r.keyMap) {
		if r.bulkClear(pending) {
			removedAlready = true
			if len(newItems) == 0 {
				r.isFirstRender = false
				return
			}
		}
	}

	// Phase 2: destroy removed.
	if !removedAlready {
		for _, k := range keysToRemove {
			if e, ok := r.keyMap[k]; ok {
				r.destroyRow(e, pending)
				delete(r.keyMap, k)
				delete(r.indexMap, k)
			}
		}
	}

	// Phase 3: shift indices for survivors.
	if !removedAlready && len(removedOldIndices) > 0 {
		sort.Ints(removedOldIndices)
		for k, oldIdx := range r.indexMap {
			shift := sort.SearchInts(removedOldIndices, oldIdx)
			if shift > 0 {
				r.indexMap[k] = oldIdx - shift
			}
		}
	}

	// Phase 4: single pass over new_items.
	survivorTotal := len(r.keyMap)
	appendOnly := r.isFirstRender || survivorTotal == 0
	var appendFragment *host.Node
	var appendParent, appendAnchor *host.Node
	if appendOnly {
		appendParent, appendAnchor = r.outlet, r.bottomMarker
	}

	existKeys := make([]Key, 0, survivorTotal)
	existNewIdx := make([]int, 0, survivorTotal)
	existOldIdx := make([]int, 0, survivorTotal)
	freshMoves := make(map[Key]struct{})
	seenCount := 0

	for i, item := range newItems {
		k := keysForItems[i]
		if firstIndexOfKey[k] != i {
			continue // duplicate occurrence, dropped
		}

		if e, ok := r.keyMap[k]; ok {
			seenCount++
			existKeys = append(existKeys, k)
			existNewIdx = append(existNewIdx, i)
			existOldIdx = append(existOldIdx, r.indexMap[k])
			r.indexMap[k] = i
			if rb, ok := e.binding.(*reactiveIndexBinding); ok {
				rb.set(i)
			}

			if !appendOnly && seenCount == survivorTotal {
				appendOnly = true
				appendFragment = r.adapter.Fragment()
				appendParent, appendAnchor = appendFragment, nil
			}
			continue
		}

		// New key.
		marker := r.adapter.Comment("item")
		r.itemMarkers[k] = marker
		r.markerSet[marker] = struct{}{}

		var binding IndexBinding
		if arbor.DebugMode() {
			binding = &reactiveIndexBinding{ref: reactive.NewRef(i)}
		} else {
			binding = staticIndexBinding(i)
		}

		entry := &rowEntry[T]{key: k, binding: binding}
		ownerID := r.treeReg.Alloc(entry)
		r.treeReg.Add(r.ownerID, ownerID)
		entry.owner = ownerID

		row := r.factory(item, binding, ownerID)
		entry.row = row
		r.keyMap[k] = entry
		r.indexMap[k] = i

		if appendOnly {
			r.adapter.Insert(appendParent, marker, appendAnchor)
			for _, n := range row.Nodes {
				r.adapter.Insert(appendParent, n, appendAnchor)
			}
		} else {
			freshMoves[k] = struct{}{}
		}

		if pm, ok := monitoring.GetGlobalMetrics().(*monitoring.PrometheusMetrics); ok {
			pm.RecordReconcilerCreation()
		}
	}

	// Phase 5: LIS over survivors.
	moveSet := make(map[Key]struct{})
	lisPositions := longestIncreasingSubsequence(existOldIdx)
	for idx, k := range existKeys {
		if _, inLIS := lisPositions[idx]; !inLIS {
			moveSet[k] = struct{}{}
		}
	}
	if len(existKeys) == 1 && existNewIdx[0] != existOldIdx[0] {
		moveSet[existKeys[0]] = struct{}{}
	}
	// Fresh-but-not-append-only keys were never inserted in Phase 4; the
	// move phase is where they actually enter the host, so they must be
	// handled there regardless of the LIS result (which only covers
	// survivors).
	for k := range freshMoves {
		moveSet[k] = struct{}{}
	}

	// Phase 6: insert the append-fragment, if any, before the move phase.
	if appendFragment != nil {
		r.adapter.Insert(r.outlet, appendFragment, r.bottomMarker)
	}

	// Phase 7: move phase, right-to-left, with a running anchor.
	anchor := r.bottomMarker
	for i := len(newItems) - 1; i >= 0; i-- {
		k := keysForItems[i]
		if firstIndexOfKey[k] != i {
			continue
		}
		marker, ok := r.itemMarkers[k]
		if !ok {
			continue
		}
		if _, isMove := moveSet[k]; !isMove {
			anchor = marker
			continue
		}
		if _, isFresh := freshMoves[k]; isFresh {
			r.adapter.Insert(r.outlet, marker, anchor)
			for _, n := range r.keyMap[k].row.Nodes {
				r.adapter.Insert(r.outlet, n, anchor)
			}
		} else {
			r.relocateItem(marker, anchor)
			if pm, ok := monitoring.GetGlobalMetrics().(*monitoring.PrometheusMetrics); ok {
				pm.RecordReconcilerRelocation()
			}
		}
		anchor = marker
	}

	// Phase 9: epilogue.
	r.isFirstRender = false
}

// relocateItem implements Phase 8: move the contiguous run [marker, end)
// into the cached fragment preserving order, then splice it in before
// anchor in a single host-level insert.
func (r *Reconciler[T]) relocateItem(marker, anchor *host.Node) {
	end := r.runEnd(marker)
	if end == anchor {
		return
	}

	if r.detachedFragment == nil {
		r.detachedFragment = r.adapter.Fragment()
	}
	frag := r.detachedFragment

	for node := marker; node != nil && node != end; {
		next := r.adapter.NextSibling(node)
		r.adapter.Insert(frag, node, nil)
		node = next
	}
	r.adapter.Insert(r.outlet, frag, anchor)
}

// runEnd walks forward from marker (exclusive) until it hits the next live
// marker or the bottom sentinel, bounding the contiguous, possibly
// multi-node, run this item's content occupies.
func (r *Reconciler[T]) runEnd(marker *host.Node) *host.Node {
	node := r.adapter.NextSibling(marker)
	for node != nil {
		if node == r.bottomMarker {
			return node
		}
		if _, isMarker := r.markerSet[node]; isMarker {
			return node
		}
		node = r.adapter.NextSibling(node)
	}
	return nil
}
