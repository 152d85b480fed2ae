package directives

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/arbor-ui/arbor/pkg/reactive"
	"github.com/arbor-ui/arbor/pkg/reactive/destroy"
	"github.com/arbor-ui/arbor/pkg/reactive/host"
	"github.com/arbor-ui/arbor/pkg/reactive/keyed"
	"github.com/arbor-ui/arbor/pkg/reactive/observability"
	"github.com/arbor-ui/arbor/pkg/reactive/tree"
)

// ForEachDirective implements type-safe list rendering over a keyed
// reconciler. Each call to Render walks the current item slice through a
// keyed.Reconciler[T], so items whose key is unchanged across successive
// Update calls keep the same rendered row instead of being re-created.
//
// # Basic Usage
//
//	items := []string{"A", "B", "C"}
//	ForEach(items, func(item string, index int) string {
//	    return fmt.Sprintf("%d. %s\n", index+1, item)
//	}).Render()
//
// # Keying
//
// By default items are keyed with keyed.Identity[T](): pointers and other
// reference types get a stable synthetic key on first sight, value types
// are keyed by their value together with their position. Callers whose items carry a natural stable
// id should supply their own key function:
//
//	ForEach(users, renderUser).Key(keyed.ByField(func(u User) string {
//	    return u.ID
//	})).Render()
//
// # Nested ForEach
//
//	categories := []Category{
//	    {Name: "Fruits", Items: []string{"Apple", "Banana"}},
//	}
//	ForEach(categories, func(cat Category, i int) string {
//	    header := fmt.Sprintf("%s:\n", cat.Name)
//	    items := ForEach(cat.Items, func(item string, j int) string {
//	        return fmt.Sprintf("  - %s\n", item)
//	    }).Render()
//	    return header + items
//	}).Render()
//
// # Empty Collections
//
// ForEach handles empty and nil slices gracefully by returning an empty
// string:
//
//	ForEach([]string{}, renderFunc).Render() // Returns: ""
//	ForEach(nil, renderFunc).Render()        // Returns: ""
//
// # Error Handling
//
// If the render function panics for a given item, the panic is recovered,
// reported to the observability system, and that item's output is simply
// omitted; every other item still renders.
type ForEachDirective[T any] struct {
	renderItem func(T, int) string
	keyFn      keyed.KeyFunc[T]

	mu      sync.Mutex
	items   []T
	adapter *host.Tree
	outlet  *host.Node
	tag     *reactive.Ref[[]T]
	rec     *keyed.Reconciler[T]
}

// ForEach creates a new iteration directive for the given slice. The
// generic type parameter T is inferred from items, so it does not need to
// be specified explicitly. Keying defaults to keyed.Identity[T](); call
// Key to override it before the first Render or Update.
func ForEach[T any](items []T, render func(T, int) string) *ForEachDirective[T] {
	return &ForEachDirective[T]{
		items:      items,
		renderItem: render,
		keyFn:      keyed.Identity[T](),
	}
}

// Key overrides the default identity keying with fn. Must be called before
// the directive's reconciler is first built (i.e. before the first call to
// Render or Update); calling it afterward has no effect on an
// already-running reconciler.
func (d *ForEachDirective[T]) Key(fn keyed.KeyFunc[T]) *ForEachDirective[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rec == nil {
		d.keyFn = fn
	}
	return d
}

// ensureReconciler lazily builds the directive's private host tree and
// reconciler on first use. Callers must hold d.mu.
func (d *ForEachDirective[T]) ensureReconciler() {
	if d.rec != nil {
		return
	}
	d.adapter = host.NewTree()
	treeReg := tree.NewRegistry()
	destroys := destroy.NewRegistry()
	d.tag = reactive.NewRef(d.items)

	top := d.adapter.Comment("foreach-top")
	d.outlet = d.adapter.Comment("foreach-outlet")
	d.adapter.Insert(d.outlet, top, nil)

	factory := func(item T, index keyed.IndexBinding, _ tree.ID) keyed.Row {
		return keyed.Row{Nodes: []*host.Node{d.adapter.Text(d.renderSafely(item, index.Get()))}}
	}

	d.rec = keyed.New[T](d.adapter, treeReg, destroys, 0, d.outlet, top, d.keyFn, factory, d.tag)
}

// Update re-synchronizes the directive against a new item slice. Rows whose
// key is still present reuse their existing rendered node; removed keys are
// torn down and new keys are rendered. If the directive has not rendered
// yet, Update just replaces the pending item slice.
func (d *ForEachDirective[T]) Update(items []T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = items
	if d.rec == nil {
		return
	}
	d.tag.Set(items)
	reactive.FlushWatchers()
}

// Render walks the current item slice through the reconciler and returns
// the concatenated text content of every row, in host order. The render
// function is never called directly by Render for a nil or empty slice.
func (d *ForEachDirective[T]) Render() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensureReconciler()
	return d.adapter.Render(d.outlet)
}

// renderSafely calls the render function for item/index with panic
// recovery: a panicking render function yields an empty string for that
// item instead of aborting the whole list, and the panic (when an error
// reporter is configured) is reported with directive/item context.
func (d *ForEachDirective[T]) renderSafely(item T, index int) (output string) {
	defer func() {
		if r := recover(); r != nil {
			output = ""
			if reporter := observability.GetErrorReporter(); reporter != nil {
				err := fmt.Errorf("%w: ForEach item %d panicked: %v", ErrRenderPanic, index, r)
				ctx := &observability.ErrorContext{
					ComponentName: "ForEach",
					Timestamp:     time.Now(),
					StackTrace:    debug.Stack(),
					Tags: map[string]string{
						"directive_type": "ForEach",
						"error_type":     "render_panic",
					},
					Extra: map[string]interface{}{
						"panic_value": r,
						"item_index":  index,
					},
				}
				reporter.ReportError(err, ctx)
			}
		}
	}()
	return d.renderItem(item, index)
}
