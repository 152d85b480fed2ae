package directives

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/arbor-ui/arbor/pkg/reactive/destroy"
	"github.com/arbor-ui/arbor/pkg/reactive/observability"
	"github.com/arbor-ui/arbor/pkg/reactive/tree"
)

// IfDirective implements conditional rendering with ElseIf and Else support.
//
// The If directive provides a declarative way to conditionally render content
// based on boolean conditions. It supports chaining multiple conditions via
// ElseIf and provides a fallback via Else.
//
// # Basic Usage
//
//	If(condition, func() string {
//	    return "Condition is true"
//	}).Render()
//
// # With Else
//
//	If(condition, func() string {
//	    return "True branch"
//	}).Else(func() string {
//	    return "False branch"
//	}).Render()
//
// # With ElseIf Chain
//
//	If(status == "loading",
//	    func() string { return "Loading..." },
//	).ElseIf(status == "error",
//	    func() string { return "Error occurred" },
//	).ElseIf(status == "empty",
//	    func() string { return "No data" },
//	).Else(func() string {
//	    return "Data loaded"
//	}).Render()
//
// # Nested If
//
//	If(outerCondition, func() string {
//	    return If(innerCondition, func() string {
//	        return "Both true"
//	    }).Else(func() string {
//	        return "Outer true, inner false"
//	    }).Render()
//	}).Render()
//
// # Error Handling
//
// If a branch function panics, the panic is recovered, reported to the
// observability system tagged with which branch failed ("then",
// "elseif[N]", "else"), and Render returns an empty string rather than
// propagating the panic.
//
// # Owned conditionals
//
// A conditional whose branches render a nested keyed list or component
// subtree can call Owned to associate a destroy registry; RenderOwned then
// tracks which branch's owner is currently live and, when the selected
// branch changes, tears the previous owner down asynchronously without
// blocking the caller. A runNumber epoch guards that teardown: if the
// conditional re-renders again before the old branch's async destructors
// finish, the stale completion is recognized as superseded and dropped
// instead of clobbering the newer state.
type IfDirective struct {
	condition      bool
	thenBranch     func() string
	elseIfBranches []ElseIfBranch
	elseBranch     func() string

	mu              sync.Mutex
	destroys        *destroy.Registry
	runNumber       int64
	activeOwner     tree.ID
	pendingTeardown tree.ID
}

// ElseIfBranch represents a single ElseIf condition and its associated branch.
//
// This type is used internally by IfDirective to store chained ElseIf conditions.
// Each ElseIfBranch contains a boolean condition and a function to execute if
// that condition is true (and all previous conditions were false).
type ElseIfBranch struct {
	condition bool
	branch    func() string
}

// If creates a new conditional directive with the given condition and then branch.
//
// The If function is the entry point for conditional rendering. It evaluates the
// condition and, if true, executes the then function. If false, it checks any
// ElseIf branches or the Else branch.
//
// Parameters:
//   - condition: Boolean expression to evaluate
//   - then: Function to execute if condition is true
//
// Returns:
//   - *IfDirective: A new If directive that can be chained with ElseIf/Else
//
// Example:
//
//	If(user.IsAdmin(), func() string {
//	    return "Admin Panel"
//	}).Else(func() string {
//	    return "User Panel"
//	}).Render()
//
// The returned directive implements ConditionalDirective, allowing method chaining
// for ElseIf and Else branches.
func If(condition bool, then func() string) *IfDirective {
	return &IfDirective{
		condition:      condition,
		thenBranch:     then,
		elseIfBranches: []ElseIfBranch{},
		elseBranch:     nil,
	}
}

// ElseIf adds an additional conditional branch to the directive chain.
//
// This method allows chaining multiple conditions, where each condition is
// evaluated in order until one is true. If this ElseIf's condition is true
// and all previous conditions were false, the provided then function is executed.
//
// Parameters:
//   - condition: Boolean expression to evaluate
//   - then: Function to execute if condition is true and all previous conditions were false
//
// Returns:
//   - ConditionalDirective: Self reference for method chaining
//
// Example:
//
//	If(score >= 90, func() string { return "A" }).
//	    ElseIf(score >= 80, func() string { return "B" }).
//	    ElseIf(score >= 70, func() string { return "C" }).
//	    Else(func() string { return "F" }).
//	    Render()
//
// ElseIf branches are evaluated in the order they are added. The first matching
// condition's branch is executed, and subsequent branches are skipped.
func (d *IfDirective) ElseIf(condition bool, then func() string) ConditionalDirective {
	d.elseIfBranches = append(d.elseIfBranches, ElseIfBranch{
		condition: condition,
		branch:    then,
	})
	return d
}

// Else provides a fallback branch when all previous conditions are false.
//
// This method completes the conditional chain by providing a default branch
// that executes when neither the initial If condition nor any ElseIf conditions
// are true. Only one Else can be specified per conditional chain.
//
// Parameters:
//   - then: Function to execute if all previous conditions were false
//
// Returns:
//   - ConditionalDirective: Self reference for method chaining (allows Render())
//
// Example:
//
//	If(hasData, func() string {
//	    return renderData()
//	}).Else(func() string {
//	    return "No data available"
//	}).Render()
//
// If Else is not called and all conditions are false, Render() returns an empty string.
func (d *IfDirective) Else(then func() string) ConditionalDirective {
	d.elseBranch = then
	return d
}

// selectBranch returns the branch function and its name ("then",
// "elseif[N]", "else", or "" if nothing matches) for the current
// conditions, without executing it.
func (d *IfDirective) selectBranch() (branch func() string, name string) {
	if d.condition {
		return d.thenBranch, "then"
	}
	for i, eb := range d.elseIfBranches {
		if eb.condition {
			return eb.branch, fmt.Sprintf("elseif[%d]", i)
		}
	}
	if d.elseBranch != nil {
		return d.elseBranch, "else"
	}
	return nil, ""
}

// Render executes the directive logic and returns the resulting string output.
//
// This method evaluates the conditional chain in order:
//  1. If the main condition is true, execute the then branch
//  2. Otherwise, check each ElseIf condition in order
//  3. If an ElseIf condition is true, execute its branch
//  4. If all conditions are false, execute the Else branch (if present)
//  5. If no Else branch and all conditions false, return empty string
//
// A panicking branch is recovered and reported; Render returns "" for that
// call rather than propagating the panic.
//
// Returns:
//   - string: The rendered output from the first matching branch, or empty string
func (d *IfDirective) Render() string {
	branch, name := d.selectBranch()
	if branch == nil {
		return ""
	}
	return d.renderSafely(branch, name)
}

// renderSafely executes branch with panic recovery, reporting a panic
// (when an error reporter is configured) tagged with which branch failed.
func (d *IfDirective) renderSafely(branch func() string, name string) (output string) {
	defer func() {
		if r := recover(); r != nil {
			output = ""
			if reporter := observability.GetErrorReporter(); reporter != nil {
				err := fmt.Errorf("%w: %s branch panicked: %v", ErrRenderPanic, name, r)
				ctx := &observability.ErrorContext{
					ComponentName: "If",
					Timestamp:     time.Now(),
					StackTrace:    debug.Stack(),
					Tags: map[string]string{
						"directive_type": "If",
						"branch_name":    name,
						"error_type":     "render_panic",
					},
					Extra: map[string]interface{}{
						"panic_value": r,
					},
				}
				reporter.ReportError(err, ctx)
			}
		}
	}()
	return branch()
}

// Owned associates this conditional with a destroy registry so RenderOwned
// can track, across calls, which branch's nested owner is currently live.
// A plain Render never needs this; it's for conditionals whose branches
// each mount a keyed list or component subtree with its own async
// teardown (spec's conditional-control-flow state machine).
func (d *IfDirective) Owned(destroys *destroy.Registry) *IfDirective {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.destroys = destroys
	return d
}

// RenderOwned is Render plus owner bookkeeping: newOwner is the tree.ID the
// about-to-render branch owns (0 if it owns nothing). If the previously
// rendered branch owned a different, non-zero owner, that owner's
// destructors are started through the registry's async path
// (DestroyingPrev) and awaited in a background goroutine rather than
// blocking this call; only a teardown with something outstanding is
// recorded in pendingTeardown. Every call bumps runNumber; the background
// awaiter re-checks runNumber when the teardown resolves and drops the
// result if another RenderOwned call has since superseded it, so a slow
// async destructor can never clobber newer state (spec §4.6).
func (d *IfDirective) RenderOwned(newOwner tree.ID) string {
	d.mu.Lock()
	d.runNumber++
	epoch := d.runNumber
	prevOwner := d.activeOwner
	d.activeOwner = newOwner
	destroys := d.destroys
	d.mu.Unlock()

	if destroys != nil && prevOwner != 0 && prevOwner != newOwner {
		var pending []destroy.Deferrable
		destroys.Destroy(prevOwner, &pending)
		if promise := combineIfPending(pending); promise != nil {
			d.mu.Lock()
			d.pendingTeardown = prevOwner
			d.mu.Unlock()

			go func() {
				<-promise
				d.mu.Lock()
				defer d.mu.Unlock()
				if d.runNumber != epoch {
					return // superseded by a later RenderOwned; stale, drop it
				}
				d.pendingTeardown = 0
			}()
		}
	}

	return d.Render()
}

// combineIfPending mirrors keyed's combineDeferrables: it resolves once
// every Deferrable in pending has resolved, or returns nil if pending is
// empty.
func combineIfPending(pending []destroy.Deferrable) destroy.Deferrable {
	if len(pending) == 0 {
		return nil
	}
	done := make(chan struct{})
	go func() {
		for _, p := range pending {
			<-p
		}
		close(done)
	}()
	return done
}
