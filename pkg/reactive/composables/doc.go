/*
Package composables provides Vue 3-inspired reusable composition functions for BubblyUI.

# Overview

The composables package offers a collection of standard composable functions that encapsulate
common patterns for state management, side effects, async operations, and event handling.
Composables enable developers to extract and reuse component logic across the application
while maintaining type safety through Go generics.

# Core Concepts

Composables are functions that:
  - Accept a Context as the first parameter
  - Return reactive values (Ref, Computed) and helper functions
  - Integrate with the component lifecycle
  - Are type-safe using Go generics
  - Follow the Use* naming convention

All composables are designed to work seamlessly with BubblyUI's component system and
reactivity primitives.

# Quick Start

Use composables in a component's Setup function:

	import "github.com/arbor-ui/arbor/pkg/reactive/composables"

	reactive.NewComponent("MyComponent").
	    Setup(func(ctx *reactive.Context) {
	        // List state management
	        todos := composables.UseList(ctx, []string{})
	        todos.Push("write docs")

	        // Async data fetching
	        userData := composables.UseAsync(ctx, func() (*User, error) {
	            return fetchUser()
	        })

	        ctx.OnMounted(func() {
	            userData.Execute()
	        })

	        ctx.Expose("todos", todos)
	        ctx.Expose("user", userData.Data)
	    }).
	    Build()

# Standard Composables

The package provides four composables (UseEffect, UseAsync, UseList and
UseLogger) plus a factory helper (CreateShared). It has no UseState,
UseDebounce, UseThrottle, UseForm, UseLocalStorage or UseEventListener.

UseEffect: Side effect management with dependency tracking.

	composables.UseEffect(ctx, func() composables.UseEffectCleanup {
	    fmt.Println("Effect executed")
	    return func() {
	        fmt.Println("Cleanup executed")
	    }
	}, dependency1, dependency2)

UseAsync[T]: Async data fetching with loading, error, and data states.

	async := composables.UseAsync(ctx, func() (*User, error) {
	    return api.FetchUser()
	})
	async.Execute()                // Trigger fetch
	user := async.Data.Get()       // Access result
	loading := async.Loading.Get() // Check loading state

UseList[T]: Slice state with list operations and computed Length and IsEmpty.

	list := composables.UseList(ctx, []int{1, 2})
	list.Push(3)                // [1, 2, 3]
	item, ok := list.Pop()      // item=3, ok=true, list=[1, 2]
	n := list.Length.GetTyped() // 2

UseLogger: Component logging with level filtering and a log history.

	logger := composables.UseLogger(ctx, "MyComponent")
	logger.Level.Set(composables.LogLevelWarn)
	logger.Info("not recorded") // below the current level
	logger.Warn("recorded")     // appended to logger.Logs

# Shared Composables

CreateShared[T]: Factory helper for creating singleton composables.
Inspired by VueUse's createSharedComposable, this enables sharing state
and logic across multiple components without prop drilling or global variables.

	// Define a shared composable at package level
	var UseSharedCounter = composables.CreateShared(
	    func(ctx *bubbly.Context) *CounterComposable {
	        return UseCounter(ctx, 0)
	    },
	)

	// In any component - same instance across all
	counter := UseSharedCounter(ctx)

Key features:
  - Thread-safe initialization via sync.Once
  - Type-safe with Go generics
  - Factory called exactly once, subsequent calls return cached instance
  - Enables global state, singleton services, cross-component communication

Use cases:
  - Global application state (user session, preferences)
  - Singleton services (API clients, loggers)
  - Cross-component communication without prop drilling
  - Shared caches or data stores

# Integration with Component System

Composables integrate naturally with BubblyUI components:

	reactive.NewComponent("Todos").
	    Setup(func(ctx *reactive.Context) {
	        // Use composable
	        todos := composables.UseList(ctx, []string{})

	        // Register event handler
	        ctx.On("add", func(data interface{}) {
	            todos.Push(data.(string))
	        })

	        // Expose to template
	        ctx.Expose("todos", todos)
	    }).
	    Template(func(ctx reactive.RenderContext) string {
	        todos := ctx.Get("todos").(*composables.ListReturn[string])
	        return fmt.Sprintf("Todos: %d", todos.Length.GetTyped())
	    }).
	    Build()

# Composable Composition

Composables can call other composables to build higher-level abstractions:

	func UseAuth(ctx *bubbly.Context) UseAuthReturn {
	    // Inject user from parent
	    userKey := bubbly.NewProvideKey[*bubbly.Ref[*User]]("currentUser")
	    user := bubbly.InjectTyped(ctx, userKey, ctx.Ref[*User](nil))

	    // Computed authentication state
	    isAuthenticated := ctx.Computed(func() bool {
	        return user.GetTyped() != nil
	    })

	    return UseAuthReturn{
	        User:            user,
	        IsAuthenticated: isAuthenticated,
	    }
	}

	// Usage in component
	Setup(func(ctx *bubbly.Context) {
	    auth := UseAuth(ctx)
	    ctx.Expose("isAuthenticated", auth.IsAuthenticated)
	})

# Complete Examples

Message queue with logging:

	Setup(func(ctx *reactive.Context) {
	    messages := composables.UseList(ctx, []string{})
	    logger := composables.UseLogger(ctx, "Inbox")

	    ctx.On("newMessage", func(data interface{}) {
	        messages.Push(data.(string))
	        logger.Info("Message queued", data)
	    })

	    ctx.On("processMessage", func(_ interface{}) {
	        if msg, ok := messages.Shift(); ok {
	            logger.Debug("Processing", msg)
	        }
	    })

	    ctx.Expose("messages", messages)
	})

Search that re-runs on a dependency change:

	Setup(func(ctx *reactive.Context) {
	    searchTerm := reactive.NewRef("")

	    composables.UseEffect(ctx, func() composables.UseEffectCleanup {
	        if term := searchTerm.GetTyped(); term != "" {
	            performSearch(term)
	        }
	        return nil
	    }, searchTerm)

	    ctx.Expose("searchTerm", searchTerm)
	})

Async data loading:

	Setup(func(ctx *bubbly.Context) {
	    userData := composables.UseAsync(ctx, func() (*User, error) {
	        return api.FetchUser(userID)
	    })

	    ctx.OnMounted(func() {
	        userData.Execute()
	    })

	    ctx.Expose("user", userData.Data)
	    ctx.Expose("loading", userData.Loading)
	    ctx.Expose("error", userData.Error)
	})

# Common Patterns

Toggle state:

	func UseToggle(ctx *reactive.Context, initial bool) (*reactive.Ref[bool], func()) {
	    state := reactive.NewRef(initial)

	    toggle := func() {
	        state.Set(!state.GetTyped())
	    }

	    return state, toggle
	}

# Best Practices

Return named structs: Return composable state in structs with descriptive field names.

	type UseCounterReturn struct {
	    Count     *bubbly.Ref[int]
	    Increment func()
	    Decrement func()
	}

Use type parameters: Leverage Go generics for type-safe composables.

	func UseList[T any](ctx *reactive.Context, initial []T) *ListReturn[T]

Register cleanup: Use lifecycle hooks or return cleanup functions.

	composables.UseEffect(ctx, func() composables.UseEffectCleanup {
	    // Setup
	    return func() {
	        // Cleanup
	    }
	})

Avoid global state: Use Context or closures for composable state, never globals.

	// ❌ Bad: Global state leaks between instances
	var globalCount int

	// ✅ Good: Context-based state is isolated
	count := ctx.Ref(initial)

Document contracts: Add godoc comments explaining parameters, return values, and behavior.

Compose liberally: Build high-level composables from low-level ones.

# Performance

Composables are designed for minimal overhead:

  - UseEffect: Delegates to lifecycle system (minimal overhead)
  - UseAsync: Goroutine-based async execution (< 1μs)
  - UseList: One Ref and two Computed values; each operation copies or re-slices the list
  - UseLogger: Two Refs; each log call appends to the history

All composables integrate with BubblyUI's reactivity system for efficient change propagation.

# Thread Safety

All composables are thread-safe:

  - State management uses thread-safe Ref primitives
  - UseAsync spawns goroutines safely
  - UseList and UseLogger guard their operations with a mutex

Multiple goroutines can safely call composable functions and returned helpers concurrently.

# Error Handling

UseAsync stores the fetcher's error in its Error ref. The composables do not
report errors to the observability package.

# Testing

Test composables independently using a test context:

	func TestUseList(t *testing.T) {
	    ctx := reactive.NewTestContext()
	    list := composables.UseList(ctx, []int{})

	    list.Push(5)
	    assert.Equal(t, []int{5}, list.Items.GetTyped())
	}

Integration tests verify composables work within components:

	func TestComponentWithComposable(t *testing.T) {
	    component, _ := reactive.NewComponent("Test").
	        Setup(func(ctx *reactive.Context) {
	            todos := composables.UseList(ctx, []string{})
	            ctx.Expose("todos", todos)
	        }).
	        Build()

	    component.Init()
	    // Assert component behavior
	}

# Package Structure

The package is organized into focused files:

  - use_effect.go: Side effect handling
  - use_async.go: Async operations
  - use_list.go: List management
  - use_logger.go: Component logging
  - shared.go: CreateShared factory for singleton composables
  - errors.go: Sentinel errors

Each file includes comprehensive godoc and usage examples.

# Design Philosophy

The composables package follows these principles:

  - Type Safety: Leverage Go generics for compile-time checking
  - Reusability: Extract common patterns into composable functions
  - Simplicity: Clean, intuitive APIs inspired by Vue 3 and React hooks
  - Integration: Seamless integration with BubblyUI's component system
  - Testability: Composables are independently testable
  - Performance: Optimize for minimal overhead and efficient resource usage

# Compatibility

  - Requires Go 1.22+ (generics)
  - Requires github.com/arbor-ui/arbor/pkg/reactive (component system)
  - Compatible with Bubbletea-based applications

# Further Reading

See the README.md file for a comprehensive user guide with tutorials and examples.

For core reactivity concepts, see the bubbly package documentation.

For component integration, see the bubbly component documentation.

# License

See the LICENSE file in the repository root.
*/
package composables
