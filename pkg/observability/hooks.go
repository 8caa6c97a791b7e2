// Package observability provides hooks for instrumenting treemark internals.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific backends. Consumers register hooks at startup to
// receive events about node lifecycle, rendering, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library free of observability framework dependencies
//   - Makes node allocation and release countable in tests
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTreeHooks(&myTreeHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tree().OnNodeAlloc(label)
//	// ... later ...
//	observability.Tree().OnNodeFree(label)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Tree Hooks
// =============================================================================

// TreeHooks receives node lifecycle events from the tree package.
//
// OnNodeFree fires once per node in the normative destruction order
// (siblings before children), so a counting implementation can verify both
// the number and the sequence of releases.
type TreeHooks interface {
	// OnNodeAlloc records the allocation of a node.
	OnNodeAlloc(label string)

	// OnNodeFree records the release of a node.
	OnNodeFree(label string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from tree rendering.
type RenderHooks interface {
	// OnRenderStart records the start of a render operation.
	OnRenderStart(format string, nodeCount int)

	// OnRenderComplete records the end of a render operation.
	OnRenderComplete(format string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTreeHooks is a no-op implementation of TreeHooks.
type NoopTreeHooks struct{}

func (NoopTreeHooks) OnNodeAlloc(string) {}
func (NoopTreeHooks) OnNodeFree(string)  {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string, int)                     {}
func (NoopRenderHooks) OnRenderComplete(string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)      {}
func (NoopCacheHooks) OnCacheMiss(string)     {}
func (NoopCacheHooks) OnCacheSet(string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	treeHooks   TreeHooks   = NoopTreeHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetTreeHooks registers custom tree hooks.
// This should be called once at application startup before any tree operations.
func SetTreeHooks(h TreeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		treeHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render operations.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Tree returns the registered tree hooks.
func Tree() TreeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return treeHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	treeHooks = NoopTreeHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}
