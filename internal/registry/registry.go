// Package registry implements the process-global, name-keyed publication
// point factories are registered under (spec §6: "process-global, writing
// twice under the same name replaces the prior state; the replacement is
// atomic w.r.t. readers").
//
// This is the teacher's (runpod/hsm) syncmap.SyncMap[K, V] generic type,
// specialized in naming and trimmed to the subset of operations a
// write-once-at-startup, read-many registry needs: Register, Lookup, and
// Names for introspection. The underlying primitive is unchanged — a
// sync.Map plus an atomic.Int64 length counter — because sync.Map already
// gives exactly the atomicity the registry needs: Store is a single atomic
// publish, so a reader never observes a partially-constructed value.
package registry

import (
	"sync"
	"sync/atomic"
)

// Registry is a generic, concurrency-safe name-to-value map. V is typically
// a pointer type so that Store publishes a fully-constructed value in one
// atomic operation.
type Registry[V any] struct {
	items  sync.Map
	length atomic.Int64
}

// Register publishes value under name, replacing any prior value atomically
// with respect to concurrent Lookup calls.
func (r *Registry[V]) Register(name string, value V) {
	_, existed := r.items.Load(name)
	r.items.Store(name, value)
	if !existed {
		r.length.Add(1)
	}
}

// Lookup returns the value registered under name, if any.
func (r *Registry[V]) Lookup(name string) (V, bool) {
	item, ok := r.items.Load(name)
	if !ok {
		var zero V
		return zero, false
	}
	return item.(V), true
}

// Len returns the number of distinct names currently registered.
func (r *Registry[V]) Len() int {
	return int(r.length.Load())
}

// Names returns a snapshot of every registered name. Order is unspecified.
func (r *Registry[V]) Names() []string {
	names := make([]string, 0, r.Len())
	r.items.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	return names
}
