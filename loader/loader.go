// Package loader implements request-scoped key batching for relation
// resolution.
//
// A Loader coalesces every key requested during the current
// synchronous phase into one batch, dispatches the batch through a
// single store lookup when the first thunk is forced, and memoizes
// results (including misses) for the lifetime of the request. A
// Bundle groups one loader per related-entity kind and is constructed
// fresh for every incoming request, never shared across requests, so
// the store stays the only source of truth between requests.
package loader

import (
	"context"
	"sync"

	"socialgraph/metrics"
)

// BatchFunc resolves a batch of distinct keys in one store lookup.
// Keys absent from the returned map resolve as "not found".
type BatchFunc[K comparable, V any] func(keys []K) map[K]V

// Thunk returns the resolved value for a previously loaded key,
// forcing the pending batch on first use. The bool is false when the
// key did not resolve.
type Thunk[V any] func() (V, bool)

type result[V any] struct {
	value V
	ok    bool
}

type batch[K comparable, V any] struct {
	once    sync.Once
	keys    []K
	seen    map[K]struct{}
	results map[K]result[V]
}

// Loader batches and caches lookups for one related-entity kind
// within a single request.
type Loader[K comparable, V any] struct {
	kind  string
	fetch BatchFunc[K, V]

	mu      sync.Mutex
	cache   map[K]result[V]
	pending *batch[K, V]
}

// New creates a Loader for one entity kind. kind labels the batch
// dispatch metric.
func New[K comparable, V any](kind string, fetch BatchFunc[K, V]) *Loader[K, V] {
	return &Loader[K, V]{
		kind:  kind,
		fetch: fetch,
		cache: make(map[K]result[V]),
	}
}

// Load enqueues the key on the pending batch and returns a thunk for
// its value. A cache hit returns immediately without touching the
// batch. Each distinct key causes at most one underlying store lookup
// for the loader's lifetime.
func (l *Loader[K, V]) Load(key K) Thunk[V] {
	l.mu.Lock()
	if r, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return func() (V, bool) { return r.value, r.ok }
	}

	if l.pending == nil {
		l.pending = &batch[K, V]{seen: make(map[K]struct{})}
	}
	b := l.pending
	if _, queued := b.seen[key]; !queued {
		b.seen[key] = struct{}{}
		b.keys = append(b.keys, key)
	}
	l.mu.Unlock()

	return func() (V, bool) {
		l.dispatch(b)
		r := b.results[key]
		return r.value, r.ok
	}
}

// Get loads the key and forces it immediately. Convenient for callers
// outside a batching tick (REST handlers, mutations).
func (l *Loader[K, V]) Get(key K) (V, bool) {
	return l.Load(key)()
}

// dispatch runs the batch exactly once, retiring it from the pending
// slot so later loads start a new tick. Concurrent thunks block until
// the first caller has distributed results.
func (l *Loader[K, V]) dispatch(b *batch[K, V]) {
	b.once.Do(func() {
		l.mu.Lock()
		if l.pending == b {
			l.pending = nil
		}
		keys := b.keys
		l.mu.Unlock()

		fetched := l.fetch(keys)
		metrics.LoaderBatches.WithLabelValues(l.kind).Inc()

		results := make(map[K]result[V], len(keys))
		l.mu.Lock()
		for _, k := range keys {
			v, ok := fetched[k]
			r := result[V]{value: v, ok: ok}
			results[k] = r
			l.cache[k] = r
		}
		l.mu.Unlock()
		b.results = results
	})
}

type ctxKey struct{}

// NewContext returns a context carrying the request's Bundle.
func NewContext(ctx context.Context, b *Bundle) context.Context {
	return context.WithValue(ctx, ctxKey{}, b)
}

// FromContext returns the request's Bundle, false if none was attached.
func FromContext(ctx context.Context) (*Bundle, bool) {
	b, ok := ctx.Value(ctxKey{}).(*Bundle)
	return b, ok
}
