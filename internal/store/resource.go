// Package store holds the dashboard's per-resource fetch state: the latest
// snapshot of one remote resource, a loading flag and an error message.
package store

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
)

// ErrSuperseded is returned by a fetch whose result was discarded because a
// newer fetch of the same resource started before it settled.
var ErrSuperseded = errors.New("fetch superseded by a newer request")

// State is an immutable snapshot of a resource. Data must be treated as
// read-only; stores replace it wholesale and never mutate it in place.
type State[T any] struct {
	Data    T
	Loading bool
	Error   string
}

// Resource tracks the fetch state of one remote resource. The most recently
// started fetch determines the visible state; older fetches are cancelled
// and their results dropped.
type Resource[T any] struct {
	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc
	zero   func() T

	subs    map[int]func(State[T])
	nextSub int
	seq     uint64

	// notifyMu serialises delivery; delivered drops notifications that
	// lost the race to a newer one.
	notifyMu  sync.Mutex
	delivered uint64
}

// NewResource returns a resource whose snapshot starts, and resets on
// error, to zero().
func NewResource[T any](zero func() T) *Resource[T] {
	if zero == nil {
		zero = func() T {
			var z T
			return z
		}
	}
	return &Resource[T]{
		state: State[T]{Data: zero()},
		zero:  zero,
		subs:  make(map[int]func(State[T])),
	}
}

// State returns the current snapshot.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Subscribe registers fn to receive every state change and returns a
// function that removes it. fn runs on the goroutine that changed the state
// and must not start a fetch synchronously.
func (r *Resource[T]) Subscribe(fn func(State[T])) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// Run executes fetch and folds its outcome into the state. Loading is set
// and Error cleared before fetch runs; the previous snapshot stays visible
// until the fetch settles. On error the snapshot resets to its zero value.
func (r *Resource[T]) Run(ctx context.Context, fetch func(context.Context) (T, error)) (State[T], error) {
	ctx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.gen++
	gen := r.gen
	r.cancel = cancel
	r.state.Loading = true
	r.state.Error = ""
	r.publishLocked()

	data, err := fetch(ctx)

	r.mu.Lock()
	if gen != r.gen {
		current := r.state
		r.mu.Unlock()
		cancel()
		return current, ErrSuperseded
	}
	r.cancel = nil
	cancel()

	if err != nil {
		r.state.Data = r.zero()
		r.state.Error = err.Error()
	} else {
		r.state.Data = data
	}
	r.state.Loading = false
	settled := r.state
	r.publishLocked()

	return settled, err
}

// publishLocked notifies subscribers of the current state. It must be
// called with mu held and releases it.
func (r *Resource[T]) publishLocked() {
	r.seq++
	seq := r.seq
	snap := r.state
	subs := make([]func(State[T]), 0, len(r.subs))
	for _, id := range slices.Sorted(maps.Keys(r.subs)) {
		subs = append(subs, r.subs[id])
	}
	r.mu.Unlock()

	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	if seq <= r.delivered {
		return
	}
	r.delivered = seq
	for _, fn := range subs {
		fn(snap)
	}
}
