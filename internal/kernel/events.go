package kernel

import "sync"

// Event names the two execution lifecycle events a host kernel publishes.
type Event string

const (
	// BeforeUnit fires immediately before a unit of execution starts.
	// It carries no payload.
	BeforeUnit Event = "before-unit"

	// AfterUnit fires immediately after a unit of execution finishes.
	// It carries the unit's Result.
	AfterUnit Event = "after-unit"
)

// Subscription is a handle returned by the subscribe calls. Passing it to
// Unsubscribe removes the callback; unsubscribing a handle twice is a no-op.
type Subscription struct {
	event Event
	id    int
}

// Event returns the event this subscription is attached to.
func (s Subscription) Event() Event { return s.event }

// Bus is the execution-event bus. Host kernels publish BeforeUnit/AfterUnit
// around every run; observers attach callbacks via the subscribe calls.
//
// Callbacks run synchronously on the publisher's goroutine, in registration
// order, and must not block for long.
type Bus struct {
	mu     sync.Mutex
	nextID int
	before map[int]func()
	after  map[int]func(Result)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		before: make(map[int]func()),
		after:  make(map[int]func(Result)),
	}
}

// SubscribeBefore attaches a callback to the before-unit event.
func (b *Bus) SubscribeBefore(fn func()) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.before[b.nextID] = fn
	return Subscription{event: BeforeUnit, id: b.nextID}
}

// SubscribeAfter attaches a callback to the after-unit event.
func (b *Bus) SubscribeAfter(fn func(Result)) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.after[b.nextID] = fn
	return Subscription{event: AfterUnit, id: b.nextID}
}

// Unsubscribe detaches the callback behind the handle. Unknown or already
// removed handles are ignored.
func (b *Bus) Unsubscribe(s Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch s.event {
	case BeforeUnit:
		delete(b.before, s.id)
	case AfterUnit:
		delete(b.after, s.id)
	}
}

// EmitBefore publishes the before-unit event to all subscribers.
func (b *Bus) EmitBefore() {
	for _, fn := range b.beforeSnapshot() {
		fn()
	}
}

// EmitAfter publishes the after-unit event with the given result.
func (b *Bus) EmitAfter(r Result) {
	for _, fn := range b.afterSnapshot() {
		fn(r)
	}
}

// Snapshots are taken under the lock so a callback may unsubscribe itself
// without deadlocking the publish loop.
func (b *Bus) beforeSnapshot() []func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	fns := make([]func(), 0, len(b.before))
	for id := 1; id <= b.nextID; id++ {
		if fn, ok := b.before[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

func (b *Bus) afterSnapshot() []func(Result) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fns := make([]func(Result), 0, len(b.after))
	for id := 1; id <= b.nextID; id++ {
		if fn, ok := b.after[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
