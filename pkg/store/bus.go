package store

import "sync"

// Topic names a change-broadcast signal. Views that render a collection
// subscribe to its topic and re-read the store when it fires; this is the
// only cross-view communication mechanism.
type Topic string

const (
	TopicEventsUpdated        Topic = "eventsUpdated"
	TopicEventPriorityUpdated Topic = "eventPriorityUpdated"
	TopicDeadlinesUpdated     Topic = "deadlinesUpdated"
	TopicConversationsUpdated Topic = "conversationsUpdated"
)

// Bus is a minimal synchronous in-process publish/subscribe hub.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Topic]map[int]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]func())}
}

// Subscribe registers fn for a topic and returns an unsubscribe func.
// Callers must unsubscribe when their view goes away so they never act
// on stale closures.
func (b *Bus) Subscribe(t Topic, fn func()) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[t] == nil {
		b.subs[t] = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[t][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[t], id)
	}
}

// Publish invokes every subscriber of a topic synchronously, in
// arbitrary order. There is no concurrent writer in this system, so
// subscribers observe the store state that caused the publish.
func (b *Bus) Publish(t Topic) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[t]))
	for _, fn := range b.subs[t] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
