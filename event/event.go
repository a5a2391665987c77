// Package event carries the registry's fire-and-forget notifications.
//
// Delivery is observational only: the registry never depends on a publisher
// for correctness, and publishers cannot fail an operation.
package event

import (
	"sync"

	"xdao.co/oraclereg/curve"
	"xdao.co/oraclereg/keyspace"
)

// Topic names an event type.
type Topic string

const (
	TopicProviderRegistered Topic = "registry:provider-registered"
	TopicCurveRegistered    Topic = "registry:curve-registered"
)

// Event is a published payload tagged with its topic.
type Event interface {
	Topic() Topic
}

// ProviderRegistered is published after a provider registration commits.
type ProviderRegistered struct {
	Identity keyspace.Identity
	Title    keyspace.Label
}

func (ProviderRegistered) Topic() Topic { return TopicProviderRegistered }

// CurveRegistered is published after a curve registration commits.
type CurveRegistered struct {
	Identity keyspace.Identity
	Endpoint keyspace.Label
	Curve    curve.Curve
}

func (CurveRegistered) Topic() Topic { return TopicCurveRegistered }

// Publisher receives events. Publish must not block indefinitely.
type Publisher interface {
	Publish(e Event)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Publish(Event) {}

// Recorder retains events in publish order. Safe for concurrent use;
// intended for tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a snapshot of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Topics returns the topics of everything published so far, in order.
func (r *Recorder) Topics() []Topic {
	evts := r.Events()
	out := make([]Topic, 0, len(evts))
	for _, e := range evts {
		out = append(out, e.Topic())
	}
	return out
}
