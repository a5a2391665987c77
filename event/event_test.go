package event

import (
	"testing"

	"xdao.co/oraclereg/curve"
	"xdao.co/oraclereg/keyspace"
)

func TestRecorderOrder(t *testing.T) {
	rec := &Recorder{}
	var id keyspace.Identity
	id[0] = 0xA1

	rec.Publish(ProviderRegistered{Identity: id, Title: keyspace.MustLabel("acme")})
	rec.Publish(CurveRegistered{Identity: id, Endpoint: keyspace.MustLabel("spot"), Curve: curve.Curve{1, 5, 10}})

	topics := rec.Topics()
	if len(topics) != 2 {
		t.Fatalf("topics: got %d want 2", len(topics))
	}
	if topics[0] != TopicProviderRegistered || topics[1] != TopicCurveRegistered {
		t.Fatalf("topic order: %v", topics)
	}

	evts := rec.Events()
	pr, ok := evts[0].(ProviderRegistered)
	if !ok || pr.Title.String() != "acme" {
		t.Fatalf("event 0: %+v", evts[0])
	}
	cr, ok := evts[1].(CurveRegistered)
	if !ok || len(cr.Curve) != 3 {
		t.Fatalf("event 1: %+v", evts[1])
	}
}

func TestRecorderSnapshotIsolated(t *testing.T) {
	rec := &Recorder{}
	rec.Publish(ProviderRegistered{})
	snap := rec.Events()
	rec.Publish(ProviderRegistered{})
	if len(snap) != 1 {
		t.Fatalf("snapshot grew after later publish")
	}
}

func TestDiscard(t *testing.T) {
	// Must simply not panic.
	Discard{}.Publish(ProviderRegistered{})
}
