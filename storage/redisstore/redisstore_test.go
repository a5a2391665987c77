package redisstore

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
	"xdao.co/oraclereg/storage/storetest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb)
}

func TestRedisstoreConformance(t *testing.T) {
	storetest.RunStoreConformance(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestPrefixIsolation(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := New(rdb)
	a.Prefix = "a:"
	b := New(rdb)
	b.Prefix = "b:"

	if err := a.SetLabel("k", keyspace.MustLabel("alpha")); err != nil {
		t.Fatalf("SetLabel: %v", err)
	}
	got, err := b.GetLabel("k")
	if err != nil {
		t.Fatalf("GetLabel: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("prefix b read a's value: %q", got.String())
	}
}
