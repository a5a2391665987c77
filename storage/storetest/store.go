// Package storetest holds a conformance suite every storage.Store backend
// must pass.
package storetest

import (
	"math/big"
	"testing"

	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
)

// NewStore constructs a fresh, empty Store instance for a test.
// The returned Store MUST be isolated from other tests.
type NewStore func(t *testing.T) storage.Store

func RunStoreConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	key := func(parts ...string) keyspace.Key {
		segs := make([]keyspace.Segment, 0, len(parts))
		for _, p := range parts {
			segs = append(segs, keyspace.Tag(p))
		}
		return keyspace.Derive(segs...)
	}
	ident := func(b byte) keyspace.Identity {
		var id keyspace.Identity
		for i := range id {
			id[i] = b
		}
		return id
	}

	t.Run("AbsentKeysReadZero", func(t *testing.T) {
		s := newStore(t)
		k := key("absent")

		n, err := s.GetNumber(k)
		if err != nil {
			t.Fatalf("GetNumber: %v", err)
		}
		if n.Sign() != 0 {
			t.Fatalf("absent number: got %s want 0", n)
		}
		l, err := s.GetLabel(k)
		if err != nil {
			t.Fatalf("GetLabel: %v", err)
		}
		if !l.IsZero() {
			t.Fatalf("absent label: got %q", l.String())
		}
		is, err := s.GetInts(k)
		if err != nil {
			t.Fatalf("GetInts: %v", err)
		}
		if len(is) != 0 {
			t.Fatalf("absent ints: got %v", is)
		}
		ls, err := s.GetLabels(k)
		if err != nil {
			t.Fatalf("GetLabels: %v", err)
		}
		if len(ls) != 0 {
			t.Fatalf("absent labels: got %d entries", len(ls))
		}
		ids, err := s.GetIdentities(k)
		if err != nil {
			t.Fatalf("GetIdentities: %v", err)
		}
		if len(ids) != 0 {
			t.Fatalf("absent identities: got %d entries", len(ids))
		}
		for name, fn := range map[string]func(keyspace.Key) (int, error){
			"IntsLen": s.IntsLen, "LabelsLen": s.LabelsLen, "IdentitiesLen": s.IdentitiesLen,
		} {
			n, err := fn(k)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if n != 0 {
				t.Fatalf("%s of absent key: got %d", name, n)
			}
		}
	})

	t.Run("NumberRoundTrip", func(t *testing.T) {
		s := newStore(t)
		k := key("num")

		big256 := new(big.Int).Lsh(big.NewInt(1), 255)
		if err := s.SetNumber(k, big256); err != nil {
			t.Fatalf("SetNumber: %v", err)
		}
		got, err := s.GetNumber(k)
		if err != nil {
			t.Fatalf("GetNumber: %v", err)
		}
		if got.Cmp(big256) != 0 {
			t.Fatalf("number round trip: got %s want %s", got, big256)
		}

		if err := s.SetNumber(k, big.NewInt(7)); err != nil {
			t.Fatalf("SetNumber overwrite: %v", err)
		}
		got, _ = s.GetNumber(k)
		if got.Int64() != 7 {
			t.Fatalf("number overwrite: got %s want 7", got)
		}

		if err := s.SetNumber(k, big.NewInt(-1)); !storage.IsNegative(err) {
			t.Fatalf("negative number: got err=%v want ErrNegativeNumber", err)
		}
		got, _ = s.GetNumber(k)
		if got.Int64() != 7 {
			t.Fatalf("failed write mutated value: got %s", got)
		}
	})

	t.Run("LabelRoundTrip", func(t *testing.T) {
		s := newStore(t)
		k := key("label")
		want := keyspace.MustLabel("on-chain")

		if err := s.SetLabel(k, want); err != nil {
			t.Fatalf("SetLabel: %v", err)
		}
		got, err := s.GetLabel(k)
		if err != nil {
			t.Fatalf("GetLabel: %v", err)
		}
		if got != want {
			t.Fatalf("label round trip: got %q want %q", got.String(), want.String())
		}
	})

	t.Run("IntArray", func(t *testing.T) {
		s := newStore(t)
		k := key("ints")

		if err := s.SetInts(k, []int64{1, -5, 10}); err != nil {
			t.Fatalf("SetInts: %v", err)
		}
		if err := s.PushInt(k, 42); err != nil {
			t.Fatalf("PushInt: %v", err)
		}
		n, err := s.IntsLen(k)
		if err != nil {
			t.Fatalf("IntsLen: %v", err)
		}
		if n != 4 {
			t.Fatalf("IntsLen: got %d want 4", n)
		}
		got, err := s.GetInts(k)
		if err != nil {
			t.Fatalf("GetInts: %v", err)
		}
		want := []int64{1, -5, 10, 42}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("GetInts: got %v want %v", got, want)
			}
		}

		// Wholesale replacement, not append.
		if err := s.SetInts(k, []int64{9}); err != nil {
			t.Fatalf("SetInts replace: %v", err)
		}
		got, _ = s.GetInts(k)
		if len(got) != 1 || got[0] != 9 {
			t.Fatalf("SetInts replace: got %v want [9]", got)
		}
	})

	t.Run("LabelArray", func(t *testing.T) {
		s := newStore(t)
		k := key("labels")
		a := keyspace.MustLabel("alpha")
		b := keyspace.MustLabel("beta")

		if err := s.PushLabel(k, a); err != nil {
			t.Fatalf("PushLabel: %v", err)
		}
		if err := s.PushLabel(k, b); err != nil {
			t.Fatalf("PushLabel: %v", err)
		}
		n, err := s.LabelsLen(k)
		if err != nil {
			t.Fatalf("LabelsLen: %v", err)
		}
		if n != 2 {
			t.Fatalf("LabelsLen: got %d want 2", n)
		}
		got, err := s.GetLabels(k)
		if err != nil {
			t.Fatalf("GetLabels: %v", err)
		}
		if len(got) != 2 || got[0] != a || got[1] != b {
			t.Fatalf("GetLabels: insertion order not preserved: %v", got)
		}

		if err := s.SetLabels(k, []keyspace.Label{b}); err != nil {
			t.Fatalf("SetLabels: %v", err)
		}
		got, _ = s.GetLabels(k)
		if len(got) != 1 || got[0] != b {
			t.Fatalf("SetLabels replace: got %d entries", len(got))
		}
	})

	t.Run("IdentityArray", func(t *testing.T) {
		s := newStore(t)
		k := key("index")
		a, b := ident(0xA1), ident(0xB2)

		if err := s.PushIdentity(k, a); err != nil {
			t.Fatalf("PushIdentity: %v", err)
		}
		if err := s.PushIdentity(k, b); err != nil {
			t.Fatalf("PushIdentity: %v", err)
		}
		n, err := s.IdentitiesLen(k)
		if err != nil {
			t.Fatalf("IdentitiesLen: %v", err)
		}
		if n != 2 {
			t.Fatalf("IdentitiesLen: got %d want 2", n)
		}
		got, err := s.IdentityAt(k, 1)
		if err != nil {
			t.Fatalf("IdentityAt: %v", err)
		}
		if got != b {
			t.Fatalf("IdentityAt(1): got %s want %s", got, b)
		}
		if _, err := s.IdentityAt(k, 2); !storage.IsOutOfRange(err) {
			t.Fatalf("IdentityAt(2): got err=%v want ErrOutOfRange", err)
		}
		if _, err := s.IdentityAt(k, -1); !storage.IsOutOfRange(err) {
			t.Fatalf("IdentityAt(-1): got err=%v want ErrOutOfRange", err)
		}
		all, err := s.GetIdentities(k)
		if err != nil {
			t.Fatalf("GetIdentities: %v", err)
		}
		if len(all) != 2 || all[0] != a || all[1] != b {
			t.Fatalf("GetIdentities: insertion order not preserved")
		}
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		s := newStore(t)
		k1 := key("a", "b")
		k2 := key("a", "c")

		if err := s.SetNumber(k1, big.NewInt(1)); err != nil {
			t.Fatalf("SetNumber: %v", err)
		}
		got, err := s.GetNumber(k2)
		if err != nil {
			t.Fatalf("GetNumber: %v", err)
		}
		if got.Sign() != 0 {
			t.Fatalf("write to %s leaked into %s", k1, k2)
		}
	})

	t.Run("CallerCannotAliasArrays", func(t *testing.T) {
		s := newStore(t)
		k := key("alias")
		in := []int64{1, 2, 3}
		if err := s.SetInts(k, in); err != nil {
			t.Fatalf("SetInts: %v", err)
		}
		in[0] = 99
		got, err := s.GetInts(k)
		if err != nil {
			t.Fatalf("GetInts: %v", err)
		}
		if got[0] != 1 {
			t.Fatalf("store retained caller slice")
		}
		got[1] = 99
		again, _ := s.GetInts(k)
		if again[1] != 2 {
			t.Fatalf("store handed out shared slice")
		}
	})
}
