package storage

import (
	"math/big"

	"xdao.co/oraclereg/keyspace"
)

// Store is the generic hash-addressed key-value interface the registry is a
// schema layer over. Values come in four element kinds: numbers, labels, and
// variable-length arrays of int64s, labels, or identities.
//
// Contract:
// - Reads of absent keys MUST return zero values (zero number, zero label,
//   empty array), never an error. Errors are reserved for store or transport
//   failures and are propagated to callers unmodified.
// - Each operation MUST be atomic: its write is either fully visible or not
//   at all.
// - Implementations MUST NOT retain or share slices passed in or handed out.
// - Numbers are non-negative; SetNumber MUST reject negatives with
//   ErrNegativeNumber.
//
// The identity array is append-only (it backs the global provider index), so
// there is no SetIdentities.
type Store interface {
	GetNumber(key keyspace.Key) (*big.Int, error)
	SetNumber(key keyspace.Key, v *big.Int) error

	GetLabel(key keyspace.Key) (keyspace.Label, error)
	SetLabel(key keyspace.Key, v keyspace.Label) error

	GetInts(key keyspace.Key) ([]int64, error)
	SetInts(key keyspace.Key, vs []int64) error
	PushInt(key keyspace.Key, v int64) error
	IntsLen(key keyspace.Key) (int, error)

	GetLabels(key keyspace.Key) ([]keyspace.Label, error)
	SetLabels(key keyspace.Key, vs []keyspace.Label) error
	PushLabel(key keyspace.Key, v keyspace.Label) error
	LabelsLen(key keyspace.Key) (int, error)

	GetIdentities(key keyspace.Key) ([]keyspace.Identity, error)
	PushIdentity(key keyspace.Key, v keyspace.Identity) error
	IdentityAt(key keyspace.Key, i int) (keyspace.Identity, error)
	IdentitiesLen(key keyspace.Key) (int, error)
}

// Resolver hands out store references by role name (e.g. "DATABASE").
// Implementations are expected to return a usable store for every role they
// advertise; the registry re-resolves on demand to pick up upgrades.
type Resolver interface {
	Resolve(name string) (Store, error)
}
