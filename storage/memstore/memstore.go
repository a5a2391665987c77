// Package memstore provides an in-memory storage.Store, the default backend
// for tests and single-process use.
package memstore

import (
	"math/big"
	"sync"

	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
)

// Store is a map-backed storage.Store. Safe for concurrent use.
//
// All reads and writes copy, so callers can never alias internal state.
type Store struct {
	mu         sync.RWMutex
	numbers    map[keyspace.Key]*big.Int
	labels     map[keyspace.Key]keyspace.Label
	ints       map[keyspace.Key][]int64
	labelArrs  map[keyspace.Key][]keyspace.Label
	identities map[keyspace.Key][]keyspace.Identity
}

func New() *Store {
	return &Store{
		numbers:    map[keyspace.Key]*big.Int{},
		labels:     map[keyspace.Key]keyspace.Label{},
		ints:       map[keyspace.Key][]int64{},
		labelArrs:  map[keyspace.Key][]keyspace.Label{},
		identities: map[keyspace.Key][]keyspace.Identity{},
	}
}

func (s *Store) GetNumber(key keyspace.Key) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.numbers[key]
	if !ok {
		return new(big.Int), nil
	}
	return new(big.Int).Set(v), nil
}

func (s *Store) SetNumber(key keyspace.Key, v *big.Int) error {
	if v != nil && v.Sign() < 0 {
		return storage.ErrNegativeNumber
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v == nil {
		s.numbers[key] = new(big.Int)
		return nil
	}
	s.numbers[key] = new(big.Int).Set(v)
	return nil
}

func (s *Store) GetLabel(key keyspace.Key) (keyspace.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labels[key], nil
}

func (s *Store) SetLabel(key keyspace.Key, v keyspace.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels[key] = v
	return nil
}

func (s *Store) GetInts(key keyspace.Key) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vs := s.ints[key]
	out := make([]int64, len(vs))
	copy(out, vs)
	return out, nil
}

func (s *Store) SetInts(key keyspace.Key, vs []int64) error {
	cp := make([]int64, len(vs))
	copy(cp, vs)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints[key] = cp
	return nil
}

func (s *Store) PushInt(key keyspace.Key, v int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints[key] = append(s.ints[key], v)
	return nil
}

func (s *Store) IntsLen(key keyspace.Key) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ints[key]), nil
}

func (s *Store) GetLabels(key keyspace.Key) ([]keyspace.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vs := s.labelArrs[key]
	out := make([]keyspace.Label, len(vs))
	copy(out, vs)
	return out, nil
}

func (s *Store) SetLabels(key keyspace.Key, vs []keyspace.Label) error {
	cp := make([]keyspace.Label, len(vs))
	copy(cp, vs)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labelArrs[key] = cp
	return nil
}

func (s *Store) PushLabel(key keyspace.Key, v keyspace.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labelArrs[key] = append(s.labelArrs[key], v)
	return nil
}

func (s *Store) LabelsLen(key keyspace.Key) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.labelArrs[key]), nil
}

func (s *Store) GetIdentities(key keyspace.Key) ([]keyspace.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vs := s.identities[key]
	out := make([]keyspace.Identity, len(vs))
	copy(out, vs)
	return out, nil
}

func (s *Store) PushIdentity(key keyspace.Key, v keyspace.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[key] = append(s.identities[key], v)
	return nil
}

func (s *Store) IdentityAt(key keyspace.Key, i int) (keyspace.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vs := s.identities[key]
	if i < 0 || i >= len(vs) {
		return keyspace.Identity{}, storage.ErrOutOfRange
	}
	return vs[i], nil
}

func (s *Store) IdentitiesLen(key keyspace.Key) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.identities[key]), nil
}
