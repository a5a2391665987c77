package storeregistry

import (
	"fmt"
	"sync"

	"xdao.co/oraclereg/storage"
)

// RoleDatabase is the role name the registry resolves its store under.
const RoleDatabase = "DATABASE"

// Resolver implements storage.Resolver over the backend registry: roles
// ("DATABASE") are bound to backend names ("mem", "redis", "grpc") and
// opened lazily. Resolving the same role again returns the cached handle
// until Invalidate drops it, so callers can refresh their store reference
// after a backend upgrade.
type Resolver struct {
	usage Usage

	mu     sync.Mutex
	binds  map[string]string
	opened map[string]openedStore
}

type openedStore struct {
	store storage.Store
	close func() error
}

func NewResolver(usage Usage) *Resolver {
	return &Resolver{
		usage:  usage,
		binds:  map[string]string{},
		opened: map[string]openedStore{},
	}
}

// Bind maps a role to a backend name. Rebinding an open role closes the old
// handle on the next Resolve.
func (r *Resolver) Bind(role, backend string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.binds[role] != backend {
		r.dropLocked(role)
	}
	r.binds[role] = backend
}

// Resolve opens (or returns the cached) store for role.
func (r *Resolver) Resolve(role string) (storage.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.opened[role]; ok {
		return o.store, nil
	}
	backend, ok := r.binds[role]
	if !ok {
		return nil, fmt.Errorf("storeregistry: no backend bound for role %q", role)
	}
	s, closeFn, err := Open(backend, r.usage)
	if err != nil {
		return nil, err
	}
	r.opened[role] = openedStore{store: s, close: closeFn}
	return s, nil
}

var _ storage.Resolver = (*Resolver)(nil)

// Invalidate drops the cached handle for role; the next Resolve reopens it.
func (r *Resolver) Invalidate(role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropLocked(role)
}

// Close closes every open handle.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for role := range r.opened {
		if err := r.dropLocked(role); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (r *Resolver) dropLocked(role string) error {
	o, ok := r.opened[role]
	if !ok {
		return nil
	}
	delete(r.opened, role)
	if o.close != nil {
		return o.close()
	}
	return nil
}
