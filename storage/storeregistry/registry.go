// Package storeregistry holds the process-wide catalog of store backends and
// resolves role names to opened store handles.
package storeregistry

import (
	"flag"
	"fmt"
	"sort"
	"sync"

	"xdao.co/oraclereg/storage"
)

// Backend describes one way of opening a storage.Store. A backend package
// calls MustRegister from its init(), so linking it into a binary is what
// makes it selectable:
//
//	import _ "xdao.co/oraclereg/storage/redisstore"
type Backend struct {
	Name        string
	Description string
	Usage       Usage

	// RegisterFlags installs the backend's flags on fs; called at most once
	// per process.
	RegisterFlags func(fs *flag.FlagSet)

	// Open builds the Store from whatever the flags parsed to. The returned
	// close function may be nil.
	Open func() (storage.Store, func() error, error)
}

var (
	mu       sync.RWMutex
	backends = map[string]Backend{}
)

// Register adds a backend under its name. Names are unique per process.
func Register(b Backend) error {
	if b.Name == "" {
		return fmt.Errorf("storeregistry: backend name is required")
	}
	if b.RegisterFlags == nil {
		return fmt.Errorf("storeregistry: backend %q missing RegisterFlags", b.Name)
	}
	if b.Open == nil {
		return fmt.Errorf("storeregistry: backend %q missing Open", b.Name)
	}
	if b.Usage == 0 {
		return fmt.Errorf("storeregistry: backend %q missing Usage", b.Name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := backends[b.Name]; exists {
		return fmt.Errorf("storeregistry: backend %q already registered", b.Name)
	}
	backends[b.Name] = b
	return nil
}

// MustRegister is Register with a panic on error, for init() use.
func MustRegister(b Backend) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

// List returns the backends admitted under usage, ordered by name.
func List(usage Usage) []Backend {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Backend, 0, len(backends))
	for _, b := range backends {
		if b.Usage.allows(usage) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns just the names from List.
func Names(usage Usage) []string {
	bs := List(usage)
	n := make([]string, 0, len(bs))
	for _, b := range bs {
		n = append(n, b.Name)
	}
	return n
}

// RegisterFlags installs every admitted backend's flags on fs. Every flag
// must exist before the one Parse call; the flag package rejects names it
// has not seen.
func RegisterFlags(fs *flag.FlagSet, usage Usage) {
	for _, b := range List(usage) {
		b.RegisterFlags(fs)
	}
}

// Open builds a Store from the named backend, which must be registered and
// admitted under usage.
func Open(name string, usage Usage) (storage.Store, func() error, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("unknown backend %q", name)
	}
	if !b.Usage.allows(usage) {
		return nil, nil, fmt.Errorf("backend %q not supported in this binary", name)
	}
	return b.Open()
}
