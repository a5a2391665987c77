package storeregistry_test

import (
	"flag"
	"testing"

	"xdao.co/oraclereg/storage"
	"xdao.co/oraclereg/storage/memstore"
	"xdao.co/oraclereg/storage/storeregistry"
)

func testBackend(name string, usage storeregistry.Usage) storeregistry.Backend {
	return storeregistry.Backend{
		Name:          name,
		Usage:         usage,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (storage.Store, func() error, error) {
			return memstore.New(), nil, nil
		},
	}
}

func TestRegisterValidation(t *testing.T) {
	valid := testBackend("x", storeregistry.UsageCLI)
	cases := []struct {
		name string
		b    storeregistry.Backend
	}{
		{"MissingName", storeregistry.Backend{Usage: valid.Usage, RegisterFlags: valid.RegisterFlags, Open: valid.Open}},
		{"MissingFlags", storeregistry.Backend{Name: "x", Usage: valid.Usage, Open: valid.Open}},
		{"MissingOpen", storeregistry.Backend{Name: "x", Usage: valid.Usage, RegisterFlags: valid.RegisterFlags}},
		{"MissingUsage", storeregistry.Backend{Name: "x", RegisterFlags: valid.RegisterFlags, Open: valid.Open}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := storeregistry.Register(tc.b); err == nil {
				t.Fatalf("Register accepted invalid backend")
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	if err := storeregistry.Register(testBackend("storeregistry-test-dup", storeregistry.UsageCLI)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := storeregistry.Register(testBackend("storeregistry-test-dup", storeregistry.UsageCLI)); err == nil {
		t.Fatalf("duplicate registration accepted")
	}
}

func TestOpenRespectsUsage(t *testing.T) {
	if err := storeregistry.Register(testBackend("storeregistry-test-daemon", storeregistry.UsageDaemon)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := storeregistry.Open("storeregistry-test-daemon", storeregistry.UsageCLI); err == nil {
		t.Fatalf("daemon-only backend opened for CLI")
	}
	if _, _, err := storeregistry.Open("storeregistry-test-daemon", storeregistry.UsageDaemon); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, _, err := storeregistry.Open("no-such-backend", storeregistry.UsageCLI); err == nil {
		t.Fatalf("unknown backend opened")
	}
}

func TestResolver(t *testing.T) {
	if err := storeregistry.Register(testBackend("storeregistry-test-resolver", storeregistry.UsageCLI)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	r := storeregistry.NewResolver(storeregistry.UsageCLI)
	r.Bind(storeregistry.RoleDatabase, "storeregistry-test-resolver")

	s1, err := r.Resolve(storeregistry.RoleDatabase)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	s2, err := r.Resolve(storeregistry.RoleDatabase)
	if err != nil {
		t.Fatalf("Resolve again: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("Resolve did not cache the handle")
	}

	if err := r.Invalidate(storeregistry.RoleDatabase); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	s3, err := r.Resolve(storeregistry.RoleDatabase)
	if err != nil {
		t.Fatalf("Resolve after invalidate: %v", err)
	}
	if s3 == s1 {
		t.Fatalf("Resolve returned stale handle after invalidate")
	}

	if _, err := r.Resolve("UNBOUND"); err == nil {
		t.Fatalf("unbound role resolved")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
