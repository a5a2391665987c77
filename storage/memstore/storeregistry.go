package memstore

import (
	"flag"

	"xdao.co/oraclereg/storage"
	"xdao.co/oraclereg/storage/storeregistry"
)

func init() {
	storeregistry.MustRegister(storeregistry.Backend{
		Name:          "mem",
		Description:   "in-memory store (state is lost on exit; mainly for tests and walkthroughs)",
		Usage:         storeregistry.UsageCLI | storeregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (storage.Store, func() error, error) {
			return New(), nil, nil
		},
	})
}
