package memstore

import (
	"testing"

	"xdao.co/oraclereg/storage"
	"xdao.co/oraclereg/storage/storetest"
)

func TestMemstoreConformance(t *testing.T) {
	storetest.RunStoreConformance(t, func(t *testing.T) storage.Store {
		return New()
	})
}
