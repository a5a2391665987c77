package grpcstore

import (
	"context"
	"math/big"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
	"xdao.co/oraclereg/storage/storetest"
)

func newBufconnClient(t *testing.T) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterBlobStoreServer(srv, NewServer())

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })

	return &Client{cc: cc, client: NewBlobStoreClient(cc), Timeout: 2 * time.Second}
}

func TestGRPCStoreConformance(t *testing.T) {
	storetest.RunStoreConformance(t, func(t *testing.T) storage.Store {
		return newBufconnClient(t)
	})
}

func TestGRPCStoreRoundTrip(t *testing.T) {
	c := newBufconnClient(t)
	k := keyspace.Derive(keyspace.Tag("oracles"), keyspace.Tag("publicKey"))

	want := new(big.Int).Lsh(big.NewInt(0xCAFE), 200)
	if err := c.SetNumber(k, want); err != nil {
		t.Fatalf("SetNumber: %v", err)
	}
	got, err := c.GetNumber(k)
	if err != nil {
		t.Fatalf("GetNumber: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("number over the wire: got %s want %s", got, want)
	}
}

func TestKVFrame(t *testing.T) {
	key := keyspace.Key("bafy-some-key")
	val := []byte{0x01, 0x02, 0x03}
	k, v, err := decodeKV(encodeKV(key, val))
	if err != nil {
		t.Fatalf("decodeKV: %v", err)
	}
	if k != key || string(v) != string(val) {
		t.Fatalf("frame round trip: got %q %v", k, v)
	}

	if _, _, err := decodeKV([]byte{0xFF}); err == nil {
		t.Fatalf("truncated frame accepted")
	}
	if _, _, err := decodeKV(nil); err == nil {
		t.Fatalf("empty frame accepted")
	}
}

func TestIntFrameSign(t *testing.T) {
	vs := []int64{-1, 0, 1, -1 << 63, 1<<63 - 1}
	got, err := decodeInts(encodeInts(vs))
	if err != nil {
		t.Fatalf("decodeInts: %v", err)
	}
	for i := range vs {
		if got[i] != vs[i] {
			t.Fatalf("int64 frame: got %d want %d", got[i], vs[i])
		}
	}
	if _, err := decodeInts([]byte{1, 2, 3}); err == nil {
		t.Fatalf("ragged int frame accepted")
	}
}
