package grpcstore

import (
	"context"
	"math/big"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
)

// Client implements storage.Store over the BlobStore gRPC service. All value
// typing happens on this side; the server only ever sees blobs.
type Client struct {
	cc     *grpc.ClientConn
	client BlobStoreClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewBlobStoreClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

var _ storage.Store = (*Client)(nil)

func (c *Client) get(key keyspace.Key) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	reply, err := c.client.Get(ctx, wrapperspb.String(string(key)))
	if err != nil {
		return nil, err
	}
	return reply.GetValue(), nil
}

func (c *Client) set(key keyspace.Key, value []byte) error {
	ctx, cancel := c.ctx()
	defer cancel()
	_, err := c.client.Set(ctx, wrapperspb.Bytes(encodeKV(key, value)))
	return err
}

func (c *Client) push(key keyspace.Key, elem []byte) error {
	ctx, cancel := c.ctx()
	defer cancel()
	_, err := c.client.Append(ctx, wrapperspb.Bytes(encodeKV(key, elem)))
	return err
}

func (c *Client) blobLen(key keyspace.Key, elemSize int) (int, error) {
	b, err := c.get(key)
	if err != nil {
		return 0, err
	}
	if len(b)%elemSize != 0 {
		return 0, storage.ErrCorruptValue
	}
	return len(b) / elemSize, nil
}

func (c *Client) GetNumber(key keyspace.Key) (*big.Int, error) {
	b, err := c.get(key)
	if err != nil {
		return nil, err
	}
	return decodeNumber(b), nil
}

func (c *Client) SetNumber(key keyspace.Key, v *big.Int) error {
	if v != nil && v.Sign() < 0 {
		return storage.ErrNegativeNumber
	}
	return c.set(key, encodeNumber(v))
}

func (c *Client) GetLabel(key keyspace.Key) (keyspace.Label, error) {
	b, err := c.get(key)
	if err != nil {
		return keyspace.Label{}, err
	}
	if len(b) == 0 {
		return keyspace.Label{}, nil
	}
	if len(b) != keyspace.LabelSize {
		return keyspace.Label{}, storage.ErrCorruptValue
	}
	var l keyspace.Label
	copy(l[:], b)
	return l, nil
}

func (c *Client) SetLabel(key keyspace.Key, v keyspace.Label) error {
	return c.set(key, v[:])
}

func (c *Client) GetInts(key keyspace.Key) ([]int64, error) {
	b, err := c.get(key)
	if err != nil {
		return nil, err
	}
	return decodeInts(b)
}

func (c *Client) SetInts(key keyspace.Key, vs []int64) error {
	return c.set(key, encodeInts(vs))
}

func (c *Client) PushInt(key keyspace.Key, v int64) error {
	return c.push(key, encodeInt(v))
}

func (c *Client) IntsLen(key keyspace.Key) (int, error) {
	return c.blobLen(key, 8)
}

func (c *Client) GetLabels(key keyspace.Key) ([]keyspace.Label, error) {
	b, err := c.get(key)
	if err != nil {
		return nil, err
	}
	return decodeLabels(b)
}

func (c *Client) SetLabels(key keyspace.Key, vs []keyspace.Label) error {
	return c.set(key, encodeLabels(vs))
}

func (c *Client) PushLabel(key keyspace.Key, v keyspace.Label) error {
	return c.push(key, v[:])
}

func (c *Client) LabelsLen(key keyspace.Key) (int, error) {
	return c.blobLen(key, keyspace.LabelSize)
}

func (c *Client) GetIdentities(key keyspace.Key) ([]keyspace.Identity, error) {
	b, err := c.get(key)
	if err != nil {
		return nil, err
	}
	return decodeIdentities(b)
}

func (c *Client) PushIdentity(key keyspace.Key, v keyspace.Identity) error {
	return c.push(key, v[:])
}

func (c *Client) IdentityAt(key keyspace.Key, i int) (keyspace.Identity, error) {
	ids, err := c.GetIdentities(key)
	if err != nil {
		return keyspace.Identity{}, err
	}
	if i < 0 || i >= len(ids) {
		return keyspace.Identity{}, storage.ErrOutOfRange
	}
	return ids[i], nil
}

func (c *Client) IdentitiesLen(key keyspace.Key) (int, error) {
	return c.blobLen(key, keyspace.IdentitySize)
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
