// Package redisstore implements storage.Store on redis: numbers and labels
// as plain string values, arrays as redis lists.
package redisstore

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
)

// Store is a redis-backed storage.Store.
//
// Store keys are CID strings, so values from unrelated schema paths can never
// share a redis key; Prefix only matters when the redis database is shared
// with non-registry data.
type Store struct {
	rdb redis.UniversalClient

	// Prefix is prepended to every redis key when non-empty.
	Prefix string

	// Timeout applies per redis command when non-zero.
	Timeout time.Duration
}

func New(rdb redis.UniversalClient) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) key(k keyspace.Key) string {
	return s.Prefix + string(k)
}

func (s *Store) ctx() (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.Timeout)
}

func (s *Store) GetNumber(key keyspace.Key) (*big.Int, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	v, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return new(big.Int), nil
	}
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(v, 10)
	if !ok {
		return nil, storage.ErrCorruptValue
	}
	return n, nil
}

func (s *Store) SetNumber(key keyspace.Key, v *big.Int) error {
	if v != nil && v.Sign() < 0 {
		return storage.ErrNegativeNumber
	}
	if v == nil {
		v = new(big.Int)
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.Set(ctx, s.key(key), v.Text(10), 0).Err()
}

func (s *Store) GetLabel(key keyspace.Key) (keyspace.Label, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	v, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return keyspace.Label{}, nil
	}
	if err != nil {
		return keyspace.Label{}, err
	}
	if len(v) != keyspace.LabelSize {
		return keyspace.Label{}, storage.ErrCorruptValue
	}
	var l keyspace.Label
	copy(l[:], v)
	return l, nil
}

func (s *Store) SetLabel(key keyspace.Key, v keyspace.Label) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.Set(ctx, s.key(key), v[:], 0).Err()
}

func (s *Store) GetInts(key keyspace.Key) ([]int64, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	vs, err := s.rdb.LRange(ctx, s.key(key), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(vs))
	for _, v := range vs {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, storage.ErrCorruptValue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Store) SetInts(key keyspace.Key, vs []int64) error {
	elems := make([]interface{}, 0, len(vs))
	for _, v := range vs {
		elems = append(elems, strconv.FormatInt(v, 10))
	}
	return s.replaceList(key, elems)
}

func (s *Store) PushInt(key keyspace.Key, v int64) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.RPush(ctx, s.key(key), strconv.FormatInt(v, 10)).Err()
}

func (s *Store) IntsLen(key keyspace.Key) (int, error) {
	return s.listLen(key)
}

func (s *Store) GetLabels(key keyspace.Key) ([]keyspace.Label, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	vs, err := s.rdb.LRange(ctx, s.key(key), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]keyspace.Label, 0, len(vs))
	for _, v := range vs {
		if len(v) != keyspace.LabelSize {
			return nil, storage.ErrCorruptValue
		}
		var l keyspace.Label
		copy(l[:], v)
		out = append(out, l)
	}
	return out, nil
}

func (s *Store) SetLabels(key keyspace.Key, vs []keyspace.Label) error {
	elems := make([]interface{}, 0, len(vs))
	for _, v := range vs {
		elems = append(elems, string(v[:]))
	}
	return s.replaceList(key, elems)
}

func (s *Store) PushLabel(key keyspace.Key, v keyspace.Label) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.RPush(ctx, s.key(key), string(v[:])).Err()
}

func (s *Store) LabelsLen(key keyspace.Key) (int, error) {
	return s.listLen(key)
}

func (s *Store) GetIdentities(key keyspace.Key) ([]keyspace.Identity, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	vs, err := s.rdb.LRange(ctx, s.key(key), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]keyspace.Identity, 0, len(vs))
	for _, v := range vs {
		id, err := keyspace.IdentityFromBytes([]byte(v))
		if err != nil {
			return nil, storage.ErrCorruptValue
		}
		out = append(out, id)
	}
	return out, nil
}

func (s *Store) PushIdentity(key keyspace.Key, v keyspace.Identity) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.RPush(ctx, s.key(key), string(v[:])).Err()
}

func (s *Store) IdentityAt(key keyspace.Key, i int) (keyspace.Identity, error) {
	if i < 0 {
		return keyspace.Identity{}, storage.ErrOutOfRange
	}
	ctx, cancel := s.ctx()
	defer cancel()
	v, err := s.rdb.LIndex(ctx, s.key(key), int64(i)).Result()
	if errors.Is(err, redis.Nil) {
		return keyspace.Identity{}, storage.ErrOutOfRange
	}
	if err != nil {
		return keyspace.Identity{}, err
	}
	id, err := keyspace.IdentityFromBytes([]byte(v))
	if err != nil {
		return keyspace.Identity{}, storage.ErrCorruptValue
	}
	return id, nil
}

func (s *Store) IdentitiesLen(key keyspace.Key) (int, error) {
	return s.listLen(key)
}

func (s *Store) listLen(key keyspace.Key) (int, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	n, err := s.rdb.LLen(ctx, s.key(key)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// replaceList deletes and repopulates a list in one MULTI/EXEC so readers
// never observe the half-written state.
func (s *Store) replaceList(key keyspace.Key, elems []interface{}) error {
	ctx, cancel := s.ctx()
	defer cancel()
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, s.key(key))
	if len(elems) > 0 {
		pipe.RPush(ctx, s.key(key), elems...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
