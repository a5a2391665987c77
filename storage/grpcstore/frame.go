package grpcstore

import (
	"encoding/binary"
	"math/big"

	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
)

// Wire framing. A Set/Append request body is
//
//	uvarint(len(key)) || key || value
//
// and array values are concatenations of fixed-width elements: int64s as
// 8-byte big-endian two's complement, labels as 32 raw bytes, identities as
// 20 raw bytes. Numbers travel as their minimal big-endian magnitude (empty
// means zero). The server never interprets value bytes.

func encodeKV(key keyspace.Key, value []byte) []byte {
	buf := binary.AppendUvarint(nil, uint64(len(key)))
	buf = append(buf, key...)
	return append(buf, value...)
}

func decodeKV(b []byte) (keyspace.Key, []byte, error) {
	n, read := binary.Uvarint(b)
	if read <= 0 || n > uint64(len(b)-read) {
		return "", nil, storage.ErrCorruptValue
	}
	key := keyspace.Key(b[read : read+int(n)])
	return key, b[read+int(n):], nil
}

func encodeNumber(v *big.Int) []byte {
	if v == nil {
		return nil
	}
	return v.Bytes()
}

func decodeNumber(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func encodeInt(v int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	return buf[:]
}

func encodeInts(vs []int64) []byte {
	buf := make([]byte, 0, len(vs)*8)
	for _, v := range vs {
		buf = append(buf, encodeInt(v)...)
	}
	return buf
}

func decodeInts(b []byte) ([]int64, error) {
	if len(b)%8 != 0 {
		return nil, storage.ErrCorruptValue
	}
	out := make([]int64, 0, len(b)/8)
	for i := 0; i < len(b); i += 8 {
		out = append(out, int64(binary.BigEndian.Uint64(b[i:i+8])))
	}
	return out, nil
}

func encodeLabels(vs []keyspace.Label) []byte {
	buf := make([]byte, 0, len(vs)*keyspace.LabelSize)
	for _, v := range vs {
		buf = append(buf, v[:]...)
	}
	return buf
}

func decodeLabels(b []byte) ([]keyspace.Label, error) {
	if len(b)%keyspace.LabelSize != 0 {
		return nil, storage.ErrCorruptValue
	}
	out := make([]keyspace.Label, 0, len(b)/keyspace.LabelSize)
	for i := 0; i < len(b); i += keyspace.LabelSize {
		var l keyspace.Label
		copy(l[:], b[i:i+keyspace.LabelSize])
		out = append(out, l)
	}
	return out, nil
}

func encodeIdentities(vs []keyspace.Identity) []byte {
	buf := make([]byte, 0, len(vs)*keyspace.IdentitySize)
	for _, v := range vs {
		buf = append(buf, v[:]...)
	}
	return buf
}

func decodeIdentities(b []byte) ([]keyspace.Identity, error) {
	if len(b)%keyspace.IdentitySize != 0 {
		return nil, storage.ErrCorruptValue
	}
	out := make([]keyspace.Identity, 0, len(b)/keyspace.IdentitySize)
	for i := 0; i < len(b); i += keyspace.IdentitySize {
		var id keyspace.Identity
		copy(id[:], b[i:i+keyspace.IdentitySize])
		out = append(out, id)
	}
	return out, nil
}
