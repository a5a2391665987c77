package keyspace

import (
	"encoding/binary"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Key is an opaque store key derived from a segment path.
//
// Keys are CIDv1 strings ("raw" multicodec, sha2-256 multihash) over the
// canonical encoding of the path, so two distinct paths collide only if
// sha2-256 collides.
type Key string

type segKind byte

const (
	kindTag      segKind = 0x01
	kindIdentity segKind = 0x02
	kindLabel    segKind = 0x03
)

// Segment is one element of a key path: a schema tag, a provider identity,
// or a fixed-width label.
type Segment struct {
	kind segKind
	raw  []byte
}

// Tag returns a schema-literal segment (e.g. "oracles", "title").
func Tag(s string) Segment {
	return Segment{kind: kindTag, raw: []byte(s)}
}

// ID returns an identity segment.
func ID(id Identity) Segment {
	return Segment{kind: kindIdentity, raw: id[:]}
}

// Lbl returns a label segment.
func Lbl(l Label) Segment {
	return Segment{kind: kindLabel, raw: l[:]}
}

// Derive maps an ordered segment path to its store key.
//
// The canonical encoding prefixes every segment with its kind byte and a
// uvarint byte length, so segment boundaries are unambiguous: ("ab","c")
// and ("a","bc") encode differently, as do a tag and a label holding the
// same bytes.
func Derive(segs ...Segment) Key {
	var buf []byte
	for _, s := range segs {
		buf = append(buf, byte(s.kind))
		buf = binary.AppendUvarint(buf, uint64(len(s.raw)))
		buf = append(buf, s.raw...)
	}
	sum, err := multihash.Sum(buf, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return Key(cid.NewCidV1(cid.Raw, sum).String())
}
