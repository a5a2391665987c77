package keyspace

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// IdentitySize is the width of a provider identity in bytes.
const IdentitySize = 20

// LabelSize is the width of a fixed-width label in bytes.
const LabelSize = 32

// Identity is an opaque account-style provider identifier.
type Identity [IdentitySize]byte

// Label is a fixed-width byte label used for titles, endpoint names, and
// parameter keys/values. Shorter values are right-padded with zero bytes;
// the zero value means "unset".
type Label [LabelSize]byte

// IdentityFromBytes copies b into an Identity.
func IdentityFromBytes(b []byte) (Identity, error) {
	var id Identity
	if len(b) != IdentitySize {
		return id, fmt.Errorf("keyspace: identity must be %d bytes, got %d", IdentitySize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseIdentity parses a hex identity, with or without a "0x" prefix.
func ParseIdentity(s string) (Identity, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Identity{}, fmt.Errorf("keyspace: invalid identity hex: %w", err)
	}
	return IdentityFromBytes(b)
}

func (id Identity) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id Identity) IsZero() bool {
	return id == Identity{}
}

// LabelFromString encodes s as a right-zero-padded label.
func LabelFromString(s string) (Label, error) {
	var l Label
	if len(s) > LabelSize {
		return l, fmt.Errorf("keyspace: label exceeds %d bytes: %q", LabelSize, s)
	}
	copy(l[:], s)
	return l, nil
}

// MustLabel is LabelFromString for compile-time-known strings; it panics on
// oversize input.
func MustLabel(s string) Label {
	l, err := LabelFromString(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the label bytes with trailing zero padding stripped.
func (l Label) String() string {
	return string(bytes.TrimRight(l[:], "\x00"))
}

func (l Label) IsZero() bool {
	return l == Label{}
}
