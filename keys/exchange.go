// Package keys provides the key-exchange helpers behind a provider's
// published public key.
//
// The registry stores a provider's public key as a large unsigned integer;
// consumers use it for out-of-band encrypted communication with the
// provider. This package maps exchange public keys to and from that integer
// form and derives the shared secret. The registry core never calls into
// here; key exchange is strictly a client-side concern.
package keys

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cloudflare/circl/dh/x448"
	"golang.org/x/crypto/curve25519"
)

// Algorithm selects the Diffie-Hellman function.
type Algorithm string

const (
	X25519 Algorithm = "x25519"
	X448   Algorithm = "x448"
)

var ErrUnknownAlgorithm = errors.New("keys: unknown algorithm")

// KeyPair is an exchange keypair. Public is what gets published through the
// registry (as a number); Private never leaves the provider.
type KeyPair struct {
	Algorithm Algorithm
	Public    []byte
	Private   []byte
}

// Size returns the key width in bytes for alg.
func Size(alg Algorithm) (int, error) {
	switch alg {
	case X25519:
		return curve25519.ScalarSize, nil
	case X448:
		return x448.Size, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// Generate creates a fresh keypair. A nil reader uses crypto/rand.
func Generate(alg Algorithm, r io.Reader) (KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}
	size, err := Size(alg)
	if err != nil {
		return KeyPair{}, err
	}
	seed := make([]byte, size)
	if _, err := io.ReadFull(r, seed); err != nil {
		return KeyPair{}, err
	}
	return FromSeed(alg, seed)
}

// FromSeed derives the keypair deterministically from a private scalar.
// The seed must be exactly Size(alg) bytes.
func FromSeed(alg Algorithm, seed []byte) (KeyPair, error) {
	size, err := Size(alg)
	if err != nil {
		return KeyPair{}, err
	}
	if len(seed) != size {
		return KeyPair{}, fmt.Errorf("keys: %s seed must be %d bytes, got %d", alg, size, len(seed))
	}
	priv := make([]byte, size)
	copy(priv, seed)

	switch alg {
	case X25519:
		pub, err := curve25519.X25519(priv, curve25519.Basepoint)
		if err != nil {
			return KeyPair{}, err
		}
		return KeyPair{Algorithm: alg, Public: pub, Private: priv}, nil
	case X448:
		var secret, public x448.Key
		copy(secret[:], priv)
		x448.KeyGen(&public, &secret)
		return KeyPair{Algorithm: alg, Public: public[:], Private: priv}, nil
	default:
		return KeyPair{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// Shared computes the Diffie-Hellman shared secret between a private key and
// a peer's public key.
func Shared(alg Algorithm, priv, peerPub []byte) ([]byte, error) {
	size, err := Size(alg)
	if err != nil {
		return nil, err
	}
	if len(priv) != size || len(peerPub) != size {
		return nil, fmt.Errorf("keys: %s keys must be %d bytes", alg, size)
	}
	switch alg {
	case X25519:
		return curve25519.X25519(priv, peerPub)
	case X448:
		var secret, public, shared x448.Key
		copy(secret[:], priv)
		copy(public[:], peerPub)
		if !x448.Shared(&shared, &secret, &public) {
			return nil, errors.New("keys: low-order x448 public key")
		}
		return shared[:], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// Number maps a public key to the unsigned integer the registry stores.
func Number(pub []byte) *big.Int {
	return new(big.Int).SetBytes(pub)
}

// FromNumber maps a registry-stored number back to public key bytes,
// left-padded to the algorithm's key width.
func FromNumber(alg Algorithm, n *big.Int) ([]byte, error) {
	size, err := Size(alg)
	if err != nil {
		return nil, err
	}
	if n == nil || n.Sign() < 0 {
		return nil, errors.New("keys: public key number must be non-negative")
	}
	b := n.Bytes()
	if len(b) > size {
		return nil, fmt.Errorf("keys: number exceeds %s key width (%d > %d bytes)", alg, len(b), size)
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out, nil
}
