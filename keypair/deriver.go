package keypair

import (
	circlx25519 "github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/curve25519"
)

// Deriver computes the X25519 public key of a private scalar, which is
// clamped by the implementation. It must be deterministic.
type Deriver interface {
	Name() string
	PublicFromPrivate([KeySize]byte) [KeySize]byte
}

type CurveDeriver struct{}

func (CurveDeriver) Name() string {
	return "curve25519"
}

func (CurveDeriver) PublicFromPrivate(priv [KeySize]byte) [KeySize]byte {
	var pub [KeySize]byte

	b, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		// a clamped scalar times the base point is never the identity
		panic(err)
	}
	copy(pub[:], b)

	return pub
}

type CirclDeriver struct{}

func (CirclDeriver) Name() string {
	return "circl"
}

func (CirclDeriver) PublicFromPrivate(priv [KeySize]byte) [KeySize]byte {
	var public circlx25519.Key
	secret := circlx25519.Key(priv)

	circlx25519.KeyGen(&public, &secret)

	return [KeySize]byte(public)
}
