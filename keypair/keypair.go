package keypair

import (
	"encoding"
	"fmt"
	"io"
)

type Keypair interface {
	Type() Type
	New() (PrivateKey, error)
	Generate(io.Reader) (PrivateKey, error)
	Equal(Keypair) bool
	NewPrivateKeyFromText([]byte) (PrivateKey, error)
	NewPublicKeyFromText([]byte) (PublicKey, error)
	String() string
}

// Key renders to and parses from base58 text only.
type Key interface {
	encoding.TextMarshaler
	fmt.Stringer
	Type() Type
	Kind() Kind
	Equal(Key) bool
	Raw() [KeySize]byte
}

type PublicKey interface {
	Key
}

type PrivateKey interface {
	Key
	PublicKey() PublicKey
}
