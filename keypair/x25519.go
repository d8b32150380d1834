package keypair

import (
	"crypto/rand"
	"encoding/json"
	"io"
)

var (
	X25519Type Type = NewType(1, "x25519")
)

// X25519 creates X25519 keys; the zero value derives public keys with
// CurveDeriver.
type X25519 struct {
	deriver Deriver
}

func NewX25519(deriver Deriver) X25519 {
	return X25519{deriver: deriver}
}

func (x X25519) Type() Type {
	return X25519Type
}

func (x X25519) Deriver() Deriver {
	if x.deriver == nil {
		return CurveDeriver{}
	}

	return x.deriver
}

// New generates a private key from crypto/rand.
func (x X25519) New() (PrivateKey, error) {
	return x.Generate(rand.Reader)
}

// Generate reads exactly KeySize bytes from r. A failing or short read is
// returned as GenerationFailedError and is not retried.
func (x X25519) Generate(r io.Reader) (PrivateKey, error) {
	var b [KeySize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, GenerationFailedError.New(err)
	}

	return X25519PrivateKey{b: b, deriver: x.deriver}, nil
}

func (x X25519) NewPrivateKeyFromText(b []byte) (PrivateKey, error) {
	pr, err := ParsePrivateKey(string(b))
	if err != nil {
		return nil, err
	}
	pr.deriver = x.deriver

	return pr, nil
}

func (x X25519) NewPublicKeyFromText(b []byte) (PublicKey, error) {
	pk, err := ParsePublicKey(string(b))
	if err != nil {
		return nil, err
	}

	return pk, nil
}

func (x X25519) Equal(k Keypair) bool {
	return x.Type().Equal(k.Type())
}

func (x X25519) String() string {
	b, _ := json.Marshal(map[string]interface{}{
		"type":    x.Type(),
		"deriver": x.Deriver().Name(),
	})
	return string(b)
}

type X25519PublicKey struct {
	b [KeySize]byte
}

func NewX25519PublicKey(b [KeySize]byte) X25519PublicKey {
	return X25519PublicKey{b: b}
}

func ParsePublicKey(s string) (X25519PublicKey, error) {
	b, err := DecodeKey(s)
	if err != nil {
		return X25519PublicKey{}, err
	}

	return X25519PublicKey{b: b}, nil
}

func (s X25519PublicKey) Type() Type {
	return X25519Type
}

func (s X25519PublicKey) Kind() Kind {
	return PublicKeyKind
}

func (s X25519PublicKey) Raw() [KeySize]byte {
	return s.b
}

func (s X25519PublicKey) String() string {
	return EncodeKey(s.b)
}

func (s X25519PublicKey) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *X25519PublicKey) UnmarshalText(b []byte) error {
	pk, err := ParsePublicKey(string(b))
	if err != nil {
		return err
	}

	*s = pk

	return nil
}

func (s X25519PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type": s.Type(),
		"kind": s.Kind(),
		"key":  s.String(),
	})
}

func (s X25519PublicKey) Equal(k Key) bool {
	if !s.Type().Equal(k.Type()) {
		return false
	}

	if s.Kind() != k.Kind() {
		return false
	}

	return s.b == k.Raw()
}

type X25519PrivateKey struct {
	b       [KeySize]byte
	deriver Deriver
}

// NewX25519PrivateKey wraps raw scalar bytes; a nil deriver means
// CurveDeriver.
func NewX25519PrivateKey(b [KeySize]byte, deriver Deriver) X25519PrivateKey {
	return X25519PrivateKey{b: b, deriver: deriver}
}

func ParsePrivateKey(s string) (X25519PrivateKey, error) {
	b, err := DecodeKey(s)
	if err != nil {
		return X25519PrivateKey{}, err
	}

	return X25519PrivateKey{b: b}, nil
}

func (s X25519PrivateKey) Type() Type {
	return X25519Type
}

func (s X25519PrivateKey) Kind() Kind {
	return PrivateKeyKind
}

func (s X25519PrivateKey) Raw() [KeySize]byte {
	return s.b
}

func (s X25519PrivateKey) String() string {
	return EncodeKey(s.b)
}

func (s X25519PrivateKey) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *X25519PrivateKey) UnmarshalText(b []byte) error {
	pr, err := ParsePrivateKey(string(b))
	if err != nil {
		return err
	}

	pr.deriver = s.deriver
	*s = pr

	return nil
}

// MarshalJSON never exposes the private scalar.
func (s X25519PrivateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":   s.Type(),
		"kind":   s.Kind(),
		"public": s.PublicKey(),
	})
}

func (s X25519PrivateKey) Equal(k Key) bool {
	if !s.Type().Equal(k.Type()) {
		return false
	}

	if s.Kind() != k.Kind() {
		return false
	}

	return s.b == k.Raw()
}

func (s X25519PrivateKey) PublicKey() PublicKey {
	return s.X25519PublicKey()
}

func (s X25519PrivateKey) X25519PublicKey() X25519PublicKey {
	deriver := s.deriver
	if deriver == nil {
		deriver = CurveDeriver{}
	}

	return X25519PublicKey{b: deriver.PublicFromPrivate(s.b)}
}
