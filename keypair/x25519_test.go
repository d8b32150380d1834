package keypair

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

const (
	vectorPrivateKey = "BzipR6YYxf4pPz97Rv9oHsVYSWbxg5vqMsVWwhRDdWeN"
	vectorPublicKey  = "B24AJu9zFenYNaDBUmjg4Q5nuKnq1UHP9TuzoLy2vApG"
)

// fixedDeriver returns the private key with every byte inverted.
type fixedDeriver struct{}

func (fixedDeriver) Name() string {
	return "fixed"
}

func (fixedDeriver) PublicFromPrivate(priv [KeySize]byte) [KeySize]byte {
	var pub [KeySize]byte
	for i := range priv {
		pub[i] = ^priv[i]
	}

	return pub
}

type testX25519Keypair struct {
	suite.Suite
}

func (t *testX25519Keypair) TestNew() {
	pr0, err := X25519{}.New()
	t.NoError(err)
	t.Equal(X25519Type, pr0.Type())
	t.Equal(PrivateKeyKind, pr0.Kind())

	pr1, err := X25519{}.New()
	t.NoError(err)
	t.False(pr0.Equal(pr1))
}

func (t *testX25519Keypair) TestGenerate() {
	seed := bytes.Repeat([]byte{0x42}, KeySize+10)

	pr, err := X25519{}.Generate(bytes.NewReader(seed))
	t.NoError(err)

	var expected [KeySize]byte
	copy(expected[:], seed)
	t.Equal(expected, pr.Raw())
}

func (t *testX25519Keypair) TestGenerateFailed() {
	{ // reader fails
		pr, err := X25519{}.Generate(iotest.ErrReader(io.ErrClosedPipe))
		t.Nil(pr)
		t.True(xerrors.Is(err, GenerationFailedError))
		t.True(xerrors.Is(err, io.ErrClosedPipe))
	}

	{ // not enough entropy
		pr, err := X25519{}.Generate(bytes.NewReader(make([]byte, KeySize-1)))
		t.Nil(pr)
		t.True(xerrors.Is(err, GenerationFailedError))
		t.True(xerrors.Is(err, io.ErrUnexpectedEOF))
	}

	{ // empty source
		pr, err := X25519{}.Generate(bytes.NewReader(nil))
		t.Nil(pr)
		t.True(xerrors.Is(err, GenerationFailedError))
		t.True(xerrors.Is(err, io.EOF))
	}
}

func (t *testX25519Keypair) TestKnownPublicKey() {
	for _, deriver := range []Deriver{nil, CurveDeriver{}, CirclDeriver{}} {
		pr, err := NewX25519(deriver).NewPrivateKeyFromText([]byte(vectorPrivateKey))
		t.NoError(err)
		t.Equal(vectorPrivateKey, pr.String())

		t.Equal(vectorPublicKey, pr.PublicKey().String())
		t.Equal(vectorPublicKey, pr.PublicKey().String())
	}
}

func (t *testX25519Keypair) TestRFC7748() {
	priv, _ := hex.DecodeString("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	pub, _ := hex.DecodeString("8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a")

	var raw [KeySize]byte
	copy(raw[:], priv)

	for _, deriver := range []Deriver{CurveDeriver{}, CirclDeriver{}} {
		pk := NewX25519PrivateKey(raw, deriver).PublicKey().Raw()
		t.Equal(pub, pk[:], deriver.Name())
	}
}

func (t *testX25519Keypair) TestDeriversAgree() {
	r := rand.New(rand.NewSource(25519))

	for i := 0; i < 50; i++ {
		var raw [KeySize]byte
		_, _ = r.Read(raw[:])

		t.Equal(
			CurveDeriver{}.PublicFromPrivate(raw),
			CirclDeriver{}.PublicFromPrivate(raw),
		)
	}
}

func (t *testX25519Keypair) TestFakeDeriver() {
	kp := NewX25519(fixedDeriver{})
	t.Equal("fixed", kp.Deriver().Name())

	pr, err := kp.Generate(bytes.NewReader(bytes.Repeat([]byte{0x0f}, KeySize)))
	t.NoError(err)

	var expected [KeySize]byte
	for i := range expected {
		expected[i] = 0xf0
	}
	t.Equal(expected, pr.PublicKey().Raw())
}

func (t *testX25519Keypair) TestPublicKey() {
	pr, _ := X25519{}.New()

	pk := pr.PublicKey()
	t.Equal(X25519Type, pk.Type())
	t.Equal(PublicKeyKind, pk.Kind())
	t.True(pk.Equal(pk))
	t.True(pk.Equal(pr.PublicKey()))
	t.False(pk.Equal(pr))

	parsed, err := X25519{}.NewPublicKeyFromText([]byte(pk.String()))
	t.NoError(err)
	t.True(pk.Equal(parsed))
}

func (t *testX25519Keypair) TestMarshalText() {
	pr, _ := X25519{}.New()

	{
		b, err := pr.MarshalText()
		t.NoError(err)

		var upr X25519PrivateKey
		t.NoError(upr.UnmarshalText(b))
		t.True(pr.Equal(upr))
	}

	{
		pk := pr.PublicKey()
		b, err := pk.MarshalText()
		t.NoError(err)

		var upk X25519PublicKey
		t.NoError(upk.UnmarshalText(b))
		t.True(pk.Equal(upk))
	}

	{
		var upk X25519PublicKey
		err := upk.UnmarshalText([]byte("2"))
		t.True(xerrors.Is(err, FailedToDecodeKeyError))
	}
}

func (t *testX25519Keypair) TestMarshalJSON() {
	pr, err := ParsePrivateKey(vectorPrivateKey)
	t.NoError(err)

	{
		b, err := json.Marshal(pr.PublicKey())
		t.NoError(err)
		t.JSONEq(`{"type":"x25519","kind":"public","key":"`+vectorPublicKey+`"}`, string(b))
	}

	{
		b, err := json.Marshal(pr)
		t.NoError(err)
		t.NotContains(string(b), vectorPrivateKey)
		t.Contains(string(b), vectorPublicKey)
	}
}

func (t *testX25519Keypair) TestParseWrongLength() {
	_, err := ParsePrivateKey("21")

	var e *DecodeError
	t.True(xerrors.As(err, &e))
	t.Equal(WrongLengthFailure, e.Failure)
	t.Equal(1, e.Length)
}

func TestX25519Keypair(t *testing.T) {
	suite.Run(t, new(testX25519Keypair))
}
