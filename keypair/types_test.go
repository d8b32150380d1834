package keypair

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testTypes struct {
	suite.Suite
}

func (t *testTypes) TestKindText() {
	for _, k := range []Kind{PublicKeyKind, PrivateKeyKind} {
		b, err := k.MarshalText()
		t.NoError(err)

		var nk Kind
		t.NoError(nk.UnmarshalText(b))
		t.Equal(k, nk)
	}

	var k Kind
	err := k.UnmarshalText([]byte("secret"))
	t.True(xerrors.Is(err, UnknownKeyKindError))
}

func (t *testTypes) TestType() {
	t.False(X25519Type.Empty())
	t.True(Type{}.Empty())
	t.True(X25519Type.Equal(NewType(1, "another-name")))
	t.Equal("x25519", X25519Type.String())
	t.True(X25519{}.Equal(NewX25519(CirclDeriver{})))
}

func TestTypes(t *testing.T) {
	suite.Run(t, new(testTypes))
}
