package curve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
)

func TestCompressionRoundTripGenerator(t *testing.T) {
	g := curve.Generator()
	decoded, err := curve.Decompress(g.Compress())
	require.NoError(t, err)
	require.True(t, g.Equal(decoded))
}

func TestCompressionRoundTripArbitraryMultiples(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 5, 97, 1000003} {
		p := curve.BaseScalarMul(big.NewInt(k))
		decoded, err := curve.Decompress(p.Compress())
		require.NoError(t, err)
		require.True(t, p.Equal(decoded), "multiple %d", k)
	}
}

func TestCompressionRoundTripIdentity(t *testing.T) {
	id := curve.Identity()
	require.Equal(t, []byte{0x00}, id.Compress())
	decoded, err := curve.Decompress([]byte{0x00})
	require.NoError(t, err)
	require.True(t, id.Equal(decoded))
}

func TestDecompressRejectsUncompressedMarker(t *testing.T) {
	buf := make([]byte, 33)
	buf[0] = 0x04
	_, err := curve.Decompress(buf)
	require.ErrorIs(t, err, curve.ErrDecode)
}

func TestDecompressRejectsWrongLength(t *testing.T) {
	_, err := curve.Decompress([]byte{0x02, 0x01})
	require.ErrorIs(t, err, curve.ErrDecode)
}

func TestGeneratorIsOnCurve(t *testing.T) {
	require.True(t, curve.Generator().IsOnCurve())
	require.True(t, curve.Identity().IsOnCurve())
}

func TestAddAndNegateCancel(t *testing.T) {
	g := curve.Generator()
	sum := g.Add(g.Negate())
	require.True(t, sum.IsIdentity())
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	g := curve.Generator()
	p3 := curve.BaseScalarMul(big.NewInt(3))
	p2 := curve.BaseScalarMul(big.NewInt(2))
	require.True(t, p3.Equal(p2.Add(g)))
}
