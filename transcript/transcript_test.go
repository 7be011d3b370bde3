package transcript_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
	"github.com/takakv/secp256k1-ipa-verifier/transcript"
)

func TestChallengeIsDeterministic(t *testing.T) {
	mod := curve.Order()
	build := func() scalar.Element {
		tr := transcript.New(big.NewInt(0))
		tr.AppendPoint(curve.Generator())
		tr.AppendScalar(scalar.FromInt64(42, mod))
		return tr.Challenge(mod)
	}

	c1 := build()
	c2 := build()
	require.True(t, c1.Equal(c2))
}

func TestChallengeDependsOnEveryAppendedItem(t *testing.T) {
	mod := curve.Order()

	tr1 := transcript.New(big.NewInt(1))
	tr1.AppendPoint(curve.Generator())
	c1 := tr1.Challenge(mod)

	tr2 := transcript.New(big.NewInt(1))
	tr2.AppendPoint(curve.BaseScalarMul(big.NewInt(2)))
	c2 := tr2.Challenge(mod)

	require.False(t, c1.Equal(c2))
}

func TestChallengeFromPrefixMatchesReplay(t *testing.T) {
	mod := curve.Order()
	tr := transcript.New(big.NewInt(7))
	tr.AppendPoint(curve.Generator())
	want := tr.Challenge(mod)
	tr.AppendScalar(want)

	entries := tr.Entries()
	got := transcript.ChallengeFromPrefix(entries, 2, mod)
	require.True(t, want.Equal(got))
}

func TestChallengeReducesIntoTargetModulus(t *testing.T) {
	tr := transcript.New(big.NewInt(3))
	small := big.NewInt(97)
	c := tr.Challenge(small)
	require.True(t, c.BigInt().Cmp(small) < 0)
}

func TestEntriesAreAppendOnlyAndOrdered(t *testing.T) {
	mod := curve.Order()
	tr := transcript.New(big.NewInt(5))
	tr.AppendPoint(curve.Generator())
	tr.AppendScalar(scalar.FromInt64(9, mod))

	entries := tr.Entries()
	require.Len(t, entries, 3)
	require.True(t, entries[1].IsPoint())
	require.True(t, entries[2].IsScalar())
}
