package scalar_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
)

func modulus() *big.Int {
	return curve.Order()
}

func TestAdditionIsAssociative(t *testing.T) {
	mod := modulus()
	a := scalar.FromInt64(17, mod)
	b := scalar.FromInt64(9001, mod)
	c := scalar.FromInt64(-42, mod)

	ab, err := a.Add(b)
	require.NoError(t, err)
	abc, err := ab.Add(c)
	require.NoError(t, err)

	bc, err := b.Add(c)
	require.NoError(t, err)
	abc2, err := a.Add(bc)
	require.NoError(t, err)

	require.True(t, abc.Equal(abc2))
}

func TestInverseIsMultiplicativeIdentity(t *testing.T) {
	mod := modulus()
	a := scalar.FromInt64(12345, mod)
	inv, err := a.Inverse()
	require.NoError(t, err)

	one, err := a.Mul(inv)
	require.NoError(t, err)
	require.True(t, one.Equal(scalar.One(mod)))
}

func TestZeroIsNonInvertible(t *testing.T) {
	mod := modulus()
	_, err := scalar.Zero(mod).Inverse()
	require.ErrorIs(t, err, scalar.ErrNonInvertible)
}

func TestFermatsLittleTheorem(t *testing.T) {
	mod := modulus()
	a := scalar.FromInt64(777, mod)
	aq := a.Pow(mod)
	require.True(t, aq.Equal(a))
}

func TestModulusMismatchIsRejected(t *testing.T) {
	a := scalar.FromInt64(1, big.NewInt(7))
	b := scalar.FromInt64(1, big.NewInt(11))
	_, err := a.Add(b)
	require.ErrorIs(t, err, scalar.ErrModulusMismatch)

	_, err = a.Mul(b)
	require.ErrorIs(t, err, scalar.ErrModulusMismatch)
}

func TestLiftedIntegerMultiplication(t *testing.T) {
	mod := modulus()
	a := scalar.FromInt64(6, mod)
	got := a.MulInt64(7)
	require.True(t, got.Equal(scalar.FromInt64(42, mod)))
}

func TestSubNegIsInverseOfAdd(t *testing.T) {
	mod := modulus()
	a := scalar.FromInt64(100, mod)
	b := scalar.FromInt64(37, mod)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	sum, err := diff.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(a))

	negB := b.Neg()
	sum2, err := a.Add(negB)
	require.NoError(t, err)
	require.True(t, sum2.Equal(diff))
}
