package msm_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/msm"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
)

func naive(bases []curve.Point, scalars []scalar.Element) curve.Point {
	acc := curve.Identity()
	for i, s := range scalars {
		acc = acc.Add(bases[i].Scale(s))
	}
	return acc
}

func randomInputs(t *testing.T, k int) ([]curve.Point, []scalar.Element) {
	t.Helper()
	mod := curve.Order()
	bases := make([]curve.Point, k)
	scalars := make([]scalar.Element, k)
	for i := 0; i < k; i++ {
		bases[i] = curve.BaseScalarMul(big.NewInt(int64(7*i + 3)))
		scalars[i] = scalar.FromInt64(int64(i*i+i+1), mod)
	}
	return bases, scalars
}

func TestPippengerMatchesNaiveForVariousSizes(t *testing.T) {
	for _, k := range []int{0, 1, 2, 3, 17, 128} {
		k := k
		t.Run("", func(t *testing.T) {
			bases, scalars := randomInputs(t, k)
			got, err := msm.Pippenger(context.Background(), bases, scalars)
			require.NoError(t, err)
			want := naive(bases, scalars)
			require.True(t, want.Equal(got), "k=%d", k)
		})
	}
}

func TestPippengerEmptyIsIdentity(t *testing.T) {
	got, err := msm.Pippenger(context.Background(), nil, nil)
	require.NoError(t, err)
	require.True(t, got.IsIdentity())
}

func TestPippengerLengthMismatch(t *testing.T) {
	mod := curve.Order()
	_, err := msm.Pippenger(context.Background(), []curve.Point{curve.Generator()}, []scalar.Element{
		scalar.FromInt64(1, mod), scalar.FromInt64(2, mod),
	})
	require.ErrorIs(t, err, msm.ErrLengthMismatch)
}

func TestPippengerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bases, scalars := randomInputs(t, 128)
	_, err := msm.Pippenger(ctx, bases, scalars)
	require.ErrorIs(t, err, msm.ErrCancelled)
}
