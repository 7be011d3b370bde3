// Package msm computes multi-scalar multiplications over the secp256k1
// group using a Pippenger-style bucket method. The window heuristic and
// bucket-accumulation shape follow the Go idiom used by go-ethereum's
// bls12-381 G2.MultiExpBig, adapted to this module's curve.Point /
// scalar.Element types.
package msm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
)

// ErrLengthMismatch is returned when bases and scalars have different
// lengths.
var ErrLengthMismatch = errors.New("msm: bases and scalars length mismatch")

// ErrCancelled is returned when the supplied context is cancelled while a
// Pippenger pass is in flight.
var ErrCancelled = errors.New("msm: cancelled")

// Pippenger computes sum(scalars[i] * bases[i]) using windowed bucketing.
// The empty input returns the identity. All scalars must share one
// modulus. ctx is checked for cancellation once per window boundary; pass
// context.Background() for unconditional execution.
func Pippenger(ctx context.Context, bases []curve.Point, scalars []scalar.Element) (curve.Point, error) {
	if len(bases) != len(scalars) {
		return curve.Point{}, ErrLengthMismatch
	}
	k := len(bases)
	if k == 0 {
		return curve.Identity(), nil
	}

	q := scalars[0].Modulus()
	exps := make([]*big.Int, k)
	for i, s := range scalars {
		if s.Modulus().Cmp(q) != 0 {
			return curve.Point{}, fmt.Errorf("%w: scalar %d modulus disagrees", scalar.ErrModulusMismatch, i)
		}
		exps[i] = s.BigInt()
	}

	w := windowWidth(k)
	numWindows := (q.BitLen() + w - 1) / w
	if numWindows == 0 {
		numWindows = 1
	}
	bucketCount := (1 << uint(w)) - 1

	windows := make([]curve.Point, numWindows)
	bucket := make([]curve.Point, bucketCount)

	for j := 0; j < numWindows; j++ {
		select {
		case <-ctx.Done():
			return curve.Point{}, errors.Join(ErrCancelled, ctx.Err())
		default:
		}

		for i := range bucket {
			bucket[i] = curve.Identity()
		}

		for i := 0; i < k; i++ {
			idx := windowBits(exps[i], j, w)
			if idx != 0 {
				bucket[idx-1] = bucket[idx-1].Add(bases[i])
			}
		}

		acc := curve.Identity()
		sum := curve.Identity()
		for i := bucketCount - 1; i >= 0; i-- {
			sum = sum.Add(bucket[i])
			acc = acc.Add(sum)
		}
		windows[j] = acc
	}

	result := curve.Identity()
	for j := numWindows - 1; j >= 0; j-- {
		for b := 0; b < w; b++ {
			result = result.Add(result)
		}
		result = result.Add(windows[j])
	}
	return result, nil
}

// windowWidth picks w = bitlen(k) - 2 (that is, floor(log2 k) - 1),
// floored at 2.
func windowWidth(k int) int {
	w := bits.Len(uint(k)) - 2
	if w < 2 {
		return 2
	}
	return w
}

// windowBits extracts the w-bit window j (0-indexed from the low bits) of v.
func windowBits(v *big.Int, j, w int) int {
	shifted := new(big.Int).Rsh(v, uint(j*w))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(w)), big.NewInt(1))
	shifted.And(shifted, mask)
	return int(shifted.Int64())
}
