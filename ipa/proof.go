package ipa

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
	"github.com/takakv/secp256k1-ipa-verifier/transcript"
)

// Proof2 is the reduced inner-product argument proof: final scalars a, b,
// the log2(n) round challenges and L/R commitments, and the frozen
// transcript entries the challenges were derived from, together with the
// offset at which this proof's own entries begin within that transcript
// (nonzero when Protocol 2 runs embedded inside Protocol 1).
type Proof2 struct {
	N      int
	A, B   scalar.Element
	Xs     []scalar.Element
	Ls, Rs []curve.Point
	Frozen []transcript.Entry
	Start  int
}

// NewProof2 validates the construction invariants: round counts agree
// with log2(n), all scalars share a modulus, and all points are on-curve.
func NewProof2(n int, a, b scalar.Element, xs []scalar.Element, ls, rs []curve.Point, frozen []transcript.Entry, start int) (Proof2, error) {
	logN, err := log2PowerOfTwo(n)
	if err != nil {
		return Proof2{}, err
	}
	if len(xs) != logN || len(ls) != logN || len(rs) != logN {
		return Proof2{}, fmt.Errorf("%w: expected %d rounds, got xs=%d ls=%d rs=%d", ErrBadLength, logN, len(xs), len(ls), len(rs))
	}
	if start+3*logN > len(frozen) {
		return Proof2{}, fmt.Errorf("%w: frozen transcript too short for %d rounds", ErrBadLength, logN)
	}

	mod := a.Modulus()
	if err := sameModulus(mod, b.Modulus()); err != nil {
		return Proof2{}, err
	}
	for _, x := range xs {
		if err := sameModulus(mod, x.Modulus()); err != nil {
			return Proof2{}, err
		}
	}
	for _, p := range ls {
		if !p.IsOnCurve() {
			return Proof2{}, curve.ErrNotOnCurve
		}
	}
	for _, p := range rs {
		if !p.IsOnCurve() {
			return Proof2{}, curve.ErrNotOnCurve
		}
	}

	return Proof2{
		N:      n,
		A:      a,
		B:      b,
		Xs:     append([]scalar.Element(nil), xs...),
		Ls:     append([]curve.Point(nil), ls...),
		Rs:     append([]curve.Point(nil), rs...),
		Frozen: append([]transcript.Entry(nil), frozen...),
		Start:  start,
	}, nil
}

// Proof1 is the outer wrapper proof: the recentred u_new/P_new, the
// embedded Proof2, and the two-entry frozen transcript [seed, x].
type Proof1 struct {
	UNew, PNew curve.Point
	Inner      Proof2
	Frozen     []transcript.Entry
}

// NewProof1 validates that the outer frozen transcript has exactly two
// entries (the seed and the recorded outer challenge x) and that u_new /
// p_new are on-curve.
func NewProof1(uNew, pNew curve.Point, inner Proof2, frozen []transcript.Entry) (Proof1, error) {
	if len(frozen) != 2 {
		return Proof1{}, fmt.Errorf("%w: outer frozen transcript must have 2 entries, got %d", ErrBadLength, len(frozen))
	}
	if !frozen[1].IsScalar() {
		return Proof1{}, fmt.Errorf("%w: outer frozen transcript's second entry must be a scalar", ErrBadLength)
	}
	if !uNew.IsOnCurve() || !pNew.IsOnCurve() {
		return Proof1{}, curve.ErrNotOnCurve
	}
	return Proof1{
		UNew:   uNew,
		PNew:   pNew,
		Inner:  inner,
		Frozen: append([]transcript.Entry(nil), frozen...),
	}, nil
}

func sameModulus(a, b *big.Int) error {
	if a.Cmp(b) != 0 {
		return fmt.Errorf("%w: %s vs %s", scalar.ErrModulusMismatch, a.String(), b.String())
	}
	return nil
}

// log2PowerOfTwo returns log2(n) if n is a positive power of two, else
// ErrBadLength.
func log2PowerOfTwo(n int) (int, error) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: %d is not a power of two", ErrBadLength, n)
	}
	return bits.Len(uint(n)) - 1, nil
}
