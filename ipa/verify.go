// Package ipa verifies the two-layer Bulletproofs-style inner-product
// argument: Protocol 2 is the log(n)-round reduced argument, Protocol 1
// wraps it by folding a claimed inner-product scalar into the u base
// through an outer Fiat-Shamir challenge. Grounded on
// original_source/src/innerproduct/inner_product_verifier.py
// (Verifier1/Verifier2) and the teacher's bulletproofs/bip.go
// (computeBipRecursiveSP / VerifySP) for the Go recursion-to-scalar-schedule
// translation.
package ipa

import (
	"context"
	"fmt"
	"math/big"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/msm"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
	"github.com/takakv/secp256k1-ipa-verifier/transcript"
)

// VerifyReduced verifies a Protocol 2 proof against generators g, h, base
// u and commitment P. Returns nil on accept, else one of this package's
// or its dependencies' sentinel errors.
func VerifyReduced(ctx context.Context, g, h []curve.Point, u, p curve.Point, proof Proof2) error {
	n := len(g)
	if n != len(h) || n != proof.N {
		return fmt.Errorf("%w: generators length %d/%d vs proof N=%d", ErrBadLength, len(g), len(h), proof.N)
	}
	logN, err := log2PowerOfTwo(n)
	if err != nil {
		return err
	}

	mod := proof.A.Modulus()

	if err := replayProtocol2Transcript(proof, logN, mod); err != nil {
		return err
	}

	s, err := scalarSchedule(proof.Xs, logN, n, mod)
	if err != nil {
		return err
	}

	sInv := make([]scalar.Element, n)
	for i, si := range s {
		inv, err := si.Inverse()
		if err != nil {
			return fmt.Errorf("%w: scalar schedule element %d not invertible", ErrBadChallenge, i)
		}
		sInv[i] = inv
	}

	lhsBases := make([]curve.Point, 0, 2*n+1)
	lhsScalars := make([]scalar.Element, 0, 2*n+1)
	for i := 0; i < n; i++ {
		as, err := proof.A.Mul(s[i])
		if err != nil {
			return err
		}
		lhsBases = append(lhsBases, g[i])
		lhsScalars = append(lhsScalars, as)
	}
	for i := 0; i < n; i++ {
		bsInv, err := proof.B.Mul(sInv[i])
		if err != nil {
			return err
		}
		lhsBases = append(lhsBases, h[i])
		lhsScalars = append(lhsScalars, bsInv)
	}
	ab, err := proof.A.Mul(proof.B)
	if err != nil {
		return err
	}
	lhsBases = append(lhsBases, u)
	lhsScalars = append(lhsScalars, ab)

	lhs, err := msm.Pippenger(ctx, lhsBases, lhsScalars)
	if err != nil {
		return err
	}

	rBases := make([]curve.Point, 0, 2*logN)
	rScalars := make([]scalar.Element, 0, 2*logN)
	two := big.NewInt(2)
	for i := 0; i < logN; i++ {
		x2 := proof.Xs[i].Pow(two)
		x2inv, err := x2.Inverse()
		if err != nil {
			return fmt.Errorf("%w: x_%d^2 not invertible", ErrBadChallenge, i)
		}
		rBases = append(rBases, proof.Ls[i])
		rScalars = append(rScalars, x2)
		rBases = append(rBases, proof.Rs[i])
		rScalars = append(rScalars, x2inv)
	}
	rSum, err := msm.Pippenger(ctx, rBases, rScalars)
	if err != nil {
		return err
	}
	rhs := p.Add(rSum)

	if !lhs.Equal(rhs) {
		return ErrEquationMismatch
	}
	return nil
}

// VerifyWrapped verifies a Protocol 1 proof: replays the one-round outer
// transcript, checks the recentring equations, and delegates to
// VerifyReduced with the recentred (u_new, P_new).
func VerifyWrapped(ctx context.Context, g, h []curve.Point, u, p curve.Point, c scalar.Element, proof Proof1) error {
	mod := c.Modulus()

	x := transcript.ChallengeFromPrefix(proof.Frozen, 1, mod)
	recorded := proof.Frozen[1].Scalar
	if !recorded.Equal(x) {
		return fmt.Errorf("%w: outer challenge replay disagrees", ErrTranscriptMismatch)
	}

	xc, err := x.Mul(c)
	if err != nil {
		return err
	}
	wantPNew := p.Add(u.Scale(xc))
	if !proof.PNew.Equal(wantPNew) {
		return ErrEquationMismatch
	}
	wantUNew := u.Scale(x)
	if !proof.UNew.Equal(wantUNew) {
		return ErrEquationMismatch
	}

	return VerifyReduced(ctx, g, h, proof.UNew, proof.PNew, proof.Inner)
}

// replayProtocol2Transcript checks, for each round i, that the recorded
// transcript slots at start+3i, start+3i+1, start+3i+2 equal L_i, R_i, x_i,
// and that x_i is exactly the challenge derivable from the transcript
// prefix ending at that slot.
func replayProtocol2Transcript(proof Proof2, logN int, mod *big.Int) error {
	for i := 0; i < logN; i++ {
		lSlot := proof.Start + 3*i
		rSlot := lSlot + 1
		xSlot := lSlot + 2

		if proof.Xs[i].IsZero() {
			return fmt.Errorf("%w: round %d challenge is zero", ErrBadChallenge, i)
		}

		lEntry := proof.Frozen[lSlot]
		if !lEntry.IsPoint() || !lEntry.Point.Equal(proof.Ls[i]) {
			return fmt.Errorf("%w: round %d L mismatch", ErrTranscriptMismatch, i)
		}
		rEntry := proof.Frozen[rSlot]
		if !rEntry.IsPoint() || !rEntry.Point.Equal(proof.Rs[i]) {
			return fmt.Errorf("%w: round %d R mismatch", ErrTranscriptMismatch, i)
		}
		xEntry := proof.Frozen[xSlot]
		if !xEntry.IsScalar() || !xEntry.Scalar.Equal(proof.Xs[i]) {
			return fmt.Errorf("%w: round %d challenge mismatch", ErrTranscriptMismatch, i)
		}

		derived := transcript.ChallengeFromPrefix(proof.Frozen, xSlot, mod)
		if !derived.Equal(proof.Xs[i]) {
			return fmt.Errorf("%w: round %d challenge replay disagrees", ErrTranscriptMismatch, i)
		}
	}
	return nil
}

// scalarSchedule computes s in Fq^n where s_i = prod_j x_{j+1}^b(i,j),
// b(i,j) = +1 if the j-th bit (most-significant first) of i is 1, else -1.
// xs is indexed 0..logN-1 corresponding to x_1..x_logN.
func scalarSchedule(xs []scalar.Element, logN, n int, mod *big.Int) ([]scalar.Element, error) {
	xInv := make([]scalar.Element, logN)
	for j, x := range xs {
		inv, err := x.Inverse()
		if err != nil {
			return nil, fmt.Errorf("%w: x_%d not invertible", ErrBadChallenge, j+1)
		}
		xInv[j] = inv
	}

	s := make([]scalar.Element, n)
	for i := 0; i < n; i++ {
		acc := scalar.One(mod)
		for j := 0; j < logN; j++ {
			bit := (i >> (logN - 1 - j)) & 1
			var err error
			if bit == 1 {
				acc, err = acc.Mul(xs[j])
			} else {
				acc, err = acc.Mul(xInv[j])
			}
			if err != nil {
				return nil, err
			}
		}
		s[i] = acc
	}
	return s, nil
}
