// Package verifier is the composition root of the inner-product verifier
// core: a synchronous, single-threaded, side-effect-free entry point
// replacing the source's module-level Pipsecp256k1/SUPERCURVE singletons
// with an explicit context struct threaded through each call.
package verifier

import (
	"context"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/ipa"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
)

// Context holds no state and carries no options; it gives call sites a
// single named value through which to run verification instead of calling
// the ipa package directly.
type Context struct{}

// NewContext constructs a verifier context for the fixed secp256k1 group.
func NewContext() Context {
	return Context{}
}

// Verify checks a Protocol 1 proof that the prover knows vectors a, b of
// length n with <a, b> = c, committed via generators g, h, blinding base u
// and commitment P. It is a pure function: the same inputs always produce
// the same (accept, error) pair.
func (Context) Verify(ctx context.Context, g, h []curve.Point, u, p curve.Point, c scalar.Element, proof ipa.Proof1) (bool, error) {
	if err := ipa.VerifyWrapped(ctx, g, h, u, p, c, proof); err != nil {
		return false, err
	}
	return true, nil
}
