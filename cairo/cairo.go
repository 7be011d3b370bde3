// Package cairo is an optional serializer trait the verifier core never
// depends on. It exists purely so a downstream prover-side consumer can
// replay a verified transcript into Cairo-style BigInt3 limbs, matching
// original_source/src/utils/utils.py's to_cairo_big_int/from_cairo_big_int
// arithmetic.
package cairo

import (
	"math/big"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
	"github.com/takakv/secp256k1-ipa-verifier/transcript"
)

const bigIntBase = 86 // bits per limb, matching transcript's 86-bit split.

// BigInt3 is the three-limb representation used by Cairo's BigInt3 struct:
// v = D0 + 2^86*D1 + 2^172*D2.
type BigInt3 struct {
	D0, D1, D2 *big.Int
}

// ToBigInt3 splits v into its three 86-bit limbs.
func ToBigInt3(v *big.Int) BigInt3 {
	base := new(big.Int).Lsh(big.NewInt(1), bigIntBase)
	base2 := new(big.Int).Lsh(big.NewInt(1), 2*bigIntBase)

	d2 := new(big.Int).Div(v, base2)
	rem := new(big.Int).Mod(v, base2)
	d1 := new(big.Int).Div(rem, base)
	d0 := new(big.Int).Mod(rem, base)
	return BigInt3{D0: d0, D1: d1, D2: d2}
}

// Int reassembles the three limbs into a single integer.
func (b BigInt3) Int() *big.Int {
	base := new(big.Int).Lsh(big.NewInt(1), bigIntBase)
	base2 := new(big.Int).Lsh(big.NewInt(1), 2*bigIntBase)

	v := new(big.Int).Mul(b.D2, base2)
	v.Add(v, new(big.Int).Mul(b.D1, base))
	v.Add(v, b.D0)
	return v
}

// Emitter is implemented by a downstream consumer that wants verified
// transcript data expressed as Cairo-compatible limbs. The core never
// imports this interface; it is defined here purely as the documented
// contract for such a consumer.
type Emitter interface {
	// EmitScalar records a field element as a BigInt3 of its canonical
	// representative.
	EmitScalar(scalar.Element)
	// EmitPoint records a group element as two BigInt3 (x, y); the
	// identity is emitted as two zero BigInt3 values.
	EmitPoint(curve.Point)
	// EmitTranscript replays every entry of a transcript through
	// EmitScalar/EmitPoint in order.
	EmitTranscript(*transcript.Transcript)
}

// EmitTranscript is a helper an Emitter implementation can call from its
// own EmitTranscript method to replay entries without re-deriving the
// point/scalar dispatch itself.
func EmitTranscript(e Emitter, t *transcript.Transcript) {
	for _, entry := range t.Entries() {
		switch {
		case entry.IsPoint():
			e.EmitPoint(entry.Point)
		case entry.IsScalar():
			e.EmitScalar(entry.Scalar)
		}
	}
}
