// Command verify-example exercises the verifier core end to end against a
// trivial n=1 inner-product argument: g0 = h0 = G, u = 2G, a = 3, b = 5,
// c = 15. It is a demonstration binary only — the verifier core takes no
// part in constructing proofs; this command plays prover for a single
// hardcoded scenario purely so the verifier core has an end-to-end
// runtime surface.
package main

import (
	"context"
	"math/big"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/ipa"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
	"github.com/takakv/secp256k1-ipa-verifier/transcript"
	"github.com/takakv/secp256k1-ipa-verifier/verifier"
)

func main() {
	seed := pflag.Int64("seed", 0, "Fiat-Shamir transcript seed")
	corruptClaim := pflag.Bool("corrupt-claim", false, "mutate the claimed inner product to trigger a rejection")
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	mod := curve.Order()
	g0 := curve.Generator()
	h0 := curve.Generator()
	u := curve.Generator().Add(curve.Generator())

	a := scalar.FromInt64(3, mod)
	b := scalar.FromInt64(5, mod)
	c := scalar.FromInt64(15, mod)
	if *corruptClaim {
		c = scalar.FromInt64(14, mod)
		log.Warn().Msg("corrupting claimed inner product to 14 (expect rejection)")
	}

	p := g0.Scale(a).Add(h0.Scale(b))

	proof, err := buildTrivialProof1(mod, *seed, g0, h0, u, p, a, b, c)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to construct demonstration proof")
	}

	ctx := verifier.NewContext()
	accept, err := ctx.Verify(context.Background(), []curve.Point{g0}, []curve.Point{h0}, u, p, c, proof)
	log.Info().Bool("accept", accept).AnErr("error", err).Msg("verification result")
	if err != nil {
		os.Exit(1)
	}
}

// buildTrivialProof1 hand-assembles the unique valid Protocol 1 proof for
// the n=1 scenario, recomputing the same Fiat-Shamir challenge the
// verifier will independently derive.
func buildTrivialProof1(mod *big.Int, seed int64, g0, h0, u, p curve.Point, a, b, c scalar.Element) (ipa.Proof1, error) {
	t := transcript.New(big.NewInt(seed))
	x := t.Challenge(mod)
	t.AppendScalar(x)

	xc, err := x.Mul(c)
	if err != nil {
		return ipa.Proof1{}, err
	}
	uNew := u.Scale(x)
	pNew := p.Add(u.Scale(xc))

	inner, err := ipa.NewProof2(1, a, b, nil, nil, nil, nil, 0)
	if err != nil {
		return ipa.Proof1{}, err
	}

	return ipa.NewProof1(uNew, pNew, inner, t.Entries())
}
