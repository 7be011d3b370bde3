// Package transcript implements a Fiat-Shamir transcript: an append-only
// log of points and scalars that derives challenges by serializing the
// accumulated entries into 86-bit big-integer limbs, hashing with
// blake2s-256, and folding the digest into the "computation prime"
// 2^251 + 17*2^192 + 1 before reducing into the caller's target modulus.
// Grounded on original_source/src/utils/transcript.py (the superseding,
// non-base64 variant) and original_source/src/utils/utils.py's
// mod_hash/to_cairo_big_int.
package transcript

import (
	"math/big"

	"golang.org/x/crypto/blake2s"

	"github.com/takakv/secp256k1-ipa-verifier/curve"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
)

// computationPrime is the large prime the hash-to-integer step is always
// performed in, decoupling challenge derivation from the target curve's
// order.
var computationPrime, _ = new(big.Int).SetString("800000000000011000000000000000000000000000000000000000000000001", 16)

const limbBase = 86 // bits per limb

// entryKind tags a recorded transcript entry.
type entryKind int

const (
	kindSeed entryKind = iota
	kindPoint
	kindScalar
)

// Entry is one recorded item of the frozen transcript.
type Entry struct {
	Kind   entryKind
	Point  curve.Point
	Scalar scalar.Element
	Seed   *big.Int
}

// IsPoint reports whether the entry is a recorded group element.
func (e Entry) IsPoint() bool { return e.Kind == kindPoint }

// IsScalar reports whether the entry is a recorded scalar.
func (e Entry) IsScalar() bool { return e.Kind == kindScalar }

// Transcript is the ordered append log backing Fiat-Shamir derivation.
type Transcript struct {
	entries []Entry
}

// New starts a transcript seeded with a raw integer.
func New(seed *big.Int) *Transcript {
	return &Transcript{entries: []Entry{{Kind: kindSeed, Seed: new(big.Int).Set(seed)}}}
}

// Entries returns the frozen, already-appended log.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of recorded entries, including the seed.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// AppendPoint records a group element.
func (t *Transcript) AppendPoint(p curve.Point) {
	t.entries = append(t.entries, Entry{Kind: kindPoint, Point: p})
}

// AppendScalar records a field element.
func (t *Transcript) AppendScalar(s scalar.Element) {
	t.entries = append(t.entries, Entry{Kind: kindScalar, Scalar: s})
}

// AppendScalars records a sequence of field elements in order.
func (t *Transcript) AppendScalars(ss []scalar.Element) {
	for _, s := range ss {
		t.AppendScalar(s)
	}
}

// Challenge derives the next challenge scalar from the entries recorded so
// far, reduced into targetModulus. It does not itself append the
// challenge; callers append it explicitly if it becomes part of the
// frozen transcript.
func (t *Transcript) Challenge(targetModulus *big.Int) scalar.Element {
	return challengeOf(t.entries, targetModulus)
}

// ChallengeFromPrefix derives a challenge as if the transcript contained
// only its first n entries, used to replay a frozen transcript's recorded
// challenges.
func ChallengeFromPrefix(entries []Entry, n int, targetModulus *big.Int) scalar.Element {
	return challengeOf(entries[:n], targetModulus)
}

func challengeOf(entries []Entry, targetModulus *big.Int) scalar.Element {
	buf := serialize(entries)
	sum := blake2s.Sum256(buf)

	acc := new(big.Int)
	word := new(big.Int)
	for i := 0; i < 8; i++ {
		word.SetUint64(uint64(sum[4*i]) | uint64(sum[4*i+1])<<8 | uint64(sum[4*i+2])<<16 | uint64(sum[4*i+3])<<24)
		shift := uint(32 * (7 - i))
		acc.Add(acc, new(big.Int).Lsh(word, shift))
	}
	acc.Mod(acc, computationPrime)
	return scalar.New(acc, targetModulus)
}

// serialize turns the recorded entries into the byte stream fed to
// blake2s: each point as six 32-byte little-endian limbs (three per
// coordinate), each scalar as three 32-byte little-endian limbs, and the
// seed as a single 32-byte little-endian value.
func serialize(entries []Entry) []byte {
	var out []byte
	for _, e := range entries {
		switch e.Kind {
		case kindSeed:
			out = append(out, to32LE(e.Seed)...)
		case kindScalar:
			out = append(out, limbsLE(e.Scalar.BigInt())...)
		case kindPoint:
			if e.Point.IsIdentity() {
				out = append(out, limbsLE(big.NewInt(0))...)
				out = append(out, limbsLE(big.NewInt(0))...)
				continue
			}
			out = append(out, limbsLE(e.Point.X())...)
			out = append(out, limbsLE(e.Point.Y())...)
		}
	}
	return out
}

// limbsLE splits v into three 86-bit limbs (d0, d1, d2) such that
// v = d0 + 2^86*d1 + 2^172*d2, each emitted as a 32-byte little-endian
// integer, concatenated d0||d1||d2.
func limbsLE(v *big.Int) []byte {
	base := new(big.Int).Lsh(big.NewInt(1), limbBase)
	base2 := new(big.Int).Lsh(big.NewInt(1), 2*limbBase)

	d2 := new(big.Int).Div(v, base2)
	rem := new(big.Int).Mod(v, base2)
	d1 := new(big.Int).Div(rem, base)
	d0 := new(big.Int).Mod(rem, base)

	out := make([]byte, 0, 96)
	out = append(out, to32LE(d0)...)
	out = append(out, to32LE(d1)...)
	out = append(out, to32LE(d2)...)
	return out
}

func to32LE(v *big.Int) []byte {
	b := v.Bytes() // big-endian
	var out [32]byte
	for i, by := range b {
		out[len(b)-1-i] = by
	}
	return out[:]
}
