// Package curve adapts github.com/ing-bank/zkrp's crypto/p256 point type to
// the verifier's group contract fixed to secp256k1: identity, add, scalar
// multiplication, equality, on-curve test, and compressed encoding.
package curve

import (
	"errors"
	"math/big"

	"github.com/ing-bank/zkrp/crypto/p256"
	"github.com/takakv/secp256k1-ipa-verifier/scalar"
)

// ErrNotOnCurve is returned when a point fails curve membership.
var ErrNotOnCurve = errors.New("curve: point not on curve")

// ErrDecode is returned for malformed compressed point encodings.
var ErrDecode = errors.New("curve: malformed point encoding")

var (
	fieldPrime, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	groupOrder, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	curveB        = big.NewInt(7)
)

// FieldPrime returns p, the prime modulus of the secp256k1 base field.
func FieldPrime() *big.Int { return new(big.Int).Set(fieldPrime) }

// Order returns q, the order of the secp256k1 base point (the scalar field
// modulus used throughout this module).
func Order() *big.Int { return new(big.Int).Set(groupOrder) }

// Point is an element of the secp256k1 group.
type Point struct {
	val *p256.P256
}

// Identity returns the group's identity element.
func Identity() Point {
	return Point{val: new(p256.P256).SetInfinity()}
}

// Generator returns the secp256k1 base point G.
func Generator() Point {
	return Point{val: new(p256.P256).ScalarBaseMult(big.NewInt(1))}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{val: new(p256.P256).Add(p.val, q.val)}
}

// Negate returns -p.
func (p Point) Negate() Point {
	return Point{val: new(p256.P256).Neg(p.val)}
}

// Subtract returns p - q.
func (p Point) Subtract(q Point) Point {
	return p.Add(q.Negate())
}

// ScalarMul returns k*p for a plain big.Int exponent, already reduced mod q
// by the caller via the scalar package.
func (p Point) ScalarMul(k *big.Int) Point {
	return Point{val: new(p256.P256).ScalarMult(p.val, k)}
}

// BaseScalarMul returns k*G.
func BaseScalarMul(k *big.Int) Point {
	return Point{val: new(p256.P256).ScalarBaseMult(k)}
}

// Scale returns s*p for a scalar field element (the Fq x G -> G rule).
func (p Point) Scale(s scalar.Element) Point {
	return p.ScalarMul(s.BigInt())
}

// Equal reports whether p and q denote the same group element.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	return p.val.X.Cmp(q.val.X) == 0 && p.val.Y.Cmp(q.val.Y) == 0
}

// IsIdentity reports whether p is the group's identity element.
func (p Point) IsIdentity() bool {
	return p.val.IsZero()
}

// X returns the affine x-coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return new(big.Int).Set(p.val.X)
}

// Y returns the affine y-coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return new(big.Int).Set(p.val.Y)
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + 7 (mod p). The identity
// is considered on-curve by convention.
func (p Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return true
	}
	x, y := p.val.X, p.val.Y
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, fieldPrime)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, fieldPrime)

	return lhs.Cmp(rhs) == 0
}

// Compress encodes p in the 33-byte SEC1 compressed format; the identity
// encodes as a single 0x00 byte.
func (p Point) Compress() []byte {
	if p.IsIdentity() {
		return []byte{0x00}
	}
	out := make([]byte, 33)
	if p.val.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xBytes := p.val.X.Bytes()
	copy(out[33-len(xBytes):], xBytes)
	return out
}

// Decompress recovers a point from its compressed encoding, selecting the
// y root whose parity matches the prefix byte via the p = 3 mod 4 fast
// square-root path (valid for secp256k1's field prime).
func Decompress(b []byte) (Point, error) {
	if len(b) == 1 && b[0] == 0x00 {
		return Identity(), nil
	}
	if len(b) != 33 {
		return Point{}, ErrDecode
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return Point{}, ErrDecode
	}
	wantOdd := b[0] == 0x03

	x := new(big.Int).SetBytes(b[1:])
	if x.Cmp(fieldPrime) >= 0 {
		return Point{}, ErrDecode
	}

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, fieldPrime)

	exp := new(big.Int).Add(fieldPrime, big.NewInt(1))
	exp.Rsh(exp, 2) // (p+1)/4, valid since p mod 4 == 3.
	y := new(big.Int).Exp(rhs, exp, fieldPrime)

	check := new(big.Int).Mul(y, y)
	check.Mod(check, fieldPrime)
	if check.Cmp(rhs) != 0 {
		return Point{}, ErrDecode
	}

	if (y.Bit(0) == 1) != wantOdd {
		y.Sub(fieldPrime, y)
	}

	pt := Point{val: new(p256.P256).SetInfinity()}
	pt.val.X = x
	pt.val.Y = y
	if !pt.IsOnCurve() {
		return Point{}, ErrNotOnCurve
	}
	return pt, nil
}

// String renders the underlying point for debugging.
func (p Point) String() string {
	return p.val.String()
}
