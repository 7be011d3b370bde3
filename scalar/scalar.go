// Package scalar implements arithmetic over Z/qZ for the secp256k1 scalar
// field, and the distinct lifted-integer and modulus-mismatch rules that
// keep scalar operations from silently mixing moduli.
package scalar

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrModulusMismatch is returned when an operation combines two elements
// defined over different moduli.
var ErrModulusMismatch = errors.New("scalar: modulus mismatch")

// ErrNonInvertible is returned by Inverse for the zero element.
var ErrNonInvertible = errors.New("scalar: not invertible")

// Element is an immutable member of Z/modZ, always stored reduced.
type Element struct {
	v   *big.Int
	mod *big.Int
}

// New reduces v into Z/modZ.
func New(v, mod *big.Int) Element {
	r := new(big.Int).Mod(v, mod)
	return Element{v: r, mod: mod}
}

// FromInt64 lifts a plain integer into Z/modZ.
func FromInt64(v int64, mod *big.Int) Element {
	return New(big.NewInt(v), mod)
}

// Zero returns the additive identity of Z/modZ.
func Zero(mod *big.Int) Element {
	return Element{v: big.NewInt(0), mod: mod}
}

// One returns the multiplicative identity of Z/modZ.
func One(mod *big.Int) Element {
	return Element{v: big.NewInt(1), mod: mod}
}

// Modulus returns the element's modulus.
func (e Element) Modulus() *big.Int {
	return e.mod
}

// BigInt returns the canonical, already-reduced representative.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

func (e Element) checkModulus(x Element) error {
	if e.mod.Cmp(x.mod) != 0 {
		return fmt.Errorf("%w: %s vs %s", ErrModulusMismatch, e.mod.String(), x.mod.String())
	}
	return nil
}

// Add returns e + x.
func (e Element) Add(x Element) (Element, error) {
	if err := e.checkModulus(x); err != nil {
		return Element{}, err
	}
	return New(new(big.Int).Add(e.v, x.v), e.mod), nil
}

// Sub returns e - x.
func (e Element) Sub(x Element) (Element, error) {
	if err := e.checkModulus(x); err != nil {
		return Element{}, err
	}
	return New(new(big.Int).Sub(e.v, x.v), e.mod), nil
}

// Mul returns e * x.
func (e Element) Mul(x Element) (Element, error) {
	if err := e.checkModulus(x); err != nil {
		return Element{}, err
	}
	return New(new(big.Int).Mul(e.v, x.v), e.mod), nil
}

// Neg returns -e.
func (e Element) Neg() Element {
	return New(new(big.Int).Neg(e.v), e.mod)
}

// Pow returns e^k for a non-negative exponent k.
func (e Element) Pow(k *big.Int) Element {
	r := new(big.Int).Exp(e.v, k, e.mod)
	return Element{v: r, mod: e.mod}
}

// Inverse returns the modular inverse of e via the extended Euclidean
// algorithm, failing with ErrNonInvertible for the zero element.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrNonInvertible
	}
	g, a, _ := extendedGCD(e.v, e.mod)
	if g.Cmp(big.NewInt(1)) != 0 {
		return Element{}, ErrNonInvertible
	}
	return New(a, e.mod), nil
}

// Equal reports whether e and x denote the same element of the same field.
func (e Element) Equal(x Element) bool {
	return e.mod.Cmp(x.mod) == 0 && e.v.Cmp(x.v) == 0
}

// String renders the canonical decimal representative.
func (e Element) String() string {
	return e.v.String()
}

// MulInt64 multiplies e by a lifted plain integer (the i64 x Fq -> Fq rule).
func (e Element) MulInt64(k int64) Element {
	lifted := FromInt64(k, e.mod)
	r, _ := e.Mul(lifted) // same modulus by construction; error impossible.
	return r
}

// extendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
func extendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1)
	}
	aMod := new(big.Int).Mod(b, a)
	g1, x1, y1 := extendedGCD(aMod, a)
	q := new(big.Int).Div(b, a)
	x = new(big.Int).Sub(y1, new(big.Int).Mul(q, x1))
	return g1, x, x1
}
