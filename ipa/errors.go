package ipa

import "errors"

// Error taxonomy for the inner-product verifier. Kinds specific to
// scalar/curve/msm concerns are defined and returned by those packages
// directly (scalar.ErrModulusMismatch, scalar.ErrNonInvertible,
// curve.ErrNotOnCurve, curve.ErrDecode, msm.ErrLengthMismatch,
// msm.ErrCancelled) and are passed through by this package's functions,
// mostly unchanged and in a few places wrapped with extra context.
var (
	// ErrBadLength is returned when n is not a power of two, or when L/R/x
	// round counts disagree.
	ErrBadLength = errors.New("ipa: bad length")
	// ErrBadChallenge is returned when a required Fiat-Shamir challenge is
	// zero (non-invertible).
	ErrBadChallenge = errors.New("ipa: bad challenge")
	// ErrTranscriptMismatch is returned when transcript replay disagrees
	// with a recorded item or derived challenge.
	ErrTranscriptMismatch = errors.New("ipa: transcript mismatch")
	// ErrEquationMismatch is returned when the final group equation fails.
	ErrEquationMismatch = errors.New("ipa: equation mismatch")
)
