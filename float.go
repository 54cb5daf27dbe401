package wheel

import (
	"math"
	"strconv"
)

// Real is the set of native floating-point types that can back a [Float].
type Real interface {
	~float32 | ~float64
}

// Float is a floating-point representation of a wheel value.
// The zero value is the numeric value of 0.
// It is immutable and safe for concurrent use by multiple goroutines.
//
// Internally the native infinity and not-a-number sentinels encode the
// wheel's infinity and bottom elements. This is a representation detail:
// construction canonicalizes every input (both native infinities map to the
// one unsigned wheel infinity, the negative zero maps to zero), every
// operation stays within the three-variant model, and no raw accessor is
// exposed, so the native sentinels never leak through the public surface.
type Float[R Real] struct {
	val R
}

// Float32 is a wheel backed by a single-width floating-point value.
type Float32 = Float[float32]

// Float64 is a wheel backed by a double-width floating-point value.
type Float64 = Float[float64]

// NewFloat returns a wheel value for the given floating-point value.
// A native infinity of either sign becomes the wheel's unsigned infinity,
// and a native not-a-number becomes the bottom element.
func NewFloat[R Real](val R) Float[R] {
	return newFloat(val)
}

// NewFloat32 returns a single-width wheel value for the given float32.
// See [NewFloat] for the mapping of the native special values.
func NewFloat32(val float32) Float32 {
	return newFloat(val)
}

// NewFloat64 returns a double-width wheel value for the given float64.
// See [NewFloat] for the mapping of the native special values.
func NewFloat64(val float64) Float64 {
	return newFloat(val)
}

// newFloat canonicalizes val: -Inf becomes +Inf (infinity is unsigned)
// and -0 becomes 0 (there is no signed zero).
func newFloat[R Real](val R) Float[R] {
	f := float64(val)
	switch {
	case math.IsInf(f, -1):
		return Float[R]{val: R(math.Inf(1))}
	case f == 0:
		return Float[R]{val: 0}
	}
	return Float[R]{val: val}
}

// category of a float value within the three-variant model.
// Zero is split out because it drives the 0 * ∞ axiom.
type category int8

const (
	catZero category = iota
	catFinite
	catInf
	catBottom
)

func (x Float[R]) category() category {
	f := float64(x.val)
	switch {
	case math.IsNaN(f):
		return catBottom
	case math.IsInf(f, 0):
		return catInf
	case f == 0:
		return catZero
	}
	return catFinite
}

// Zero returns the wheel value 0.
func (x Float[R]) Zero() Float[R] {
	return Float[R]{}
}

// One returns the wheel value 1.
func (x Float[R]) One() Float[R] {
	return Float[R]{val: 1}
}

// Inf returns the unsigned infinity, the multiplicative inverse of zero.
func (x Float[R]) Inf() Float[R] {
	return Float[R]{val: R(math.Inf(1))}
}

// Bottom returns the bottom element ⊥, the result of indeterminate forms
// such as 0/0. Bottom absorbs every operation.
func (x Float[R]) Bottom() Float[R] {
	return Float[R]{val: R(math.NaN())}
}

// IsZero reports whether x is 0.
func (x Float[R]) IsZero() bool {
	return x.category() == catZero
}

// IsOne reports whether x is 1.
func (x Float[R]) IsOne() bool {
	return x.val == 1
}

// IsInf reports whether x is the infinity element.
func (x Float[R]) IsInf() bool {
	return x.category() == catInf
}

// IsBottom reports whether x is the bottom element.
func (x Float[R]) IsBottom() bool {
	return x.category() == catBottom
}

// IsFinite reports whether x is an ordinary number, including zero.
func (x Float[R]) IsFinite() bool {
	c := x.category()
	return c == catZero || c == catFinite
}

// IsNeg reports whether x is a negative finite number.
func (x Float[R]) IsNeg() bool {
	return x.category() == catFinite && x.val < 0
}

// Add returns the sum of x and y:
//
//	⊥ + y = ⊥
//	∞ + ∞ = ⊥
//	∞ + finite = ∞
//
// A finite sum that exceeds the native range becomes the wheel infinity.
// The error is always nil; it satisfies the [Wheel] contract.
func (x Float[R]) Add(y Float[R]) (Float[R], error) {
	xc, yc := x.category(), y.category()
	switch {
	case xc == catBottom || yc == catBottom:
		return x.Bottom(), nil
	case xc == catInf && yc == catInf:
		return x.Bottom(), nil
	case xc == catInf || yc == catInf:
		return x.Inf(), nil
	}
	return newFloat(x.val + y.val), nil
}

// Sub returns the difference of x and y, defined as x + (-y).
// Consequently ∞ - ∞ is ⊥ and x - x is not always zero.
// The error is always nil; it satisfies the [Wheel] contract.
func (x Float[R]) Sub(y Float[R]) (Float[R], error) {
	n, _ := y.Neg()
	return x.Add(n)
}

// Mul returns the product of x and y:
//
//	⊥ * y = ⊥
//	0 * ∞ = ⊥
//	0 * finite = 0
//	∞ * nonzero = ∞
//
// A finite product that exceeds the native range becomes the wheel infinity.
// The error is always nil; it satisfies the [Wheel] contract.
func (x Float[R]) Mul(y Float[R]) (Float[R], error) {
	xc, yc := x.category(), y.category()
	switch {
	case xc == catBottom || yc == catBottom:
		return x.Bottom(), nil
	case xc == catInf && yc == catZero, xc == catZero && yc == catInf:
		return x.Bottom(), nil
	case xc == catInf || yc == catInf:
		return x.Inf(), nil
	case xc == catZero || yc == catZero:
		return x.Zero(), nil
	}
	return newFloat(x.val * y.val), nil
}

// Neg returns x with the opposite sign.
// Neg is its own inverse; the infinity is unsigned, so -∞ = ∞, and -⊥ = ⊥.
// The error is always nil; it satisfies the [Wheel] contract.
func (x Float[R]) Neg() (Float[R], error) {
	switch x.category() {
	case catInf, catBottom:
		return x, nil
	}
	return newFloat(-x.val), nil
}

// Inv returns the reciprocal of x:
//
//	1/0 = ∞
//	1/∞ = 0
//	1/⊥ = ⊥
//
// The error is always nil; it satisfies the [Wheel] contract.
func (x Float[R]) Inv() (Float[R], error) {
	switch x.category() {
	case catBottom:
		return x.Bottom(), nil
	case catInf:
		return x.Zero(), nil
	case catZero:
		return x.Inf(), nil
	}
	return newFloat(1 / x.val), nil
}

// Div returns the quotient of x and y, defined as x * (1/y).
// Division by zero is therefore total: x/0 is ∞ for nonzero finite x,
// and 0/0 is ⊥.
// The error is always nil; it satisfies the [Wheel] contract.
func (x Float[R]) Div(y Float[R]) (Float[R], error) {
	i, _ := y.Inv()
	return x.Mul(i)
}

// Equal reports whether x and y represent the same wheel value.
// Finite values compare exactly, with no tolerance.
// The bottom element equals nothing, not even another bottom, mirroring the
// native not-a-number rule. This intentionally differs from the fraction
// representation, where ⊥ equals ⊥.
func (x Float[R]) Equal(y Float[R]) bool {
	// Values are canonical (one infinity, no negative zero), so the native
	// comparison implements the wheel equivalence, including ⊥ ≠ ⊥.
	return x.val == y.val
}

// RoughlyEqual reports whether x and y are of the same category and, for
// finite values, within a fixed width-dependent tolerance of each other
// (1e-4 for single width, 1e-7 for double width).
// Unlike [Float.Equal], two bottoms are roughly equal.
func (x Float[R]) RoughlyEqual(y Float[R]) bool {
	xc, yc := x.category(), y.category()
	if xc != yc {
		return false
	}
	if xc != catFinite {
		return true
	}
	eps := R(1e-7)
	if bitSize[R]() == 32 {
		eps = R(1e-4)
	}
	d := x.val - y.val
	return d < eps && d > -eps
}

// bitSize reports the width of R. The smallest positive float64 underflows
// to zero when converted to a single-width float.
func bitSize[R Real]() int {
	if R(math.SmallestNonzeroFloat64) == 0 {
		return 32
	}
	return 64
}

// String implements the [fmt.Stringer] interface.
// The special elements render as "Inf" and "Bottom"; finite values use the
// shortest representation that round-trips.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Float[R]) String() string {
	switch x.category() {
	case catZero:
		return "0"
	case catInf:
		return "Inf"
	case catBottom:
		return "Bottom"
	}
	return strconv.FormatFloat(float64(x.val), 'g', -1, bitSize[R]())
}
