package wheel

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by fraction arithmetic when an exact intermediate
// or final value does not fit the backing integer width.
// It is a representation error, not an algebraic one: indeterminate forms
// such as 0/0 are the bottom value, never an error.
var ErrOverflow = errors.New("integer overflow")

// Wheel is the algebraic contract shared by every representation in this
// package: a number system extended with an unsigned infinity and a bottom
// element so that division is total.
//
// All operations are algebraically total. The error result exists only for
// the representational overflow of the fraction types; the floating types
// always return a nil error.
//
// Division is not the same as the multiplicative inverse: Div is defined as
// Mul(Inv), so x / x is not always one. Likewise Sub is defined as Add(Neg),
// so x - x is not always zero.
//
// Equal is always defined, but ordering is not: infinity is unsigned, so the
// representations are not ordered sets.
type Wheel[T any] interface {
	// Constants. Go has no struct constants, so they are value methods;
	// the receiver's own value is ignored.
	Zero() T
	One() T
	Inf() T
	Bottom() T

	// Additive structure. Sub(y) is Add(y.Neg()).
	Add(T) (T, error)
	Sub(T) (T, error)
	Neg() (T, error)

	// Multiplicative structure, made total by Inv: Inv of zero is infinity,
	// Inv of infinity is zero, Inv of bottom is bottom.
	// Div(y) is Mul(y.Inv()).
	Mul(T) (T, error)
	Div(T) (T, error)
	Inv() (T, error)

	Equal(T) bool

	IsZero() bool
	IsOne() bool
	IsInf() bool
	IsBottom() bool

	fmt.Stringer
}

var (
	_ Wheel[Float32] = Float32{}
	_ Wheel[Float64] = Float64{}
	_ Wheel[Frac8]   = Frac8{}
	_ Wheel[Frac16]  = Frac16{}
	_ Wheel[Frac32]  = Frac32{}
	_ Wheel[Frac64]  = Frac64{}
	_ Wheel[Frac128] = Frac128{}
)
