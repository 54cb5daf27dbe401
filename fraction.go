package wheel

import "strconv"

// Frac is an exact-fraction representation of a wheel value over the
// fixed-width signed integer I.
// It is immutable and safe for concurrent use by multiple goroutines.
//
// A finite fraction is kept in canonical form: numerator and denominator
// are coprime, the denominator is positive and the sign lives on the
// numerator. A zero denominator encodes the special elements: nonzero/0 is
// the unsigned infinity (with the numerator collapsed to 1, as the
// magnitude of an infinite quantity is not tracked) and 0/0 is the bottom
// element. Canonical form makes equality a direct field comparison.
//
// The zero value is the bottom element ⊥, the fraction 0/0.
type Frac[I Int] struct {
	num I // carries the sign
	den I // always non-negative; zero encodes infinity or bottom
}

// Frac8 is a wheel of exact fractions over 8-bit signed integers.
type Frac8 = Frac[int8]

// Frac16 is a wheel of exact fractions over 16-bit signed integers.
type Frac16 = Frac[int16]

// Frac32 is a wheel of exact fractions over 32-bit signed integers.
type Frac32 = Frac[int32]

// Frac64 is a wheel of exact fractions over 64-bit signed integers.
type Frac64 = Frac[int64]

// NewFrac returns the canonical fraction num/den.
//
// A zero denominator is not an error: 0/0 is the bottom element and any
// other n/0 is the infinity. NewFrac returns [ErrOverflow] only when the
// canonical form does not fit the width of I, which happens when a term of
// the reduced pair would be the negation of the minimum value of I.
// For example, int8 -128/-3 is in lowest terms already, but its canonical
// form 128/3 needs a numerator the width cannot represent.
func NewFrac[I Int](num, den I) (Frac[I], error) {
	return newFrac(num, den)
}

// NewFracFromInt returns the fraction n/1. It never fails:
// every integer of width I is already in canonical form over denominator 1.
func NewFracFromInt[I Int](n I) Frac[I] {
	return Frac[I]{num: n, den: 1}
}

// newFrac normalizes an arbitrary pair into canonical form:
//
//  1. 0/0 is the bottom element.
//  2. n/0 with nonzero n is the infinity, numerator collapsed to 1.
//  3. 0/d is the canonical zero 0/1.
//  4. Otherwise both terms are divided by their gcd, which carries the
//     denominator's sign so the denominator always ends up positive.
func newFrac[I Int](num, den I) (Frac[I], error) {
	switch {
	case num == 0 && den == 0:
		return Frac[I]{}, nil
	case den == 0:
		return Frac[I]{num: 1, den: 0}, nil
	case num == 0:
		return Frac[I]{num: 0, den: 1}, nil
	}
	g := gcdInt(num, den)
	n, ok := quoInt(num, g)
	if !ok {
		return Frac[I]{}, ErrOverflow
	}
	d, ok := quoInt(den, g)
	if !ok {
		return Frac[I]{}, ErrOverflow
	}
	return Frac[I]{num: n, den: d}, nil
}

// Zero returns the wheel value 0.
func (x Frac[I]) Zero() Frac[I] {
	return Frac[I]{num: 0, den: 1}
}

// One returns the wheel value 1.
func (x Frac[I]) One() Frac[I] {
	return Frac[I]{num: 1, den: 1}
}

// Inf returns the unsigned infinity, the multiplicative inverse of zero.
func (x Frac[I]) Inf() Frac[I] {
	return Frac[I]{num: 1, den: 0}
}

// Bottom returns the bottom element ⊥, the fraction 0/0.
// Bottom absorbs every operation.
func (x Frac[I]) Bottom() Frac[I] {
	return Frac[I]{}
}

// Num returns the canonical numerator of x.
// For the infinity it is 1 and for the bottom element it is 0.
func (x Frac[I]) Num() I {
	return x.num
}

// Den returns the canonical denominator of x.
// It is zero exactly for the infinity and the bottom element.
func (x Frac[I]) Den() I {
	return x.den
}

// IsZero reports whether x is 0.
func (x Frac[I]) IsZero() bool {
	return x.num == 0 && x.den != 0
}

// IsOne reports whether x is 1.
func (x Frac[I]) IsOne() bool {
	return x.num == 1 && x.den == 1
}

// IsInf reports whether x is the infinity element.
func (x Frac[I]) IsInf() bool {
	return x.num != 0 && x.den == 0
}

// IsBottom reports whether x is the bottom element.
func (x Frac[I]) IsBottom() bool {
	return x.num == 0 && x.den == 0
}

// IsFinite reports whether x is an ordinary fraction, including zero.
func (x Frac[I]) IsFinite() bool {
	return x.den != 0
}

// IsNeg reports whether x is a negative finite fraction.
func (x Frac[I]) IsNeg() bool {
	return x.num < 0 && x.den != 0
}

// Add returns the sum of x and y by cross-multiplication:
//
//	a/b + c/d = (a*d + c*b) / (b*d)
//
// The special elements need no cases of their own: a zero denominator
// propagates through the cross-multiplication, yielding ∞ + finite = ∞,
// ∞ + ∞ = ⊥ and ⊥ + y = ⊥.
//
// Add returns [ErrOverflow] if any of the three products or the sum
// exceeds the width of I. The wheel algebra itself is exact; only the
// fixed-width backing is finite.
func (x Frac[I]) Add(y Frac[I]) (Frac[I], error) {
	a, ok1 := mulInt(x.num, y.den)
	b, ok2 := mulInt(y.num, x.den)
	d, ok3 := mulInt(x.den, y.den)
	if !ok1 || !ok2 || !ok3 {
		return Frac[I]{}, ErrOverflow
	}
	n, ok := addInt(a, b)
	if !ok {
		return Frac[I]{}, ErrOverflow
	}
	return newFrac(n, d)
}

// Sub returns the difference of x and y, defined as x + (-y).
// Consequently ∞ - ∞ is ⊥ and x - x is not always zero.
// Sub returns [ErrOverflow] under the same conditions as [Frac.Add] and
// [Frac.Neg].
func (x Frac[I]) Sub(y Frac[I]) (Frac[I], error) {
	n, err := y.Neg()
	if err != nil {
		return Frac[I]{}, err
	}
	return x.Add(n)
}

// Mul returns the product of x and y:
//
//	a/b * c/d = (a*c) / (b*d)
//
// As with [Frac.Add], the special elements fall out of the pair arithmetic:
// 0 * ∞ is (0*1)/(1*0) = 0/0 = ⊥, and ⊥ absorbs.
//
// Mul returns [ErrOverflow] if either product exceeds the width of I.
func (x Frac[I]) Mul(y Frac[I]) (Frac[I], error) {
	n, ok1 := mulInt(x.num, y.num)
	d, ok2 := mulInt(x.den, y.den)
	if !ok1 || !ok2 {
		return Frac[I]{}, ErrOverflow
	}
	return newFrac(n, d)
}

// Neg returns x with the opposite sign.
// Neg is its own inverse; the infinity is unsigned, so -∞ = ∞, and -⊥ = ⊥.
// Neg returns [ErrOverflow] when the numerator is the minimum value of I,
// whose negation the width cannot represent.
func (x Frac[I]) Neg() (Frac[I], error) {
	if x.den == 0 {
		return x, nil
	}
	n, ok := negInt(x.num)
	if !ok {
		return Frac[I]{}, ErrOverflow
	}
	return Frac[I]{num: n, den: x.den}, nil
}

// Inv returns the reciprocal of x by swapping the pair:
//
//	inv(a/b) = b/a
//
// The swap is the entire special-case handling: inv(0/1) = 1/0 = ∞,
// inv(1/0) = 0/1 = 0 and inv(0/0) = 0/0 = ⊥.
// Inv returns [ErrOverflow] when the numerator is the minimum value of I
// (the swapped pair then needs its negation as a denominator).
func (x Frac[I]) Inv() (Frac[I], error) {
	return newFrac(x.den, x.num)
}

// Div returns the quotient of x and y, defined as x * (1/y).
// Division by zero is therefore total: x/0 is ∞ for nonzero finite x,
// and 0/0 is ⊥.
// Div returns [ErrOverflow] under the same conditions as [Frac.Mul] and
// [Frac.Inv].
func (x Frac[I]) Div(y Frac[I]) (Frac[I], error) {
	i, err := y.Inv()
	if err != nil {
		return Frac[I]{}, err
	}
	return x.Mul(i)
}

// Equal reports whether x and y represent the same wheel value.
// Canonical form makes this a direct field comparison, total for all
// elements: two infinities are equal, and, unlike the floating
// representation, ⊥ equals ⊥ — there is only one bit pattern for it.
func (x Frac[I]) Equal(y Frac[I]) bool {
	return x == y
}

// String implements the [fmt.Stringer] interface.
// The special elements render as "Inf" and "Bottom"; integers render
// without a denominator and other fractions as "n/d".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Frac[I]) String() string {
	switch {
	case x.IsBottom():
		return "Bottom"
	case x.IsInf():
		return "Inf"
	case x.den == 1:
		return strconv.FormatInt(int64(x.num), 10)
	}
	return strconv.FormatInt(int64(x.num), 10) + "/" + strconv.FormatInt(int64(x.den), 10)
}
