package wheel

// Frac128 is an exact-fraction representation of a wheel value over a
// 128-bit signed integer range.
// It is immutable and safe for concurrent use by multiple goroutines.
//
// There is no native 128-bit integer in Go, so Frac128 stores the sign
// apart from two unsigned 128-bit magnitudes. The canonical form matches
// [Frac]: numerator and denominator coprime, a zero denominator encoding
// the special elements (nonzero/0 is the unsigned infinity with the
// numerator collapsed to 1, 0/0 is the bottom element), and the sign flag
// false for zero and the special elements.
//
// The sign-magnitude layout makes [Frac128.Neg] and [Frac128.Inv] total:
// unlike the two's complement widths, no magnitude loses its negation.
//
// The zero value is the bottom element ⊥, the fraction 0/0.
type Frac128 struct {
	neg bool
	num u128
	den u128
}

// NewFrac128 returns the canonical fraction num/den.
//
// A zero denominator is not an error: 0/0 is the bottom element and any
// other n/0 is the infinity. NewFrac128 never fails: both magnitudes of an
// int64 pair fit the 128-bit backing with room to spare.
func NewFrac128(num, den int64) Frac128 {
	neg := (num < 0) != (den < 0)
	return normFrac128(neg, u128From64(abs64(num)), u128From64(abs64(den)))
}

// NewFrac128FromInt returns the fraction n/1. It never fails.
func NewFrac128FromInt(n int64) Frac128 {
	return Frac128{neg: n < 0, num: u128From64(abs64(n)), den: u128From64(1)}
}

// abs64 returns the magnitude of x as an unsigned value.
// The unsigned negation is exact even for the minimum int64.
func abs64(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// normFrac128 reduces a sign-magnitude pair to canonical form.
// The denominator's sign is already folded into neg, so unlike the two's
// complement widths nothing here can overflow: reduction only shrinks
// magnitudes.
func normFrac128(neg bool, num, den u128) Frac128 {
	switch {
	case num.isZero() && den.isZero():
		return Frac128{}
	case den.isZero():
		return Frac128{num: u128From64(1)}
	case num.isZero():
		return Frac128{den: u128From64(1)}
	}
	g := num.gcd(den)
	return Frac128{neg: neg, num: num.quo(g), den: den.quo(g)}
}

// Zero returns the wheel value 0.
func (x Frac128) Zero() Frac128 {
	return Frac128{den: u128From64(1)}
}

// One returns the wheel value 1.
func (x Frac128) One() Frac128 {
	return Frac128{num: u128From64(1), den: u128From64(1)}
}

// Inf returns the unsigned infinity, the multiplicative inverse of zero.
func (x Frac128) Inf() Frac128 {
	return Frac128{num: u128From64(1)}
}

// Bottom returns the bottom element ⊥, the fraction 0/0.
// Bottom absorbs every operation.
func (x Frac128) Bottom() Frac128 {
	return Frac128{}
}

// IsZero reports whether x is 0.
func (x Frac128) IsZero() bool {
	return x.num.isZero() && !x.den.isZero()
}

// IsOne reports whether x is 1.
func (x Frac128) IsOne() bool {
	return !x.neg && x.num == u128From64(1) && x.den == u128From64(1)
}

// IsInf reports whether x is the infinity element.
func (x Frac128) IsInf() bool {
	return !x.num.isZero() && x.den.isZero()
}

// IsBottom reports whether x is the bottom element.
func (x Frac128) IsBottom() bool {
	return x.num.isZero() && x.den.isZero()
}

// IsFinite reports whether x is an ordinary fraction, including zero.
func (x Frac128) IsFinite() bool {
	return !x.den.isZero()
}

// IsNeg reports whether x is a negative finite fraction.
func (x Frac128) IsNeg() bool {
	return x.neg
}

// Add returns the sum of x and y by cross-multiplication, as in [Frac.Add].
// Same-signed magnitudes add; mixed signs take the magnitude distance and
// the sign of the larger operand.
//
// Add returns [ErrOverflow] if a cross product or the magnitude sum
// exceeds 128 bits.
func (x Frac128) Add(y Frac128) (Frac128, error) {
	a, ok1 := x.num.mul(y.den)
	b, ok2 := y.num.mul(x.den)
	d, ok3 := x.den.mul(y.den)
	if !ok1 || !ok2 || !ok3 {
		return Frac128{}, ErrOverflow
	}
	var (
		n   u128
		neg bool
		ok  bool
	)
	if x.neg == y.neg {
		n, ok = a.add(b)
		if !ok {
			return Frac128{}, ErrOverflow
		}
		neg = x.neg
	} else if a.cmp(b) >= 0 {
		n = a.sub(b)
		neg = x.neg
	} else {
		n = b.sub(a)
		neg = y.neg
	}
	return normFrac128(neg, n, d), nil
}

// Sub returns the difference of x and y, defined as x + (-y).
// Consequently ∞ - ∞ is ⊥ and x - x is not always zero.
// Sub returns [ErrOverflow] under the same conditions as [Frac128.Add].
func (x Frac128) Sub(y Frac128) (Frac128, error) {
	n, err := y.Neg()
	if err != nil {
		return Frac128{}, err
	}
	return x.Add(n)
}

// Mul returns the product of x and y, as in [Frac.Mul].
// Mul returns [ErrOverflow] if either magnitude product exceeds 128 bits.
func (x Frac128) Mul(y Frac128) (Frac128, error) {
	n, ok1 := x.num.mul(y.num)
	d, ok2 := x.den.mul(y.den)
	if !ok1 || !ok2 {
		return Frac128{}, ErrOverflow
	}
	return normFrac128(x.neg != y.neg, n, d), nil
}

// Neg returns x with the opposite sign.
// Neg is its own inverse; the infinity is unsigned, so -∞ = ∞, and -⊥ = ⊥.
// The error is always nil for this width; it satisfies the [Wheel]
// contract.
func (x Frac128) Neg() (Frac128, error) {
	if x.num.isZero() || x.den.isZero() {
		return x, nil
	}
	x.neg = !x.neg
	return x, nil
}

// Inv returns the reciprocal of x by swapping the magnitudes, as in
// [Frac.Inv]. The error is always nil for this width; it satisfies the
// [Wheel] contract.
func (x Frac128) Inv() (Frac128, error) {
	return normFrac128(x.neg, x.den, x.num), nil
}

// Div returns the quotient of x and y, defined as x * (1/y).
// Division by zero is therefore total: x/0 is ∞ for nonzero finite x,
// and 0/0 is ⊥.
// Div returns [ErrOverflow] under the same conditions as [Frac128.Mul].
func (x Frac128) Div(y Frac128) (Frac128, error) {
	i, err := y.Inv()
	if err != nil {
		return Frac128{}, err
	}
	return x.Mul(i)
}

// Equal reports whether x and y represent the same wheel value.
// Canonical form makes this a direct field comparison; ⊥ equals ⊥,
// as in [Frac.Equal].
func (x Frac128) Equal(y Frac128) bool {
	return x == y
}

// String implements the [fmt.Stringer] interface, in the format of
// [Frac.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Frac128) String() string {
	switch {
	case x.IsBottom():
		return "Bottom"
	case x.IsInf():
		return "Inf"
	}
	s := ""
	if x.neg {
		s = "-"
	}
	s += x.num.string()
	if x.den == u128From64(1) {
		return s
	}
	return s + "/" + x.den.string()
}
