package wheel

// Int is the set of fixed-width signed integers that can back a fraction.
// The 128-bit width has no native Go type and is covered by [Frac128].
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// addInt calculates x + y and checks overflow.
func addInt[I Int](x, y I) (z I, ok bool) {
	z = x + y
	if (x > 0 && y > 0 && z <= 0) || (x < 0 && y < 0 && z >= 0) {
		return 0, false
	}
	return z, true
}

// negInt calculates -x and checks overflow.
// The only overflowing input is the minimum value of I,
// whose negation is not representable in two's complement.
func negInt[I Int](x I) (z I, ok bool) {
	if x != 0 && x == -x {
		return 0, false
	}
	return -x, true
}

// mulInt calculates x * y and checks overflow.
func mulInt[I Int](x, y I) (z I, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	// The z / y == x check below cannot validate y == -1: the minimum
	// value of I times -1 wraps to itself, and so does the quotient,
	// making the check pass on an overflowed product.
	if x == -1 {
		return negInt(y)
	}
	if y == -1 {
		return negInt(x)
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// quoInt calculates x / y and checks overflow.
// y must be nonzero and must divide x exactly.
// The only overflowing case is dividing the minimum value of I by -1,
// which would silently wrap to itself.
func quoInt[I Int](x, y I) (z I, ok bool) {
	if y == -1 {
		return negInt(x)
	}
	return x / y, true
}

// gcdInt calculates the greatest common divisor of x and y, carrying the
// sign of y so that y / gcdInt(x, y) is always positive.
// y must be nonzero; x may be any value, including the minimum of I.
func gcdInt[I Int](x, y I) I {
	d := y
	for y != 0 {
		x, y = y, x%y
	}
	// x now holds the gcd up to sign. It divides d, so whenever the signs
	// disagree the negation below stays within the range of I.
	if (x < 0) != (d < 0) {
		return -x
	}
	return x
}
