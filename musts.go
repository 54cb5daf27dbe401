package wheel

import "fmt"

// MustNewFrac is like [NewFrac] but panics if the pair cannot be
// canonicalized. It simplifies safe initialization of global variables
// holding fractions.
func MustNewFrac[I Int](num, den I) Frac[I] {
	f, err := NewFrac(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewFrac(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// MustAdd is like [Frac.Add] but panics if the sum overflows the width.
func (x Frac[I]) MustAdd(y Frac[I]) Frac[I] {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSub is like [Frac.Sub] but panics if the difference overflows the width.
func (x Frac[I]) MustSub(y Frac[I]) Frac[I] {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like [Frac.Mul] but panics if the product overflows the width.
func (x Frac[I]) MustMul(y Frac[I]) Frac[I] {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}

// MustDiv is like [Frac.Div] but panics if the quotient overflows the width.
func (x Frac[I]) MustDiv(y Frac[I]) Frac[I] {
	z, err := x.Div(y)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", y, err))
	}
	return z
}

// MustNeg is like [Frac.Neg] but panics if the negation overflows the width.
func (x Frac[I]) MustNeg() Frac[I] {
	z, err := x.Neg()
	if err != nil {
		panic(fmt.Sprintf("MustNeg() failed: %v", err))
	}
	return z
}

// MustInv is like [Frac.Inv] but panics if the reciprocal overflows the width.
func (x Frac[I]) MustInv() Frac[I] {
	z, err := x.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return z
}

// MustAdd is like [Frac128.Add] but panics if the sum overflows 128 bits.
func (x Frac128) MustAdd(y Frac128) Frac128 {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSub is like [Frac128.Sub] but panics if the difference overflows
// 128 bits.
func (x Frac128) MustSub(y Frac128) Frac128 {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like [Frac128.Mul] but panics if the product overflows 128 bits.
func (x Frac128) MustMul(y Frac128) Frac128 {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}

// MustDiv is like [Frac128.Div] but panics if the quotient overflows
// 128 bits.
func (x Frac128) MustDiv(y Frac128) Frac128 {
	z, err := x.Div(y)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", y, err))
	}
	return z
}
