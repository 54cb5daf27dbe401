package wheel

import (
	"math/bits"
	"strconv"
)

// u128 is an unsigned 128-bit integer made of two 64-bit limbs.
// It backs [Frac128], which stores the sign separately.
type u128 struct {
	hi, lo uint64
}

func u128From64(x uint64) u128 {
	return u128{lo: x}
}

func (x u128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

// cmp compares x and y and returns -1, 0 or 1.
func (x u128) cmp(y u128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

// add calculates x + y and checks overflow.
func (x u128) add(y u128) (z u128, ok bool) {
	var carry uint64
	z.lo, carry = bits.Add64(x.lo, y.lo, 0)
	z.hi, carry = bits.Add64(x.hi, y.hi, carry)
	if carry != 0 {
		return u128{}, false
	}
	return z, true
}

// sub calculates x - y.
// x must not be less than y.
func (x u128) sub(y u128) (z u128) {
	var borrow uint64
	z.lo, borrow = bits.Sub64(x.lo, y.lo, 0)
	z.hi, _ = bits.Sub64(x.hi, y.hi, borrow)
	return z
}

// mul calculates x * y and checks overflow.
func (x u128) mul(y u128) (z u128, ok bool) {
	if x.hi != 0 && y.hi != 0 {
		return u128{}, false
	}
	c1, m1 := bits.Mul64(x.hi, y.lo)
	c2, m2 := bits.Mul64(x.lo, y.hi)
	if c1 != 0 || c2 != 0 {
		return u128{}, false
	}
	hi, lo := bits.Mul64(x.lo, y.lo)
	mid, carry := bits.Add64(m1, m2, 0)
	if carry != 0 {
		return u128{}, false
	}
	hi, carry = bits.Add64(hi, mid, 0)
	if carry != 0 {
		return u128{}, false
	}
	return u128{hi: hi, lo: lo}, true
}

// lsh calculates x << 1.
func (x u128) lsh() u128 {
	return u128{hi: x.hi<<1 | x.lo>>63, lo: x.lo << 1}
}

// rsh calculates x >> 1.
func (x u128) rsh() u128 {
	return u128{hi: x.hi >> 1, lo: x.lo>>1 | x.hi<<63}
}

func (x u128) leadingZeros() int {
	if x.hi != 0 {
		return bits.LeadingZeros64(x.hi)
	}
	return 64 + bits.LeadingZeros64(x.lo)
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// y must be nonzero.
func (x u128) quoRem(y u128) (q, r u128) {
	if y.hi == 0 {
		q, rem := x.quoRem64(y.lo)
		return q, u128From64(rem)
	}
	return x.quoRemSlow(y)
}

// quoRem64 calculates q = ⌊x / y⌋ and the remainder for a 64-bit divisor.
// y must be nonzero.
func (x u128) quoRem64(y uint64) (q u128, r uint64) {
	if x.hi < y {
		q.lo, r = bits.Div64(x.hi, x.lo, y)
		return q, r
	}
	q.hi = x.hi / y
	q.lo, r = bits.Div64(x.hi%y, x.lo, y)
	return q, r
}

// quoRemSlow performs restoring shift-subtract division.
// It is only reached when the divisor is wider than 64 bits,
// so the loop runs at most 64 times.
func (x u128) quoRemSlow(y u128) (q, r u128) {
	if x.cmp(y) < 0 {
		return u128{}, x
	}
	shift := y.leadingZeros() - x.leadingZeros()
	d := y
	for i := 0; i < shift; i++ {
		d = d.lsh()
	}
	r = x
	for ; shift >= 0; shift-- {
		q = q.lsh()
		if r.cmp(d) >= 0 {
			r = r.sub(d)
			q.lo |= 1
		}
		d = d.rsh()
	}
	return q, r
}

// quo calculates x / y for an exact division.
// y must be nonzero.
func (x u128) quo(y u128) u128 {
	q, _ := x.quoRem(y)
	return q
}

// gcd calculates the greatest common divisor of x and y.
// y must be nonzero.
func (x u128) gcd(y u128) u128 {
	for !y.isZero() {
		_, r := x.quoRem(y)
		x, y = y, r
	}
	return x
}

// string converts x to a decimal string.
func (x u128) string() string {
	if x.hi == 0 {
		return strconv.FormatUint(x.lo, 10)
	}
	// Peel off 19 decimal digits per round; a 128-bit value needs at most
	// three rounds.
	const chunk = 10_000_000_000_000_000_000 // 10^19
	var buf [39]byte
	pos := len(buf)
	for x.hi != 0 {
		var r uint64
		x, r = x.quoRem64(chunk)
		for i := 0; i < 19; i++ {
			pos--
			buf[pos] = byte('0' + r%10)
			r /= 10
		}
	}
	lo := x.lo
	for lo > 0 {
		pos--
		buf[pos] = byte('0' + lo%10)
		lo /= 10
	}
	return string(buf[pos:])
}
