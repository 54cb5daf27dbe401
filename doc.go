/*
Package wheel implements immutable numbers over which division is total.
It is designed for division-heavy formulas — symbolic evaluation, rate and
interval computations — that must stay well-defined at every intermediate
step, including at poles, without divisor-is-zero branches in caller code.

# Representation

A wheel extends an ordinary number system with two elements so that every
operation, division by zero included, yields a value of the same type:

  - Infinity: the unique, unsigned multiplicative inverse of zero.
    There is no positive/negative infinity pair.
  - Bottom (⊥): the indeterminate element, the value of algebraically
    meaningless combinations such as 0/0 or 0 * ∞. Once produced, bottom
    absorbs every further operation.

Two families of concrete representations implement one shared contract,
the [Wheel] interface:

  - [Float32] and [Float64] back finite values with a native floating-point
    magnitude. The native infinity and not-a-number sentinels encode the two
    special elements internally; construction and every operation
    canonicalize, so the native sentinels never leak.
  - [Frac8], [Frac16], [Frac32], [Frac64] and [Frac128] back values with an
    exact numerator/denominator pair over a fixed-width signed integer,
    kept in canonical form: coprime terms, non-negative denominator, sign
    on the numerator. A zero denominator encodes the special elements
    (nonzero/0 is infinity, 0/0 is bottom).

The first four fraction widths share one generic implementation,
[Frac]. The 128-bit width, [Frac128], runs the same algebra over a two-limb
unsigned integer kernel with a separate sign, as Go has no native 128-bit
integer.

# Operations

Subtraction and division are derived, not independent:

	x - y = x + (-y)
	x / y = x * inv(y)

with inv made total by inv(0) = ∞, inv(∞) = 0 and inv(⊥) = ⊥. Deriving
division from one reciprocal rule is what makes 1/0 = ∞ a single special
case instead of ad hoc zero checks scattered across the operations.
The usual field identities hold only in weakened forms: x / x is not always
one and x - x is not always zero (both are ⊥-shaped when x is ∞ or ⊥).

# Equality

Equality is exact and total. Finite values compare without tolerance;
the two representations deliberately disagree about bottom:

  - fraction: ⊥ equals ⊥, since canonical form gives it one bit pattern;
  - floating: ⊥ equals nothing, not even another ⊥, mirroring the native
    not-a-number rule.

This divergence is intentional and callers must not rely on the two
families agreeing. [Float.RoughlyEqual] offers a tolerance comparison in
which two bottoms do compare equal.

# Errors

Two failure domains are kept strictly apart:

  - Algebraic indeterminacy is never an error. 0/0 and its relatives are
    the bottom value, a first-class result.
  - Representational overflow happens when a fraction's cross-multiplied
    terms exceed the backing integer width. It is reported as
    [ErrOverflow], never silently wrapped and never conflated with bottom.
    The floating representations have no such failure mode — native
    overflow lands on the wheel's own infinity — so their operations
    always return a nil error.

# Concurrency

All values are immutable scalars and all operations are pure functions of
their operands. Every type in this package is safe for concurrent use by
multiple goroutines without locking.
*/
package wheel
