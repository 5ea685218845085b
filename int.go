package integers

// Int is a W-bit two's-complement signed integer over the unsigned word
// type U. The zero value is the integer zero.
//
// The bit pattern is the single piece of state, and every pattern is a
// valid value; the sign bit is the word's top bit. Values are immutable
// and copyable, so all operations are value-to-value.
type Int[U Uint[U]] struct {
	bits U
}

// fromMagnitude builds a non-negative value. The magnitude must not exceed
// 2^(W-1) - 1.
func fromMagnitude[U Uint[U]](m U) (Int[U], error) {
	if m.Cmp(maxPositive[U]()) > 0 {
		return Int[U]{}, OverflowError{}
	}
	return Int[U]{bits: m}, nil
}

// fromNegMagnitude builds the value -m. The magnitude may be up to
// 2^(W-1): the minimum value is constructible here and nowhere else.
func fromNegMagnitude[U Uint[U]](m U) (Int[U], error) {
	if m.Cmp(minMagnitude[U]()) > 0 {
		return Int[U]{}, OverflowError{}
	}
	return Int[U]{bits: negBits(m)}, nil
}

// fromBits is the unchecked escape hatch: a raw word reinterpreted as
// two's complement. Exposed per width as I8FromBits and friends.
func fromBits[U Uint[U]](bits U) Int[U] {
	return Int[U]{bits: bits}
}

// Bits returns the raw two's-complement bit pattern.
func (i Int[U]) Bits() U { return i.bits }

func (i Int[U]) IsZero() bool { return i.bits.IsZero() }

// IsNeg reports whether the sign bit is set.
func (i Int[U]) IsNeg() bool { return i.bits.SignBit() }

// Sign returns -1 for negative values, 0 for zero and 1 for positive
// values.
func (i Int[U]) Sign() int {
	if i.bits.IsZero() {
		return 0
	}
	if i.bits.SignBit() {
		return -1
	}
	return 1
}

// AbsMagnitude returns the unsigned magnitude. Unlike Abs it is total:
// the word type can hold the minimum value's magnitude 2^(W-1).
func (i Int[U]) AbsMagnitude() U {
	if i.bits.SignBit() {
		return negBits(i.bits)
	}
	return i.bits
}

// Abs returns the absolute value. The minimum value's magnitude has no
// positive W-bit representation, so Abs of it fails with OverflowError.
func (i Int[U]) Abs() (Int[U], error) {
	if !i.bits.SignBit() {
		return i, nil
	}
	return i.Neg()
}

// Neg returns -i, failing with OverflowError for the minimum value.
func (i Int[U]) Neg() (Int[U], error) {
	if i.bits == minMagnitude[U]() {
		return Int[U]{}, OverflowError{}
	}
	return Int[U]{bits: negBits(i.bits)}, nil
}

// WrappingAdd adds modulo 2^W.
func (i Int[U]) WrappingAdd(n Int[U]) Int[U] {
	return Int[U]{bits: i.bits.Add(n.bits)}
}

// OverflowingAdd returns the wrapped sum and whether the true sum was out
// of range: same-signed operands whose result changes sign overflowed.
func (i Int[U]) OverflowingAdd(n Int[U]) (Int[U], bool) {
	out := Int[U]{bits: i.bits.Add(n.bits)}
	over := i.bits.SignBit() == n.bits.SignBit() &&
		out.bits.SignBit() != i.bits.SignBit()
	return out, over
}

// Add returns i + n, failing with OverflowError if the sum does not fit.
func (i Int[U]) Add(n Int[U]) (Int[U], error) {
	out, over := i.OverflowingAdd(n)
	if over {
		return Int[U]{}, OverflowError{}
	}
	return out, nil
}

// WrappingSub subtracts modulo 2^W.
func (i Int[U]) WrappingSub(n Int[U]) Int[U] {
	return Int[U]{bits: i.bits.Sub(n.bits)}
}

// OverflowingSub returns the wrapped difference and whether the true
// difference was out of range: differently-signed operands whose result
// leaves the minuend's sign class overflowed.
func (i Int[U]) OverflowingSub(n Int[U]) (Int[U], bool) {
	out := Int[U]{bits: i.bits.Sub(n.bits)}
	over := i.bits.SignBit() != n.bits.SignBit() &&
		out.bits.SignBit() != i.bits.SignBit()
	return out, over
}

// Sub returns i - n, failing with OverflowError if the difference does
// not fit.
func (i Int[U]) Sub(n Int[U]) (Int[U], error) {
	out, over := i.OverflowingSub(n)
	if over {
		return Int[U]{}, OverflowError{}
	}
	return out, nil
}

// Mul multiplies via the unsigned magnitudes, whose product is formed in
// double width so the multiply itself cannot wrap. The result is negative
// iff the operand signs differ; negative results may use one more unit of
// magnitude (2^(W-1)) than positive ones.
func (i Int[U]) Mul(n Int[U]) (Int[U], error) {
	p, lost := i.AbsMagnitude().Mul(n.AbsMagnitude())
	if lost {
		return Int[U]{}, OverflowError{}
	}
	if i.bits.SignBit() != n.bits.SignBit() {
		if p.Cmp(minMagnitude[U]()) > 0 {
			return Int[U]{}, OverflowError{}
		}
		return Int[U]{bits: negBits(p)}, nil
	}
	if p.Cmp(maxPositive[U]()) > 0 {
		return Int[U]{}, OverflowError{}
	}
	return Int[U]{bits: p}, nil
}

// quoRem is the shared truncating division pass: unsigned magnitude
// quo/rem, quotient negative iff signs differ, remainder taking the
// dividend's sign. This satisfies a == by*(a div by) + (a mod by).
func (i Int[U]) quoRem(by Int[U]) (q, r Int[U], err error) {
	if by.bits.IsZero() {
		return q, r, DivisionByZeroError{}
	}
	if i.bits == minMagnitude[U]() && by.bits == ones[U]() {
		// minValue / -1: the quotient 2^(W-1) is not representable.
		return q, r, OverflowError{}
	}

	qm, rm := i.AbsMagnitude().QuoRem(by.AbsMagnitude())
	if i.bits.SignBit() != by.bits.SignBit() {
		qm = negBits(qm)
	}
	if i.bits.SignBit() {
		rm = negBits(rm)
	}
	return Int[U]{bits: qm}, Int[U]{bits: rm}, nil
}

// Div returns i / by, truncated toward zero: (-7)/2 == -3. It fails with
// DivisionByZeroError for a zero divisor, and with OverflowError in the
// single case minValue / -1.
func (i Int[U]) Div(by Int[U]) (Int[U], error) {
	q, _, err := i.quoRem(by)
	return q, err
}

// Mod returns the remainder of truncating division; it is zero or takes
// the sign of the dividend. The failure cases are Div's.
func (i Int[U]) Mod(by Int[U]) (Int[U], error) {
	_, r, err := i.quoRem(by)
	return r, err
}

// Pow raises i to exp by square-and-multiply. exp == 0 yields 1 for every
// base, 0^0 included. Every intermediate multiply is checked, so overflow
// at any step fails the whole operation; there is no wrapping power.
func (i Int[U]) Pow(exp uint64) (Int[U], error) {
	out := Int[U]{bits: oneWord[U]()}
	base := i
	var err error
	for exp > 0 {
		if exp&1 == 1 {
			if out, err = out.Mul(base); err != nil {
				return Int[U]{}, err
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, err = base.Mul(base); err != nil {
				return Int[U]{}, err
			}
		}
	}
	return out, nil
}

// Gcd returns the greatest common divisor of the absolute magnitudes, so
// it is sign-insensitive and Gcd(0, n) == |n|. The only failure is a
// result of 2^(W-1), which has no positive representation (for example
// Gcd(minValue, zero)).
func (i Int[U]) Gcd(n Int[U]) (Int[U], error) {
	return fromMagnitude(gcdWord(i.AbsMagnitude(), n.AbsMagnitude()))
}

// Lcm returns the least common multiple, zero if either operand is zero.
// The magnitude product can exceed the positive range, in which case it
// fails with OverflowError.
func (i Int[U]) Lcm(n Int[U]) (Int[U], error) {
	if i.bits.IsZero() || n.bits.IsZero() {
		return Int[U]{}, nil
	}
	a, b := i.AbsMagnitude(), n.AbsMagnitude()
	q, _ := a.QuoRem(gcdWord(a, b))
	l, lost := q.Mul(b)
	if lost {
		return Int[U]{}, OverflowError{}
	}
	return fromMagnitude(l)
}

// gcdWord is Euclid's algorithm on unsigned words. gcdWord(a, 0) == a.
func gcdWord[U Uint[U]](a, b U) U {
	for !b.IsZero() {
		_, r := a.QuoRem(b)
		a, b = b, r
	}
	return a
}

// Cmp returns -1, 0 or 1 under signed order. Equal bit patterns are
// equal; across sign classes a set sign bit sorts first; within a sign
// class two's complement preserves unsigned bit-pattern order.
func (i Int[U]) Cmp(n Int[U]) int {
	if i.bits == n.bits {
		return 0
	}
	if i.bits.SignBit() != n.bits.SignBit() {
		if i.bits.SignBit() {
			return -1
		}
		return 1
	}
	return i.bits.Cmp(n.bits)
}

func (i Int[U]) Equal(n Int[U]) bool { return i.bits == n.bits }

func (i Int[U]) GreaterThan(n Int[U]) bool { return i.Cmp(n) > 0 }

func (i Int[U]) GreaterOrEqualTo(n Int[U]) bool { return i.Cmp(n) >= 0 }

func (i Int[U]) LessThan(n Int[U]) bool { return i.Cmp(n) < 0 }

func (i Int[U]) LessOrEqualTo(n Int[U]) bool { return i.Cmp(n) <= 0 }

// And returns the bitwise AND of the raw two's-complement encodings. It
// is a bit operation on the encoding, not an arithmetic operation.
//
// Deprecated: operate on Bits() directly; retained for the historical
// bitwise surface.
func (i Int[U]) And(n Int[U]) Int[U] {
	return Int[U]{bits: i.bits.And(n.bits)}
}

// Or returns the bitwise OR of the raw two's-complement encodings. It is
// a bit operation on the encoding, not an arithmetic operation.
//
// Deprecated: operate on Bits() directly; retained for the historical
// bitwise surface.
func (i Int[U]) Or(n Int[U]) Int[U] {
	return Int[U]{bits: i.bits.Or(n.bits)}
}
