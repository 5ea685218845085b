package integers

// Uint is the contract the signed layer needs from an unsigned machine word.
// It is satisfied by U8, U16, U32, U64, U128 and U256.
//
// All operations are value-to-value; a word is never mutated in place.
type Uint[U any] interface {
	comparable

	// Add and Sub wrap modulo 2^W.
	Add(U) U
	Sub(U) U

	// Mul returns the low W bits of the product and reports whether any
	// high bits were lost.
	Mul(U) (U, bool)

	// QuoRem divides. The divisor must not be zero; callers check first.
	QuoRem(U) (U, U)

	// Cmp returns -1, 0 or 1 for unsigned bit-pattern order.
	Cmp(U) int

	Not() U
	And(U) U
	Or(U) U
	Rsh(uint) U

	// SignBit reports the top bit of the word.
	SignBit() bool
	IsZero() bool

	// Bytes returns the word as minimal big-endian bytes (empty for zero),
	// matching big.Int.Bytes. FromBytes is its receiver-independent inverse
	// and reports false if the input does not fit the width.
	Bytes() []byte
	FromBytes([]byte) (U, bool)
}

// Width bounds are derived from the word itself rather than kept as
// per-width globals: ^0 is all-ones, shifting right once clears the sign
// bit, and complementing that leaves only the sign bit.

func ones[U Uint[U]]() U {
	var zero U
	return zero.Not()
}

// maxPositive is 2^(W-1) - 1, the largest non-negative value.
func maxPositive[U Uint[U]]() U {
	return ones[U]().Rsh(1)
}

// minMagnitude is 2^(W-1), the magnitude of the minimum value. It is also
// the minimum value's own bit pattern.
func minMagnitude[U Uint[U]]() U {
	return maxPositive[U]().Not()
}

func oneWord[U Uint[U]]() U {
	var zero U
	one, _ := zero.FromBytes([]byte{1})
	return one
}

// negBits is two's-complement negation of the raw word: 0 negates to 0,
// everything else is invert-and-add-one. Negating minMagnitude wraps back
// to itself; callers that care check first.
func negBits[U Uint[U]](u U) U {
	return u.Not().Add(oneWord[U]())
}
