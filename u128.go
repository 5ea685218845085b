package integers

import (
	"encoding/binary"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit word built from two uint64 halves.
type U128 struct {
	hi, lo uint64
}

// U128FromRaw is the complement to U128.Raw(); it creates a U128 from two
// uint64s representing the hi and lo bits.
func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }

func U128From64(v uint64) U128 { return U128{lo: v} }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw()
// for the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) IsZero() bool { return u == U128{} }

func (u U128) SignBit() bool { return u.hi&(1<<63) != 0 }

func (u U128) Add(v U128) (out U128) {
	var carry uint64
	out.lo, carry = bits.Add64(u.lo, v.lo, 0)
	out.hi, _ = bits.Add64(u.hi, v.hi, carry)
	return out
}

func (u U128) Sub(v U128) (out U128) {
	var borrow uint64
	out.lo, borrow = bits.Sub64(u.lo, v.lo, 0)
	out.hi, _ = bits.Sub64(u.hi, v.hi, borrow)
	return out
}

// Mul computes the full 256-bit product from four 64x64 partials and
// reports whether any bits above the low 128 were lost.
func (u U128) Mul(v U128) (out U128, over bool) {
	hhHi, hhLo := bits.Mul64(u.hi, v.hi)
	hlHi, hlLo := bits.Mul64(u.hi, v.lo)
	lhHi, lhLo := bits.Mul64(u.lo, v.hi)
	llHi, llLo := bits.Mul64(u.lo, v.lo)

	out.lo = llLo
	m, c1 := bits.Add64(llHi, hlLo, 0)
	m, c2 := bits.Add64(m, lhLo, 0)
	out.hi = m

	t, c3 := bits.Add64(hhLo, hlHi, c1)
	t, c4 := bits.Add64(t, lhHi, c2)
	top := hhHi + c3 + c4

	return out, t != 0 || top != 0
}

// mul64 returns the low 128 bits of u * v.
func (u U128) mul64(v uint64) (out U128) {
	hi, lo := bits.Mul64(u.lo, v)
	out.lo = lo
	out.hi = hi + u.hi*v
	return out
}

// QuoRem returns the quotient and remainder for v != 0. If v == 0 it
// panics; the signed layer checks divisors before calling.
//
// Divisors that fit a single uint64 go straight through bits.Div64. Wider
// divisors are normalised so the estimate divide cannot overflow, then the
// estimated quotient is corrected at most once (Hacker's Delight 9-5).
func (u U128) QuoRem(v U128) (q, r U128) {
	if v.hi == 0 {
		if v.lo == 0 {
			panic("integers: U128 division by zero")
		}
		if u.hi < v.lo {
			q.lo, r.lo = bits.Div64(u.hi, u.lo, v.lo)
		} else {
			q.hi = u.hi / v.lo
			q.lo, r.lo = bits.Div64(u.hi%v.lo, u.lo, v.lo)
		}
		return q, r
	}

	n := uint(bits.LeadingZeros64(v.hi))
	v1 := v.Lsh(n)
	u1 := u.Rsh(1)

	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}

	q = U128{lo: tq}
	r = u.Sub(v.mul64(tq))
	if r.Cmp(v) >= 0 {
		q = q.Add(U128{lo: 1})
		r = r.Sub(v)
	}
	return q, r
}

func (u U128) Cmp(v U128) int {
	if u.hi > v.hi {
		return 1
	} else if u.hi < v.hi {
		return -1
	} else if u.lo > v.lo {
		return 1
	} else if u.lo < v.lo {
		return -1
	}
	return 0
}

func (u U128) Not() U128 {
	return U128{hi: ^u.hi, lo: ^u.lo}
}

func (u U128) And(v U128) U128 {
	return U128{hi: u.hi & v.hi, lo: u.lo & v.lo}
}

func (u U128) Or(v U128) U128 {
	return U128{hi: u.hi | v.hi, lo: u.lo | v.lo}
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
	} else {
		v.hi = u.lo << (n - 64)
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
	} else {
		v.lo = u.hi >> (n - 64)
	}
	return v
}

// Bytes returns the word as minimal big-endian bytes, matching
// big.Int.Bytes (zero yields an empty slice).
func (u U128) Bytes() []byte {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], u.hi)
	binary.BigEndian.PutUint64(buf[8:], u.lo)
	i := 0
	for i < 16 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func (U128) FromBytes(b []byte) (U128, bool) {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > 16 {
		return U128{}, false
	}
	var buf [16]byte
	copy(buf[16-len(b):], b)
	return U128{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}, true
}

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return new(big.Int).SetBytes(u.Bytes()).String()
}
