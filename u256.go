package integers

import (
	"github.com/holiman/uint256"
)

// U256 is an unsigned 256-bit word. Unlike the other widths it is not
// hand-rolled: uint256.Int already provides overflow-aware multiply and
// combined div/mod, so U256 is a thin value wrapper that adapts its
// pointer API to this package's value-to-value word contract.
type U256 struct {
	n uint256.Int
}

// U256FromRaw creates a U256 from four uint64s, most significant first.
func U256FromRaw(hi, hm, lm, lo uint64) U256 {
	return U256{n: uint256.Int{lo, lm, hm, hi}}
}

func U256From64(v uint64) U256 {
	return U256{n: uint256.Int{v, 0, 0, 0}}
}

// Raw returns the four uint64s of the word, most significant first.
func (u U256) Raw() (hi, hm, lm, lo uint64) {
	return u.n[3], u.n[2], u.n[1], u.n[0]
}

func (u U256) IsZero() bool { return u.n.IsZero() }

func (u U256) SignBit() bool { return u.n[3]&(1<<63) != 0 }

func (u U256) Add(v U256) (out U256) {
	out.n.Add(&u.n, &v.n)
	return out
}

func (u U256) Sub(v U256) (out U256) {
	out.n.Sub(&u.n, &v.n)
	return out
}

func (u U256) Mul(v U256) (out U256, over bool) {
	_, over = out.n.MulOverflow(&u.n, &v.n)
	return out, over
}

// QuoRem returns the quotient and remainder for v != 0. If v == 0 it
// panics; the signed layer checks divisors before calling.
func (u U256) QuoRem(v U256) (q, r U256) {
	if v.n.IsZero() {
		panic("integers: U256 division by zero")
	}
	q.n.DivMod(&u.n, &v.n, &r.n)
	return q, r
}

func (u U256) Cmp(v U256) int { return u.n.Cmp(&v.n) }

func (u U256) Not() (out U256) {
	out.n.Not(&u.n)
	return out
}

func (u U256) And(v U256) (out U256) {
	out.n.And(&u.n, &v.n)
	return out
}

func (u U256) Or(v U256) (out U256) {
	out.n.Or(&u.n, &v.n)
	return out
}

func (u U256) Rsh(n uint) (out U256) {
	out.n.Rsh(&u.n, n)
	return out
}

// Bytes returns the word as minimal big-endian bytes, matching
// big.Int.Bytes (zero yields an empty slice).
func (u U256) Bytes() []byte { return u.n.Bytes() }

func (U256) FromBytes(b []byte) (U256, bool) {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > 32 {
		return U256{}, false
	}
	var out U256
	out.n.SetBytes(b)
	return out, true
}

func (u U256) String() string { return u.n.Dec() }
