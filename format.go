package integers

import (
	"fmt"
	"math/big"
)

// The decimal legs go through big.Int. big.Int never participates in the
// arithmetic itself; it only renders and parses magnitudes.

func (i Int[U]) String() string {
	return i.asBigInt().String()
}

// Format implements fmt.Formatter by deferring to big.Int.
func (i Int[U]) Format(s fmt.State, c rune) {
	i.asBigInt().Format(s, c)
}

func (i Int[U]) asBigInt() *big.Int {
	b := new(big.Int).SetBytes(i.AbsMagnitude().Bytes())
	if i.bits.SignBit() {
		b.Neg(b)
	}
	return b
}

// parse reads a decimal string. Values outside the width's range fail
// with OverflowError rather than clamping.
func parse[U Uint[U]](s string) (out Int[U], err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, fmt.Errorf("integers: invalid decimal %q", s)
	}
	var zero U
	m, ok := zero.FromBytes(b.Bytes())
	if !ok {
		return out, OverflowError{}
	}
	if b.Sign() < 0 {
		return fromNegMagnitude(m)
	}
	return fromMagnitude(m)
}

func (i Int[U]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int[U]) UnmarshalText(bts []byte) error {
	v, err := parse[U](string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int[U]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int[U]) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("integers: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}
