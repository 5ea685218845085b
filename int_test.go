package integers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var i8 = I8From

func TestI8Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c int8
	}{
		{-2, -1, -3},
		{-2, 1, -1},
		{-1, 1, 0},
		{1, 2, 3},
		{10, 3, 13},
		{-128, 127, -1},
		{126, 1, 127},
		{-127, -1, -128},
	} {
		t.Run(fmt.Sprintf("%d/%d+%d=%d", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			got, err := i8(tc.a).Add(i8(tc.b))
			require.NoError(t, err)
			require.True(t, i8(tc.c).Equal(got))
		})
	}
}

func TestI8AddOverflow(t *testing.T) {
	for idx, tc := range []struct {
		a, b int8
	}{
		{127, 1},
		{1, 127},
		{-128, -1},
		{-1, -128},
		{100, 100},
		{-100, -100},
	} {
		t.Run(fmt.Sprintf("%d/%d+%d", idx, tc.a, tc.b), func(t *testing.T) {
			_, err := i8(tc.a).Add(i8(tc.b))
			require.ErrorIs(t, err, OverflowError{})

			wrapped := i8(tc.a).WrappingAdd(i8(tc.b))
			reported, over := i8(tc.a).OverflowingAdd(i8(tc.b))
			require.True(t, over)
			require.True(t, wrapped.Equal(reported))
			require.True(t, i8(tc.a+tc.b).Equal(wrapped)) // Go wraps natively
		})
	}
}

func TestI8Sub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c int8
	}{
		{3, 2, 1},
		{2, 3, -1},
		{-2, -3, 1},
		{-128, -1, -127},
		{-1, 127, -128},
		{0, 0, 0},
	} {
		t.Run(fmt.Sprintf("%d/%d-%d=%d", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			got, err := i8(tc.a).Sub(i8(tc.b))
			require.NoError(t, err)
			require.True(t, i8(tc.c).Equal(got))
		})
	}
}

func TestI8SubOverflow(t *testing.T) {
	for idx, tc := range []struct {
		a, b int8
	}{
		{127, -1},
		{-128, 1},
		{0, -128},
		{-2, 127},
	} {
		t.Run(fmt.Sprintf("%d/%d-%d", idx, tc.a, tc.b), func(t *testing.T) {
			_, err := i8(tc.a).Sub(i8(tc.b))
			require.ErrorIs(t, err, OverflowError{})

			wrapped := i8(tc.a).WrappingSub(i8(tc.b))
			reported, over := i8(tc.a).OverflowingSub(i8(tc.b))
			require.True(t, over)
			require.True(t, wrapped.Equal(reported))
			require.True(t, i8(tc.a-tc.b).Equal(wrapped))
		})
	}
}

func TestI8Mul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c int8
		over    bool
	}{
		{0, 0, 0, false},
		{0, -128, 0, false},
		{3, 4, 12, false},
		{-3, 4, -12, false},
		{3, -4, -12, false},
		{-3, -4, 12, false},
		{-64, 2, -128, false}, // negative results reach one further
		{64, 2, 0, true},
		{-64, -2, 0, true}, // 128 has no positive representation
		{127, 127, 0, true},
		{-128, 1, -128, false},
		{-128, -1, 0, true},
		{1, -128, -128, false},
	} {
		t.Run(fmt.Sprintf("%d/%d*%d", idx, tc.a, tc.b), func(t *testing.T) {
			got, err := i8(tc.a).Mul(i8(tc.b))
			if tc.over {
				require.ErrorIs(t, err, OverflowError{})
			} else {
				require.NoError(t, err)
				require.True(t, i8(tc.c).Equal(got))
			}
		})
	}
}

func TestI8DivTruncates(t *testing.T) {
	for idx, tc := range []struct {
		a, b, q, r int8
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1}, // toward zero, not floor
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{1, -128, 0, 1},
		{-128, 2, -64, 0},
		{-128, 3, -42, -2},
		{-127, -1, 127, 0},
	} {
		t.Run(fmt.Sprintf("%d/%d div %d", idx, tc.a, tc.b), func(t *testing.T) {
			q, err := i8(tc.a).Div(i8(tc.b))
			require.NoError(t, err)
			require.True(t, i8(tc.q).Equal(q), "quotient: expected %d, got %s", tc.q, q)

			r, err := i8(tc.a).Mod(i8(tc.b))
			require.NoError(t, err)
			require.True(t, i8(tc.r).Equal(r), "remainder: expected %d, got %s", tc.r, r)

			// a == b*q + r
			bq, err := i8(tc.b).Mul(q)
			require.NoError(t, err)
			sum, err := bq.Add(r)
			require.NoError(t, err)
			require.True(t, i8(tc.a).Equal(sum))
		})
	}
}

func TestI8DivEdges(t *testing.T) {
	_, err := i8(1).Div(i8(0))
	require.ErrorIs(t, err, DivisionByZeroError{})

	_, err = i8(0).Mod(i8(0))
	require.ErrorIs(t, err, DivisionByZeroError{})

	_, err = MinI8.Div(i8(-1))
	require.ErrorIs(t, err, OverflowError{})

	_, err = MinI8.Mod(i8(-1))
	require.ErrorIs(t, err, OverflowError{})
}

func TestI8Pow(t *testing.T) {
	for idx, tc := range []struct {
		base int8
		exp  uint64
		out  int8
		over bool
	}{
		{0, 0, 1, false}, // 0^0 == 1 by convention
		{5, 0, 1, false},
		{-5, 0, 1, false},
		{0, 9, 0, false},
		{2, 6, 64, false},
		{2, 7, 0, true},
		{-2, 7, -128, false},
		{-2, 8, 0, true},
		{-1, 7, -1, false},
		{-1, 8, 1, false},
		{3, 4, 81, false},
		{10, 30, 0, true}, // aborts mid-loop
	} {
		t.Run(fmt.Sprintf("%d/%d^%d", idx, tc.base, tc.exp), func(t *testing.T) {
			got, err := i8(tc.base).Pow(tc.exp)
			if tc.over {
				require.ErrorIs(t, err, OverflowError{})
			} else {
				require.NoError(t, err)
				require.True(t, i8(tc.out).Equal(got), "expected %d, got %s", tc.out, got)
			}
		})
	}
}

func TestI8GcdLcm(t *testing.T) {
	for idx, tc := range []struct {
		a, b, gcd int8
	}{
		{48, 18, 6},
		{-48, 18, 6}, // sign-insensitive
		{48, -18, 6},
		{-48, -18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{7, 13, 1},
	} {
		t.Run(fmt.Sprintf("%d/gcd(%d,%d)", idx, tc.a, tc.b), func(t *testing.T) {
			got, err := i8(tc.a).Gcd(i8(tc.b))
			require.NoError(t, err)
			require.True(t, i8(tc.gcd).Equal(got))
		})
	}

	// gcd involving MinI8 has magnitude 128, which is not representable.
	_, err := MinI8.Gcd(i8(0))
	require.ErrorIs(t, err, OverflowError{})
	_, err = MinI8.Gcd(MinI8)
	require.ErrorIs(t, err, OverflowError{})

	for idx, tc := range []struct {
		a, b, lcm int8
		over      bool
	}{
		{0, 5, 0, false},
		{5, 0, 0, false},
		{4, 6, 12, false},
		{-4, 6, 12, false},
		{21, 6, 42, false},
		{64, 96, 0, true}, // lcm 192 overflows
	} {
		t.Run(fmt.Sprintf("%d/lcm(%d,%d)", idx, tc.a, tc.b), func(t *testing.T) {
			got, err := i8(tc.a).Lcm(i8(tc.b))
			if tc.over {
				require.ErrorIs(t, err, OverflowError{})
			} else {
				require.NoError(t, err)
				require.True(t, i8(tc.lcm).Equal(got))
			}
		})
	}
}

func TestI8AbsNeg(t *testing.T) {
	for idx, tc := range []struct {
		in, abs int8
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{127, 127},
		{-127, 127},
	} {
		t.Run(fmt.Sprintf("%d/|%d|", idx, tc.in), func(t *testing.T) {
			got, err := i8(tc.in).Abs()
			require.NoError(t, err)
			require.True(t, i8(tc.abs).Equal(got))

			// Involution holds away from the minimum.
			n, err := i8(tc.in).Neg()
			require.NoError(t, err)
			back, err := n.Neg()
			require.NoError(t, err)
			require.True(t, i8(tc.in).Equal(back))
		})
	}

	_, err := MinI8.Abs()
	require.ErrorIs(t, err, OverflowError{})
	_, err = MinI8.Neg()
	require.ErrorIs(t, err, OverflowError{})

	assert.Equal(t, U8(128), MinI8.AbsMagnitude())
	assert.Equal(t, U8(127), MaxI8.AbsMagnitude())
	assert.Equal(t, U8(7), i8(-7).AbsMagnitude())
}

func TestI8Ordering(t *testing.T) {
	vals := []int8{-128, -127, -2, -1, 0, 1, 2, 126, 127}
	for _, a := range vals {
		for _, b := range vals {
			name := fmt.Sprintf("cmp(%d,%d)", a, b)

			cmp := i8(a).Cmp(i8(b))
			switch {
			case a < b:
				assert.Equal(t, -1, cmp, name)
			case a > b:
				assert.Equal(t, 1, cmp, name)
			default:
				assert.Equal(t, 0, cmp, name)
			}

			// Exactly one of lt/eq/gt holds.
			lt, eq, gt := i8(a).LessThan(i8(b)), i8(a).Equal(i8(b)), i8(a).GreaterThan(i8(b))
			count := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					count++
				}
			}
			assert.Equal(t, 1, count, name)

			assert.Equal(t, a <= b, i8(a).LessOrEqualTo(i8(b)), name)
			assert.Equal(t, a >= b, i8(a).GreaterOrEqualTo(i8(b)), name)

			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			assert.True(t, i8(lo).Equal(Min(i8(a), i8(b))), name)
			assert.True(t, i8(hi).Equal(Max(i8(a), i8(b))), name)
		}
	}

	assert.Equal(t, -1, MinI8.Cmp(MaxI8))
}

func TestI8SignBits(t *testing.T) {
	assert.Equal(t, 0, i8(0).Sign())
	assert.Equal(t, 1, i8(1).Sign())
	assert.Equal(t, -1, i8(-1).Sign())
	assert.Equal(t, -1, MinI8.Sign())
	assert.Equal(t, 1, MaxI8.Sign())

	assert.True(t, i8(0).IsZero())
	assert.False(t, i8(-1).IsZero())
	assert.True(t, i8(-1).IsNeg())
	assert.False(t, i8(0).IsNeg())

	var zero I8
	assert.True(t, zero.Equal(i8(0)))
}

func TestI8Bitwise(t *testing.T) {
	// And/Or operate on the raw encoding, not on the arithmetic value.
	assert.True(t, i8(-1).And(i8(0x55)).Equal(i8(0x55)))
	assert.True(t, i8(0x50).Or(i8(0x05)).Equal(i8(0x55)))
	assert.True(t, i8(-128).Or(i8(127)).Equal(i8(-1)))
	assert.Equal(t, U8(0x81), i8(-127).Bits())
	assert.True(t, I8FromBits(0x81).Equal(i8(-127)))
}

func TestI8Construction(t *testing.T) {
	v, err := I8FromMagnitude(127)
	require.NoError(t, err)
	require.True(t, MaxI8.Equal(v))

	_, err = I8FromMagnitude(128)
	require.ErrorIs(t, err, OverflowError{})

	v, err = I8FromNegMagnitude(128)
	require.NoError(t, err)
	require.True(t, MinI8.Equal(v))

	v, err = I8FromNegMagnitude(0)
	require.NoError(t, err)
	require.True(t, v.IsZero())

	_, err = I8FromNegMagnitude(129)
	require.ErrorIs(t, err, OverflowError{})

	// Round-trip for each representable magnitude.
	for u := uint8(0); u <= 127; u++ {
		p, err := I8FromMagnitude(u)
		require.NoError(t, err)
		require.Equal(t, U8(u), p.AbsMagnitude())

		n, err := I8FromNegMagnitude(u)
		require.NoError(t, err)
		require.Equal(t, U8(u), n.AbsMagnitude())
	}
}

// testWidthBoundaries exercises the range edges that behave identically at
// every width.
func testWidthBoundaries[U Uint[U]](t *testing.T) {
	var (
		zero   Int[U]
		min    = Int[U]{bits: minMagnitude[U]()}
		max    = Int[U]{bits: maxPositive[U]()}
		one    = Int[U]{bits: oneWord[U]()}
		negOne = Int[U]{bits: ones[U]()}
	)

	_, err := max.Add(one)
	require.ErrorIs(t, err, OverflowError{})
	_, err = min.Add(negOne)
	require.ErrorIs(t, err, OverflowError{})
	_, err = min.Sub(one)
	require.ErrorIs(t, err, OverflowError{})
	_, err = zero.Sub(min)
	require.ErrorIs(t, err, OverflowError{})

	require.True(t, min.Equal(max.WrappingAdd(one)))
	require.True(t, max.Equal(min.WrappingSub(one)))

	got, over := max.OverflowingAdd(one)
	require.True(t, over)
	require.True(t, min.Equal(got))
	got, over = min.OverflowingSub(one)
	require.True(t, over)
	require.True(t, max.Equal(got))

	_, err = min.Div(negOne)
	require.ErrorIs(t, err, OverflowError{})
	q, err := min.Div(one)
	require.NoError(t, err)
	require.True(t, min.Equal(q))
	q, err = max.Div(negOne)
	require.NoError(t, err)
	negMax, err := min.Add(one)
	require.NoError(t, err)
	require.True(t, negMax.Equal(q))

	_, err = one.Div(zero)
	require.ErrorIs(t, err, DivisionByZeroError{})
	_, err = one.Mod(zero)
	require.ErrorIs(t, err, DivisionByZeroError{})

	_, err = min.Abs()
	require.ErrorIs(t, err, OverflowError{})
	_, err = min.Neg()
	require.ErrorIs(t, err, OverflowError{})
	require.Equal(t, minMagnitude[U](), min.AbsMagnitude())

	require.True(t, min.LessThan(max))
	require.True(t, min.LessThan(zero))
	require.True(t, max.GreaterThan(negOne))
	require.Equal(t, -1, min.Cmp(max))

	_, err = fromMagnitude(minMagnitude[U]())
	require.ErrorIs(t, err, OverflowError{})
	v, err := fromNegMagnitude(minMagnitude[U]())
	require.NoError(t, err)
	require.True(t, min.Equal(v))
	_, err = fromNegMagnitude(minMagnitude[U]().Add(oneWord[U]()))
	require.ErrorIs(t, err, OverflowError{})
}

func TestWidthBoundaries(t *testing.T) {
	t.Run("i8", func(t *testing.T) { testWidthBoundaries[U8](t) })
	t.Run("i16", func(t *testing.T) { testWidthBoundaries[U16](t) })
	t.Run("i32", func(t *testing.T) { testWidthBoundaries[U32](t) })
	t.Run("i64", func(t *testing.T) { testWidthBoundaries[U64](t) })
	t.Run("i128", func(t *testing.T) { testWidthBoundaries[U128](t) })
	t.Run("i256", func(t *testing.T) { testWidthBoundaries[U256](t) })
}

func TestWidthBoundsValues(t *testing.T) {
	assert.Equal(t, "127", MaxI8.String())
	assert.Equal(t, "-128", MinI8.String())
	assert.Equal(t, "32767", MaxI16.String())
	assert.Equal(t, "-32768", MinI16.String())
	assert.Equal(t, "2147483647", MaxI32.String())
	assert.Equal(t, "-2147483648", MinI32.String())
	assert.Equal(t, "9223372036854775807", MaxI64.String())
	assert.Equal(t, "-9223372036854775808", MinI64.String())
	assert.Equal(t, "170141183460469231731687303715884105727", MaxI128.String())
	assert.Equal(t, "-170141183460469231731687303715884105728", MinI128.String())
	assert.Equal(t,
		"57896044618658097711785492504343953926634992332820282019728792003956564819967",
		MaxI256.String())
	assert.Equal(t,
		"-57896044618658097711785492504343953926634992332820282019728792003956564819968",
		MinI256.String())
}
