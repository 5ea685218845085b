/*
Package integers provides two's-complement signed integer types of 8, 16, 32,
64, 128 and 256 bits, built on unsigned fixed-width words.

All six widths share one generic implementation, Int[U], instantiated per
width as I8, I16, I32, I64, I128 and I256. Values are small, immutable
scalars; every operation returns a new value.

Arithmetic comes in three forms:

  - Checked (Add, Sub, Mul, Div, Mod, Pow, Abs, Neg): fails when the
    mathematical result cannot be represented. The only errors are
    OverflowError and DivisionByZeroError; there is no silent clamping.
  - Wrapping (WrappingAdd, WrappingSub): modular arithmetic over 2^W.
  - Overflow-reporting (OverflowingAdd, OverflowingSub): the wrapped result
    plus a flag.

Division truncates toward zero, and Mod takes the sign of the dividend:

	a, _ := integers.I8FromNegMagnitude(7)
	b, _ := integers.I8FromMagnitude(2)
	q, _ := a.Div(b) // -3
	r, _ := a.Mod(b) // -1

Values can be created from unsigned magnitudes (checked), from native Go
integers, from decimal strings, or from raw bit patterns:

	I8FromMagnitude(u uint8) (I8, error)
	I8FromNegMagnitude(u uint8) (I8, error)
	I8From(v int8) I8
	I8FromString(s string) (I8, error)
	I8FromBits(bits uint8) I8

The types implement fmt.Stringer, fmt.Formatter, encoding.TextMarshaler,
encoding.TextUnmarshaler, json.Marshaler and json.Unmarshaler.
*/
package integers
