package integers

// OverflowError is returned when a requested value or arithmetic result
// cannot be represented in the operand width with the required sign. This
// includes out-of-range construction, checked add/sub/mul/pow results,
// Abs/Neg of the minimum value, and minValue / -1.
type OverflowError struct{}

func (e OverflowError) Error() string {
	return "integers: overflow"
}

// DivisionByZeroError is returned by Div and Mod when the divisor is zero.
type DivisionByZeroError struct{}

func (e DivisionByZeroError) Error() string {
	return "integers: division by zero"
}
