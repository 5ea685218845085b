package integers

// Min returns the smaller of a and b; equal values return a.
func Min[U Uint[U]](a, b Int[U]) Int[U] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b; equal values return a.
func Max[U Uint[U]](a, b Int[U]) Int[U] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}
