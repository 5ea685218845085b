package integers

// I128 is a 128-bit two's-complement signed integer.
type I128 = Int[U128]

var (
	MaxI128 = I128{bits: maxPositive[U128]()}
	MinI128 = I128{bits: minMagnitude[U128]()}
)

func I128FromMagnitude(u U128) (I128, error) { return fromMagnitude(u) }

func I128FromNegMagnitude(u U128) (I128, error) { return fromNegMagnitude(u) }

// I128FromBits reinterprets two raw uint64 halves, most significant
// first, as an I128.
func I128FromBits(hi, lo uint64) I128 { return fromBits(U128{hi: hi, lo: lo}) }

// I128From64 sign-extends a native int64.
func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = ^uint64(0)
	}
	return fromBits(U128{hi: hi, lo: uint64(v)})
}

func I128FromString(s string) (I128, error) { return parse[U128](s) }
