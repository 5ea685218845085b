package integers

// I8 is an 8-bit two's-complement signed integer.
type I8 = Int[U8]

var (
	MaxI8 = I8{bits: maxPositive[U8]()}
	MinI8 = I8{bits: minMagnitude[U8]()}
)

// I8FromMagnitude builds a non-negative I8, failing with OverflowError
// for magnitudes above 127.
func I8FromMagnitude(u uint8) (I8, error) { return fromMagnitude(U8(u)) }

// I8FromNegMagnitude builds -u, failing with OverflowError for magnitudes
// above 128. The magnitude 128 yields MinI8, which no other checked
// constructor can produce.
func I8FromNegMagnitude(u uint8) (I8, error) { return fromNegMagnitude(U8(u)) }

// I8FromBits reinterprets a raw bit pattern as an I8. Every pattern is a
// valid value; no range check applies.
func I8FromBits(bits uint8) I8 { return fromBits(U8(bits)) }

func I8From(v int8) I8 { return fromBits(U8(v)) }

func I8FromString(s string) (I8, error) { return parse[U8](s) }
