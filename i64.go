package integers

// I64 is a 64-bit two's-complement signed integer.
type I64 = Int[U64]

var (
	MaxI64 = I64{bits: maxPositive[U64]()}
	MinI64 = I64{bits: minMagnitude[U64]()}
)

func I64FromMagnitude(u uint64) (I64, error) { return fromMagnitude(U64(u)) }

func I64FromNegMagnitude(u uint64) (I64, error) { return fromNegMagnitude(U64(u)) }

func I64FromBits(bits uint64) I64 { return fromBits(U64(bits)) }

func I64From(v int64) I64 { return fromBits(U64(v)) }

func I64FromString(s string) (I64, error) { return parse[U64](s) }
