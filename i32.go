package integers

// I32 is a 32-bit two's-complement signed integer.
type I32 = Int[U32]

var (
	MaxI32 = I32{bits: maxPositive[U32]()}
	MinI32 = I32{bits: minMagnitude[U32]()}
)

func I32FromMagnitude(u uint32) (I32, error) { return fromMagnitude(U32(u)) }

func I32FromNegMagnitude(u uint32) (I32, error) { return fromNegMagnitude(U32(u)) }

func I32FromBits(bits uint32) I32 { return fromBits(U32(bits)) }

func I32From(v int32) I32 { return fromBits(U32(v)) }

func I32FromString(s string) (I32, error) { return parse[U32](s) }
