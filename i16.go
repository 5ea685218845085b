package integers

// I16 is a 16-bit two's-complement signed integer.
type I16 = Int[U16]

var (
	MaxI16 = I16{bits: maxPositive[U16]()}
	MinI16 = I16{bits: minMagnitude[U16]()}
)

func I16FromMagnitude(u uint16) (I16, error) { return fromMagnitude(U16(u)) }

func I16FromNegMagnitude(u uint16) (I16, error) { return fromNegMagnitude(U16(u)) }

func I16FromBits(bits uint16) I16 { return fromBits(U16(bits)) }

func I16From(v int16) I16 { return fromBits(U16(v)) }

func I16FromString(s string) (I16, error) { return parse[U16](s) }
