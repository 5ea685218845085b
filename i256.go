package integers

// I256 is a 256-bit two's-complement signed integer.
type I256 = Int[U256]

var (
	MaxI256 = I256{bits: maxPositive[U256]()}
	MinI256 = I256{bits: minMagnitude[U256]()}
)

func I256FromMagnitude(u U256) (I256, error) { return fromMagnitude(u) }

func I256FromNegMagnitude(u U256) (I256, error) { return fromNegMagnitude(u) }

// I256FromBits reinterprets four raw uint64 words, most significant
// first, as an I256.
func I256FromBits(hi, hm, lm, lo uint64) I256 {
	return fromBits(U256FromRaw(hi, hm, lm, lo))
}

// I256From64 sign-extends a native int64.
func I256From64(v int64) I256 {
	if v < 0 {
		m := ^uint64(0)
		return fromBits(U256FromRaw(m, m, m, uint64(v)))
	}
	return fromBits(U256From64(uint64(v)))
}

func I256FromString(s string) (I256, error) { return parse[U256](s) }
