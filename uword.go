package integers

import (
	"encoding/binary"
	"math/bits"
)

// U8, U16, U32 and U64 adapt the native unsigned types to the Uint
// contract. The interesting parts are the widening multiplies: below 64
// bits a plain cast to the next size up is enough, and U64 leans on
// bits.Mul64 for the high half.

type U8 uint8

func (u U8) Add(v U8) U8 { return u + v }
func (u U8) Sub(v U8) U8 { return u - v }

func (u U8) Mul(v U8) (U8, bool) {
	p := uint16(u) * uint16(v)
	return U8(p), p>>8 != 0
}

func (u U8) QuoRem(v U8) (U8, U8) { return u / v, u % v }

func (u U8) Cmp(v U8) int { return cmpNative(uint64(u), uint64(v)) }

func (u U8) Not() U8 { return ^u }
func (u U8) And(v U8) U8 { return u & v }
func (u U8) Or(v U8) U8 { return u | v }
func (u U8) Rsh(n uint) U8 { return u >> n }
func (u U8) SignBit() bool { return u&0x80 != 0 }
func (u U8) IsZero() bool { return u == 0 }
func (u U8) Bytes() []byte { return nativeBytes(uint64(u)) }

func (U8) FromBytes(b []byte) (U8, bool) {
	v, ok := nativeFromBytes(b, 1)
	return U8(v), ok
}

type U16 uint16

func (u U16) Add(v U16) U16 { return u + v }
func (u U16) Sub(v U16) U16 { return u - v }

func (u U16) Mul(v U16) (U16, bool) {
	p := uint32(u) * uint32(v)
	return U16(p), p>>16 != 0
}

func (u U16) QuoRem(v U16) (U16, U16) { return u / v, u % v }

func (u U16) Cmp(v U16) int { return cmpNative(uint64(u), uint64(v)) }

func (u U16) Not() U16 { return ^u }
func (u U16) And(v U16) U16 { return u & v }
func (u U16) Or(v U16) U16 { return u | v }
func (u U16) Rsh(n uint) U16 { return u >> n }
func (u U16) SignBit() bool { return u&0x8000 != 0 }
func (u U16) IsZero() bool { return u == 0 }
func (u U16) Bytes() []byte { return nativeBytes(uint64(u)) }

func (U16) FromBytes(b []byte) (U16, bool) {
	v, ok := nativeFromBytes(b, 2)
	return U16(v), ok
}

type U32 uint32

func (u U32) Add(v U32) U32 { return u + v }
func (u U32) Sub(v U32) U32 { return u - v }

func (u U32) Mul(v U32) (U32, bool) {
	p := uint64(u) * uint64(v)
	return U32(p), p>>32 != 0
}

func (u U32) QuoRem(v U32) (U32, U32) { return u / v, u % v }

func (u U32) Cmp(v U32) int { return cmpNative(uint64(u), uint64(v)) }

func (u U32) Not() U32 { return ^u }
func (u U32) And(v U32) U32 { return u & v }
func (u U32) Or(v U32) U32 { return u | v }
func (u U32) Rsh(n uint) U32 { return u >> n }
func (u U32) SignBit() bool { return u&0x80000000 != 0 }
func (u U32) IsZero() bool { return u == 0 }
func (u U32) Bytes() []byte { return nativeBytes(uint64(u)) }

func (U32) FromBytes(b []byte) (U32, bool) {
	v, ok := nativeFromBytes(b, 4)
	return U32(v), ok
}

type U64 uint64

func (u U64) Add(v U64) U64 { return u + v }
func (u U64) Sub(v U64) U64 { return u - v }

func (u U64) Mul(v U64) (U64, bool) {
	hi, lo := bits.Mul64(uint64(u), uint64(v))
	return U64(lo), hi != 0
}

func (u U64) QuoRem(v U64) (U64, U64) { return u / v, u % v }

func (u U64) Cmp(v U64) int { return cmpNative(uint64(u), uint64(v)) }

func (u U64) Not() U64 { return ^u }
func (u U64) And(v U64) U64 { return u & v }
func (u U64) Or(v U64) U64 { return u | v }
func (u U64) Rsh(n uint) U64 { return u >> n }
func (u U64) SignBit() bool { return u&0x8000000000000000 != 0 }
func (u U64) IsZero() bool { return u == 0 }
func (u U64) Bytes() []byte { return nativeBytes(uint64(u)) }

func (U64) FromBytes(b []byte) (U64, bool) {
	v, ok := nativeFromBytes(b, 8)
	return U64(v), ok
}

func cmpNative(u, v uint64) int {
	if u > v {
		return 1
	} else if u < v {
		return -1
	}
	return 0
}

// nativeBytes renders v as minimal big-endian bytes, like big.Int.Bytes.
func nativeBytes(v uint64) []byte {
	if v == 0 {
		return nil
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[(bits.LeadingZeros64(v))/8:]
}

// nativeFromBytes reads minimal big-endian bytes into a word of the given
// byte width. Leading zero bytes are tolerated; significant bytes beyond
// the width are not.
func nativeFromBytes(b []byte, width int) (uint64, bool) {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > width {
		return 0, false
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, true
}
