// Package morton packs pairs of signed integers into a single Z-order key.
//
// Each value is stored in sign-magnitude form inside its bit budget, then the
// bits of the two values are interleaved: bit i of the first value lands on
// bit 2i of the key and bit i of the second on bit 2i+1. Keys of nearby
// cells share long prefixes, which keeps them cheap to hash and compare.
package morton

import "fmt"

// Bits is the per-value bit budget, sign bit included.
const Bits = 32

const (
	signBit   = uint64(1) << (Bits - 1)
	valueMask = signBit - 1
)

// Codec is a two-dimensional Morton codec for signed values.
// The zero value is ready to use.
type Codec struct{}

// New returns a two-dimensional, 32-bit codec.
func New() Codec {
	return Codec{}
}

// Pack interleaves q and r into one key. Values must satisfy |v| < 2^31.
func (Codec) Pack(q, r int) int64 {
	return int64(split(shiftSign(q)) | split(shiftSign(r))<<1)
}

// Unpack reverses Pack.
func (Codec) Unpack(code int64) (q, r int) {
	z := uint64(code)
	return unshiftSign(compact(z)), unshiftSign(compact(z >> 1))
}

func shiftSign(v int) uint64 {
	if x := int64(v); x >= 1<<(Bits-1) || x <= -(1<<(Bits-1)) {
		panic(fmt.Sprintf("morton: value %d does not fit in %d bits", v, Bits))
	}
	if v < 0 {
		return uint64(-v) | signBit
	}
	return uint64(v)
}

func unshiftSign(u uint64) int {
	v := int(u & valueMask)
	if u&signBit != 0 {
		return -v
	}
	return v
}

// split spreads the low 32 bits of x over the even bit positions.
func split(x uint64) uint64 {
	x &= 0xFFFFFFFF
	x = (x | x<<16) & 0x0000FFFF0000FFFF
	x = (x | x<<8) & 0x00FF00FF00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F0F0F0F0F
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	return x
}

// compact gathers the even bit positions of x back into the low 32 bits.
func compact(x uint64) uint64 {
	x &= 0x5555555555555555
	x = (x | x>>1) & 0x3333333333333333
	x = (x | x>>2) & 0x0F0F0F0F0F0F0F0F
	x = (x | x>>4) & 0x00FF00FF00FF00FF
	x = (x | x>>8) & 0x0000FFFF0000FFFF
	x = (x | x>>16) & 0x00000000FFFFFFFF
	return x
}
